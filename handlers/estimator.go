package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ironingangels/services"
	"ironingangels/templates"
)

// qtyField is the form field carrying an item's quantity.
func qtyField(id string) string { return "qty-" + id }

// estimatorFromRequest rebuilds the visitor's estimator from the posted
// quantity fields. Missing fields count as zero.
func estimatorFromRequest(e *core.RequestEvent, cat *services.Catalog) *services.Estimator {
	est := services.NewEstimator(cat)
	if err := e.Request.ParseForm(); err != nil {
		zap.L().Warn("estimator: could not parse form", zap.Error(err))
		return est
	}
	for _, it := range cat.Items() {
		if raw := e.Request.PostForm.Get(qtyField(it.ID)); raw != "" {
			// ids come from the catalog itself, so this cannot fail
			_ = est.SetQuantity(it.ID, raw)
		}
	}
	return est
}

func buildEstimatorData(est *services.Estimator) templates.EstimatorData {
	data := templates.EstimatorData{
		Total:     services.FormatGBP(est.Total()),
		ItemCount: strconv.Itoa(est.ItemCount()),
		HasItems:  est.HasAnyItems(),
	}
	for _, g := range est.GroupedByCategory() {
		gv := templates.EstimatorGroupView{Title: g.Category.Title()}
		for _, it := range g.Items {
			gv.Items = append(gv.Items, templates.EstimatorItemView{
				ID:         it.ID,
				Name:       it.Name,
				PriceLabel: services.PriceLabel(it),
				Qty:        strconv.Itoa(est.Quantity(it.ID)),
			})
		}
		data.Groups = append(data.Groups, gv)
	}
	for line := range est.Breakdown() {
		data.Lines = append(data.Lines, templates.EstimatorLineView{
			Name:  line.Item.Name,
			Qty:   strconv.Itoa(line.Quantity),
			Total: services.FormatGBP(line.LineTotal),
		})
	}
	return data
}

func renderEstimatorBody(e *core.RequestEvent, est *services.Estimator) error {
	return templates.EstimatorBody(buildEstimatorData(est)).Render(e.Request.Context(), e.Response)
}

// HandleEstimatorOpen renders the calculator dialog with nothing selected.
func HandleEstimatorOpen(cat *services.Catalog) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		est := services.NewEstimator(cat)
		return templates.EstimatorModal(buildEstimatorData(est)).Render(e.Request.Context(), e.Response)
	}
}

// HandleEstimatorClose empties the dialog container, discarding all quantities.
func HandleEstimatorClose() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		SetTrigger(e, "estimatorClosed", true)
		return e.HTML(http.StatusOK, "")
	}
}

// HandleEstimatorIncrement adds one of the item named by the {id} path value.
func HandleEstimatorIncrement(cat *services.Catalog) func(*core.RequestEvent) error {
	return handleItemAction(cat, (*services.Estimator).Increment)
}

// HandleEstimatorDecrement removes one of the item, stopping at zero.
func HandleEstimatorDecrement(cat *services.Catalog) func(*core.RequestEvent) error {
	return handleItemAction(cat, (*services.Estimator).Decrement)
}

func handleItemAction(cat *services.Catalog, action func(*services.Estimator, string) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		est := estimatorFromRequest(e, cat)
		if err := action(est, id); err != nil {
			if errors.Is(err, services.ErrUnknownItem) {
				return ErrorToast(e, http.StatusNotFound, "That item is not in our price list.")
			}
			zap.L().Error("estimator: item action failed", zap.String("item", id), zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderEstimatorBody(e, est)
	}
}

// HandleEstimatorRecalculate re-renders after a quantity was typed in. Input
// that is not a whole number is treated as zero.
func HandleEstimatorRecalculate(cat *services.Catalog) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderEstimatorBody(e, estimatorFromRequest(e, cat))
	}
}

// HandleEstimatorClear resets every quantity to zero.
func HandleEstimatorClear(cat *services.Catalog) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		est := estimatorFromRequest(e, cat)
		est.ClearAll()
		return renderEstimatorBody(e, est)
	}
}
