package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ironingangels/services"
)

type quoteItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// saveQuoteRequest stores the estimate so the contact form can refer to it.
func saveQuoteRequest(app *pocketbase.PocketBase, est *services.Estimator, now time.Time) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("quote_requests")
	if err != nil {
		return nil, err
	}

	reference, err := services.NextQuoteRequestReference(app, now)
	if err != nil {
		return nil, err
	}

	summary := services.BuildQuoteSummary(est)
	var items []quoteItem
	for line := range est.Breakdown() {
		items = append(items, quoteItem{
			ID:        line.Item.ID,
			Name:      line.Item.Name,
			Quantity:  line.Quantity,
			UnitPrice: services.FormatAmount(line.Item.UnitPrice),
			LineTotal: services.FormatAmount(line.LineTotal),
		})
	}

	rec := core.NewRecord(col)
	rec.Set("reference", reference)
	rec.Set("summary", summary.String())
	rec.Set("total", services.FormatAmount(summary.Total))
	rec.Set("item_count", summary.ItemCount)
	rec.Set("items", items)
	if err := app.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// HandleQuoteRequest stores the posted estimate and sends the visitor to the
// contact page with it attached. An empty estimate goes straight to the page.
func HandleQuoteRequest(app *pocketbase.PocketBase, cat *services.Catalog, now func() time.Time) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		est := estimatorFromRequest(e, cat)
		if !est.HasAnyItems() {
			return redirect(e, "/contact")
		}

		rec, err := saveQuoteRequest(app, est, now())
		if err != nil {
			zap.L().Error("quote_request: save failed", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Could not save your estimate. Please try again.")
		}

		zap.L().Info("quote_request: saved",
			zap.String("id", rec.Id), zap.String("reference", rec.GetString("reference")))
		return redirect(e, "/contact?quote="+rec.Id)
	}
}
