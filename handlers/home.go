package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ironingangels/templates"
)

// HandleHome renders the landing page with testimonials in display order.
func HandleHome(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var data templates.HomeData

		records, err := app.FindRecordsByFilter("testimonials", "id != ''", "sort_order", 0, 0)
		if err != nil {
			// The page still renders without testimonials.
			zap.L().Warn("home: could not load testimonials", zap.Error(err))
		}
		for _, rec := range records {
			data.Testimonials = append(data.Testimonials, templates.TestimonialView{
				Quote:  rec.GetString("quote"),
				Author: rec.GetString("author"),
				Rating: rec.GetInt("rating"),
			})
		}

		return templates.HomePage(data, GetLayoutData(e.Request)).Render(e.Request.Context(), e.Response)
	}
}
