package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"ironingangels/services"
	"ironingangels/templates"
)

// HandlePricing renders the pricing tiers derived from cat.
func HandlePricing(cat *services.Catalog) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var data templates.PricingData
		for _, tier := range services.PricingTiers(cat) {
			data.Tiers = append(data.Tiers, templates.PricingTierView{
				Title:       tier.Title,
				Price:       tier.Price,
				Description: tier.Description,
				Features:    tier.Features,
				Highlighted: tier.Highlighted,
			})
		}
		return templates.PricingPage(data, GetLayoutData(e.Request)).Render(e.Request.Context(), e.Response)
	}
}
