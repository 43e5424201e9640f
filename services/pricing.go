package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PricingTier is one card on the pricing page.
type PricingTier struct {
	Title       string
	Price       string
	Description string
	Features    []string
	Highlighted bool
}

// SubscriptionMonthlyPrice is the flat monthly subscription fee.
var SubscriptionMonthlyPrice = decimal.NewFromInt(80)

// PricingTiers builds the pricing page cards. Per-item prices come from the
// catalog so the page and the estimator quote the same figures.
func PricingTiers(cat *Catalog) []PricingTier {
	adult := PricingTier{
		Title:       "Adult Clothes",
		Description: "Perfect for adults or teens over 12 years old",
	}
	childrenAndBedding := PricingTier{
		Title:       "Childrens and Bedding",
		Description: "Childrens items and bedding service",
		Highlighted: true,
	}

	var adultFrom, childFrom decimal.Decimal
	for _, g := range cat.GroupedByCategory() {
		for _, it := range g.Items {
			switch g.Category {
			case CategoryAdult, CategoryWork:
				adult.Features = append(adult.Features, tierFeature(it))
				if it.Unit == UnitBundle {
					adultFrom = minPrice(adultFrom, it.UnitPrice)
				}
			case CategoryChildren, CategoryBedding:
				childrenAndBedding.Features = append(childrenAndBedding.Features, tierFeature(it))
				childFrom = minPrice(childFrom, it.UnitPrice)
			}
		}
	}
	adult.Features = append(adult.Features, "Pick up and drop off available")
	adult.Price = "from " + FormatPence(adultFrom)
	childrenAndBedding.Price = "from " + FormatPence(childFrom)

	subscription := PricingTier{
		Title:       "Monthly Subscription",
		Price:       FormatPence(SubscriptionMonthlyPrice) + "/month",
		Description: "Best value for families and regular customers",
		Features: []string{
			"100 items monthly (average 25 weekly)",
			"48-hour turnaround",
			"Collection & Delivery within 5 miles of NG18",
			"Priority booking slots",
			"Minimum 3 month term",
		},
	}

	return []PricingTier{adult, childrenAndBedding, subscription}
}

func minPrice(cur, p decimal.Decimal) decimal.Decimal {
	if cur.IsZero() || p.LessThan(cur) {
		return p
	}
	return cur
}

// tierFeature renders a catalog item as a price list bullet,
// e.g. "Adult Items (10 pieces) £15" or "Children's Items 50p per item".
func tierFeature(it PricedItem) string {
	if it.Unit == UnitItem {
		return fmt.Sprintf("%s %s per item", it.Name, FormatPence(it.UnitPrice))
	}
	return fmt.Sprintf("%s %s", it.Name, FormatPence(it.UnitPrice))
}

// PriceLabel is the per-unit caption shown under an item in the estimator
// (e.g. "£1.75 per item").
func PriceLabel(it PricedItem) string {
	return fmt.Sprintf("%s per %s", FormatGBP(it.UnitPrice), it.Unit)
}

// QuoteSummary is the plain-text form of an estimate, used to pre-fill the
// contact form and for stored quote requests.
type QuoteSummary struct {
	Lines     []string
	ItemCount int
	Total     decimal.Decimal
}

// BuildQuoteSummary renders the estimator's current breakdown.
func BuildQuoteSummary(e *Estimator) QuoteSummary {
	var s QuoteSummary
	for line := range e.Breakdown() {
		s.Lines = append(s.Lines, fmt.Sprintf("%d x %s (%s) = %s",
			line.Quantity, line.Item.Name, FormatGBP(line.Item.UnitPrice), FormatGBP(line.LineTotal)))
		s.ItemCount += line.Quantity
	}
	s.Total = e.Total()
	return s
}

// String joins the lines and the total, one per line.
func (s QuoteSummary) String() string {
	var b strings.Builder
	for _, l := range s.Lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString("Total estimate: ")
	b.WriteString(FormatGBP(s.Total))
	return b.String()
}
