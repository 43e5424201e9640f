package templates

import "strings"

// LayoutData carries the page chrome state built by the site middleware.
type LayoutData struct {
	ActivePath        string
	ShowConsentBanner bool
	LoadClarity       bool
	ClarityProjectID  string
}

// IsActive reports whether the nav link for href is the current page.
func (d LayoutData) IsActive(href string) bool {
	if href == "/" {
		return d.ActivePath == "/"
	}
	return d.ActivePath == href || strings.HasPrefix(d.ActivePath, href+"/")
}

type TestimonialView struct {
	Quote  string
	Author string
	Rating int
}

// Stars renders the rating as filled and empty stars.
func (t TestimonialView) Stars() string {
	r := min(max(t.Rating, 0), 5)
	return strings.Repeat("★", r) + strings.Repeat("☆", 5-r)
}

type HomeData struct {
	Testimonials []TestimonialView
}

type PricingTierView struct {
	Title       string
	Price       string
	Description string
	Features    []string
	Highlighted bool
}

type PricingData struct {
	Tiers []PricingTierView
}

type ServiceOptionView struct {
	Value    string
	Label    string
	Selected bool
}

// ContactFormView holds submitted values so the form can be re-rendered.
type ContactFormView struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
	QuoteID string
}

type ContactData struct {
	Form     ContactFormView
	Errors   map[string]string
	Services []ServiceOptionView
	QuoteRef string
}

// FieldError returns the validation message for field, if any.
func (d ContactData) FieldError(field string) string {
	return d.Errors[field]
}

type EstimatorItemView struct {
	ID         string
	Name       string
	PriceLabel string
	Qty        string
}

type EstimatorGroupView struct {
	Title string
	Items []EstimatorItemView
}

type EstimatorLineView struct {
	Name  string
	Qty   string
	Total string
}

type EstimatorData struct {
	Groups    []EstimatorGroupView
	Lines     []EstimatorLineView
	Total     string
	ItemCount string
	HasItems  bool
}
