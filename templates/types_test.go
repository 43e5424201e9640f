package templates

import (
	"context"
	"strings"
	"testing"
)

func TestLayoutData_IsActive(t *testing.T) {
	tests := []struct {
		path, href string
		want       bool
	}{
		{"/", "/", true},
		{"/pricing", "/", false},
		{"/pricing", "/pricing", true},
		{"/contact", "/pricing", false},
		{"/contact/thanks", "/contact", true},
		{"/contactless", "/contact", false},
	}
	for _, tt := range tests {
		if got := (LayoutData{ActivePath: tt.path}).IsActive(tt.href); got != tt.want {
			t.Errorf("IsActive(%q) on %q = %v, want %v", tt.href, tt.path, got, tt.want)
		}
	}
}

func TestTestimonialView_Stars(t *testing.T) {
	tests := map[int]string{5: "★★★★★", 4: "★★★★☆", 0: "☆☆☆☆☆", 9: "★★★★★", -1: "☆☆☆☆☆"}
	for rating, want := range tests {
		if got := (TestimonialView{Rating: rating}).Stars(); got != want {
			t.Errorf("Stars(%d) = %q, want %q", rating, got, want)
		}
	}
}

func TestContactForm_RendersErrors(t *testing.T) {
	data := ContactData{
		Form:   ContactFormView{Name: `<Karen & "Co">`},
		Errors: map[string]string{"email": "Email is required"},
		Services: []ServiceOptionView{
			{Value: "regular", Label: "Regular Ironing Service"},
			{Value: "express", Label: "Express Service (24h)", Selected: true},
		},
	}
	var b strings.Builder
	if err := ContactForm(data).Render(context.Background(), &b); err != nil {
		t.Fatal(err)
	}
	html := b.String()

	for _, want := range []string{
		`value="&lt;Karen &amp; &#34;Co&#34;&gt;"`,
		`<p class="field-error" role="alert">Email is required</p>`,
		`<option value="express" selected>`,
		`<option value="regular">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in %s", want, html)
		}
	}
	if strings.Count(html, "field-error") != 1 {
		t.Error("expected exactly one field error")
	}
}

func TestLayout_RendersChildren(t *testing.T) {
	var b strings.Builder
	if err := PricingPage(PricingData{}, LayoutData{ActivePath: "/pricing"}).Render(context.Background(), &b); err != nil {
		t.Fatal(err)
	}
	html := b.String()
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Errorf("unexpected start: %.40s", html)
	}
	if !strings.Contains(html, "<title>Pricing | Ironing Angels UK</title>") || !strings.Contains(html, "<h1>Our Pricing</h1>") {
		t.Error("page content missing from layout")
	}
	if strings.Contains(html, "cookie-banner") {
		t.Error("banner rendered without ShowConsentBanner")
	}
}
