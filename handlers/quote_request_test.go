package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ironingangels/services"
	"ironingangels/testhelpers"
)

func TestHandleQuoteRequest_SavesAndRedirects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	req := newFormRequest("/estimator/quote", url.Values{"qty-adult-10": {"3"}, "qty-work-shirt": {"1"}})
	rec := httptest.NewRecorder()

	handler := HandleQuoteRequest(app, services.DefaultCatalog(), fixedClock)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	records, err := app.FindAllRecords("quote_requests")
	if err != nil || len(records) != 1 {
		t.Fatalf("expected 1 quote request, got %d (%v)", len(records), err)
	}
	q := records[0]
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/contact?quote="+q.Id)

	if q.GetString("reference") != "IAQ-20261018-001" {
		t.Errorf("reference = %q", q.GetString("reference"))
	}
	if q.GetString("total") != "46.75" {
		t.Errorf("total = %q", q.GetString("total"))
	}
	if q.GetInt("item_count") != 4 {
		t.Errorf("item_count = %d", q.GetInt("item_count"))
	}
	summary := q.GetString("summary")
	if !strings.Contains(summary, "3 x Adult Items (10 pieces) (£15.00) = £45.00") ||
		!strings.HasSuffix(summary, "Total estimate: £46.75") {
		t.Errorf("summary = %q", summary)
	}
	if !strings.Contains(q.GetString("items"), `"work-shirt"`) {
		t.Errorf("items = %s", q.GetString("items"))
	}
}

func TestHandleQuoteRequest_EmptyEstimate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	req := newFormRequest("/estimator/quote", url.Values{"qty-adult-10": {"0"}})
	req.Header.Del("HX-Request")
	rec := httptest.NewRecorder()

	handler := HandleQuoteRequest(app, services.DefaultCatalog(), fixedClock)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/contact" {
		t.Errorf("expected redirect to /contact, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	records, _ := app.FindAllRecords("quote_requests")
	if len(records) != 0 {
		t.Errorf("expected no quote requests, got %d", len(records))
	}
}
