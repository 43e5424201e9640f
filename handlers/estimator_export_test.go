package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/xuri/excelize/v2"

	"ironingangels/services"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"IA-20261018-0930", "IA-20261018-0930"},
		{"Ironing Estimate", "Ironing-Estimate"},
		{`a/b\c:d"e`, "a-b-c-de"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.input); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func exportRequest(format string, form url.Values) *http.Request {
	req := newFormRequest("/estimator/export/"+format, form)
	req.Header.Del("HX-Request")
	req.SetPathValue("format", format)
	return req
}

func TestHandleEstimatorExport_Excel(t *testing.T) {
	req := exportRequest("xlsx", url.Values{"qty-adult-10": {"3"}, "qty-work-shirt": {"1"}})
	rec := httptest.NewRecorder()

	if err := HandleEstimatorExport(services.DefaultCatalog(), fixedClock)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="Ironing_Estimate_IA-20261018-0930.xlsx"` {
		t.Errorf("Content-Disposition = %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a valid xlsx: %v", err)
	}
	defer f.Close()
	total, _ := f.GetCellValue(f.GetSheetName(0), "G10")
	if total != "£46.75" {
		t.Errorf("total cell = %q, want £46.75", total)
	}
}

func TestHandleEstimatorExport_PDF(t *testing.T) {
	req := exportRequest("pdf", url.Values{"qty-king-bed": {"2"}})
	rec := httptest.NewRecorder()

	if err := HandleEstimatorExport(services.DefaultCatalog(), fixedClock)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected a PDF body")
	}
}

func TestHandleEstimatorExport_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		form   url.Values
		status int
	}{
		{"unknown format", "csv", url.Values{"qty-adult-10": {"1"}}, http.StatusNotFound},
		{"empty estimate", "pdf", url.Values{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			err := HandleEstimatorExport(services.DefaultCatalog(), fixedClock)(newTestRequestEvent(nil, exportRequest(tt.format, tt.form), rec))
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}
