package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleExportData(t *testing.T) ExportData {
	t.Helper()
	e := NewEstimator(DefaultCatalog())
	_ = e.SetQuantityInt("adult-10", 3)
	_ = e.Increment("work-shirt")
	return BuildExportData(e, "IA-20261018-0930", time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))
}

func TestBuildExportData(t *testing.T) {
	data := sampleExportData(t)

	if data.CreatedDate != "18 Oct 2026" {
		t.Errorf("CreatedDate = %q", data.CreatedDate)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(data.Rows))
	}
	if data.ItemCount != 4 {
		t.Errorf("ItemCount = %d, want 4", data.ItemCount)
	}
	if !data.Total.Equal(decimal.RequireFromString("46.75")) {
		t.Errorf("Total = %s, want 46.75", data.Total)
	}

	first := data.Rows[0]
	if first.Index != "1" || first.Description != "Adult Items (10 pieces)" || first.Qty != 3 {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Category != "Adult Clothing" || first.Unit != "bundle" {
		t.Errorf("unexpected first row category/unit: %q / %q", first.Category, first.Unit)
	}
	if data.Rows[1].Index != "2" {
		t.Errorf("second row index = %q, want 2", data.Rows[1].Index)
	}
}

func TestQuoteReference(t *testing.T) {
	got := QuoteReference(time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC))
	if got != "IA-20261018-1530" {
		t.Errorf("QuoteReference() = %q", got)
	}
}

func TestGenerateExcel_Estimate(t *testing.T) {
	result, err := GenerateExcel(sampleExportData(t))
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Ironing Estimate" {
		t.Fatalf("expected sheet name 'Ironing Estimate', got %v", sheets)
	}
	sheet := sheets[0]

	cells := map[string]string{
		"A1":  "Ironing Estimate",
		"A2":  "Ref: IA-20261018-0930",
		"C6":  "Adult Items (10 pieces)",
		"D6":  "3",
		"F6":  "£15.00",
		"G6":  "£45.00",
		"C7":  "Work Shirts",
		"G7":  "£1.75",
		"D9":  "4",
		"G10": "£46.75",
	}
	for cell, want := range cells {
		got, _ := f.GetCellValue(sheet, cell)
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}

func TestGenerateExcel_EmptyItems(t *testing.T) {
	data := ExportData{
		Title:       "Empty Estimate",
		CreatedDate: "18 Oct 2026",
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}
}

func TestGenerateExcel_LongTitle(t *testing.T) {
	data := ExportData{
		Title:       "This is a very long title that exceeds thirty one characters",
		CreatedDate: "18 Oct 2026",
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets[0]) > 31 {
		t.Errorf("sheet name exceeds 31 chars: %d", len(sheets[0]))
	}
}

func TestGenerateExcel_EmptyTitle(t *testing.T) {
	result, err := GenerateExcel(ExportData{CreatedDate: "18 Oct 2026"})
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); sheets[0] != "Estimate" {
		t.Errorf("expected default sheet name 'Estimate', got %q", sheets[0])
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "Hello", "Hello"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+1234", "'+1234"},
		{"starts with minus", "-100", "'-100"},
		{"starts with at", "@import", "'@import"},
		{"starts with tab", "\tdata", "'\tdata"},
		{"starts with pipe", "|command", "'|command"},
		{"starts with carriage return", "\rdata", "'\rdata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeExcelCell(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
