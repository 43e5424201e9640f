package services

import (
	"testing"
)

func TestGeneratePDF_Estimate(t *testing.T) {
	result, err := GeneratePDF(sampleExportData(t))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePDF_EmptyItems(t *testing.T) {
	data := ExportData{
		Title:       "Empty Estimate",
		CreatedDate: "18 Oct 2026",
	}

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}

func TestGeneratePDF_ManyRows(t *testing.T) {
	e := NewEstimator(DefaultCatalog())
	for _, it := range DefaultCatalog().Items() {
		_ = e.SetQuantityInt(it.ID, 40)
	}
	data := BuildExportData(e, "IA-MANY", fixedNow)

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header")
	}
}
