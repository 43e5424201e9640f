package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ExportRow is a single estimate line in a quote export.
type ExportRow struct {
	Index       string
	Category    string
	Description string
	Qty         int
	Unit        string
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// ExportData holds all data needed for a quote export.
type ExportData struct {
	Title           string
	ReferenceNumber string
	CreatedDate     string
	Rows            []ExportRow
	ItemCount       int
	Total           decimal.Decimal
	Note            string
}

// QuoteExportNote is printed under every exported estimate.
const QuoteExportNote = "Prices exclude pickup/delivery charges. This is an estimate, not an invoice."

// BuildExportData snapshots the estimator's breakdown for export.
func BuildExportData(e *Estimator, reference string, now time.Time) ExportData {
	data := ExportData{
		Title:           "Ironing Estimate",
		ReferenceNumber: reference,
		CreatedDate:     now.Format("02 Jan 2006"),
		Total:           e.Total(),
		Note:            QuoteExportNote,
	}
	i := 0
	for line := range e.Breakdown() {
		i++
		data.Rows = append(data.Rows, ExportRow{
			Index:       fmt.Sprintf("%d", i),
			Category:    line.Item.Category.Title(),
			Description: line.Item.Name,
			Qty:         line.Quantity,
			Unit:        string(line.Item.Unit),
			UnitPrice:   line.Item.UnitPrice,
			LineTotal:   line.LineTotal,
		})
		data.ItemCount += line.Quantity
	}
	return data
}

// QuoteReference derives a short human reference from a timestamp,
// e.g. "IA-20261018-1530".
func QuoteReference(now time.Time) string {
	return "IA-" + now.Format("20060102-1504")
}
