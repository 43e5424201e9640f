package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var brandPink = &props.Color{Red: 219, Green: 39, Blue: 119}

// GeneratePDF creates a PDF estimate from export data using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for i, r := range data.Rows {
		addTableRow(m, r, i%2 == 1)
	}
	addSummary(m, data)
	addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the business name, title, reference and date.
func addHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New("Ironing Angels UK", props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: brandPink,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grey := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Reference: %s", data.ReferenceNumber), props.Text{
					Size:  9,
					Align: align.Left,
					Color: grey,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: grey,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row for the estimate table.
func addTableHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: brandPink}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Category", headerTextLeft)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Line Total", headerText)).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds a single estimate line. Alternate rows are shaded.
func addTableRow(m core.Maroto, r ExportRow, shaded bool) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	cols := []core.Col{
		col.New(1).Add(text.New(r.Index, baseText)),
		col.New(2).Add(text.New(r.Category, leftText)),
		col.New(4).Add(text.New(r.Description, leftText)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Qty), rightText)),
		col.New(2).Add(text.New(FormatGBP(r.UnitPrice)+" / "+r.Unit, rightText)),
		col.New(2).Add(text.New(FormatGBP(r.LineTotal), rightText)),
	}

	if shaded {
		cell := &props.Cell{BackgroundColor: &props.Color{Red: 248, Green: 240, Blue: 244}}
		for i, c := range cols {
			cols[i] = c.WithStyle(cell)
		}
	}

	m.AddRows(row.New(7).Add(cols...))
}

// addSummary adds the item count and total at the bottom of the PDF.
func addSummary(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Items", labelStyle)).WithStyle(summaryCell),
			col.New(4).Add(text.New(fmt.Sprintf("%d", data.ItemCount), labelStyle)).WithStyle(summaryCell),
		),
	)

	totalStyle := labelStyle
	totalStyle.Size = 11
	totalStyle.Color = brandPink
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("Total Estimate", totalStyle)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatGBP(data.Total), totalStyle)).WithStyle(summaryCell),
		),
	)
}

// addFooter adds the note and generated-date lines at the bottom.
func addFooter(m core.Maroto, data ExportData) {
	small := props.Text{
		Size:  7,
		Align: align.Left,
		Color: &props.Color{Red: 140, Green: 140, Blue: 140},
	}

	m.AddRows(row.New(6))
	if data.Note != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New("* "+data.Note, small))))
	}
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Generated on %s", data.CreatedDate), small)),
		),
	)
}
