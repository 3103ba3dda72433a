package pdf

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/protools/toolbox/internal/invoice"
)

type tableStyle struct {
	headerFill  [3]int
	border      string
	borderColor [3]int
	repeatHead  bool
}

var itemCols = []struct {
	title string
	width float64
	align string
}{
	{"DESCRIPTION", 76, "L"},
	{"HSN/SAC", 24, "C"},
	{"QTY", 18, "C"},
	{"RATE", 30, "R"},
	{"TOTAL", 34, "R"},
}

// itemTable renders the line items starting at y and returns the y position
// after the last row. Items that do not fit flow onto continuation pages
// rather than overlapping the totals block.
func itemTable(doc *gofpdf.Fpdf, items []invoice.LineItem, y float64, style tableStyle) float64 {
	doc.SetDrawColor(style.borderColor[0], style.borderColor[1], style.borderColor[2])
	y = tableHead(doc, y, style)
	const rowH = 7.0
	for _, it := range items {
		if y+rowH > tableBreakY {
			doc.AddPage()
			y = marginTop
			if style.repeatHead {
				y = tableHead(doc, y, style)
			}
		}
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(51, 65, 85)
		doc.SetXY(marginX, y)
		cells := []string{
			it.Description,
			orDash(it.TaxCode),
			qty(it.Quantity),
			invoice.FormatMoney(it.UnitRate),
			invoice.FormatMoney(it.Quantity * it.UnitRate),
		}
		for i, col := range itemCols {
			doc.CellFormat(col.width, rowH, cells[i], style.border, 0, col.align, false, 0, "")
		}
		doc.Ln(rowH)
		y += rowH
	}
	// Pad short invoices so the table body keeps a minimum visual height.
	for pad := len(items); pad < 4; pad++ {
		doc.SetXY(marginX, y)
		for _, col := range itemCols {
			doc.CellFormat(col.width, rowH, "", style.border, 0, "L", false, 0, "")
		}
		doc.Ln(rowH)
		y += rowH
	}
	return y
}

func tableHead(doc *gofpdf.Fpdf, y float64, style tableStyle) float64 {
	const headH = 8.0
	doc.SetFont("Helvetica", "B", 8)
	doc.SetTextColor(71, 85, 105)
	doc.SetFillColor(style.headerFill[0], style.headerFill[1], style.headerFill[2])
	doc.SetXY(marginX, y)
	for _, col := range itemCols {
		doc.CellFormat(col.width, headH, col.title, style.border, 0, col.align, true, 0, "")
	}
	doc.Ln(headH)
	return y + headH
}
