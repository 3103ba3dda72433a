package pdf

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/protools/toolbox/internal/invoice"
)

// layoutClassic is the monochrome layout: no fills, horizontal rules only.
// It consumes exactly the same draft and totals as the premium layout.
func layoutClassic(doc *gofpdf.Fpdf, d invoice.Draft, totals invoice.Totals) {
	doc.AddPage()
	doc.SetTextColor(0, 0, 0)
	doc.SetDrawColor(0, 0, 0)

	doc.SetFont("Times", "B", 18)
	doc.SetXY(marginX, marginTop)
	doc.CellFormat(pageWidth-2*marginX, 10, "TAX INVOICE", "", 1, "C", false, 0, "")
	doc.SetLineWidth(0.6)
	doc.Line(marginX, 26, pageWidth-marginX, 26)
	doc.SetLineWidth(0.2)

	doc.SetFont("Times", "B", 12)
	doc.SetXY(marginX, 30)
	doc.CellFormat(110, 6, d.Seller.Name, "", 1, "L", false, 0, "")
	doc.SetFont("Times", "", 9)
	doc.SetX(marginX)
	doc.MultiCell(110, 4.5, d.Seller.Address, "", "L", false)
	doc.SetX(marginX)
	doc.CellFormat(110, 4.5, "GSTIN: "+orDash(d.Seller.TaxID), "", 1, "L", false, 0, "")

	doc.SetXY(pageWidth-marginX-60, 30)
	doc.SetFont("Times", "", 9)
	doc.CellFormat(24, 4.5, "Invoice No:", "", 0, "L", false, 0, "")
	doc.SetFont("Times", "B", 9)
	doc.CellFormat(36, 4.5, orDash(d.DocumentNumber), "", 1, "R", false, 0, "")
	doc.SetX(pageWidth - marginX - 60)
	doc.SetFont("Times", "", 9)
	doc.CellFormat(24, 4.5, "Date:", "", 0, "L", false, 0, "")
	doc.CellFormat(36, 4.5, d.IssueDate.Format("2006-01-02"), "", 1, "R", false, 0, "")
	doc.SetX(pageWidth - marginX - 60)
	doc.CellFormat(24, 4.5, "Payment:", "", 0, "L", false, 0, "")
	doc.CellFormat(36, 4.5, orDash(d.PaymentMode), "", 1, "R", false, 0, "")

	doc.Line(marginX, 52, pageWidth-marginX, 52)

	doc.SetFont("Times", "B", 9)
	doc.SetXY(marginX, 55)
	doc.CellFormat(90, 5, "Billed To", "", 1, "L", false, 0, "")
	doc.SetFont("Times", "", 9)
	doc.SetX(marginX)
	doc.CellFormat(90, 5, d.BuyerName, "", 1, "L", false, 0, "")
	doc.SetX(marginX)
	doc.MultiCell(90, 4.5, d.BuyerBillingAddress, "", "L", false)
	if d.BuyerShippingAddress != "" {
		doc.SetXY(pageWidth/2+4, 55)
		doc.SetFont("Times", "B", 9)
		doc.CellFormat(80, 5, "Shipped To", "", 1, "L", false, 0, "")
		doc.SetFont("Times", "", 9)
		doc.SetX(pageWidth/2 + 4)
		doc.MultiCell(80, 4.5, d.BuyerShippingAddress, "", "L", false)
	}

	y := itemTable(doc, d.Items, 82, tableStyle{
		headerFill:  [3]int{255, 255, 255},
		border:      "B",
		borderColor: [3]int{0, 0, 0},
		repeatHead:  true,
	})

	y += 6
	doc.SetFont("Times", "", 9)
	totalsX := pageWidth/2 + 20
	totalLine(doc, totalsX, &y, "Subtotal", money(totals.Subtotal))
	totalLine(doc, totalsX, &y, "Tax", money(totals.TaxTotal))
	if totals.LateFeeAmount > 0 {
		totalLine(doc, totalsX, &y, "Late payment interest", money(totals.LateFeeAmount))
	}
	doc.Line(totalsX, y+1, pageWidth-marginX, y+1)
	doc.SetFont("Times", "B", 11)
	y += 2
	totalLine(doc, totalsX, &y, "Grand Total", money(totals.GrandTotal))

	doc.SetFont("Times", "I", 8)
	doc.SetXY(marginX, pageHeight-28)
	doc.CellFormat(pageWidth-2*marginX, 4, "This is a computer generated invoice.", "T", 0, "C", false, 0, "")
}
