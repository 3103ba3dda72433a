package pdf

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/protools/toolbox/internal/invoice"
)

// layoutPremium is the dark-banded layout: navy header strip, centered seller
// block, bordered item table and a filled grand-total bar.
func layoutPremium(doc *gofpdf.Fpdf, d invoice.Draft, totals invoice.Totals) {
	doc.AddPage()

	// Header band
	doc.SetFillColor(18, 30, 62)
	doc.Rect(0, 0, pageWidth, 22, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 16)
	doc.SetXY(marginX, 6)
	doc.CellFormat(100, 10, "TAX INVOICE", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(pageWidth-marginX-70, 6)
	doc.CellFormat(70, 10, "# "+orDash(d.DocumentNumber), "", 0, "R", false, 0, "")

	// Seller block, centered
	doc.SetTextColor(18, 30, 62)
	doc.SetFont("Helvetica", "B", 14)
	doc.SetXY(marginX, 28)
	doc.CellFormat(pageWidth-2*marginX, 8, d.Seller.Name, "", 1, "C", false, 0, "")
	doc.SetTextColor(100, 110, 130)
	doc.SetFont("Helvetica", "", 9)
	doc.SetX(marginX)
	doc.CellFormat(pageWidth-2*marginX, 5, d.Seller.Address, "", 1, "C", false, 0, "")
	doc.SetX(marginX)
	doc.CellFormat(pageWidth-2*marginX, 5, "GSTIN: "+orDash(d.Seller.TaxID)+"   Ph: "+orDash(d.Seller.Phone), "", 1, "C", false, 0, "")

	doc.SetDrawColor(226, 232, 240)
	doc.Line(marginX, 50, pageWidth-marginX, 50)

	// Bill-to and invoice details
	y := 55.0
	doc.SetTextColor(37, 99, 235)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetXY(marginX, y)
	doc.CellFormat(80, 5, "BILL TO", "", 1, "L", false, 0, "")
	doc.SetTextColor(30, 41, 59)
	doc.SetFont("Helvetica", "B", 11)
	doc.SetX(marginX)
	doc.CellFormat(90, 6, d.BuyerName, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(100, 110, 130)
	doc.SetX(marginX)
	doc.MultiCell(90, 4, d.BuyerBillingAddress, "", "L", false)
	doc.SetX(marginX)
	doc.CellFormat(90, 4, "GSTIN: "+orDash(d.BuyerTaxID), "", 1, "L", false, 0, "")

	detailX := pageWidth - marginX - 66
	doc.SetXY(detailX, y)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetTextColor(148, 155, 170)
	doc.CellFormat(66, 5, "INVOICE DETAILS", "", 2, "L", false, 0, "")
	doc.SetTextColor(30, 41, 59)
	detailRow(doc, detailX, "Date", d.IssueDate.Format("2006-01-02"))
	detailRow(doc, detailX, "Payment", orDash(d.PaymentMode))
	if d.LateFee != nil {
		detailRow(doc, detailX, "Late interest", invoice.FormatMoney(d.LateFee.RatePercent)+"% p.a. ("+d.LateFee.Method+")")
	}

	y = 92
	y = itemTable(doc, d.Items, y, tableStyle{
		headerFill:  [3]int{248, 250, 252},
		border:      "1",
		borderColor: [3]int{226, 232, 240},
		repeatHead:  true,
	})

	// Totals
	totalsX := pageWidth/2 + 6
	y += 8
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(100, 110, 130)
	totalLine(doc, totalsX, &y, "Sub Total", money(totals.Subtotal))
	totalLine(doc, totalsX, &y, "CGST", money(totals.CGST))
	totalLine(doc, totalsX, &y, "SGST", money(totals.SGST))
	if totals.LateFeeAmount > 0 {
		doc.SetTextColor(37, 99, 235)
		totalLine(doc, totalsX, &y, "Added Interest", "+ "+money(totals.LateFeeAmount))
		doc.SetTextColor(100, 110, 130)
	}
	doc.SetFillColor(18, 30, 62)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 11)
	doc.SetXY(totalsX, y+2)
	doc.CellFormat(pageWidth-marginX-totalsX, 10, "  GRAND TOTAL", "", 0, "L", true, 0, "")
	doc.SetXY(totalsX, y+2)
	doc.CellFormat(pageWidth-marginX-totalsX-2, 10, money(totals.GrandTotal), "", 1, "R", false, 0, "")

	// Terms and signature
	doc.SetTextColor(148, 155, 170)
	doc.SetFont("Helvetica", "", 7)
	doc.SetXY(marginX, y+2)
	doc.MultiCell(80, 3.5, "Goods once sold cannot be returned.\nInterest charged for delayed payments.\nSubject to local jurisdiction only.", "", "L", false)

	doc.SetTextColor(30, 41, 59)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetXY(pageWidth-marginX-60, pageHeight-34)
	doc.CellFormat(60, 5, "For "+d.Seller.Name, "T", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 7)
	doc.SetX(pageWidth - marginX - 60)
	doc.CellFormat(60, 4, "Authorised Signatory", "", 0, "C", false, 0, "")
}

func detailRow(doc *gofpdf.Fpdf, x float64, label, value string) {
	doc.SetX(x)
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(26, 4.5, label+":", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 8)
	doc.CellFormat(40, 4.5, value, "", 1, "R", false, 0, "")
}

func totalLine(doc *gofpdf.Fpdf, x float64, y *float64, label, value string) {
	doc.SetXY(x, *y)
	doc.CellFormat(40, 5.5, label, "", 0, "L", false, 0, "")
	doc.CellFormat(pageWidth-marginX-x-40, 5.5, value, "", 1, "R", false, 0, "")
	*y += 5.5
}
