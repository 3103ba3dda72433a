package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/protools/toolbox/internal/invoice"
)

// A4 logical canvas in millimeters. The exported document size never depends
// on any preview scaling; this is the fixed source of truth.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	marginX    = 14.0
	marginTop  = 14.0
	// Below this y the item table breaks to a continuation page instead of
	// overflowing into the totals block.
	tableBreakY = pageHeight - 60
)

// Renderer maps an invoice snapshot plus a layout template onto a fixed-size
// page and produces the downloadable document bytes. Layout changes
// presentation only; totals are computed by the caller and passed in.
type Renderer struct{}

func New() Renderer { return Renderer{} }

// Render produces the PDF bytes for a record. Unknown layout names fall back
// to the premium template.
func (Renderer) Render(rec invoice.Record, totals invoice.Totals) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	switch rec.LayoutTemplate {
	case invoice.LayoutClassicMonochrome:
		layoutClassic(doc, rec.Snapshot, totals)
	default:
		layoutPremium(doc, rec.Snapshot, totals)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename derives the download name from the document number.
func Filename(documentNumber string) string {
	name := unsafeFilename.ReplaceAllString(documentNumber, "-")
	if name == "" || name == "-" {
		name = "draft"
	}
	return "invoice-" + name + ".pdf"
}

func money(v float64) string { return "Rs. " + invoice.FormatMoney(v) }

func qty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
