package pdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/protools/toolbox/internal/invoice"
)

func sampleRecord(layout string, itemCount int) (invoice.Record, invoice.Totals) {
	items := make([]invoice.LineItem, itemCount)
	for i := range items {
		items[i] = invoice.LineItem{
			ID:             fmt.Sprintf("%d", i+1),
			Description:    fmt.Sprintf("Consulting sprint %d", i+1),
			TaxCode:        "9983",
			Quantity:       1,
			UnitRate:       25000,
			TaxRatePercent: 18,
		}
	}
	draft := invoice.Draft{
		SchemaVersion: invoice.SchemaVersion,
		Seller: invoice.Party{
			Name:    "PROTOOLS SOLUTIONS",
			TaxID:   "29AAAAA0000A1Z5",
			Address: "123 Industrial Area, Tech Park, Bangalore - 560001",
			Phone:   "+91 98765 43210",
		},
		BuyerName:           "RETAIL CLIENT LTD",
		BuyerTaxID:          "27BBBBB1111B2Z2",
		BuyerBillingAddress: "45 Corporate Street, CBD, Mumbai - 400001",
		DocumentNumber:      "INV-2024-001",
		IssueDate:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		PaymentMode:         "BANK TRANSFER / UPI",
		LateFee:             &invoice.LateFeeSpec{RatePercent: 24, DaysLate: 30, Method: "SI"},
		Items:               items,
	}
	totals := invoice.ComputeTotals(draft.Items, draft.LateFee)
	return invoice.Record{
		ID:             "test",
		CreatedAt:      time.Now(),
		DocumentNumber: draft.DocumentNumber,
		BuyerName:      draft.BuyerName,
		GrandTotal:     totals.GrandTotal,
		LayoutTemplate: layout,
		Snapshot:       draft,
	}, totals
}

func TestRenderBothTemplates(t *testing.T) {
	r := New()
	for _, layout := range []string{invoice.LayoutPremium, invoice.LayoutClassicMonochrome} {
		rec, totals := sampleRecord(layout, 3)
		data, err := r.Render(rec, totals)
		if err != nil {
			t.Fatalf("render %s: %v", layout, err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Fatalf("render %s: output is not a PDF (%d bytes)", layout, len(data))
		}
		if len(data) < 1000 {
			t.Fatalf("render %s: suspiciously small output (%d bytes)", layout, len(data))
		}
	}
}

func TestRenderUnknownLayoutFallsBack(t *testing.T) {
	rec, totals := sampleRecord("glitter", 1)
	data, err := New().Render(rec, totals)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("fallback layout did not produce a PDF")
	}
}

// Many line items flow onto continuation pages instead of overlapping the
// totals block.
func TestRenderPaginatesLongItemLists(t *testing.T) {
	short, totalsShort := sampleRecord(invoice.LayoutPremium, 1)
	long, totalsLong := sampleRecord(invoice.LayoutPremium, 60)

	shortPDF, err := New().Render(short, totalsShort)
	if err != nil {
		t.Fatalf("render short: %v", err)
	}
	longPDF, err := New().Render(long, totalsLong)
	if err != nil {
		t.Fatalf("render long: %v", err)
	}
	if pages(longPDF) <= pages(shortPDF) {
		t.Fatalf("long invoice did not paginate: %d vs %d pages", pages(longPDF), pages(shortPDF))
	}
}

// pages counts page objects in the raw PDF stream.
func pages(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestFilename(t *testing.T) {
	cases := map[string]string{
		"INV-2024-001":  "invoice-INV-2024-001.pdf",
		"INV 7/2024":    "invoice-INV-7-2024.pdf",
		"":              "invoice-draft.pdf",
		"../etc/passwd": "invoice-..-etc-passwd.pdf",
	}
	for in, want := range cases {
		if got := Filename(in); got != want {
			t.Fatalf("Filename(%q) = %q, want %q", in, got, want)
		}
	}
}
