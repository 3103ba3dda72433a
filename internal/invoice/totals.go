package invoice

import (
	"math"

	"github.com/shopspring/decimal"
)

// ComputeTotals folds the item list into subtotal, tax and grand total,
// optionally adding a late-payment surcharge on the tax-inclusive base.
//
// The fold carries full floating precision; rounding to the display currency
// happens only in presentation (FormatMoney), so aggregation never
// accumulates rounding drift. Item order does not affect the result.
func ComputeTotals(items []LineItem, lateFee *LateFeeSpec) Totals {
	var t Totals
	for _, it := range items {
		base := it.Quantity * it.UnitRate
		t.Subtotal += base
		t.TaxTotal += base * it.TaxRatePercent / 100
	}
	// GST is reported as equal central and state halves.
	t.CGST = t.TaxTotal / 2
	t.SGST = t.TaxTotal / 2
	baseTotal := t.Subtotal + t.TaxTotal
	if lateFee != nil && lateFee.DaysLate > 0 && lateFee.RatePercent > 0 {
		switch lateFee.Method {
		case "CI":
			daily := lateFee.RatePercent / 100 / 365
			t.LateFeeAmount = baseTotal * (math.Pow(1+daily, float64(lateFee.DaysLate)) - 1)
		default: // SI
			t.LateFeeAmount = baseTotal * lateFee.RatePercent / 100 * float64(lateFee.DaysLate) / 365
		}
	}
	t.GrandTotal = t.Subtotal + t.TaxTotal + t.LateFeeAmount
	return t
}

// FormatMoney renders an amount rounded to the currency's minor unit. This is
// the only rounding step in the pipeline.
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}
