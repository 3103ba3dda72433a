package invoice

import (
	"math"
	"math/rand"
	"testing"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func sampleItems() []LineItem {
	return []LineItem{
		{ID: "1", Description: "Web Development Services", TaxCode: "9983", Quantity: 1, UnitRate: 25000, TaxRatePercent: 18},
		{ID: "2", Description: "Hosting", TaxCode: "9984", Quantity: 12, UnitRate: 450, TaxRatePercent: 18},
		{ID: "3", Description: "Stationery", TaxCode: "4820", Quantity: 3, UnitRate: 199.5, TaxRatePercent: 12},
	}
}

func TestComputeTotalsReference(t *testing.T) {
	items := []LineItem{{ID: "1", Description: "Web Development Services", Quantity: 1, UnitRate: 25000, TaxRatePercent: 18}}
	got := ComputeTotals(items, nil)
	if got.Subtotal != 25000 || got.TaxTotal != 4500 || got.GrandTotal != 29500 {
		t.Fatalf("totals = %+v", got)
	}
	if got.CGST != 2250 || got.SGST != 2250 {
		t.Fatalf("gst split = %v/%v, want 2250/2250", got.CGST, got.SGST)
	}

	withFee := ComputeTotals(items, &LateFeeSpec{RatePercent: 24, DaysLate: 30, Method: "SI"})
	if math.Round(withFee.LateFeeAmount) != 582 {
		t.Fatalf("late fee = %v, want ≈582", withFee.LateFeeAmount)
	}
	if math.Round(withFee.GrandTotal) != 30082 {
		t.Fatalf("grand total = %v, want ≈30082", withFee.GrandTotal)
	}
}

func TestComputeTotalsCompoundLateFee(t *testing.T) {
	items := sampleItems()
	si := ComputeTotals(items, &LateFeeSpec{RatePercent: 24, DaysLate: 45, Method: "SI"})
	ci := ComputeTotals(items, &LateFeeSpec{RatePercent: 24, DaysLate: 45, Method: "CI"})
	if ci.LateFeeAmount <= si.LateFeeAmount {
		t.Fatalf("daily compounding fee %v should exceed simple fee %v", ci.LateFeeAmount, si.LateFeeAmount)
	}
	// Zero days late disables the surcharge regardless of method.
	none := ComputeTotals(items, &LateFeeSpec{RatePercent: 24, DaysLate: 0, Method: "CI"})
	if none.LateFeeAmount != 0 {
		t.Fatalf("fee = %v with zero days late", none.LateFeeAmount)
	}
}

func TestComputeTotalsOrderInvariant(t *testing.T) {
	items := sampleItems()
	want := ComputeTotals(items, &LateFeeSpec{RatePercent: 18, DaysLate: 10, Method: "SI"})
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]LineItem, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := ComputeTotals(shuffled, &LateFeeSpec{RatePercent: 18, DaysLate: 10, Method: "SI"})
		if !almostEqual(got.Subtotal, want.Subtotal, 1e-9) ||
			!almostEqual(got.TaxTotal, want.TaxTotal, 1e-9) ||
			!almostEqual(got.GrandTotal, want.GrandTotal, 1e-9) {
			t.Fatalf("permutation changed totals: %+v vs %+v", got, want)
		}
	}
}

func TestGrandTotalIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(8)
		items := make([]LineItem, n)
		slabs := []float64{0, 5, 12, 18, 28}
		for i := range items {
			items[i] = LineItem{
				Quantity:       float64(1 + rng.Intn(20)),
				UnitRate:       rng.Float64() * 10000,
				TaxRatePercent: slabs[rng.Intn(len(slabs))],
			}
		}
		var fee *LateFeeSpec
		if trial%2 == 0 {
			fee = &LateFeeSpec{RatePercent: rng.Float64() * 36, DaysLate: rng.Intn(120), Method: "CI"}
		}
		got := ComputeTotals(items, fee)
		if !almostEqual(got.GrandTotal, got.Subtotal+got.TaxTotal+got.LateFeeAmount, 1e-9) {
			t.Fatalf("identity broken: %+v", got)
		}
		// Re-invocation with identical input is bit-identical.
		if again := ComputeTotals(items, fee); again != got {
			t.Fatalf("recompute differs: %+v vs %+v", again, got)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:        "0.00",
		29500:    "29500.00",
		581.9178: "581.92",
		0.005:    "0.01",
	}
	for in, want := range cases {
		if got := FormatMoney(in); got != want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", in, got, want)
		}
	}
}
