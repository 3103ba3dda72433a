package finance

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestSimpleInterestBasic(t *testing.T) {
	res, err := SimpleInterest(100000, 12, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.TotalInterest, 12000, 1e-9) {
		t.Fatalf("interest = %v, want 12000", res.TotalInterest)
	}
	if !almostEqual(res.TotalAmount, 112000, 1e-9) {
		t.Fatalf("amount = %v, want 112000", res.TotalAmount)
	}
	if len(res.Breakdown) != 1 {
		t.Fatalf("breakdown rows = %d, want 1", len(res.Breakdown))
	}
}

func TestCompoundBreakdownSumsToTotal(t *testing.T) {
	res, err := CompoundInterest(250000, 9.5, 4, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sum float64
	for _, row := range res.Breakdown {
		sum += row.Interest
	}
	if !almostEqual(sum, res.TotalInterest, 1e-6) {
		t.Fatalf("breakdown interest sum %v != total interest %v", sum, res.TotalInterest)
	}
	last := res.Breakdown[len(res.Breakdown)-1]
	if !almostEqual(last.Closing, res.TotalAmount, 1e-6) {
		t.Fatalf("last closing %v != total amount %v", last.Closing, res.TotalAmount)
	}
}

// Fractional terms get a partial final row so the sum guarantee still holds.
func TestCompoundBreakdownFractionalYears(t *testing.T) {
	res, err := CompoundInterest(10000, 8, 1, 2.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Breakdown) != 3 {
		t.Fatalf("breakdown rows = %d, want 2 full years plus a partial row", len(res.Breakdown))
	}
	var sum float64
	for _, row := range res.Breakdown {
		sum += row.Interest
	}
	if !almostEqual(sum, res.TotalInterest, 1e-6) {
		t.Fatalf("breakdown interest sum %v != total interest %v", sum, res.TotalInterest)
	}
	if !almostEqual(res.Breakdown[2].Closing, res.TotalAmount, 1e-6) {
		t.Fatalf("partial row closing %v != total amount %v", res.Breakdown[2].Closing, res.TotalAmount)
	}
}

// Compounding never yields less than simple interest for the same nominal
// rate over more than one period.
func TestCompoundAtLeastSimple(t *testing.T) {
	cases := []struct{ p, r, y float64 }{
		{100000, 12, 2},
		{1, 0.1, 1.5},
		{5000000, 50, 30},
		{42000, 7.25, 10},
	}
	for _, c := range cases {
		si, err := SimpleInterest(c.p, c.r, c.y)
		if err != nil {
			t.Fatalf("si(%v): %v", c, err)
		}
		ci, err := CompoundInterest(c.p, c.r, 1, c.y)
		if err != nil {
			t.Fatalf("ci(%v): %v", c, err)
		}
		if ci.TotalInterest < si.TotalInterest-1e-9 {
			t.Fatalf("ci %v < si %v for %+v", ci.TotalInterest, si.TotalInterest, c)
		}
	}
}

func TestInformalInterestLinear(t *testing.T) {
	// ₹2 per 100 per month over 18 months on 50k: 50000*2*18/100 = 18000.
	res, err := InformalInterest(50000, 2, 18, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.TotalInterest, 18000, 1e-9) {
		t.Fatalf("interest = %v, want 18000", res.TotalInterest)
	}
}

func TestInformalInterestCompounded(t *testing.T) {
	// 12-month cycle, 30 months: two full cycles at 24% then 6 months simple.
	res, err := InformalInterest(100000, 2, 30, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	amount := 100000 * math.Pow(1.24, 2)
	amount += amount * 2 * 6 / 100
	if !almostEqual(res.TotalAmount, amount, 1e-6) {
		t.Fatalf("amount = %v, want %v", res.TotalAmount, amount)
	}
	if len(res.Breakdown) != 2 {
		t.Fatalf("cycle rows = %d, want 2", len(res.Breakdown))
	}
}

func TestMonthsBetween(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := MonthsBetween(start, start.AddDate(0, 0, 365)); !almostEqual(got, 365/30.44, 1e-9) {
		t.Fatalf("months = %v", got)
	}
	if got := MonthsBetween(start, start.AddDate(0, 0, -10)); got != 0 {
		t.Fatalf("negative range should clamp to 0, got %v", got)
	}
}

func TestInvalidInputsRejected(t *testing.T) {
	if _, err := SimpleInterest(-1, 10, 1); err == nil {
		t.Fatal("negative principal accepted")
	}
	if _, err := CompoundInterest(1000, 10, 0, 1); err == nil {
		t.Fatal("zero compounding frequency accepted")
	}
	if _, err := CompoundInterest(1000, math.NaN(), 1, 1); err == nil {
		t.Fatal("NaN rate accepted")
	}
	if _, err := InformalInterest(1000, 2, 0, 0); err == nil {
		t.Fatal("zero duration accepted")
	}
	if _, err := ReducingBalanceEMI(1000, math.Inf(1), 12); err == nil {
		t.Fatal("infinite rate accepted")
	}
	if _, err := SIPFutureValue(500, 12, -1); err == nil {
		t.Fatal("negative tenure accepted")
	}
}
