package finance

import (
	"errors"
	"math"
	"strconv"
	"time"
)

// ErrInvalidInput is returned for inputs outside the domain of a formula
// (negative principal, non-positive duration, non-finite or negative rate).
// Callers substitute a zero result and surface a validation hint instead of
// propagating a failure into the UI layer.
var ErrInvalidInput = errors.New("finance: invalid input")

// BreakdownRow is one line of the year-wise (or cycle-wise) growth statement.
type BreakdownRow struct {
	Period   string  `json:"period"`
	Opening  float64 `json:"opening"`
	Interest float64 `json:"interest"`
	Closing  float64 `json:"closing"`
}

// Result is the common output shape of the interest calculators.
type Result struct {
	Principal     float64        `json:"principal"`
	TotalInterest float64        `json:"totalInterest"`
	TotalAmount   float64        `json:"totalAmount"`
	Breakdown     []BreakdownRow `json:"breakdown,omitempty"`
}

func checkCommon(principal, rate, duration float64) error {
	if principal < 0 || duration <= 0 {
		return ErrInvalidInput
	}
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return ErrInvalidInput
	}
	if math.IsNaN(principal) || math.IsInf(principal, 0) || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return ErrInvalidInput
	}
	return nil
}

// SimpleInterest computes p*r*t/100 with a linear year-wise breakdown.
func SimpleInterest(principal, annualRatePct, years float64) (Result, error) {
	if err := checkCommon(principal, annualRatePct, years); err != nil {
		return Result{}, err
	}
	interest := principal * annualRatePct * years / 100
	res := Result{Principal: principal, TotalInterest: interest, TotalAmount: principal + interest}
	wholeYears := int(years)
	if wholeYears >= 1 {
		yearly := interest / years
		for y := 1; y <= wholeYears; y++ {
			res.Breakdown = append(res.Breakdown, BreakdownRow{
				Period:   yearLabel(y),
				Opening:  principal + yearly*float64(y-1),
				Interest: yearly,
				Closing:  principal + yearly*float64(y),
			})
		}
	}
	return res, nil
}

// CompoundInterest computes p*(1+(r/100)/m)^(m*t).
//
// The breakdown is produced by evaluating the same closed form at years 1..N
// and differencing consecutive amounts, so the sum of the yearly interest rows
// equals the total interest exactly instead of drifting against an
// independent per-year formula.
func CompoundInterest(principal, annualRatePct float64, compPerYear int, years float64) (Result, error) {
	if err := checkCommon(principal, annualRatePct, years); err != nil {
		return Result{}, err
	}
	if compPerYear <= 0 {
		return Result{}, ErrInvalidInput
	}
	m := float64(compPerYear)
	amount := principal * math.Pow(1+(annualRatePct/100)/m, m*years)
	res := Result{Principal: principal, TotalInterest: amount - principal, TotalAmount: amount}
	opening := principal
	whole := int(years)
	for y := 1; y <= whole; y++ {
		closing := principal * math.Pow(1+(annualRatePct/100)/m, m*float64(y))
		res.Breakdown = append(res.Breakdown, BreakdownRow{
			Period:   yearLabel(y),
			Opening:  opening,
			Interest: closing - opening,
			Closing:  closing,
		})
		opening = closing
	}
	// A fractional final year gets its own row, keeping the row sum equal to
	// the total interest.
	if years > float64(whole) {
		res.Breakdown = append(res.Breakdown, BreakdownRow{
			Period:   yearLabel(whole + 1),
			Opening:  opening,
			Interest: amount - opening,
			Closing:  amount,
		})
	}
	return res, nil
}

// InformalInterest implements the "desi" lending model: the rate is rupees per
// hundred per month. With cycleMonths == 0 interest accrues linearly over the
// elapsed months. Otherwise the principal compounds once per cycle at
// rate*cycleMonths/100 for floor(months/cycleMonths) full cycles, and the
// remainder fraction of a cycle accrues simple interest on the compounded
// amount.
func InformalInterest(principal, ratePerHundredPerMonth, months float64, cycleMonths int) (Result, error) {
	if err := checkCommon(principal, ratePerHundredPerMonth, months); err != nil {
		return Result{}, err
	}
	if cycleMonths < 0 {
		return Result{}, ErrInvalidInput
	}
	res := Result{Principal: principal}
	if cycleMonths == 0 {
		res.TotalInterest = principal * ratePerHundredPerMonth * months / 100
		res.TotalAmount = principal + res.TotalInterest
		for y := 1; y <= max(1, int(months/12)); y++ {
			cum := principal * ratePerHundredPerMonth * math.Min(float64(y)*12, months) / 100
			res.Breakdown = append(res.Breakdown, BreakdownRow{
				Period:   yearLabel(y),
				Opening:  principal,
				Interest: cum,
				Closing:  principal + cum,
			})
		}
		return res, nil
	}
	fullCycles := int(months / float64(cycleMonths))
	remainder := math.Mod(months, float64(cycleMonths))
	cycleRate := ratePerHundredPerMonth * float64(cycleMonths) / 100
	amount := principal * math.Pow(1+cycleRate, float64(fullCycles))
	amount += amount * ratePerHundredPerMonth * remainder / 100
	res.TotalAmount = amount
	res.TotalInterest = amount - principal
	running := principal
	for c := 1; c <= max(1, fullCycles); c++ {
		ci := running * cycleRate
		res.Breakdown = append(res.Breakdown, BreakdownRow{
			Period:   cycleLabel(c),
			Opening:  running,
			Interest: ci,
			Closing:  running + ci,
		})
		running += ci
	}
	return res, nil
}

// MonthsBetween converts a date range into fractional months using the
// average month length of 30.44 days. Negative ranges clamp to zero.
func MonthsBetween(start, end time.Time) float64 {
	days := end.Sub(start).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Floor(days) / 30.44
}

func yearLabel(y int) string  { return "Year " + strconv.Itoa(y) }
func cycleLabel(c int) string { return "Cycle " + strconv.Itoa(c) }
