package finance

import "math"

// EMIResult carries the monthly installment together with its totals.
type EMIResult struct {
	EMI           float64 `json:"emi"`
	TotalInterest float64 `json:"totalInterest"`
	TotalPayment  float64 `json:"totalPayment"`
}

// ReducingBalanceEMI computes the standard annuity installment
// p*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate. A zero rate
// degenerates to an even split of the principal.
func ReducingBalanceEMI(principal, annualRatePct float64, months int) (EMIResult, error) {
	if err := checkCommon(principal, annualRatePct, float64(months)); err != nil {
		return EMIResult{}, err
	}
	n := float64(months)
	r := annualRatePct / 12 / 100
	var emi float64
	if r == 0 {
		emi = principal / n
	} else {
		factor := math.Pow(1+r, n)
		emi = principal * r * factor / (factor - 1)
	}
	total := emi * n
	return EMIResult{EMI: emi, TotalInterest: total - principal, TotalPayment: total}, nil
}

// FlatRateEMI charges interest on the original principal for the full term.
func FlatRateEMI(principal, annualRatePct, years float64) (EMIResult, error) {
	if err := checkCommon(principal, annualRatePct, years); err != nil {
		return EMIResult{}, err
	}
	interest := principal * annualRatePct / 100 * years
	months := years * 12
	return EMIResult{
		EMI:           (principal + interest) / months,
		TotalInterest: interest,
		TotalPayment:  principal + interest,
	}, nil
}
