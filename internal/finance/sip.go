package finance

import "math"

// SIPResult summarises a systematic investment plan projection.
type SIPResult struct {
	TotalInvested float64 `json:"totalInvested"`
	EstReturns    float64 `json:"estReturns"`
	FutureValue   float64 `json:"futureValue"`
}

// SIPFutureValue projects monthly contributions at an expected annual return
// using the annuity-due form m*((1+i)^n - 1)/i*(1+i), i = r/12/100.
func SIPFutureValue(monthly, annualRatePct, years float64) (SIPResult, error) {
	if err := checkCommon(monthly, annualRatePct, years); err != nil {
		return SIPResult{}, err
	}
	n := years * 12
	i := annualRatePct / 100 / 12
	invested := monthly * n
	fv := invested
	if i > 0 {
		fv = monthly * ((math.Pow(1+i, n) - 1) / i) * (1 + i)
	}
	return SIPResult{TotalInvested: invested, EstReturns: fv - invested, FutureValue: fv}, nil
}
