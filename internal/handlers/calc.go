package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/protools/toolbox/internal/finance"
	"github.com/protools/toolbox/internal/httpx"
	"github.com/protools/toolbox/internal/invoice"
)

// CalcHandler exposes the pure amortization functions. Out-of-range but
// parseable input never 500s: the result is zeroed and a warning returned so
// the client can show an inline hint.
type CalcHandler struct{}

func NewCalcHandler() *CalcHandler { return &CalcHandler{} }

type interestReq struct {
	Type           string  `json:"type"` // SI, CI or DESI
	Principal      float64 `json:"principal"`
	AnnualRatePct  float64 `json:"annualRatePercent"`
	RateIsMonthly  bool    `json:"rateIsMonthly"`
	Years          float64 `json:"years"`
	Compoundings   int     `json:"compoundingsPerYear"`
	RatePerHundred float64 `json:"ratePerHundredPerMonth"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	CycleMonths    int     `json:"cycleMonths"`
}

type calcResponse struct {
	Result   any      `json:"result"`
	Warnings []string `json:"warnings,omitempty"`
}

// Interest: POST /calc/interest
func (h *CalcHandler) Interest(w http.ResponseWriter, r *http.Request) {
	var req interestReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	rate := req.AnnualRatePct
	if req.RateIsMonthly {
		rate *= 12
	}
	var (
		res finance.Result
		err error
	)
	switch req.Type {
	case "CI":
		comp := req.Compoundings
		if comp == 0 {
			comp = 1
		}
		res, err = finance.CompoundInterest(req.Principal, rate, comp, req.Years)
	case "DESI":
		months, perr := desiMonths(req)
		if perr != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_dates", nil)
			return
		}
		res, err = finance.InformalInterest(req.Principal, req.RatePerHundred, months, req.CycleMonths)
	default:
		res, err = finance.SimpleInterest(req.Principal, rate, req.Years)
	}
	writeCalc(w, res, err)
}

func desiMonths(req interestReq) (float64, error) {
	if req.StartDate == "" && req.EndDate == "" {
		return req.Years * 12, nil
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return 0, err
	}
	return finance.MonthsBetween(start, end), nil
}

type emiReq struct {
	Method        string  `json:"method"` // reducing or flat
	Principal     float64 `json:"principal"`
	AnnualRatePct float64 `json:"annualRatePercent"`
	Years         float64 `json:"years"`
}

// EMI: POST /calc/emi
func (h *CalcHandler) EMI(w http.ResponseWriter, r *http.Request) {
	var req emiReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	var (
		res finance.EMIResult
		err error
	)
	if req.Method == "flat" {
		res, err = finance.FlatRateEMI(req.Principal, req.AnnualRatePct, req.Years)
	} else {
		res, err = finance.ReducingBalanceEMI(req.Principal, req.AnnualRatePct, int(req.Years*12))
	}
	writeCalc(w, res, err)
}

type sipReq struct {
	Monthly       float64 `json:"monthlyInvestment"`
	AnnualRatePct float64 `json:"annualRatePercent"`
	Years         float64 `json:"years"`
}

// SIP: POST /calc/sip
func (h *CalcHandler) SIP(w http.ResponseWriter, r *http.Request) {
	var req sipReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	res, err := finance.SIPFutureValue(req.Monthly, req.AnnualRatePct, req.Years)
	writeCalc(w, res, err)
}

type totalsReq struct {
	Items   []invoice.LineItem   `json:"items"`
	LateFee *invoice.LateFeeSpec `json:"lateFee,omitempty"`
}

// Totals handles POST /calc/totals, the line-item tax model without
// persistence.
func (h *CalcHandler) Totals(w http.ResponseWriter, r *http.Request) {
	var req totalsReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	totals := invoice.ComputeTotals(req.Items, req.LateFee)
	var warnings []string
	for _, fe := range invoice.Validate(invoice.Draft{BuyerName: "-", Items: req.Items}) {
		warnings = append(warnings, fe.Field+": "+fe.Message)
	}
	httpx.JSON(w, http.StatusOK, calcResponse{Result: totals, Warnings: warnings})
}

// writeCalc maps domain validation failures to a zero result plus warning,
// per the propagation policy: domain math never raises into the UI.
func writeCalc(w http.ResponseWriter, res any, err error) {
	if err != nil {
		if errors.Is(err, finance.ErrInvalidInput) {
			httpx.JSON(w, http.StatusOK, calcResponse{Result: res, Warnings: []string{"inputs out of range; result zeroed"}})
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "calculation_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, calcResponse{Result: res})
}
