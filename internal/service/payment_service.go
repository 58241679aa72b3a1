package service

import (
	"math"

	"github.com/dafibh/casaplan/casaplan-backend/internal/domain"
)

// PeriodPayment is the interest/principal split of one month's payment.
type PeriodPayment struct {
	Payment   float64
	Interest  float64
	Principal float64
}

// MonthlyRate converts an annual percentage rate to a periodic rate.
func MonthlyRate(annualRatePct float64) float64 {
	return annualRatePct / (12 * 100)
}

// ComputePeriodPayment calculates the fixed payment due on an outstanding
// balance over the remaining months, and its interest/principal split for the
// current month. Pure function of its inputs; no rounding is applied here,
// rounding is left to presentation.
//
// A zero rate is handled explicitly: the annuity formula divides by
// 1-(1+r)^-n, which is zero when r is zero.
func ComputePeriodPayment(balance float64, monthsRemaining int, annualRatePct float64) (PeriodPayment, error) {
	if balance < 0 || math.IsNaN(balance) || math.IsInf(balance, 0) {
		return PeriodPayment{}, domain.ErrBalanceInvalid
	}
	if monthsRemaining < 1 {
		return PeriodPayment{}, domain.ErrTermInvalid
	}
	if annualRatePct < 0 || math.IsNaN(annualRatePct) || math.IsInf(annualRatePct, 0) {
		return PeriodPayment{}, domain.ErrRateInvalid
	}

	r := MonthlyRate(annualRatePct)
	if r == 0 {
		payment := balance / float64(monthsRemaining)
		return PeriodPayment{Payment: payment, Interest: 0, Principal: payment}, nil
	}

	payment := balance * r / (1 - math.Pow(1+r, -float64(monthsRemaining)))
	interest := r * balance

	return PeriodPayment{
		Payment:   payment,
		Interest:  interest,
		Principal: payment - interest,
	}, nil
}
