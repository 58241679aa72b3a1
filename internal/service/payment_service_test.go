package service

import (
	"errors"
	"math"
	"testing"

	"github.com/dafibh/casaplan/casaplan-backend/internal/domain"
)

func TestComputePeriodPayment_FirstMonthOfThirtyYearLoan(t *testing.T) {
	// $500k over 360 months at 6.0%
	pp, err := ComputePeriodPayment(500000, 360, 6.0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if math.Abs(pp.Payment-2997.75) > 0.01 {
		t.Errorf("Expected payment ~2997.75, got %.4f", pp.Payment)
	}
	if math.Abs(pp.Interest-2500.00) > 0.01 {
		t.Errorf("Expected interest ~2500.00, got %.4f", pp.Interest)
	}
	if math.Abs(pp.Principal-497.75) > 0.01 {
		t.Errorf("Expected principal ~497.75, got %.4f", pp.Principal)
	}
}

func TestComputePeriodPayment_SplitAddsUp(t *testing.T) {
	pp, err := ComputePeriodPayment(300000, 180, 4.5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if math.Abs(pp.Payment-(pp.Interest+pp.Principal)) > 1e-6*pp.Payment {
		t.Errorf("Expected payment = interest + principal, got %.10f vs %.10f",
			pp.Payment, pp.Interest+pp.Principal)
	}
}

func TestComputePeriodPayment_ZeroRate(t *testing.T) {
	// 0% must bypass the annuity formula, which would divide by zero
	pp, err := ComputePeriodPayment(100000, 12, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := 100000.0 / 12
	if pp.Payment != expected {
		t.Errorf("Expected payment %.6f, got %.6f", expected, pp.Payment)
	}
	if pp.Interest != 0 {
		t.Errorf("Expected zero interest, got %.6f", pp.Interest)
	}
	if pp.Principal != expected {
		t.Errorf("Expected principal %.6f, got %.6f", expected, pp.Principal)
	}
}

func TestComputePeriodPayment_ZeroBalance(t *testing.T) {
	pp, err := ComputePeriodPayment(0, 12, 5.0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pp.Payment != 0 {
		t.Errorf("Expected zero payment on zero balance, got %.6f", pp.Payment)
	}
}

func TestComputePeriodPayment_NegativeBalance(t *testing.T) {
	_, err := ComputePeriodPayment(-1, 12, 5.0)
	if !errors.Is(err, domain.ErrBalanceInvalid) {
		t.Errorf("Expected ErrBalanceInvalid, got %v", err)
	}
}

func TestComputePeriodPayment_NegativeRate(t *testing.T) {
	_, err := ComputePeriodPayment(1000, 12, -0.5)
	if !errors.Is(err, domain.ErrRateInvalid) {
		t.Errorf("Expected ErrRateInvalid, got %v", err)
	}
}

func TestComputePeriodPayment_ZeroMonths(t *testing.T) {
	_, err := ComputePeriodPayment(1000, 0, 5.0)
	if !errors.Is(err, domain.ErrTermInvalid) {
		t.Errorf("Expected ErrTermInvalid, got %v", err)
	}
}

func TestComputePeriodPayment_NonFiniteInputs(t *testing.T) {
	if _, err := ComputePeriodPayment(math.NaN(), 12, 5.0); err == nil {
		t.Error("Expected error for NaN balance")
	}
	if _, err := ComputePeriodPayment(1000, 12, math.Inf(1)); err == nil {
		t.Error("Expected error for infinite rate")
	}
}

func TestMonthlyRate(t *testing.T) {
	if got := MonthlyRate(6.0); got != 0.005 {
		t.Errorf("Expected 0.005, got %v", got)
	}
	if got := MonthlyRate(0); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
}
