package service

import (
	"math"
	"testing"

	"github.com/dafibh/casaplan/casaplan-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FullTermLength(t *testing.T) {
	s := NewScheduleService()

	schedule, err := s.Generate(domain.LoanTerms{Principal: 500000, AnnualRatePct: 6.0, TermMonths: 360})
	require.NoError(t, err)
	require.Len(t, schedule, 360)

	assert.Equal(t, 1, schedule[0].Period)
	assert.Equal(t, 360, schedule[359].Period)
}

func TestGenerate_BalanceRecurrence(t *testing.T) {
	s := NewScheduleService()
	terms := domain.LoanTerms{Principal: 300000, AnnualRatePct: 4.5, TermMonths: 180}

	schedule, err := s.Generate(terms)
	require.NoError(t, err)

	prev := terms.Principal
	for _, p := range schedule {
		assert.InDelta(t, prev-p.Principal, p.Balance, 1e-6,
			"month %d: balance must equal previous balance minus principal", p.Period)
		assert.InEpsilon(t, p.Interest+p.Principal, p.Payment, 1e-6,
			"month %d: payment must equal interest plus principal", p.Period)
		assert.LessOrEqual(t, p.Balance, prev, "balance must never increase")
		prev = p.Balance
	}

	// A standard fixed annuity retires the loan in exactly the final month.
	assert.InDelta(t, 0, schedule[len(schedule)-1].Balance, 1e-6)
}

func TestGenerate_ZeroRate(t *testing.T) {
	s := NewScheduleService()

	schedule, err := s.Generate(domain.LoanTerms{Principal: 100000, AnnualRatePct: 0, TermMonths: 12})
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	expected := 100000.0 / 12
	for _, p := range schedule {
		assert.Equal(t, 0.0, p.Interest, "month %d", p.Period)
		assert.InDelta(t, expected, p.Payment, 1e-9, "month %d", p.Period)
	}
	assert.InDelta(t, 0, schedule[11].Balance, 1e-6)
}

func TestGenerate_Idempotent(t *testing.T) {
	s := NewScheduleService()
	terms := domain.LoanTerms{Principal: 425000, AnnualRatePct: 5.25, TermMonths: 240}

	first, err := s.Generate(terms)
	require.NoError(t, err)
	second, err := s.Generate(terms)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i], second[i], "month %d must be bit-identical", i+1)
	}
}

func TestGenerate_InvalidTerms(t *testing.T) {
	s := NewScheduleService()

	_, err := s.Generate(domain.LoanTerms{Principal: 0, AnnualRatePct: 5, TermMonths: 12})
	assert.ErrorIs(t, err, domain.ErrPrincipalInvalid)

	_, err = s.Generate(domain.LoanTerms{Principal: 1000, AnnualRatePct: -1, TermMonths: 12})
	assert.ErrorIs(t, err, domain.ErrRateInvalid)

	_, err = s.Generate(domain.LoanTerms{Principal: 1000, AnnualRatePct: 5, TermMonths: 0})
	assert.ErrorIs(t, err, domain.ErrTermInvalid)

	_, err = s.Generate(domain.LoanTerms{Principal: 1000, AnnualRatePct: 5, TermMonths: domain.MaxTermMonths + 1})
	assert.ErrorIs(t, err, domain.ErrTermTooLong)
}

func TestSummarize_TotalsMatchSchedule(t *testing.T) {
	s := NewScheduleService()
	terms := domain.LoanTerms{Principal: 300000, AnnualRatePct: 4.5, TermMonths: 180}

	schedule, err := s.Generate(terms)
	require.NoError(t, err)

	summary, err := s.Summarize(schedule, terms, domain.MonthlyCharges{}, 84)
	require.NoError(t, err)

	// Same accumulation order as the summary pass, so exact equality holds.
	var totalInterest float64
	for _, p := range schedule {
		totalInterest += p.Interest
	}
	assert.Equal(t, totalInterest, summary.TotalInterest)

	assert.LessOrEqual(t, summary.WindowInterest, summary.TotalInterest)
	assert.GreaterOrEqual(t, summary.WindowToTotalRatio, 0.0)
	assert.LessOrEqual(t, summary.WindowToTotalRatio, 1.0)
	assert.Equal(t, schedule[83].Balance, summary.WindowEndBalance)
	assert.Equal(t, 84, summary.WindowMonths)
	assert.InDelta(t, totalInterest/terms.Principal, summary.InterestToLoanRatio, 1e-12)
}

func TestSummarize_ChargesEnterTotalPaidOnly(t *testing.T) {
	s := NewScheduleService()
	terms := domain.LoanTerms{Principal: 100000, AnnualRatePct: 0, TermMonths: 12}

	schedule, err := s.Generate(terms)
	require.NoError(t, err)

	charges := domain.MonthlyCharges{HOA: 100, HomeInsurance: 50, PropertyTax: 250}
	summary, err := s.Summarize(schedule, terms, charges, 12)
	require.NoError(t, err)

	var totalPayments float64
	for _, p := range schedule {
		totalPayments += p.Payment
	}
	assert.InDelta(t, totalPayments+400*12, summary.TotalPaid, 1e-6)
	assert.Equal(t, 0.0, summary.TotalInterest)
	assert.Equal(t, 0.0, summary.WindowToTotalRatio)
}

func TestSummarize_WindowOutOfRange(t *testing.T) {
	s := NewScheduleService()
	terms := domain.LoanTerms{Principal: 100000, AnnualRatePct: 3.0, TermMonths: 60}

	schedule, err := s.Generate(terms)
	require.NoError(t, err)

	_, err = s.Summarize(schedule, terms, domain.MonthlyCharges{}, 61)
	assert.ErrorIs(t, err, domain.ErrWindowOutOfRange)

	_, err = s.Summarize(schedule, terms, domain.MonthlyCharges{}, 0)
	assert.ErrorIs(t, err, domain.ErrWindowOutOfRange)
}

func TestSummarize_NegativeCharges(t *testing.T) {
	s := NewScheduleService()
	terms := domain.LoanTerms{Principal: 100000, AnnualRatePct: 3.0, TermMonths: 60}

	schedule, err := s.Generate(terms)
	require.NoError(t, err)

	_, err = s.Summarize(schedule, terms, domain.MonthlyCharges{HOA: -1}, 12)
	assert.ErrorIs(t, err, domain.ErrChargesInvalid)
}

func TestGenerate_InterestDeclinesOverLife(t *testing.T) {
	s := NewScheduleService()

	schedule, err := s.Generate(domain.LoanTerms{Principal: 500000, AnnualRatePct: 6.0, TermMonths: 360})
	require.NoError(t, err)

	for i := 1; i < len(schedule); i++ {
		if schedule[i].Interest >= schedule[i-1].Interest {
			t.Fatalf("month %d: interest %.6f did not decline from %.6f",
				schedule[i].Period, schedule[i].Interest, schedule[i-1].Interest)
		}
	}

	// Payment stays fixed across the whole schedule.
	first := schedule[0].Payment
	for _, p := range schedule {
		if math.Abs(p.Payment-first) > 1e-6 {
			t.Fatalf("month %d: payment %.6f drifted from %.6f", p.Period, p.Payment, first)
		}
	}
}
