package service

import (
	"github.com/dafibh/casaplan/casaplan-backend/internal/domain"
)

// DefaultWindowMonths is the historical summary window of 7 years.
const DefaultWindowMonths = 7 * 12

// ScheduleService generates amortization schedules and their life-of-loan
// aggregates
type ScheduleService struct{}

// NewScheduleService creates a new ScheduleService
func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

// Generate produces the month-by-month amortization schedule for the given
// terms. The balance for each month feeds the next month's payment, so the
// loop is strictly sequential. Generation stops after the month in which the
// balance reaches zero, or after the full term, whichever comes first; the
// early stop only shortens the schedule when something outside the annuity
// formula reduces the balance faster than scheduled.
func (s *ScheduleService) Generate(terms domain.LoanTerms) ([]domain.PeriodResult, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	schedule := make([]domain.PeriodResult, 0, terms.TermMonths)
	balance := terms.Principal

	for month := 1; month <= terms.TermMonths; month++ {
		monthsRemaining := terms.TermMonths - month + 1

		pp, err := ComputePeriodPayment(balance, monthsRemaining, terms.AnnualRatePct)
		if err != nil {
			return nil, err
		}

		balance -= pp.Principal
		schedule = append(schedule, domain.PeriodResult{
			Period:    month,
			Payment:   pp.Payment,
			Interest:  pp.Interest,
			Principal: pp.Principal,
			Balance:   balance,
		})

		if balance <= 0 {
			break
		}
	}

	return schedule, nil
}

// Summarize computes life-of-loan aggregates over a generated schedule.
// charges are fixed non-amortizing monthly costs supplied by the caller and
// enter TotalPaid only; they never touch the amortization math. windowMonths
// selects the leading sub-range for the window aggregates.
func (s *ScheduleService) Summarize(schedule []domain.PeriodResult, terms domain.LoanTerms, charges domain.MonthlyCharges, windowMonths int) (*domain.ScheduleSummary, error) {
	if terms.Principal <= 0 {
		return nil, domain.ErrPrincipalInvalid
	}
	if windowMonths < 1 || windowMonths > len(schedule) {
		return nil, domain.ErrWindowOutOfRange
	}
	if err := charges.Validate(); err != nil {
		return nil, err
	}

	var totalInterest, totalPayments float64
	for _, p := range schedule {
		totalInterest += p.Interest
		totalPayments += p.Payment
	}

	var windowInterest float64
	for _, p := range schedule[:windowMonths] {
		windowInterest += p.Interest
	}

	windowRatio := 0.0
	if totalInterest > 0 {
		windowRatio = windowInterest / totalInterest
	}

	return &domain.ScheduleSummary{
		TotalInterest:       totalInterest,
		TotalPaid:           totalPayments + charges.Total()*float64(terms.TermMonths),
		InterestToLoanRatio: totalInterest / terms.Principal,
		WindowMonths:        windowMonths,
		WindowInterest:      windowInterest,
		WindowToTotalRatio:  windowRatio,
		WindowEndBalance:    schedule[windowMonths-1].Balance,
	}, nil
}
