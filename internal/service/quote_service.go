package service

import (
	"github.com/dafibh/casaplan/casaplan-backend/internal/domain"
)

// QuoteService assembles full mortgage quotes: purchase breakdown, estimated
// carrying costs, amortization schedule, and life-of-loan summary
type QuoteService struct {
	scheduleService *ScheduleService

	propertyTaxRatePct float64
	windowMonths       int
}

// NewQuoteService creates a new QuoteService. propertyTaxRatePct is the
// annual property tax estimate as a percentage of home value; windowMonths is
// the default summary window.
func NewQuoteService(scheduleService *ScheduleService, propertyTaxRatePct float64, windowMonths int) *QuoteService {
	return &QuoteService{
		scheduleService:    scheduleService,
		propertyTaxRatePct: propertyTaxRatePct,
		windowMonths:       windowMonths,
	}
}

// QuoteInput contains input for building a quote
type QuoteInput struct {
	HomeValue      float64
	DownPaymentPct float64
	TermYears      int
	AnnualRatePct  float64
	MonthlyHOA     float64

	// WindowMonths overrides the default summary window when positive
	WindowMonths int
}

// BuildQuote derives the loan from the purchase parameters, generates the
// schedule, and aggregates the life-of-loan figures.
//
// Monthly property tax is estimated from the configured annual rate on the
// home value; monthly insurance uses the reference rule of one tenth of the
// property tax.
func (s *QuoteService) BuildQuote(input QuoteInput) (*domain.Quote, error) {
	if input.HomeValue <= 0 {
		return nil, domain.ErrHomeValueInvalid
	}
	if input.DownPaymentPct < 0 || input.DownPaymentPct >= 100 {
		return nil, domain.ErrDownPaymentInvalid
	}
	if input.MonthlyHOA < 0 {
		return nil, domain.ErrChargesInvalid
	}

	downPayment := input.HomeValue * input.DownPaymentPct / 100
	terms := domain.LoanTerms{
		Principal:     input.HomeValue - downPayment,
		AnnualRatePct: input.AnnualRatePct,
		TermMonths:    input.TermYears * 12,
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	monthlyPropertyTax := input.HomeValue * s.propertyTaxRatePct / 100 / 12
	charges := domain.MonthlyCharges{
		HOA:           input.MonthlyHOA,
		HomeInsurance: monthlyPropertyTax / 10,
		PropertyTax:   monthlyPropertyTax,
	}

	schedule, err := s.scheduleService.Generate(terms)
	if err != nil {
		return nil, err
	}

	windowMonths := s.windowMonths
	if input.WindowMonths > 0 {
		windowMonths = input.WindowMonths
	}

	summary, err := s.scheduleService.Summarize(schedule, terms, charges, windowMonths)
	if err != nil {
		return nil, err
	}

	months := float64(terms.TermMonths)
	return &domain.Quote{
		Purchase: domain.PurchaseBreakdown{
			HomeValue:   input.HomeValue,
			DownPayment: downPayment,
			LoanAmount:  terms.Principal,
		},
		Terms:             terms,
		Charges:           charges,
		FirstMonthPayment: schedule[0].Payment + charges.Total(),
		TotalPropertyTax:  charges.PropertyTax * months,
		TotalInsurance:    charges.HomeInsurance * months,
		TotalHOA:          charges.HOA * months,
		TotalOutlay:       downPayment + summary.TotalPaid,
		Summary:           *summary,
		Schedule:          schedule,
	}, nil
}
