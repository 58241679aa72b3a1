package domain

import "errors"

var (
	ErrPrincipalInvalid   = errors.New("loan principal must be positive")
	ErrRateInvalid        = errors.New("interest rate must not be negative")
	ErrTermInvalid        = errors.New("loan term must be at least 1 month")
	ErrTermTooLong        = errors.New("loan term exceeds maximum supported length")
	ErrBalanceInvalid     = errors.New("outstanding balance must not be negative")
	ErrWindowOutOfRange   = errors.New("summary window exceeds schedule length")
	ErrChargesInvalid     = errors.New("monthly charges must not be negative")
	ErrHomeValueInvalid   = errors.New("home value must be positive")
	ErrDownPaymentInvalid = errors.New("down payment percentage must be between 0 and 100")
)

// LoanTerms describes a fixed-rate, fully-amortizing loan. Values are set
// once from validated input and never mutated.
type LoanTerms struct {
	Principal     float64 `json:"principal"`
	AnnualRatePct float64 `json:"annualRatePct"`
	TermMonths    int     `json:"termMonths"`
}

func (t LoanTerms) Validate() error {
	if t.Principal <= 0 {
		return ErrPrincipalInvalid
	}
	if t.AnnualRatePct < 0 {
		return ErrRateInvalid
	}
	if t.TermMonths < 1 {
		return ErrTermInvalid
	}
	if t.TermMonths > MaxTermMonths {
		return ErrTermTooLong
	}
	return nil
}

// PeriodResult is one row of the amortization schedule. Balance is the
// outstanding principal after this period's payment.
type PeriodResult struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// ScheduleSummary aggregates a full schedule. The window fields cover the
// first WindowMonths periods of the loan.
type ScheduleSummary struct {
	TotalInterest       float64 `json:"totalInterest"`
	TotalPaid           float64 `json:"totalPaid"`
	InterestToLoanRatio float64 `json:"interestToLoanRatio"`
	WindowMonths        int     `json:"windowMonths"`
	WindowInterest      float64 `json:"windowInterest"`
	WindowToTotalRatio  float64 `json:"windowToTotalRatio"`
	WindowEndBalance    float64 `json:"windowEndBalance"`
}

// MonthlyCharges are fixed non-amortizing monthly costs carried alongside the
// loan payment. The schedule math treats them as an opaque additive input.
type MonthlyCharges struct {
	HOA           float64 `json:"hoa"`
	HomeInsurance float64 `json:"homeInsurance"`
	PropertyTax   float64 `json:"propertyTax"`
}

func (c MonthlyCharges) Validate() error {
	if c.HOA < 0 || c.HomeInsurance < 0 || c.PropertyTax < 0 {
		return ErrChargesInvalid
	}
	return nil
}

// Total returns the combined fixed charges for one month.
func (c MonthlyCharges) Total() float64 {
	return c.HOA + c.HomeInsurance + c.PropertyTax
}

// PurchaseBreakdown splits a home purchase into its financing components.
type PurchaseBreakdown struct {
	HomeValue   float64 `json:"homeValue"`
	DownPayment float64 `json:"downPayment"`
	LoanAmount  float64 `json:"loanAmount"`
}

// Quote is the full result handed to renderers: the purchase breakdown, the
// per-month schedule, and the life-of-loan aggregates.
type Quote struct {
	Purchase          PurchaseBreakdown `json:"purchase"`
	Terms             LoanTerms         `json:"terms"`
	Charges           MonthlyCharges    `json:"charges"`
	FirstMonthPayment float64           `json:"firstMonthPayment"`
	TotalPropertyTax  float64           `json:"totalPropertyTax"`
	TotalInsurance    float64           `json:"totalInsurance"`
	TotalHOA          float64           `json:"totalHoa"`
	TotalOutlay       float64           `json:"totalOutlay"`
	Summary           ScheduleSummary   `json:"summary"`
	Schedule          []PeriodResult    `json:"schedule"`
}
