package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/dafibh/casaplan/casaplan-backend/internal/domain"
	"github.com/dafibh/casaplan/casaplan-backend/internal/repository/storage"
	"github.com/dafibh/casaplan/casaplan-backend/internal/report"
	"github.com/dafibh/casaplan/casaplan-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// QuoteHandler handles mortgage quote HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
	reportStore  storage.ReportStore
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *service.QuoteService, reportStore storage.ReportStore) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		reportStore:  reportStore,
	}
}

// CreateQuoteRequest represents the create quote request body
type CreateQuoteRequest struct {
	HomeValue       float64 `json:"homeValue"`
	DownPaymentPct  float64 `json:"downPaymentPct"`
	TermYears       int     `json:"termYears"`
	InterestRatePct float64 `json:"interestRatePct"`
	MonthlyHOA      float64 `json:"monthlyHoa"`
	WindowYears     int     `json:"windowYears,omitempty"` // Optional: overrides the configured summary window
}

// PeriodResponse represents one schedule row in API responses
type PeriodResponse struct {
	Period    int    `json:"period"`
	Payment   string `json:"payment"`
	Interest  string `json:"interest"`
	Principal string `json:"principal"`
	Balance   string `json:"balance"`
}

// SummaryResponse represents the life-of-loan aggregates in API responses
type SummaryResponse struct {
	TotalInterest       string  `json:"totalInterest"`
	TotalPaid           string  `json:"totalPaid"`
	InterestToLoanRatio float64 `json:"interestToLoanRatio"`
	WindowMonths        int     `json:"windowMonths"`
	WindowInterest      string  `json:"windowInterest"`
	WindowToTotalRatio  float64 `json:"windowToTotalRatio"`
	WindowEndBalance    string  `json:"windowEndBalance"`
}

// QuoteResponse represents a full quote in API responses
type QuoteResponse struct {
	HomeValue          string           `json:"homeValue"`
	DownPayment        string           `json:"downPayment"`
	LoanAmount         string           `json:"loanAmount"`
	TermMonths         int              `json:"termMonths"`
	InterestRatePct    float64          `json:"interestRatePct"`
	MonthlyHOA         string           `json:"monthlyHoa"`
	MonthlyInsurance   string           `json:"monthlyInsurance"`
	MonthlyPropertyTax string           `json:"monthlyPropertyTax"`
	FirstMonthPayment  string           `json:"firstMonthPayment"`
	TotalPropertyTax   string           `json:"totalPropertyTax"`
	TotalInsurance     string           `json:"totalInsurance"`
	TotalHOA           string           `json:"totalHoa"`
	TotalOutlay        string           `json:"totalOutlay"`
	Summary            SummaryResponse  `json:"summary"`
	Schedule           []PeriodResponse `json:"schedule"`
}

// CreateQuote handles POST /api/v1/quotes
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req CreateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	quote, err := h.quoteService.BuildQuote(quoteInput(req))
	if err != nil {
		return quoteError(c, err)
	}

	return c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// CreateQuoteReport handles POST /api/v1/quotes/report
func (h *QuoteHandler) CreateQuoteReport(c echo.Context) error {
	var req CreateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	quote, err := h.quoteService.BuildQuote(quoteInput(req))
	if err != nil {
		return quoteError(c, err)
	}

	var buf bytes.Buffer
	if err := report.WriteTo(&buf, quote); err != nil {
		log.Error().Err(err).Msg("Failed to render report workbook")
		return NewInternalError(c, "Failed to render report")
	}

	filename := report.Filename(quote)
	location, err := h.reportStore.Store(c.Request().Context(), filename, bytes.NewReader(buf.Bytes()))
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Failed to store report")
		return NewInternalError(c, "Failed to store report")
	}

	log.Info().Str("filename", filename).Str("location", location).Msg("Report generated")

	c.Response().Header().Set("X-Report-Location", location)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func quoteInput(req CreateQuoteRequest) service.QuoteInput {
	return service.QuoteInput{
		HomeValue:      req.HomeValue,
		DownPaymentPct: req.DownPaymentPct,
		TermYears:      req.TermYears,
		AnnualRatePct:  req.InterestRatePct,
		MonthlyHOA:     req.MonthlyHOA,
		WindowMonths:   req.WindowYears * 12,
	}
}

func quoteError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrHomeValueInvalid),
		errors.Is(err, domain.ErrDownPaymentInvalid),
		errors.Is(err, domain.ErrPrincipalInvalid),
		errors.Is(err, domain.ErrRateInvalid),
		errors.Is(err, domain.ErrTermInvalid),
		errors.Is(err, domain.ErrTermTooLong),
		errors.Is(err, domain.ErrChargesInvalid),
		errors.Is(err, domain.ErrWindowOutOfRange):
		return NewValidationError(c, err.Error(), nil)
	default:
		log.Error().Err(err).Msg("Failed to build quote")
		return NewInternalError(c, "Failed to build quote")
	}
}

// money renders a float as a 2 decimal place string; rounding happens only at
// the presentation edge, the schedule itself is unrounded.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func toQuoteResponse(quote *domain.Quote) QuoteResponse {
	schedule := make([]PeriodResponse, len(quote.Schedule))
	for i, p := range quote.Schedule {
		schedule[i] = PeriodResponse{
			Period:    p.Period,
			Payment:   money(p.Payment),
			Interest:  money(p.Interest),
			Principal: money(p.Principal),
			Balance:   money(p.Balance),
		}
	}

	return QuoteResponse{
		HomeValue:          money(quote.Purchase.HomeValue),
		DownPayment:        money(quote.Purchase.DownPayment),
		LoanAmount:         money(quote.Purchase.LoanAmount),
		TermMonths:         quote.Terms.TermMonths,
		InterestRatePct:    quote.Terms.AnnualRatePct,
		MonthlyHOA:         money(quote.Charges.HOA),
		MonthlyInsurance:   money(quote.Charges.HomeInsurance),
		MonthlyPropertyTax: money(quote.Charges.PropertyTax),
		FirstMonthPayment:  money(quote.FirstMonthPayment),
		TotalPropertyTax:   money(quote.TotalPropertyTax),
		TotalInsurance:     money(quote.TotalInsurance),
		TotalHOA:           money(quote.TotalHOA),
		TotalOutlay:        money(quote.TotalOutlay),
		Summary: SummaryResponse{
			TotalInterest:       money(quote.Summary.TotalInterest),
			TotalPaid:           money(quote.Summary.TotalPaid),
			InterestToLoanRatio: quote.Summary.InterestToLoanRatio,
			WindowMonths:        quote.Summary.WindowMonths,
			WindowInterest:      money(quote.Summary.WindowInterest),
			WindowToTotalRatio:  quote.Summary.WindowToTotalRatio,
			WindowEndBalance:    money(quote.Summary.WindowEndBalance),
		},
		Schedule: schedule,
	}
}
