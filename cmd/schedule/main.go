package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dafibh/casaplan/casaplan-backend/internal/config"
	"github.com/dafibh/casaplan/casaplan-backend/internal/report"
	"github.com/dafibh/casaplan/casaplan-backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	in := bufio.NewReader(os.Stdin)

	homeValueMillions := promptFloat(in, "Home value (Million): ")
	downPaymentPct := promptFloat(in, "Down-payment (%): ")
	termYears := promptInt(in, "Loan term (years): ")
	ratePct := promptFloat(in, "Interest rate (%): ")
	monthlyHOA := promptFloat(in, "Monthly HOA and Mello-Roos ($): ")

	quoteService := service.NewQuoteService(service.NewScheduleService(), cfg.PropertyTaxRatePct, cfg.WindowMonths())

	divider()
	fmt.Println("calculating schedule of payments month over month...")
	divider()

	quote, err := quoteService.BuildQuote(service.QuoteInput{
		HomeValue:      homeValueMillions * 1_000_000,
		DownPaymentPct: downPaymentPct,
		TermYears:      termYears,
		AnnualRatePct:  ratePct,
		MonthlyHOA:     monthlyHOA,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build schedule")
	}

	months := quote.Terms.TermMonths
	windowYears := quote.Summary.WindowMonths / 12

	fmt.Printf("Monthly payment: $%s\n", money(quote.FirstMonthPayment))
	fmt.Printf("Total interest payment over %d months: $%s\n", months, money(quote.Summary.TotalInterest))
	fmt.Printf("Total taxes over the %d months: $%s\n", months, money(quote.TotalPropertyTax))
	fmt.Printf("Total home insurance over the %d months: $%s\n", months, money(quote.TotalInsurance))
	fmt.Printf("Total HOA/Mello-Roos over the %d months: $%s\n", months, money(quote.TotalHOA))
	fmt.Printf("Total payment over the %d months: $%s\n", months, money(quote.TotalOutlay))
	fmt.Printf("Interest-Loan Ratio: %.2f%%\n", quote.Summary.InterestToLoanRatio*100)
	fmt.Printf("Interest paid over the first %d years: $%s\n", windowYears, money(quote.Summary.WindowInterest))
	fmt.Printf("Proportion of total interest paid in first %d years: %.2f%%\n", windowYears, quote.Summary.WindowToTotalRatio*100)
	fmt.Printf("Outstanding principal after %d years: $%s\n", windowYears, money(quote.Summary.WindowEndBalance))

	divider()
	fmt.Println("writing out payment schedule into excel sheet...")
	divider()

	filename := report.Filename(quote)
	if err := report.Save(filename, quote); err != nil {
		log.Fatal().Err(err).Str("filename", filename).Msg("Failed to write report")
	}
	fmt.Printf("wrote %s\n", filename)
}

func divider() {
	fmt.Println(strings.Repeat("-", 60))
}

// money renders a float as a 2 decimal place string for terminal output.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func promptFloat(in *bufio.Reader, prompt string) float64 {
	line := promptLine(in, prompt)
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		log.Fatal().Str("input", line).Msg("Expected a number")
	}
	return v
}

func promptInt(in *bufio.Reader, prompt string) int {
	line := promptLine(in, prompt)
	v, err := strconv.Atoi(line)
	if err != nil {
		log.Fatal().Str("input", line).Msg("Expected a whole number")
	}
	return v
}

func promptLine(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}
	return strings.TrimSpace(line)
}
