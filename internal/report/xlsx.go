// Package report renders generated schedules into spreadsheet workbooks.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dafibh/casaplan/casaplan-backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

const (
	moneyFormat = "[$$]#,##0.00"
	pctFormat   = "0.00%"
)

// Column headers for the per-month region
var scheduleHeaders = []string{
	"Month", "Interest", "Principal", "HOA", "Home Ins.", "Prop. Tax", "Mon. Payment", "Out. Principal",
}

// sheetWriter tracks the first cell-write error so the region loops stay flat.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(cell string, value interface{}) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(sheetName, cell, value)
}

func (w *sheetWriter) style(hCell, vCell string, styleID int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(sheetName, hCell, vCell, styleID)
}

// BuildWorkbook renders a quote into a workbook with one row per month and a
// fixed summary block in columns J/K. The caller owns the returned file and
// must Close it.
func BuildWorkbook(quote *domain.Quote) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	moneyFmt := moneyFormat
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}
	pctFmt := pctFormat
	pct, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pctFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create percent style: %w", err)
	}

	w := &sheetWriter{f: f}

	for i, header := range scheduleHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		w.set(cell, header)
	}
	w.style("A1", "H1", bold)

	// One row per month; the fixed charges and the total monthly payment
	// repeat on every row, matching the reference report layout.
	for i, p := range quote.Schedule {
		row := i + 3
		w.set(fmt.Sprintf("A%d", row), p.Period)
		w.set(fmt.Sprintf("B%d", row), p.Interest)
		w.set(fmt.Sprintf("C%d", row), p.Principal)
		w.set(fmt.Sprintf("D%d", row), quote.Charges.HOA)
		w.set(fmt.Sprintf("E%d", row), quote.Charges.HomeInsurance)
		w.set(fmt.Sprintf("F%d", row), quote.Charges.PropertyTax)
		w.set(fmt.Sprintf("G%d", row), quote.FirstMonthPayment)
		w.set(fmt.Sprintf("H%d", row), p.Balance)
	}
	if n := len(quote.Schedule); n > 0 {
		w.style("B3", fmt.Sprintf("H%d", n+2), money)
	}

	window := windowLabel(quote.Summary.WindowMonths)

	w.set("J1", "Home Value")
	w.set("J2", "Down Payment")
	w.set("J3", "Loan Amt.")
	w.set("J4", "Tot. Interest")
	w.set("J5", "Tot. Prop. Tax")
	w.set("J6", "Tot. Home Ins.")
	w.set("J7", "Tot. HOA")
	w.set("J8", "Tot. Payment")
	w.set("J9", "Int-Loan Ratio")
	w.set("J11", window+" Interest")
	w.set("J12", "Int "+window+"-Total Ratio")
	w.set("J13", "Out. Prin. "+window)
	w.style("J1", "J13", bold)

	w.set("K1", quote.Purchase.HomeValue)
	w.set("K2", quote.Purchase.DownPayment)
	w.set("K3", quote.Purchase.LoanAmount)
	w.set("K4", quote.Summary.TotalInterest)
	w.set("K5", quote.TotalPropertyTax)
	w.set("K6", quote.TotalInsurance)
	w.set("K7", quote.TotalHOA)
	w.set("K8", quote.TotalOutlay)
	w.set("K9", quote.Summary.InterestToLoanRatio)
	w.set("K11", quote.Summary.WindowInterest)
	w.set("K12", quote.Summary.WindowToTotalRatio)
	w.set("K13", quote.Summary.WindowEndBalance)

	w.style("K1", "K8", money)
	w.style("K9", "K9", pct)
	w.style("K11", "K11", money)
	w.style("K12", "K12", pct)
	w.style("K13", "K13", money)

	if w.err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", w.err)
	}
	return f, nil
}

// WriteTo renders the quote and streams the workbook to w.
func WriteTo(w io.Writer, quote *domain.Quote) error {
	f, err := BuildWorkbook(quote)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to stream workbook: %w", err)
	}
	return nil
}

// Save renders the quote and writes the workbook at path.
func Save(path string, quote *domain.Quote) error {
	f, err := BuildWorkbook(quote)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Filename builds the report name from the quote parameters, e.g.
// schedule_1.2M_20%dn_30yr_6.5%int.xlsx.
func Filename(quote *domain.Quote) string {
	downPct := 0.0
	if quote.Purchase.HomeValue > 0 {
		downPct = quote.Purchase.DownPayment / quote.Purchase.HomeValue * 100
	}

	term := fmt.Sprintf("%dmo", quote.Terms.TermMonths)
	if quote.Terms.TermMonths%12 == 0 {
		term = fmt.Sprintf("%dyr", quote.Terms.TermMonths/12)
	}

	return fmt.Sprintf("schedule_%sM_%s%%dn_%s_%s%%int.xlsx",
		strconv.FormatFloat(quote.Purchase.HomeValue/1e6, 'f', -1, 64),
		strconv.FormatFloat(downPct, 'f', -1, 64),
		term,
		strconv.FormatFloat(quote.Terms.AnnualRatePct, 'f', -1, 64))
}

func windowLabel(windowMonths int) string {
	if windowMonths%12 == 0 {
		return fmt.Sprintf("%dyr", windowMonths/12)
	}
	return fmt.Sprintf("%dmo", windowMonths)
}
