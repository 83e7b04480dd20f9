// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/format"
)

// PrettyFormat writes a human-readable summary of report, followed by the
// month-by-month growth table for SIP reports.
func PrettyFormat(w io.Writer, report calculator.Report, currency string) {
	title := report.Name
	if title == "" {
		title = report.Mode
	}
	fmt.Fprintf(w, "--- Results for %s (%s) ---\n", title, describeMode(report))

	money := func(v float64) string { return format.Currency(currency, v) }

	switch report.Mode {
	case constants.ModeSIP:
		fmt.Fprintf(w, "Invested Amount: %s\n", money(report.Invested))
		fmt.Fprintf(w, "Total Gain:      %s\n", money(report.Interest))
		fmt.Fprintf(w, "Future Value:    %s\n", money(report.Total))
		if len(report.Series) > 0 {
			fmt.Fprintf(w, "\nMonth | Value\n")
			fmt.Fprintf(w, "_____ | _____\n")
			for _, point := range report.Series {
				fmt.Fprintf(w, "%5d | %s\n", point.MonthIndex, money(point.AccumulatedValue))
			}
		}
	default:
		fmt.Fprintf(w, "Interest: %s | Total Amount: %s\n", money(report.Interest), money(report.Total))
	}
}

// CsvFormat writes report in comma-separated value format: a header and
// summary row, then for SIP reports a blank line and the monthly series.
func CsvFormat(w io.Writer, report calculator.Report) {
	fmt.Fprintf(w, `"name","mode","principal","rate","years","frequency","invested","interest","total"`+"\n")
	frequency := ""
	if report.Frequency > 0 {
		frequency = fmt.Sprintf("%d", report.Frequency)
	}
	fmt.Fprintf(w, `"%s","%s","%.2f","%g","%d","%s","%.2f","%.2f","%.2f"`+"\n",
		report.Name, report.Mode, report.Principal, report.Rate, report.Years, frequency,
		report.Invested, report.Interest, report.Total)

	if len(report.Series) == 0 {
		return
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, `"month","value"`+"\n")
	for _, point := range report.Series {
		fmt.Fprintf(w, `"%d","%.2f"`+"\n", point.MonthIndex, point.AccumulatedValue)
	}
}

// CsvString returns the CsvFormat rendering of report.
func CsvString(report calculator.Report) string {
	var buf bytes.Buffer
	CsvFormat(&buf, report)
	return buf.String()
}

func describeMode(report calculator.Report) string {
	switch report.Mode {
	case constants.ModeSIP:
		return fmt.Sprintf("SIP, %g%% for %d years", report.Rate, report.Years)
	case constants.ModeSimple:
		return fmt.Sprintf("simple interest, %g%% for %d years", report.Rate, report.Years)
	case constants.ModeCompound:
		return fmt.Sprintf("compound interest, %g%% for %d years, %s", report.Rate, report.Years,
			calculator.FrequencyName(report.Frequency))
	}
	return report.Mode
}
