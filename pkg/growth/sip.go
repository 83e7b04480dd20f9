// Package growth computes future values for systematic investment plans and
// for simple and compound interest. Every function is pure: identical inputs
// always produce identical results, and nothing is shared between calls.
package growth

import (
	"fmt"
	"math"

	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/mathutil"
)

// SeriesPoint is the value of a SIP after MonthIndex monthly contributions.
type SeriesPoint struct {
	MonthIndex       int     `json:"month" yaml:"month"`
	AccumulatedValue float64 `json:"value" yaml:"value"`
}

// SIPFutureValue returns the future value of a monthly contribution of
// principal held for the given number of years, treating contributions as an
// ordinary annuity (paid at the end of each month).
//
// A zero rate yields principal * months.
func SIPFutureValue(principal, annualRatePercent float64, years int) (float64, error) {
	if err := validate(principal, annualRatePercent, years); err != nil {
		return 0, err
	}

	months := years * constants.MonthsPerYear
	r := mathutil.MonthlyRate(annualRatePercent)
	value := ordinaryAnnuity(principal, r, months)
	if err := checkFinite(value); err != nil {
		return 0, err
	}
	return mathutil.Round(value), nil
}

// SIPSeries returns one point per month from 1 to years*12. Each value treats
// contributions as an annuity-due (paid at the start of each month), so the
// final point is one month of growth ahead of SIPFutureValue. Durations over
// constants.MaxSeriesYears are rejected.
func SIPSeries(principal, annualRatePercent float64, years int) ([]SeriesPoint, error) {
	if err := validate(principal, annualRatePercent, years); err != nil {
		return nil, err
	}
	if years > constants.MaxSeriesYears {
		return nil, &InputError{Field: "years", Value: float64(years), Reason: fmt.Sprintf("series limited to %d years", constants.MaxSeriesYears)}
	}

	months := years * constants.MonthsPerYear
	r := mathutil.MonthlyRate(annualRatePercent)

	// Values grow monotonically, so a finite last point bounds the series.
	if err := checkFinite(annuityDue(principal, r, months)); err != nil {
		return nil, err
	}

	series := make([]SeriesPoint, months)
	for n := 1; n <= months; n++ {
		series[n-1] = SeriesPoint{
			MonthIndex:       n,
			AccumulatedValue: mathutil.Round(annuityDue(principal, r, n)),
		}
	}
	return series, nil
}

func ordinaryAnnuity(payment, r float64, periods int) float64 {
	if r == 0 {
		return payment * float64(periods)
	}
	return payment * (math.Pow(1+r, float64(periods)) - 1) / r
}

func annuityDue(payment, r float64, periods int) float64 {
	if r == 0 {
		return payment * float64(periods)
	}
	return payment * (math.Pow(1+r, float64(periods)) - 1) * (1 + r) / r
}
