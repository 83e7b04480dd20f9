package growth

import (
	"math"

	"github.com/iwvelando/interest-calculator/pkg/mathutil"
)

// Result holds the earned interest (or gain) and the resulting total, both
// rounded to cents.
type Result struct {
	Interest float64 `json:"interest" yaml:"interest"`
	Total    float64 `json:"total" yaml:"total"`
}

// SimpleInterest computes interest = principal * rate * years / 100.
func SimpleInterest(principal, annualRatePercent float64, years int) (Result, error) {
	if err := validate(principal, annualRatePercent, years); err != nil {
		return Result{}, err
	}

	interest := principal * mathutil.PercentToDecimal(annualRatePercent) * float64(years)
	if err := checkFinite(interest, principal+interest); err != nil {
		return Result{}, err
	}
	return Result{
		Interest: mathutil.Round(interest),
		Total:    mathutil.Round(principal + interest),
	}, nil
}

// CompoundInterest compounds principal frequency times per year. Any positive
// frequency is accepted; callers typically use 1, 2, 4 or 12.
func CompoundInterest(principal, annualRatePercent float64, years, frequency int) (Result, error) {
	if err := validate(principal, annualRatePercent, years); err != nil {
		return Result{}, err
	}
	if err := checkPositive("frequency", frequency); err != nil {
		return Result{}, err
	}
	if err := checkPeriods("frequency", frequency, years); err != nil {
		return Result{}, err
	}

	periodic := mathutil.PercentToDecimal(annualRatePercent) / float64(frequency)
	amount := principal * math.Pow(1+periodic, float64(frequency*years))
	if err := checkFinite(amount, amount-principal); err != nil {
		return Result{}, err
	}
	return Result{
		Interest: mathutil.Round(amount - principal),
		Total:    mathutil.Round(amount),
	}, nil
}
