package growth

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/mathutil"
)

// ErrInvalidInput is matched by every input validation failure.
var ErrInvalidInput = errors.New("invalid input")

// InputError names the parameter that failed validation.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) hold for any *InputError.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func checkNonNegative(field string, value float64) error {
	if !mathutil.IsFinite(value) {
		return &InputError{Field: field, Value: value, Reason: "must be a finite number"}
	}
	if value < 0 {
		return &InputError{Field: field, Value: value, Reason: "must not be negative"}
	}
	return nil
}

func checkPositive(field string, value int) error {
	if value < 1 {
		return &InputError{Field: field, Value: float64(value), Reason: "must be at least 1"}
	}
	return nil
}

// checkPeriods rejects a positive value whose product with periodsPerUnit
// does not fit in an int.
func checkPeriods(field string, value, periodsPerUnit int) error {
	if value > math.MaxInt/periodsPerUnit {
		return &InputError{Field: field, Value: float64(value), Reason: "too large"}
	}
	return nil
}

// checkFinite rejects results that overflowed float64.
func checkFinite(values ...float64) error {
	for _, v := range values {
		if !mathutil.IsFinite(v) {
			return &InputError{Field: "result", Value: v, Reason: "result overflows"}
		}
	}
	return nil
}

func validate(principal, annualRatePercent float64, years int) error {
	if err := checkNonNegative("principal", principal); err != nil {
		return err
	}
	if err := checkNonNegative("rate", annualRatePercent); err != nil {
		return err
	}
	if err := checkPositive("years", years); err != nil {
		return err
	}
	return checkPeriods("years", years, constants.MonthsPerYear)
}
