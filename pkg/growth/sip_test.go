package growth

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/mathutil"
)

func TestSIPFutureValue(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		expected  float64
	}{
		{"Ten years at twelve percent", 1000, 12, 10, 230038.69},
		{"One year at six percent", 500, 6, 1, 6167.78},
		{"Zero rate accumulates principal", 1000, 0, 2, 24000},
		{"Zero principal", 0, 12, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SIPFutureValue(tt.principal, tt.rate, tt.years)
			if err != nil {
				t.Fatalf("SIPFutureValue() error = %v", err)
			}
			if !mathutil.WithinTolerance(got, tt.expected, 0.005) {
				t.Errorf("SIPFutureValue(%v, %v, %v) = %v, expected %v",
					tt.principal, tt.rate, tt.years, got, tt.expected)
			}
		})
	}
}

func TestSIPFutureValueNotBelowInvested(t *testing.T) {
	for _, principal := range []float64{0, 1, 250, 1000, 123456.78} {
		for _, rate := range []float64{0.1, 1, 7.5, 12, 30} {
			for _, years := range []int{1, 3, 10, 40} {
				got, err := SIPFutureValue(principal, rate, years)
				if err != nil {
					t.Fatalf("SIPFutureValue(%v, %v, %v) error = %v", principal, rate, years, err)
				}
				invested := mathutil.Round(principal * float64(years*12))
				if got < invested && !mathutil.IsZero(got-invested) {
					t.Errorf("SIPFutureValue(%v, %v, %v) = %v, below invested %v",
						principal, rate, years, got, invested)
				}
			}
		}
	}
}

func TestSIPSeries(t *testing.T) {
	series, err := SIPSeries(1000, 12, 10)
	if err != nil {
		t.Fatalf("SIPSeries() error = %v", err)
	}

	if len(series) != 120 {
		t.Fatalf("expected 120 points, got %d", len(series))
	}

	for i, point := range series {
		if point.MonthIndex != i+1 {
			t.Fatalf("point %d has month index %d", i, point.MonthIndex)
		}
		if i > 0 && point.AccumulatedValue <= series[i-1].AccumulatedValue {
			t.Fatalf("value at month %d (%v) does not exceed month %d (%v)",
				point.MonthIndex, point.AccumulatedValue, series[i-1].MonthIndex, series[i-1].AccumulatedValue)
		}
	}

	checks := map[int]float64{
		1:   1010.00,
		2:   2030.10,
		120: 232339.08,
	}
	for month, expected := range checks {
		got := series[month-1].AccumulatedValue
		if !mathutil.WithinTolerance(got, expected, 0.005) {
			t.Errorf("month %d value = %v, expected %v", month, got, expected)
		}
	}
}

func TestSIPSeriesTerminalPointIsAnnuityDue(t *testing.T) {
	fv, err := SIPFutureValue(1000, 12, 10)
	if err != nil {
		t.Fatalf("SIPFutureValue() error = %v", err)
	}
	series, err := SIPSeries(1000, 12, 10)
	if err != nil {
		t.Fatalf("SIPSeries() error = %v", err)
	}

	last := series[len(series)-1].AccumulatedValue
	if last <= fv {
		t.Fatalf("expected terminal series value %v to exceed summary future value %v", last, fv)
	}
	// One extra month of growth at 1% per month.
	if !mathutil.WithinTolerance(last, fv*1.01, 0.01) {
		t.Errorf("terminal value %v, expected about %v", last, fv*1.01)
	}
}

func TestSIPSeriesZeroRate(t *testing.T) {
	series, err := SIPSeries(100, 0, 1)
	if err != nil {
		t.Fatalf("SIPSeries() error = %v", err)
	}
	for _, point := range series {
		expected := 100 * float64(point.MonthIndex)
		if point.AccumulatedValue != expected {
			t.Errorf("month %d value = %v, expected %v", point.MonthIndex, point.AccumulatedValue, expected)
		}
	}
}

func TestSIPInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		field     string
	}{
		{"Negative principal", -1, 12, 10, "principal"},
		{"Negative rate", 1000, -0.5, 10, "rate"},
		{"Zero years", 1000, 12, 0, "years"},
		{"Negative years", 1000, 12, -3, "years"},
		{"NaN principal", math.NaN(), 12, 10, "principal"},
		{"Infinite rate", 1000, math.Inf(1), 10, "rate"},
		{"Months overflow int", 100, 12, math.MaxInt/12 + 1, "years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SIPFutureValue(tt.principal, tt.rate, tt.years)
			assertInvalidInput(t, err, tt.field)

			series, err := SIPSeries(tt.principal, tt.rate, tt.years)
			assertInvalidInput(t, err, tt.field)
			if series != nil {
				t.Errorf("expected nil series on error, got %d points", len(series))
			}
		})
	}
}

func TestSIPOverflow(t *testing.T) {
	_, err := SIPFutureValue(1000, 12, 10000)
	assertInvalidInput(t, err, "result")

	_, err = SIPFutureValue(1e300, 0, math.MaxInt/12)
	assertInvalidInput(t, err, "result")
}

func TestSIPSeriesLimit(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		years int
		field string
	}{
		{"Beyond series limit", 0, constants.MaxSeriesYears + 1, "years"},
		{"Huge duration at zero rate", 0, math.MaxInt / 12, "years"},
		{"Terminal value overflows", 1000, constants.MaxSeriesYears, "result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := SIPSeries(100, tt.rate, tt.years)
			assertInvalidInput(t, err, tt.field)
			if series != nil {
				t.Errorf("expected nil series on error, got %d points", len(series))
			}
		})
	}

	series, err := SIPSeries(100, 12, constants.MaxSeriesYears)
	if err != nil {
		t.Fatalf("SIPSeries() at the limit error = %v", err)
	}
	if len(series) != constants.MaxSeriesYears*12 {
		t.Errorf("expected %d points, got %d", constants.MaxSeriesYears*12, len(series))
	}
}

func assertInvalidInput(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %T", err)
	}
	if inputErr.Field != field {
		t.Errorf("expected field %q, got %q", field, inputErr.Field)
	}
}
