// Package calculator is the request/response boundary between a presentation
// layer and the growth formulas. A Request names a mode and its parameters;
// the returned Report carries the summary figures plus the data needed for the
// growth line chart and the invested-versus-gain pie chart.
package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/growth"
	"github.com/iwvelando/interest-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// ErrUnknownMode is returned when a Request names an unsupported mode.
var ErrUnknownMode = errors.New("unknown calculation mode")

// Pie chart labels.
const (
	LabelInvested  = "Invested Amount"
	LabelGain      = "Gain"
	LabelPrincipal = "Principal"
	LabelInterest  = "Interest"
)

// Request holds the parameters for a single calculation.
type Request struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Mode      string  `json:"mode" yaml:"mode" mapstructure:"mode"`
	Principal float64 `json:"principal" yaml:"principal" mapstructure:"principal"`
	Rate      float64 `json:"rate" yaml:"rate" mapstructure:"rate"`
	Years     int     `json:"years" yaml:"years" mapstructure:"years"`

	// Frequency is only read in compound mode.
	Frequency Frequency `json:"frequency,omitempty" yaml:"frequency,omitempty" mapstructure:"frequency"`
}

// Slice is one segment of a pie chart.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Report is the outcome of a Request.
type Report struct {
	Name      string  `json:"name,omitempty"`
	Mode      string  `json:"mode"`
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Years     int     `json:"years"`
	Frequency int     `json:"frequency,omitempty"`

	// Invested is the total contributed over a SIP's lifetime; for the
	// interest modes it equals Principal.
	Invested float64 `json:"invested"`
	// Interest is the SIP gain or the earned interest.
	Interest float64 `json:"interest"`
	// Total is the SIP future value or principal plus interest.
	Total float64 `json:"total"`

	Series []growth.SeriesPoint `json:"series,omitempty"`
	Split  []Slice              `json:"split"`
}

// Calculator dispatches Requests to the growth formulas.
type Calculator struct {
	logger   *zap.Logger
	maxYears int
}

// New creates a Calculator. A nil logger disables logging.
func New(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// SetMaxYears rejects requests longer than years. Zero or less removes the
// limit.
func (c *Calculator) SetMaxYears(years int) {
	c.maxYears = years
}

// Calculate evaluates req. Invalid parameters yield an error matching
// growth.ErrInvalidInput.
func (c *Calculator) Calculate(req Request) (Report, error) {
	mode := strings.ToLower(strings.TrimSpace(req.Mode))

	if c.maxYears > 0 && req.Years > c.maxYears {
		return Report{}, &growth.InputError{
			Field:  "years",
			Value:  float64(req.Years),
			Reason: fmt.Sprintf("must not exceed %d", c.maxYears),
		}
	}

	var (
		report Report
		err    error
	)
	switch mode {
	case constants.ModeSIP:
		report, err = c.sip(req)
	case constants.ModeSimple:
		report, err = c.simple(req)
	case constants.ModeCompound:
		report, err = c.compound(req)
	default:
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
	}
	if err != nil {
		c.logger.Debug("calculation rejected",
			zap.String("op", "calculator.Calculate"),
			zap.String("mode", mode),
			zap.Error(err),
		)
		return Report{}, err
	}

	report.Name = req.Name
	report.Mode = mode
	report.Principal = req.Principal
	report.Rate = req.Rate
	report.Years = req.Years

	c.logger.Debug("calculation complete",
		zap.String("op", "calculator.Calculate"),
		zap.String("mode", mode),
		zap.Float64("total", report.Total),
		zap.Int("points", len(report.Series)),
	)
	return report, nil
}

func (c *Calculator) sip(req Request) (Report, error) {
	futureValue, err := growth.SIPFutureValue(req.Principal, req.Rate, req.Years)
	if err != nil {
		return Report{}, err
	}
	series, err := growth.SIPSeries(req.Principal, req.Rate, req.Years)
	if err != nil {
		return Report{}, err
	}

	invested := mathutil.Round(req.Principal * float64(req.Years*constants.MonthsPerYear))
	gain := mathutil.Round(futureValue - invested)

	return Report{
		Invested: invested,
		Interest: gain,
		Total:    futureValue,
		Series:   series,
		Split: []Slice{
			{Label: LabelInvested, Value: invested},
			{Label: LabelGain, Value: gain},
		},
	}, nil
}

func (c *Calculator) simple(req Request) (Report, error) {
	result, err := growth.SimpleInterest(req.Principal, req.Rate, req.Years)
	if err != nil {
		return Report{}, err
	}
	return interestReport(req.Principal, result), nil
}

func (c *Calculator) compound(req Request) (Report, error) {
	frequency, err := ParseFrequency(string(req.Frequency))
	if err != nil {
		return Report{}, err
	}
	result, err := growth.CompoundInterest(req.Principal, req.Rate, req.Years, frequency)
	if err != nil {
		return Report{}, err
	}
	report := interestReport(req.Principal, result)
	report.Frequency = frequency
	return report, nil
}

func interestReport(principal float64, result growth.Result) Report {
	invested := mathutil.Round(principal)
	return Report{
		Invested: invested,
		Interest: result.Interest,
		Total:    result.Total,
		Split: []Slice{
			{Label: LabelPrincipal, Value: invested},
			{Label: LabelInterest, Value: result.Interest},
		},
	}
}

// IsInputError reports whether err was caused by the caller's parameters
// rather than by the calculator itself.
func IsInputError(err error) bool {
	return errors.Is(err, growth.ErrInvalidInput) ||
		errors.Is(err, ErrUnknownMode) ||
		errors.Is(err, ErrUnknownFrequency)
}
