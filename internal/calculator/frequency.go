package calculator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/interest-calculator/pkg/constants"
)

// ErrUnknownFrequency is returned for compounding frequency names that are
// neither a recognized label nor a positive integer.
var ErrUnknownFrequency = errors.New("unknown compounding frequency")

// Frequency is a compounding frequency as supplied by a caller: a label such
// as "Quarterly" or a number of periods per year. JSON numbers are accepted.
type Frequency string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = Frequency(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownFrequency, trimmed)
	}
	*f = Frequency(n.String())
	return nil
}

// NamedFrequency pairs a display label with its periods per year.
type NamedFrequency struct {
	Name    string `json:"name"`
	PerYear int    `json:"perYear"`
}

var namedFrequencies = []NamedFrequency{
	{Name: "Yearly", PerYear: constants.FrequencyYearly},
	{Name: "Half-Yearly", PerYear: constants.FrequencyHalfYearly},
	{Name: "Quarterly", PerYear: constants.FrequencyQuarterly},
	{Name: "Monthly", PerYear: constants.FrequencyMonthly},
}

// Frequencies returns the recognized compounding frequencies in display order.
func Frequencies() []NamedFrequency {
	return append([]NamedFrequency(nil), namedFrequencies...)
}

// ParseFrequency maps a label such as "Quarterly" (case-insensitive) or a
// positive integer string to periods per year. An empty value selects the
// yearly default.
func ParseFrequency(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultFrequency, nil
	}

	key := normalizeLabel(trimmed)
	for _, f := range namedFrequencies {
		if normalizeLabel(f.Name) == key {
			return f.PerYear, nil
		}
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, value)
	}
	return n, nil
}

// FrequencyName returns the label for perYear, or its decimal form when it
// has none.
func FrequencyName(perYear int) string {
	for _, f := range namedFrequencies {
		if f.PerYear == perYear {
			return f.Name
		}
	}
	return strconv.Itoa(perYear)
}

func normalizeLabel(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}
