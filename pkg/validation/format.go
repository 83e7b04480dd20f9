// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/interest-calculator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateMode checks if mode names a supported calculation. Matching ignores
// case and surrounding whitespace.
func ValidateMode(mode string) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case constants.ModeSIP, constants.ModeSimple, constants.ModeCompound:
		return nil
	}
	return fmt.Errorf("expected calculation mode of %s, %s or %s, got %q",
		constants.ModeSIP, constants.ModeSimple, constants.ModeCompound, mode)
}
