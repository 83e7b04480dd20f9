// Package config defines the data structures related to configuration and
// includes functions for loading and checking the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/mathutil"
	"github.com/iwvelando/interest-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// ErrCalculationNotFound is returned by Find when no calculation matches.
var ErrCalculationNotFound = errors.New("calculation not found")

// Configuration holds all configuration for interest-calculator.
type Configuration struct {
	Logging      LoggingConfig        `yaml:"logging,omitempty"`
	Output       OutputConfig         `yaml:"output,omitempty"`
	Calculations []calculator.Request `yaml:"calculations"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, csv
	Currency string `yaml:"currency,omitempty"` // symbol prefixed to amounts
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from an in-memory source.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix("INTEREST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.currency", constants.DefaultCurrencySymbol)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// Find returns the calculation with the given name, or the first one when
// name is empty.
func (c *Configuration) Find(name string) (calculator.Request, error) {
	if len(c.Calculations) == 0 {
		return calculator.Request{}, fmt.Errorf("%w: configuration defines no calculations", ErrCalculationNotFound)
	}
	if strings.TrimSpace(name) == "" {
		return c.Calculations[0], nil
	}
	for _, calc := range c.Calculations {
		if calc.Name == name {
			return calc, nil
		}
	}
	return calculator.Request{}, fmt.Errorf("%w: %q", ErrCalculationNotFound, name)
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Problems that make a calculation impossible are left for
// the calculator to report.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Calculations) == 0 {
		warnings = append(warnings, "No calculations defined")
	}

	seen := make(map[string]int)
	for i, calc := range c.Calculations {
		label := calc.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
			warnings = append(warnings, fmt.Sprintf("Calculation %s has no name and can only be selected as the default", label))
		} else if first, dup := seen[calc.Name]; dup {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s' is defined more than once; only entry #%d is reachable by name", calc.Name, first+1))
		} else {
			seen[calc.Name] = i
		}

		if err := validation.ValidateMode(calc.Mode); err != nil {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s': %v", label, err))
		}

		mode := strings.ToLower(strings.TrimSpace(calc.Mode))
		if calc.Frequency != "" && mode != constants.ModeCompound {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s' sets frequency %q which only applies to compound mode", label, calc.Frequency))
		}
		if mode == constants.ModeSIP && mathutil.IsZero(calc.Rate) {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s' is a SIP with a zero rate; future value equals the amount invested", label))
		}
	}

	return warnings
}
