// Package constants provides shared constants for the interest-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DefaultCurrencySymbol is prefixed to every displayed amount
	DefaultCurrencySymbol = "₹"
)

// Compounding frequencies, in periods per year.
const (
	FrequencyYearly     = 1
	FrequencyHalfYearly = 2
	FrequencyQuarterly  = 4
	FrequencyMonthly    = 12

	// DefaultFrequency is used when a compound calculation names none
	DefaultFrequency = FrequencyYearly
)

// Calculation modes
const (
	ModeSIP      = "sip"
	ModeSimple   = "simple"
	ModeCompound = "compound"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultMaxYears bounds the duration accepted by the HTTP API
	DefaultMaxYears = 100
)

// MaxSeriesYears bounds SIPSeries so a single call cannot allocate an
// unbounded number of points.
const MaxSeriesYears = 1000
