// Package constants provides shared constants for fincalc.
package constants

// DateTimeLayout is the format expected for dates in config files.
const DateTimeLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day-count denominator for year fractions
	DaysPerYear = 365.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Rate solving constants
const (
	// CoarseScanStep is the phase-1 step of the IRR rate scan, in
	// percentage points
	CoarseScanStep = 1.0

	// FineScanStep is the phase-2 step of the IRR rate scan, in
	// percentage points
	FineScanStep = 0.01

	// MaxNewtonIterations caps the XIRR Newton iteration
	MaxNewtonIterations = 100

	// ConvergencePlaces is the number of decimal places to which two
	// consecutive XIRR guesses must agree
	ConvergencePlaces = 5
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
)
