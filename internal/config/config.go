// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"time"

	"github.com/finwerk/fincalc/pkg/constants"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected for dates in config files.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for fincalc.
type Configuration struct {
	Logging      LoggingConfig `yaml:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty"`
	Calculations []Calculation
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Calculation describes one formula evaluation request. Operation selects
// the formula by its lower-case name; only the fields that operation reads
// need to be set.
type Calculation struct {
	Name      string
	Operation string

	// Rate is a percentage for most operations; for pmt it is the
	// fractional rate per period.
	Rate     float64
	CashFlow []float64
	Amount   float64
	Periods  int

	// IRR / XIRR
	Depth int
	Guess float64
	Dates []string
	// DateList holds the parsed form of Dates, populated by ParseDateLists.
	DateList []time.Time

	// Amortization and compounding
	Principal      float64
	PeriodInMonths bool
	PayAtBeginning bool
	Compoundings   float64

	// ROI and CAGR
	Initial   float64
	Earned    float64
	Beginning float64
	Ending    float64

	// Leverage ratio
	Liabilities float64
	Debts       float64
	Income      float64

	// WACC
	Equity       float64
	Debt         float64
	CostOfEquity float64
	CostOfDebt   float64
	TaxRate      float64

	// Inflation-adjusted return
	Inflation float64

	// CAPM and stock valuation
	RiskFree     float64
	Beta         float64
	MarketReturn float64
	Growth       float64
	Dividend     float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ParseDateLists parses every date string in the configuration into a
// time.Time stored back into the Calculation's DateList.
func (conf *Configuration) ParseDateLists() error {
	for i := range conf.Calculations {
		if err := conf.Calculations[i].FormDateList(); err != nil {
			return err
		}
	}
	return nil
}

// FormDateList handles the date to time.Time parsing for one calculation.
func (calculation *Calculation) FormDateList() error {
	if len(calculation.Dates) == 0 {
		return nil
	}
	calculation.DateList = make([]time.Time, 0, len(calculation.Dates))
	for _, date := range calculation.Dates {
		t, err := time.Parse(DateTimeLayout, date)
		if err != nil {
			return fmt.Errorf("calculation %s: failed to parse date %s: %w",
				calculation.Name, date, err)
		}
		calculation.DateList = append(calculation.DateList, t)
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings for entries that look misconfigured. Warnings do
// not stop the run; a calculation that cannot be evaluated reports its own
// error in the results.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	for i, calculation := range conf.Calculations {
		if calculation.Name == "" {
			warnings = append(warnings, fmt.Sprintf("calculation %d has no name", i))
		}
		if calculation.Operation == "" {
			warnings = append(warnings, fmt.Sprintf("calculation %s (%d) has no operation", calculation.Name, i))
		}
		if calculation.Operation == "irr" && calculation.Depth <= 0 {
			warnings = append(warnings, fmt.Sprintf("calculation %s has no depth; the irr search will fail immediately", calculation.Name))
		}
		if calculation.Operation == "xirr" && len(calculation.Dates) != len(calculation.CashFlow) {
			warnings = append(warnings, fmt.Sprintf("calculation %s has %d dates for %d cash flows", calculation.Name, len(calculation.Dates), len(calculation.CashFlow)))
		}
	}
	return warnings
}
