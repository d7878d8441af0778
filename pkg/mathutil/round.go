// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/finwerk/fincalc/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for the final rounding of rate and money results.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundUp rounds a value up to two decimals. Discount factors use this
// rather than nearest-value rounding.
func RoundUp(val float64) float64 {
	return math.Ceil(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundPlaces rounds a value to the given number of decimal places using
// decimal arithmetic rather than float math.
func RoundPlaces(val float64, places int) float64 {
	rounded, _ := decimal.NewFromFloat(val).Round(int32(places)).Float64()
	return rounded
}

// EqualDecimalPlaces reports whether a and b agree when both are rounded
// to the given number of decimal places. The comparison is performed on
// decimal representations, not with a float epsilon, so it matches the
// fixed-point convergence rule used by the rate solvers. Non-finite
// values never compare equal.
func EqualDecimalPlaces(a, b float64, places int) bool {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return RoundPlaces(a, places) == RoundPlaces(b, places)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
