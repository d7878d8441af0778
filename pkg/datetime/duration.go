// Package datetime provides date and time utility functions.
package datetime

import (
	"math"
	"time"

	"github.com/finwerk/fincalc/pkg/constants"
)

const (
	// DateTimeLayout is the format expected for dates in config files.
	DateTimeLayout = constants.DateTimeLayout

	hoursPerDay = 24
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// DaysBetween returns the number of whole days separating two dates,
// rounded to the nearest day. The result is the magnitude of the gap:
// argument order does not matter.
func DaysBetween(a, b time.Time) float64 {
	return math.Round(math.Abs(b.Sub(a).Hours() / hoursPerDay))
}

// YearFraction returns the duration between anchor and t expressed in
// fractional years on a whole-day / 365 basis. A date before the anchor
// yields the same fraction as one equally far after it.
func YearFraction(anchor, t time.Time) float64 {
	return DaysBetween(anchor, t) / constants.DaysPerYear
}
