package formulas

import (
	"math"
	"time"

	"github.com/finwerk/fincalc/pkg/constants"
	"github.com/finwerk/fincalc/pkg/datetime"
	"github.com/finwerk/fincalc/pkg/mathutil"
)

// XIRR returns the internal rate of return of an irregularly-dated cash
// flow series, as a percentage rounded to two decimals. Each date is
// reduced to a year fraction relative to dates[0] on a whole-day / 365
// basis; guess is the starting rate for the Newton iteration in fractional
// (not percentage) form, with 0 as the conventional default.
//
// The iteration stops once two consecutive guesses agree to five decimal
// places, and fails with ErrDidNotConverge after 100 steps without
// agreement.
func XIRR(cashFlow []float64, dates []time.Time, guess float64) (float64, error) {
	if len(cashFlow) != len(dates) {
		return 0, ErrLengthMismatch
	}
	if !hasMixedSigns(cashFlow) {
		return 0, ErrInvalidCashFlowSigns
	}

	durs := make([]float64, len(dates))
	for i := range dates {
		durs[i] = datetime.YearFraction(dates[0], dates[i])
	}

	for i := 0; i < constants.MaxNewtonIterations; i++ {
		next := newtonStep(cashFlow, durs, guess)
		if mathutil.EqualDecimalPlaces(next, guess, constants.ConvergencePlaces) {
			return mathutil.Round(next * constants.PercentageMultiplier), nil
		}
		guess = next
	}
	return 0, ErrDidNotConverge
}

// newtonStep applies one Newton update to guess, using the date-weighted
// NPV and its analytic derivative:
//
//	NPV(r)  = Σ cf[i] · (1+r)^-durs[i]
//	NPV'(r) = Σ -cf[i] · durs[i] · (1+r)^(-1-durs[i])
func newtonStep(cashFlow, durs []float64, guess float64) float64 {
	var sumFx, sumFdx float64
	for i := range cashFlow {
		sumFx += cashFlow[i] / math.Pow(1+guess, durs[i])
		sumFdx += -cashFlow[i] * durs[i] * math.Pow(1+guess, -1-durs[i])
	}
	return guess - sumFx/sumFdx
}
