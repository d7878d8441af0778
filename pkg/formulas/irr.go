package formulas

import (
	"fmt"
	"math"

	"github.com/finwerk/fincalc/pkg/constants"
	"github.com/finwerk/fincalc/pkg/mathutil"
)

// objectiveFunc evaluates a net present value at a candidate rate. An
// error from the objective aborts the surrounding search.
type objectiveFunc func(rate float64) (float64, error)

// IRRInput holds the parameters of an IRR calculation.
type IRRInput struct {
	// Depth caps the number of times the NPV objective may be evaluated
	// before the search is declared exhausted.
	Depth int

	// CashFlow lists the signed flows; index 0 is the initial
	// outlay/inflow and subsequent indices are flows at successive
	// periods.
	CashFlow []float64
}

// IRR returns the internal rate of return of an evenly-spaced cash flow
// series, as a percentage rounded to two decimals. The series must contain
// at least one positive and one negative value, and the scan must locate a
// root within in.Depth objective evaluations.
func IRR(in IRRInput) (float64, error) {
	if !hasMixedSigns(in.CashFlow) {
		return 0, ErrInvalidCashFlowSigns
	}

	// The objective owns the evaluation budget; seekZero itself has no
	// step bound, so a scan that never brackets a root terminates here.
	tries := 1
	npv := func(rate float64) (float64, error) {
		tries++
		if tries > in.Depth {
			return 0, fmt.Errorf("IRR with depth %d: %w", in.Depth, ErrSearchExhausted)
		}
		rrate := 1 + rate/constants.PercentageMultiplier
		value := in.CashFlow[0]
		for i := 1; i < len(in.CashFlow); i++ {
			value += in.CashFlow[i] / math.Pow(rrate, float64(i))
		}
		return value, nil
	}

	root, err := seekZero(npv)
	if err != nil {
		return 0, err
	}
	return mathutil.Round(root), nil
}

// seekZero locates a zero crossing of f with a two-phase scan: step the
// rate up by whole percentage points until f turns non-positive, then back
// down in hundredths until f turns non-negative again. The resolution is
// two decimal places; f is assumed to decrease as the rate grows.
func seekZero(f objectiveFunc) (float64, error) {
	x := constants.CoarseScanStep
	for {
		value, err := f(x)
		if err != nil {
			return 0, err
		}
		if value <= 0 {
			break
		}
		x += constants.CoarseScanStep
	}
	for {
		value, err := f(x)
		if err != nil {
			return 0, err
		}
		if value >= 0 {
			break
		}
		x -= constants.FineScanStep
	}
	return x + constants.FineScanStep, nil
}

// hasMixedSigns reports whether the series contains both a strictly
// positive and a strictly negative entry.
func hasMixedSigns(cashFlow []float64) bool {
	var positive, negative bool
	for _, cf := range cashFlow {
		if cf > 0 {
			positive = true
		}
		if cf < 0 {
			negative = true
		}
	}
	return positive && negative
}
