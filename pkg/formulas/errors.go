package formulas

import "errors"

// Errors returned by the rate solvers. Callers match these with errors.Is;
// a failing computation never carries a partial result.
var (
	// ErrInvalidCashFlowSigns indicates a cash flow series without at
	// least one positive and one negative entry, for which no rate of
	// return exists.
	ErrInvalidCashFlowSigns = errors.New("cash flow series requires at least one positive and one negative value")

	// ErrLengthMismatch indicates cash flow and date series of different
	// lengths.
	ErrLengthMismatch = errors.New("cash flow and date series must have the same length")

	// ErrSearchExhausted indicates the IRR scan spent its evaluation
	// budget without locating a root.
	ErrSearchExhausted = errors.New("rate search exhausted its evaluation budget")

	// ErrDidNotConverge indicates the XIRR iteration hit its cap without
	// two consecutive guesses agreeing.
	ErrDidNotConverge = errors.New("rate iteration did not converge")
)
