package lpsolver

import "errors"

// Sentinel errors for lpsolver operations.
var (
	// ErrUnknownVariable indicates a VarID not created by this backend.
	ErrUnknownVariable = errors.New("lpsolver: unknown variable")

	// ErrUnknownConstraint indicates a ConstraintID not created by this
	// backend.
	ErrUnknownConstraint = errors.New("lpsolver: unknown constraint")

	// ErrNegativeBound indicates a variable was declared with a negative
	// upper bound. Every variable this solver supports has a fixed lower
	// bound of 0 ([0,1] or [0,∞) per spec.md §4.6), so a negative upper
	// bound is the only way for the bounds to be out of order.
	ErrNegativeBound = errors.New("lpsolver: bound must be non-negative")

	// ErrDidNotConverge indicates the simplex method exhausted its
	// iteration budget without reaching an optimal basis, or SolveInteger's
	// branch-and-bound exhausted its node budget — a defensive
	// backstop against cycling on degenerate tableaus, not expected to
	// trigger on the problem sizes this package targets.
	ErrDidNotConverge = errors.New("lpsolver: simplex did not converge")
)
