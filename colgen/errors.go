package colgen

import "errors"

// Sentinel errors for the orchestrator, per spec.md §7.
var (
	// ErrNilModel indicates New was called with a nil espprc.Model.
	ErrNilModel = errors.New("colgen: nil model")

	// ErrNilProblem indicates New was called with a nil *rmp.Problem.
	ErrNilProblem = errors.New("colgen: nil rmp problem")

	// ErrInfeasibleMaster corresponds to spec.md §7's InfeasibleMaster:
	// the RMP LP is infeasible even after INIT seeding. Surfaced to the
	// caller; the orchestrator transitions to ABORT.
	ErrInfeasibleMaster = errors.New("colgen: restricted master problem is infeasible")

	// ErrSolverBackendFailure corresponds to spec.md §7's
	// SolverBackendFailure: the LP backend returned an error or a
	// non-optimal, non-infeasible status the orchestrator cannot
	// interpret (e.g. unbounded).
	ErrSolverBackendFailure = errors.New("colgen: lp backend failure")
)
