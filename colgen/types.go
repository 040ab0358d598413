package colgen

import (
	"fmt"

	"github.com/solvecore/vrptw/labeling"
)

// State names a node of the orchestrator's state machine (spec.md §4.7).
type State int

const (
	StateInit State = iota
	StatePricing
	StateMaster
	StateDone
	StateAbort
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StatePricing:
		return "PRICING"
	case StateMaster:
		return "MASTER"
	case StateDone:
		return "DONE"
	case StateAbort:
		return "ABORT"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status classifies how Run concluded. Per spec.md §7, an iteration/time
// budget exhaustion is not an error — it is reported through Result.Status
// instead, mirroring lpsolver.Solution and rmp.Result's plain-struct
// convention of never smuggling a status into an error value.
type Status int

const (
	// StatusOptimal means pricing found no column with reduced cost below
	// -tolerance: the RMP relaxation (or its integer restoration) is
	// optimal over the known column set.
	StatusOptimal Status = iota

	// StatusIterationLimit means Options.MaxIterations pricing rounds ran
	// without convergence.
	StatusIterationLimit

	// StatusTimeout means the context was cancelled or its deadline
	// elapsed before convergence.
	StatusTimeout

	// StatusInfeasible means the RMP relaxation itself came back
	// infeasible (should not happen once INIT's slack fallback has run,
	// but is reported rather than panicked on). Run returns it together
	// with ErrInfeasibleMaster.
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusIterationLimit:
		return "iteration-limit"
	case StatusTimeout:
		return "timeout"
	case StatusInfeasible:
		return "infeasible"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Route is one priced column reported in a Result, carrying its final
// master-problem allocation alongside the route itself.
type Route struct {
	Nodes      []int
	Cost       float64
	Allocation float64
}

// Result is what Run returns: the best-known objective bound, the routes
// with nonzero allocation in the last solved master problem, and the
// status explaining why Run stopped.
type Result struct {
	Status     Status
	Objective  float64
	Routes     []Route
	Iterations int
}

// EventKind names a point in the state machine where Options.Trace fires.
type EventKind int

const (
	EventStateChange EventKind = iota
	EventColumnAdded
	EventPricingRound
)

// Event is passed to Options.Trace at each traced transition. Fields not
// relevant to Kind are left zero.
type Event struct {
	Kind        EventKind
	State       State
	Iteration   int
	Objective   float64
	ReducedCost float64
}

// Options configures an Orchestrator, per spec.md §4.7's recognized
// configuration set.
type Options struct {
	// MaxIterations bounds the number of PRICING/MASTER round trips
	// before Run aborts with StatusIterationLimit.
	MaxIterations int

	// Tolerance is the reduced-cost threshold: a pricing label with cost
	// >= -Tolerance does not trigger a new column.
	Tolerance float64

	// LabelingStrategy selects the labeling solver's frontier-selection
	// policy for every PRICING round.
	LabelingStrategy labeling.Strategy

	// SolveIntegerAfter, if true, makes Run call rmp.Problem.SolveInteger
	// once PRICING finds no improving column, restoring a whole-route
	// solution before returning.
	SolveIntegerAfter bool

	// ColumnsPerIter caps how many improving, non-dominated labels from a
	// single PRICING round are converted into RMP columns. Zero means no
	// cap: add every improving non-dominated destination label found.
	ColumnsPerIter int

	// Trace, if non-nil, is invoked synchronously at every traced state
	// transition. Nil by default; the orchestrator never logs on its own.
	Trace func(Event)
}

// Option configures an Orchestrator at construction.
type Option func(*Options)

// DefaultOptions returns spec.md §4.7's documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations:     100,
		Tolerance:         1e-6,
		LabelingStrategy:  labeling.MinCost,
		SolveIntegerAfter: false,
		ColumnsPerIter:    0,
	}
}

// WithMaxIterations overrides the PRICING/MASTER round cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance overrides the reduced-cost acceptance threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithLabelingStrategy overrides the frontier-selection policy used in
// every PRICING round.
func WithLabelingStrategy(s labeling.Strategy) Option {
	return func(o *Options) { o.LabelingStrategy = s }
}

// WithSolveIntegerAfter enables the final integer-restoration solve.
func WithSolveIntegerAfter(v bool) Option {
	return func(o *Options) { o.SolveIntegerAfter = v }
}

// WithColumnsPerIter caps columns accepted per PRICING round (0 = unlimited).
func WithColumnsPerIter(n int) Option {
	return func(o *Options) { o.ColumnsPerIter = n }
}

// WithTrace installs a state-transition observer.
func WithTrace(fn func(Event)) Option {
	return func(o *Options) { o.Trace = fn }
}
