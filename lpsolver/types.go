package lpsolver

import "context"

// Sense is a constraint's relational operator.
type Sense int

const (
	// LE is "≤".
	LE Sense = iota
	// EQ is "=".
	EQ
	// GE is "≥".
	GE
)

// String renders the sense for diagnostics.
func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case EQ:
		return "="
	case GE:
		return ">="
	default:
		return "?"
	}
}

// Status classifies the outcome of a solve. Infeasibility and
// unboundedness are modeled as data on the result, not as Go errors.
// Errors are returned for malformed input (unknown ids, bad bounds), for
// an exhausted iteration or node budget (ErrDidNotConverge), and for a
// cancelled context.
type Status int

const (
	// StatusOptimal means the solver found an optimal basic solution.
	StatusOptimal Status = iota
	// StatusInfeasible means no point satisfies every constraint.
	StatusInfeasible
	// StatusUnbounded means the objective is unbounded below over the
	// feasible region.
	StatusUnbounded
)

// String renders the status for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// VarID indexes a variable created by AddVariable.
type VarID int

// ConstraintID indexes a constraint created by AddConstraint.
type ConstraintID int

// Solution is the result of a solve: the objective value, the primal
// value of every variable, and (for LP relaxations) the dual price of
// every constraint. Dual is nil after SolveInteger, since duals are not
// meaningful for an integer program's final basis.
type Solution struct {
	Status    Status
	Objective float64
	Primal    map[VarID]float64
	Dual      map[ConstraintID]float64
}

// Backend is the abstract LP capability of spec.md §4.6: build a problem
// by adding variables and constraints, then solve its LP relaxation or
// its MIP restriction. Every variable this interface supports has lower
// bound 0; Upper may be math.Inf(1) for an unbounded variable.
type Backend interface {
	// AddVariable creates a continuous variable with objective
	// coefficient objCoef and bounds [0, upper]. Returns its id.
	AddVariable(objCoef, upper float64) (VarID, error)

	// AddInteger creates an integer variable, otherwise identical to
	// AddVariable. Only consulted by SolveInteger; SolveRelaxation
	// treats every variable as continuous.
	AddInteger(objCoef, upper float64) (VarID, error)

	// AddConstraint creates a constraint row with the given sense and
	// right-hand side. Returns its id.
	AddConstraint(sense Sense, rhs float64) (ConstraintID, error)

	// SetCoefficient sets variable v's coefficient in constraint c.
	// Coefficients default to 0; calling twice for the same (v, c)
	// overwrites, it does not accumulate.
	SetCoefficient(v VarID, c ConstraintID, coef float64) error

	// SolveRelaxation solves the LP relaxation (every variable treated
	// as continuous) and returns primal values and dual prices.
	SolveRelaxation(ctx context.Context) (Solution, error)

	// SolveInteger solves the problem honoring integrality declared via
	// AddInteger, by branch-and-bound over the LP relaxation. Dual is
	// nil in the returned Solution.
	SolveInteger(ctx context.Context) (Solution, error)
}
