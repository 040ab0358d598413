package rmp

import (
	"context"
	"fmt"

	"github.com/solvecore/vrptw/lpsolver"
)

// Problem is the restricted master problem of spec.md §4.5: a
// set-covering LP with one covering constraint per customer and one
// variable per accepted column, built atop an lpsolver.Backend.
type Problem struct {
	backend  lpsolver.Backend
	custCons map[int]lpsolver.ConstraintID
	columns  []Column
	varIDs   []lpsolver.VarID
}

// Option configures NewProblem.
type Option func(*Problem)

// WithBackend overrides the LP backend (default lpsolver.NewDenseSimplex()).
// Exposed so tests and alternative deployments can swap in a different
// Backend without package rmp depending on a concrete type.
func WithBackend(b lpsolver.Backend) Option {
	return func(p *Problem) { p.backend = b }
}

// NewProblem builds an empty restricted master over customers: one ">="
// covering constraint per customer id, right-hand side 1, and no columns
// yet. Duplicate ids in customers are rejected.
func NewProblem(customers []int, opts ...Option) (*Problem, error) {
	p := &Problem{custCons: make(map[int]lpsolver.ConstraintID, len(customers))}
	for _, opt := range opts {
		opt(p)
	}
	if p.backend == nil {
		p.backend = lpsolver.NewDenseSimplex()
	}

	for _, c := range customers {
		if _, dup := p.custCons[c]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCustomer, c)
		}
		id, err := p.backend.AddConstraint(lpsolver.GE, 1)
		if err != nil {
			return nil, err
		}
		p.custCons[c] = id
	}

	return p, nil
}

// Customers returns the customer ids this Problem covers, in no
// particular order.
func (p *Problem) Customers() []int {
	out := make([]int, 0, len(p.custCons))
	for c := range p.custCons {
		out = append(out, c)
	}

	return out
}

// AddColumn accepts a priced route into the master problem: a continuous
// variable bounded [0,1] with objective coefficient cost, contributing 1
// to the covering constraint of every customer in incidence. Per
// spec.md §3, once added a column is never removed.
func (p *Problem) AddColumn(route []int, cost float64, incidence []int) (ColumnID, error) {
	if len(incidence) == 0 {
		return 0, ErrEmptyIncidence
	}
	for _, c := range incidence {
		if _, ok := p.custCons[c]; !ok {
			return 0, fmt.Errorf("%w: %d", ErrUnknownCustomer, c)
		}
	}

	v, err := p.backend.AddVariable(cost, 1)
	if err != nil {
		return 0, err
	}
	for _, c := range incidence {
		if err := p.backend.SetCoefficient(v, p.custCons[c], 1); err != nil {
			return 0, err
		}
	}

	p.columns = append(p.columns, Column{Route: route, Cost: cost, Incidence: incidence})
	p.varIDs = append(p.varIDs, v)

	return ColumnID(len(p.columns) - 1), nil
}

// AddSlack adds a [0,1]-bounded slack variable covering exactly customer
// at the given (typically large) cost, guaranteeing the master problem
// stays feasible even when no trivial single-customer route is itself
// time/capacity feasible (spec.md §4.5's big-M fallback). A value of 1
// alone satisfies that customer's ">= 1" covering constraint.
func (p *Problem) AddSlack(customer int, cost float64) (ColumnID, error) {
	return p.AddColumn(nil, cost, []int{customer})
}

// Column returns the column stored at id.
func (p *Problem) Column(id ColumnID) Column {
	return p.columns[id]
}

// Len reports how many columns have been added.
func (p *Problem) Len() int {
	return len(p.columns)
}

// SolveRelaxation solves the LP relaxation and translates the backend's
// Solution into rmp's customer/column vocabulary.
func (p *Problem) SolveRelaxation(ctx context.Context) (Result, error) {
	sol, err := p.backend.SolveRelaxation(ctx)
	if err != nil {
		return Result{}, err
	}

	return p.translate(sol), nil
}

// SolveInteger solves the master problem restricted to integer column
// weights — the final restoration step of spec.md §4.5.
func (p *Problem) SolveInteger(ctx context.Context) (Result, error) {
	sol, err := p.backend.SolveInteger(ctx)
	if err != nil {
		return Result{}, err
	}

	return p.translate(sol), nil
}

func (p *Problem) translate(sol lpsolver.Solution) Result {
	res := Result{Status: sol.Status, Objective: sol.Objective}
	if sol.Status != lpsolver.StatusOptimal {
		return res
	}

	res.Allocation = make(map[ColumnID]float64, len(p.columns))
	for i, v := range p.varIDs {
		res.Allocation[ColumnID(i)] = sol.Primal[v]
	}

	if sol.Dual != nil {
		res.DualByCustomer = make(map[int]float64, len(p.custCons))
		for c, consID := range p.custCons {
			res.DualByCustomer[c] = sol.Dual[consID]
		}
	}

	return res
}
