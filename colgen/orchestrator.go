package colgen

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/solvecore/vrptw/espprc"
	"github.com/solvecore/vrptw/labeling"
	"github.com/solvecore/vrptw/lpsolver"
	"github.com/solvecore/vrptw/rmp"
)

// bigMCost is the objective coefficient assigned to a slack column covering
// a customer with no time/capacity-feasible trivial route, per spec.md
// §4.5's big-M fallback. Large enough to dominate any real route cost in
// benchmark-scale instances without overflowing the simplex tableau.
const bigMCost = 1e6

// Orchestrator runs the column-generation state machine of spec.md §4.7
// over an ESPPRC model and a restricted master problem.
type Orchestrator struct {
	model espprc.Model
	rmp   *rmp.Problem
	opts  Options
}

// New builds an Orchestrator over model and rmp, applying opts atop
// DefaultOptions. rmp is expected to already be constructed over the full
// customer set (rmp.NewProblem) with no columns added yet; Run performs
// INIT seeding itself.
func New(model espprc.Model, problem *rmp.Problem, opts ...Option) *Orchestrator {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Orchestrator{model: model, rmp: problem, opts: cfg}
}

// Columns returns every column known to the underlying restricted master
// problem, in insertion order — component O's get_columns() of spec.md §6.
func (o *Orchestrator) Columns() []rmp.Column {
	out := make([]rmp.Column, o.rmp.Len())
	for i := range out {
		out[i] = o.rmp.Column(rmp.ColumnID(i))
	}

	return out
}

// Run executes INIT, then alternates MASTER and PRICING until PRICING
// finds no column improving the reduced cost beyond -Tolerance, or the
// iteration budget or context deadline is exhausted (spec.md §4.7).
func (o *Orchestrator) Run(ctx context.Context) (Result, error) {
	if o.model == nil {
		return Result{}, ErrNilModel
	}
	if o.rmp == nil {
		return Result{}, ErrNilProblem
	}

	if err := o.seed(ctx); err != nil {
		if isCtxErr(err) {
			return o.result(rmp.Result{}, StatusTimeout, 0), nil
		}

		return Result{}, err
	}

	o.trace(Event{Kind: EventStateChange, State: StateMaster})

	var last rmp.Result
	iteration := 0
	for {
		if err := ctxErr(ctx); err != nil {
			return o.result(last, StatusTimeout, iteration), nil
		}

		res, err := o.rmp.SolveRelaxation(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrSolverBackendFailure, err)
		}
		switch res.Status {
		case lpsolver.StatusInfeasible:
			return Result{Status: StatusInfeasible, Iterations: iteration}, ErrInfeasibleMaster
		case lpsolver.StatusOptimal:
		default:
			return Result{}, fmt.Errorf("%w: master status %s", ErrSolverBackendFailure, res.Status)
		}
		last = res

		if err := o.model.ApplyDuals(res.DualByCustomer); err != nil {
			return Result{}, err
		}

		iteration++
		if iteration > o.opts.MaxIterations {
			return o.result(last, StatusIterationLimit, iteration-1), nil
		}

		o.trace(Event{Kind: EventStateChange, State: StatePricing, Iteration: iteration, Objective: res.Objective})

		if err := ctxErr(ctx); err != nil {
			return o.result(last, StatusTimeout, iteration-1), nil
		}

		arena, pricing, err := labeling.Solve(ctx, o.model, labeling.WithStrategy(o.opts.LabelingStrategy))
		if err != nil {
			return o.result(last, StatusTimeout, iteration-1), nil
		}

		o.trace(Event{Kind: EventPricingRound, Iteration: iteration, ReducedCost: pricing.Cost})

		added, err := o.acceptColumns(arena, pricing)
		if err != nil {
			return Result{}, err
		}
		if added == 0 {
			o.trace(Event{Kind: EventStateChange, State: StateDone, Iteration: iteration})

			return o.finish(ctx, last, iteration)
		}

		o.trace(Event{Kind: EventStateChange, State: StateMaster, Iteration: iteration})
	}
}

// seed implements INIT: for every customer, try the trivial direct route
// (origin, customer, destination); if the model rejects it as infeasible
// under its resource windows/capacity, fall back to a big-M slack column so
// the restricted master is always feasible at MASTER's first solve.
func (o *Orchestrator) seed(ctx context.Context) error {
	customers := append([]int(nil), o.rmp.Customers()...)
	sort.Ints(customers)

	destination := o.model.DestinationNode()
	for _, c := range customers {
		if err := ctxErr(ctx); err != nil {
			return err
		}

		arena := espprc.NewArena()
		root := o.model.InitialLabel(arena)
		mid, ok := o.model.Extend(arena, root, c)
		var final espprc.LabelID
		if ok {
			final, ok = o.model.Extend(arena, mid, destination)
		}

		if ok {
			route := arena.Path(final)
			cost := o.model.RouteCost(arena, final)
			if _, err := o.rmp.AddColumn(route, cost, []int{c}); err != nil {
				return err
			}
			continue
		}

		if _, err := o.rmp.AddSlack(c, bigMCost); err != nil {
			return err
		}
	}

	return nil
}

// acceptColumns converts every non-dominated destination label whose
// reduced cost is below -Tolerance into a new RMP column, capped at
// Options.ColumnsPerIter (0 = unlimited). Returns how many were added.
func (o *Orchestrator) acceptColumns(arena *espprc.Arena, pricing labeling.Result) (int, error) {
	added := 0
	for _, id := range pricing.Labels {
		if o.opts.ColumnsPerIter > 0 && added >= o.opts.ColumnsPerIter {
			break
		}
		if o.model.Cost(arena, id) >= -o.opts.Tolerance {
			continue
		}

		route := arena.Path(id)
		incidence := routeIncidence(route, o.model.OriginNode(), o.model.DestinationNode())
		if len(incidence) == 0 {
			continue
		}
		cost := o.model.RouteCost(arena, id)
		reduced := o.model.Cost(arena, id)
		if _, err := o.rmp.AddColumn(route, cost, incidence); err != nil {
			return added, err
		}
		o.trace(Event{Kind: EventColumnAdded, Objective: cost, ReducedCost: reduced})
		added++
	}

	return added, nil
}

// finish transitions to DONE, optionally running the integer restoration
// solve, and builds the final Result.
func (o *Orchestrator) finish(ctx context.Context, last rmp.Result, iteration int) (Result, error) {
	if !o.opts.SolveIntegerAfter {
		return o.result(last, StatusOptimal, iteration), nil
	}

	res, err := o.rmp.SolveInteger(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSolverBackendFailure, err)
	}
	if res.Status != lpsolver.StatusOptimal {
		return o.result(last, StatusOptimal, iteration), nil
	}

	return o.result(res, StatusOptimal, iteration), nil
}

// result builds a Result from a solved rmp.Result, listing routes with
// nonzero allocation in column-insertion order (deterministic, unlike
// ranging over the allocation map directly).
func (o *Orchestrator) result(res rmp.Result, status Status, iteration int) Result {
	out := Result{Status: status, Objective: res.Objective, Iterations: iteration}
	for i := 0; i < o.rmp.Len(); i++ {
		id := rmp.ColumnID(i)
		alloc, ok := res.Allocation[id]
		if !ok || alloc <= 1e-9 {
			continue
		}
		col := o.rmp.Column(id)
		out.Routes = append(out.Routes, Route{Nodes: col.Route, Cost: col.Cost, Allocation: alloc})
	}

	return out
}

func (o *Orchestrator) trace(e Event) {
	if o.opts.Trace != nil {
		o.opts.Trace(e)
	}
}

func routeIncidence(path []int, origin, destination int) []int {
	out := make([]int, 0, len(path))
	for _, n := range path {
		if n != origin && n != destination {
			out = append(out, n)
		}
	}

	return out
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func isCtxErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
