package lpsolver

import (
	"context"
	"math"
)

const (
	eps           = 1e-9
	maxIterations = 10000
	maxBBNodes    = 100000
)

// varSpec is one AddVariable/AddInteger call's declaration.
type varSpec struct {
	objCoef float64
	upper   float64
	integer bool
}

// consSpec is one AddConstraint call's declaration.
type consSpec struct {
	sense Sense
	rhs   float64
}

// rowSpec is a fully materialized constraint row ready for tableau
// construction: a dense coefficient vector over the structural variables,
// a sense, and a right-hand side.
type rowSpec struct {
	sense Sense
	rhs   float64
	coef  []float64
}

// DenseSimplex is the concrete Backend: a two-phase primal simplex solver
// over a dense row-major tableau (tableau, adapted from the teacher's
// matrix.Dense). Variables always have lower bound 0; finite upper
// bounds are materialized as extra "x_j <= upper" rows at solve time
// rather than handled by a bounded-variable simplex variant, trading a
// little efficiency for a much simpler, easier-to-verify pivoting core —
// acceptable since RMP columns problems (spec.md §4.5) are small.
type DenseSimplex struct {
	vars []varSpec
	cons []consSpec
	coef map[[2]int]float64
}

var _ Backend = (*DenseSimplex)(nil)

// NewDenseSimplex returns an empty problem builder.
func NewDenseSimplex() *DenseSimplex {
	return &DenseSimplex{coef: make(map[[2]int]float64)}
}

func (s *DenseSimplex) addVar(objCoef, upper float64, integer bool) (VarID, error) {
	if upper < 0 {
		return 0, ErrNegativeBound
	}
	s.vars = append(s.vars, varSpec{objCoef: objCoef, upper: upper, integer: integer})

	return VarID(len(s.vars) - 1), nil
}

func (s *DenseSimplex) AddVariable(objCoef, upper float64) (VarID, error) {
	return s.addVar(objCoef, upper, false)
}

func (s *DenseSimplex) AddInteger(objCoef, upper float64) (VarID, error) {
	return s.addVar(objCoef, upper, true)
}

func (s *DenseSimplex) AddConstraint(sense Sense, rhs float64) (ConstraintID, error) {
	s.cons = append(s.cons, consSpec{sense: sense, rhs: rhs})

	return ConstraintID(len(s.cons) - 1), nil
}

func (s *DenseSimplex) SetCoefficient(v VarID, c ConstraintID, coef float64) error {
	if int(v) < 0 || int(v) >= len(s.vars) {
		return ErrUnknownVariable
	}
	if int(c) < 0 || int(c) >= len(s.cons) {
		return ErrUnknownConstraint
	}
	s.coef[[2]int{int(v), int(c)}] = coef

	return nil
}

// buildRows materializes every user constraint, every finite variable
// upper bound, and every branch-and-bound extra constraint into dense
// rowSpecs. extraCoef is keyed by [varIdx, index-within-extraCons].
func (s *DenseSimplex) buildRows(extraCons []consSpec, extraCoef map[[2]int]float64) []rowSpec {
	n := len(s.vars)
	rows := make([]rowSpec, 0, len(s.cons)+len(s.vars)+len(extraCons))

	for ci, c := range s.cons {
		row := make([]float64, n)
		for vi := 0; vi < n; vi++ {
			if v, ok := s.coef[[2]int{vi, ci}]; ok {
				row[vi] = v
			}
		}
		rows = append(rows, rowSpec{sense: c.sense, rhs: c.rhs, coef: row})
	}

	for vi, v := range s.vars {
		if !math.IsInf(v.upper, 1) {
			row := make([]float64, n)
			row[vi] = 1
			rows = append(rows, rowSpec{sense: LE, rhs: v.upper, coef: row})
		}
	}

	for ei, ec := range extraCons {
		row := make([]float64, n)
		for vi := 0; vi < n; vi++ {
			if v, ok := extraCoef[[2]int{vi, ei}]; ok {
				row[vi] = v
			}
		}
		rows = append(rows, rowSpec{sense: ec.sense, rhs: ec.rhs, coef: row})
	}

	return rows
}

func (s *DenseSimplex) objective() []float64 {
	obj := make([]float64, len(s.vars))
	for i, v := range s.vars {
		obj[i] = v.objCoef
	}

	return obj
}

func (s *DenseSimplex) SolveRelaxation(ctx context.Context) (Solution, error) {
	if err := ctxErr(ctx); err != nil {
		return Solution{}, err
	}

	n := len(s.vars)
	objCoef := s.objective()
	rows := s.buildRows(nil, nil)

	primal, dual, status, err := solveTableau(n, rows, objCoef, maxIterations)
	if err != nil {
		return Solution{}, err
	}
	if status != StatusOptimal {
		return Solution{Status: status}, nil
	}

	sol := Solution{
		Status: StatusOptimal,
		Primal: make(map[VarID]float64, n),
		Dual:   make(map[ConstraintID]float64, len(s.cons)),
	}
	for i := 0; i < n; i++ {
		sol.Primal[VarID(i)] = primal[i]
		sol.Objective += objCoef[i] * primal[i]
	}
	for i := range s.cons {
		sol.Dual[ConstraintID(i)] = dual[i]
	}

	return sol, nil
}

func (s *DenseSimplex) SolveInteger(ctx context.Context) (Solution, error) {
	if err := ctxErr(ctx); err != nil {
		return Solution{}, err
	}

	budget := maxBBNodes
	best, bestObj, found, err := s.branchAndBound(ctx, nil, nil, math.Inf(1), &budget)
	if err != nil {
		return Solution{}, err
	}
	if !found {
		return Solution{Status: StatusInfeasible}, nil
	}

	sol := Solution{Status: StatusOptimal, Objective: bestObj, Primal: make(map[VarID]float64, len(s.vars))}
	for i := range s.vars {
		sol.Primal[VarID(i)] = best[i]
	}

	return sol, nil
}

// branchAndBound explores the branch-and-bound tree depth-first,
// pruning any node whose LP relaxation bound is no better than the
// current incumbent. Grounded on the same depth-first, bound-pruned
// search shape as the labeling solver's frontier, specialized to a
// binary tree over one fractional integer variable per level.
func (s *DenseSimplex) branchAndBound(ctx context.Context, extraCons []consSpec, extraCoef map[[2]int]float64, incumbent float64, budget *int) ([]float64, float64, bool, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, 0, false, err
	}
	*budget--
	if *budget <= 0 {
		return nil, 0, false, ErrDidNotConverge
	}

	n := len(s.vars)
	objCoef := s.objective()
	rows := s.buildRows(extraCons, extraCoef)

	primal, _, status, err := solveTableau(n, rows, objCoef, maxIterations)
	if err != nil {
		return nil, 0, false, err
	}
	if status != StatusOptimal {
		return nil, 0, false, nil
	}

	obj := 0.0
	for i := 0; i < n; i++ {
		obj += objCoef[i] * primal[i]
	}
	if obj >= incumbent-eps {
		return nil, 0, false, nil
	}

	branchVar := -1
	for i, v := range s.vars {
		if !v.integer {
			continue
		}
		frac := primal[i] - math.Floor(primal[i])
		if frac > eps && frac < 1-eps {
			branchVar = i

			break
		}
	}
	if branchVar == -1 {
		return primal, obj, true, nil
	}

	floorCons := append(append([]consSpec(nil), extraCons...), consSpec{sense: LE, rhs: math.Floor(primal[branchVar])})
	floorCoef := cloneCoef(extraCoef)
	floorCoef[[2]int{branchVar, len(floorCons) - 1}] = 1
	b1, o1, f1, err := s.branchAndBound(ctx, floorCons, floorCoef, incumbent, budget)
	if err != nil {
		return nil, 0, false, err
	}
	if f1 && o1 < incumbent {
		incumbent = o1
	}

	ceilCons := append(append([]consSpec(nil), extraCons...), consSpec{sense: GE, rhs: math.Ceil(primal[branchVar])})
	ceilCoef := cloneCoef(extraCoef)
	ceilCoef[[2]int{branchVar, len(ceilCons) - 1}] = 1
	b2, o2, f2, err := s.branchAndBound(ctx, ceilCons, ceilCoef, incumbent, budget)
	if err != nil {
		return nil, 0, false, err
	}

	switch {
	case f1 && f2:
		if o1 <= o2 {
			return b1, o1, true, nil
		}

		return b2, o2, true, nil
	case f1:
		return b1, o1, true, nil
	case f2:
		return b2, o2, true, nil
	default:
		return nil, 0, false, nil
	}
}

func cloneCoef(m map[[2]int]float64) map[[2]int]float64 {
	out := make(map[[2]int]float64, len(m)+1)
	for k, v := range m {
		out[k] = v
	}

	return out
}

// ctxErr reports whether ctx has already been cancelled.
func ctxErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// solveTableau runs two-phase primal simplex over n structural variables
// and the given rows, minimizing objCoef·x. Returns primal values (len n)
// and dual prices (one per row, including bound/branch rows — callers
// pick out only the rows they care about).
func solveTableau(n int, rows []rowSpec, objCoef []float64, maxIter int) ([]float64, []float64, Status, error) {
	m := len(rows)
	if m == 0 {
		for j := 0; j < n; j++ {
			if objCoef[j] < -eps {
				return nil, nil, StatusUnbounded, nil
			}
		}

		return make([]float64, n), make([]float64, 0), StatusOptimal, nil
	}

	senses := make([]Sense, m)
	rhs := make([]float64, m)
	coefRows := make([][]float64, m)
	for i, r := range rows {
		c := append([]float64(nil), r.coef...)
		sense := r.sense
		rv := r.rhs
		if rv < 0 {
			rv = -rv
			for j := range c {
				c[j] = -c[j]
			}
			switch sense {
			case LE:
				sense = GE
			case GE:
				sense = LE
			}
		}
		senses[i] = sense
		rhs[i] = rv
		coefRows[i] = c
	}

	slackOffset := n
	artCol := make([]int, m)
	numArt := 0
	for i, sense := range senses {
		if sense == LE {
			artCol[i] = -1
		} else {
			artCol[i] = numArt
			numArt++
		}
	}
	artOffset := slackOffset + m
	trackOffset := artOffset + numArt
	rhsCol := trackOffset + m
	totalCols := rhsCol + 1

	tab := newTableau(m+1, totalCols)
	basis := make([]int, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if coefRows[i][j] != 0 {
				tab.Set(i, j, coefRows[i][j])
			}
		}
		switch senses[i] {
		case LE:
			tab.Set(i, slackOffset+i, 1)
			basis[i] = slackOffset + i
		case GE:
			tab.Set(i, slackOffset+i, -1)
			tab.Set(i, artOffset+artCol[i], 1)
			basis[i] = artOffset + artCol[i]
		case EQ:
			tab.Set(i, artOffset+artCol[i], 1)
			basis[i] = artOffset + artCol[i]
		}
		tab.Set(i, trackOffset+i, 1)
		tab.Set(i, rhsCol, rhs[i])
	}

	if numArt > 0 {
		phase1Cost := make([]float64, totalCols)
		for i := 0; i < m; i++ {
			if artCol[i] >= 0 {
				phase1Cost[artOffset+artCol[i]] = 1
			}
		}
		setObjective(tab, m, phase1Cost, basis)

		candidates := make([]bool, totalCols)
		for j := 0; j < artOffset+numArt; j++ {
			candidates[j] = true
		}

		status, err := simplexIterate(tab, m, basis, candidates, maxIter)
		if err != nil {
			return nil, nil, 0, err
		}
		if status == StatusUnbounded || -tab.At(m, rhsCol) > 1e-7 {
			return nil, nil, StatusInfeasible, nil
		}
	}

	phase2Cost := make([]float64, totalCols)
	copy(phase2Cost, objCoef)
	setObjective(tab, m, phase2Cost, basis)

	candidates := make([]bool, totalCols)
	for j := 0; j < slackOffset+m; j++ {
		candidates[j] = true
	}

	status, err := simplexIterate(tab, m, basis, candidates, maxIter)
	if err != nil {
		return nil, nil, 0, err
	}
	if status == StatusUnbounded {
		return nil, nil, StatusUnbounded, nil
	}

	primal := make([]float64, n)
	for i := 0; i < m; i++ {
		if basis[i] < n {
			primal[basis[i]] = tab.At(i, rhsCol)
		}
	}

	dual := make([]float64, m)
	for i := 0; i < m; i++ {
		dual[i] = -tab.At(m, trackOffset+i)
	}

	return primal, dual, StatusOptimal, nil
}

// setObjective writes cost into the tableau's objective row (row index m)
// and prices out every basic column to zero, turning the raw cost row
// into the standard reduced-cost row (c_j - z_j) relative to basis.
func setObjective(tab *tableau, m int, cost []float64, basis []int) {
	for j := 0; j < tab.cols; j++ {
		tab.Set(m, j, cost[j])
	}
	for i := 0; i < m; i++ {
		factor := tab.At(m, basis[i])
		if factor == 0 {
			continue
		}
		for j := 0; j < tab.cols; j++ {
			tab.Add(m, j, -factor*tab.At(i, j))
		}
	}
}

// simplexIterate runs primal simplex pivots using Bland's rule (smallest
// index entering column, smallest-basis-index tie-break on the leaving
// row) to guarantee termination without cycling, restricted to the
// columns flagged in candidates (phase 1 excludes tracking columns,
// phase 2 additionally excludes artificial columns).
func simplexIterate(tab *tableau, m int, basis []int, candidates []bool, maxIter int) (Status, error) {
	rhsCol := tab.cols - 1
	for iter := 0; iter < maxIter; iter++ {
		pc := -1
		for j := 0; j < rhsCol; j++ {
			if candidates[j] && tab.At(m, j) < -eps {
				pc = j

				break
			}
		}
		if pc == -1 {
			return StatusOptimal, nil
		}

		pr := -1
		best := math.Inf(1)
		for i := 0; i < m; i++ {
			a := tab.At(i, pc)
			if a <= eps {
				continue
			}
			ratio := tab.At(i, rhsCol) / a
			if pr == -1 || ratio < best-eps || (math.Abs(ratio-best) <= eps && basis[i] < basis[pr]) {
				best = ratio
				pr = i
			}
		}
		if pr == -1 {
			return StatusUnbounded, nil
		}

		tab.pivot(pr, pc)
		basis[pr] = pc
	}

	return 0, ErrDidNotConverge
}
