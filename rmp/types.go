package rmp

import (
	"errors"

	"github.com/solvecore/vrptw/lpsolver"
)

// Sentinel errors for rmp operations.
var (
	// ErrUnknownCustomer indicates a route or slack referenced a customer
	// id the Problem was not built with.
	ErrUnknownCustomer = errors.New("rmp: unknown customer")

	// ErrEmptyIncidence indicates AddColumn was called with a route that
	// covers no customers — every accepted route must cover at least one
	// (spec.md §4.5: "Master-problem columns are always cost-feasible
	// routes from origin to destination depot").
	ErrEmptyIncidence = errors.New("rmp: column covers no customers")

	// ErrDuplicateCustomer indicates the customer list passed to
	// NewProblem contains the same id twice.
	ErrDuplicateCustomer = errors.New("rmp: duplicate customer id")
)

// ColumnID indexes a column (route or slack) added to a Problem.
type ColumnID int

// Column is one route accepted into the master problem: its node
// sequence, true (undualized) cost, and the set of customers it covers.
// A slack column (added via AddSlack) has a nil Route.
type Column struct {
	Route     []int
	Cost      float64
	Incidence []int
}

// Result is the outcome of solving a Problem, translated from
// lpsolver.Solution into rmp's customer/column vocabulary.
type Result struct {
	Status         lpsolver.Status
	Objective      float64
	Allocation     map[ColumnID]float64
	DualByCustomer map[int]float64
}
