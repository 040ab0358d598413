// Package lpsolver defines the abstract LP backend capability (component
// B of spec.md §4.6) used by package rmp to solve the restricted master
// problem's LP relaxation, plus one concrete implementation: a dense
// two-phase primal simplex solver adapted from the teacher's row-major
// Dense matrix design (matrix/dense.go's At/Set/indexOf-with-bounds-check
// discipline).
//
// The interface is deliberately pluggable — spec.md §4.6 notes "one
// implementation exists over a commercial solver; others can be added" —
// so callers depend on Backend, not on DenseSimplex, and a production
// deployment could swap in a binding to an external solver without
// touching package rmp.
package lpsolver
