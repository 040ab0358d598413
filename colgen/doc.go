// Package colgen implements the column-generation orchestrator
// (component O of spec.md §4.7): a state machine over {INIT, PRICING,
// MASTER, DONE, ABORT} that alternates solving the restricted master
// problem (package rmp) and pricing new columns via the labeling solver
// (package labeling) over an ESPPRC model (package espprc), until no
// column improves the master's objective beyond tolerance or an
// iteration/time budget is exhausted.
package colgen
