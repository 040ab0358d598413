// Package resource implements the resource catalog (component R of
// spec.md §4.1): a declarative registry mapping a resource name to its
// value kind, window, resource-extension function (REF), feasibility
// predicate, and dominance comparator.
//
// The catalog is fixed after construction and is iterated in registration
// order during both extension and feasibility checking, with a documented
// short-circuit: extension aborts at the first infeasible resource (see
// Catalog.Extend).
//
// Every registered REF must be monotone in the resource's own partial
// order: for all states s ≤ s' and every arc, f(arc, s) ≤ f(arc, s').
// The catalog has no way to verify this mechanically — it is a documented
// contract the caller must uphold (spec.md §4.1) — but ResourceDebugCheck
// offers an opt-in runtime sampling check for development builds.
package resource
