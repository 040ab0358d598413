package espprc

import "errors"

// Sentinel errors for ESPPRC model operations.
var (
	// ErrNoCostResource indicates a model was built without a resource
	// named "cost" — every ESPPRC model needs one for pricing to mean
	// anything (spec.md §3: "cost — scalar; ... no window").
	ErrNoCostResource = errors.New("espprc: model has no cost resource")

	// ErrUnknownArc indicates SetArcCosts referenced an arc absent from
	// the model's underlying instance graph.
	ErrUnknownArc = errors.New("espprc: unknown arc")
)

// Model is the ESPPRC capability interface (component M of spec.md §4.2):
// it binds a problem instance to a resource catalog and exposes
// extension, feasibility, and dominance predicates to the labeling
// solver. A concrete binding for VRPTW is ESPPTWC (component E).
type Model interface {
	// OriginNode returns the origin depot node id.
	OriginNode() int

	// DestinationNode returns the destination depot node id.
	DestinationNode() int

	// InitialLabel creates the root label at the origin with every
	// resource at its lower bound, and returns its id in arena.
	InitialLabel(arena *Arena) LabelID

	// Neighbors returns the outgoing arc destinations from node, in a
	// fixed deterministic order — the labeling solver enumerates exactly
	// these when extending a label at node.
	Neighbors(node int) []int

	// Extend applies every registered REF along the arc (parent's node,
	// to) to the parent label's state, then checks every feasibility
	// predicate at to. Returns the child LabelID and true if feasible,
	// or an undefined LabelID and false otherwise (spec.md §4.2).
	Extend(arena *Arena, parent LabelID, to int) (LabelID, bool)

	// IsTerminal reports whether the label's node is the destination depot.
	IsTerminal(arena *Arena, id LabelID) bool

	// Dominates reports whether label a dominates label b per the
	// generic cross-resource rule of spec.md §3.
	Dominates(arena *Arena, a, b LabelID) bool

	// MutuallyDominated reports whether a and b have identical resource
	// state (the tie-break rule of spec.md §4.4).
	MutuallyDominated(arena *Arena, a, b LabelID) bool

	// Cost returns the current value of the label's cost resource — the
	// reduced cost of the partial path it represents.
	Cost(arena *Arena, id LabelID) float64

	// ResourceValue returns the scalar value of the named resource for a
	// label, and whether that resource exists and is scalar-kinded. Used
	// by the labeling solver's selection strategies (MinTime, MinLoad)
	// without hard-coding a concrete model's resource layout.
	ResourceValue(arena *Arena, id LabelID, name string) (float64, bool)

	// Depth returns the number of arcs traversed since the origin —
	// used by the labeling solver's MinPathLength strategy.
	Depth(arena *Arena, id LabelID) int

	// SetArcCosts replaces the dual-adjusted reduced cost used by the
	// cost REF for every arc, keyed by (from, to). Arcs not present in
	// costs are left unchanged. A lower-level primitive than ApplyDuals,
	// useful for tests that want to set specific arc costs directly.
	SetArcCosts(costs map[[2]int]float64) error

	// ApplyDuals recomputes every arc's reduced cost from the current
	// customer dual prices and pushes the result into the cost REF, per
	// spec.md §4.7: c̃_ij = c_ij − π_j for customer j, with π_j = 0 for
	// depot arcs or customers absent from duals. Called by the
	// orchestrator once per MASTER phase, between solving the RMP
	// relaxation and running pricing.
	ApplyDuals(duals map[int]float64) error

	// RouteCost sums the true (undualized) arc cost along the path ending
	// at label id, independent of whatever reduced cost ApplyDuals last
	// wrote into the cost REF. The orchestrator uses this for the
	// objective coefficient of a new RMP column (spec.md §4.5: "c_r is
	// the route's true (undualized) cost"), since Cost reports the
	// reduced cost the label was priced on.
	RouteCost(arena *Arena, id LabelID) float64
}
