package espprc

import (
	"fmt"

	"github.com/solvecore/vrptw/network"
	"github.com/solvecore/vrptw/resource"
)

// ESPPTWC is the concrete ESPPRC model binding Solomon-style VRPTW data to
// the four resources of spec.md §3: time, load, cost, visited (component
// E). It exists purely to register those four resources against a
// Catalog; alternative variants (backhauls, pickup-and-delivery,
// multi-depot) are expected to be added as siblings, not subclasses, of
// this type, swapping out which resources are registered.
type ESPPTWC struct {
	graph       *network.Graph
	catalog     *resource.Catalog
	origin      int
	destination int
	capacity    int64

	timeIdx, loadIdx, costIdx, visitedIdx int
}

// NewESPPTWC builds the ESPPTWC model over g, with origin/destination
// depot node ids and vehicle capacity Q. customerCount must equal the
// number of customer nodes (ids 1..customerCount) for the visited bit-set
// to be sized correctly.
func NewESPPTWC(g *network.Graph, origin, destination int, capacity int64, customerCount int) (*ESPPTWC, error) {
	isDepot := func(node int) bool { return node == origin || node == destination }

	timeRes := resource.NewScalarResource(
		"time",
		func(originNode int) float64 {
			n, err := g.Node(originNode)
			if err != nil {
				return 0
			}

			return n.ReadyTime
		},
		func(a resource.Arc, parent float64) float64 {
			n, err := g.Node(a.To)
			arrival := parent + a.Time
			if err == nil && n.ReadyTime > arrival {
				arrival = n.ReadyTime
			}

			return arrival
		},
		func(node int, v float64) bool {
			n, err := g.Node(node)
			if err != nil {
				return false
			}

			return v <= n.DueTime
		},
	)

	loadRes := resource.NewScalarResource(
		"load",
		func(int) float64 { return 0 },
		func(a resource.Arc, parent float64) float64 {
			n, err := g.Node(a.To)
			if err != nil {
				return parent
			}

			return parent + float64(n.Demand)
		},
		resource.ConstantWindow(0, float64(capacity)),
	)

	costRes := resource.NewScalarResource(
		"cost",
		func(int) float64 { return 0 },
		func(a resource.Arc, parent float64) float64 { return parent + a.DualCost },
		resource.NoWindow(),
	)

	visitedRes := resource.NewBitsetResource("visited", customerCount, isDepot)

	catalog, err := resource.NewCatalog(timeRes, loadRes, costRes, visitedRes)
	if err != nil {
		return nil, err
	}

	m := &ESPPTWC{
		graph:       g,
		catalog:     catalog,
		origin:      origin,
		destination: destination,
		capacity:    capacity,
		timeIdx:     catalog.Index("time"),
		loadIdx:     catalog.Index("load"),
		costIdx:     catalog.Index("cost"),
		visitedIdx:  catalog.Index("visited"),
	}

	return m, nil
}

func (m *ESPPTWC) OriginNode() int      { return m.origin }
func (m *ESPPTWC) DestinationNode() int { return m.destination }

func (m *ESPPTWC) InitialLabel(arena *Arena) LabelID {
	return arena.Push(Label{
		Node:   m.origin,
		State:  m.catalog.InitialState(m.origin),
		Parent: NoParent,
	})
}

func (m *ESPPTWC) Neighbors(node int) []int {
	arcs := m.graph.Arcs(node)
	out := make([]int, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}

	return out
}

func (m *ESPPTWC) Extend(arena *Arena, parent LabelID, to int) (LabelID, bool) {
	pl := arena.Get(parent)
	na, err := m.graph.Arc(pl.Node, to)
	if err != nil {
		return 0, false
	}

	ra := resource.Arc{From: na.From, To: na.To, Cost: na.Cost, DualCost: na.DualCost, Time: na.Time}
	child, ok := m.catalog.Extend(ra, pl.State)
	if !ok {
		return 0, false
	}

	id := arena.Push(Label{Node: to, State: child, Parent: parent, Depth: pl.Depth + 1})

	return id, true
}

func (m *ESPPTWC) IsTerminal(arena *Arena, id LabelID) bool {
	return arena.Get(id).Node == m.destination
}

func (m *ESPPTWC) Dominates(arena *Arena, a, b LabelID) bool {
	la, lb := arena.Get(a), arena.Get(b)
	if la.Node != lb.Node {
		return false
	}

	return m.catalog.Dominates(la.State, lb.State)
}

func (m *ESPPTWC) MutuallyDominated(arena *Arena, a, b LabelID) bool {
	la, lb := arena.Get(a), arena.Get(b)
	if la.Node != lb.Node {
		return false
	}

	return m.catalog.MutuallyDominated(la.State, lb.State)
}

func (m *ESPPTWC) Cost(arena *Arena, id LabelID) float64 {
	return arena.Get(id).State[m.costIdx].Scalar
}

func (m *ESPPTWC) ResourceValue(arena *Arena, id LabelID, name string) (float64, bool) {
	idx := m.catalog.Index(name)
	if idx < 0 {
		return 0, false
	}
	v := arena.Get(id).State[idx]
	if v.Kind != resource.KindScalar {
		return 0, false
	}

	return v.Scalar, true
}

func (m *ESPPTWC) Depth(arena *Arena, id LabelID) int {
	return arena.Get(id).Depth
}

// Time returns the current time-resource value of a label — exposed for
// the labeling solver's MinTime strategy and for tests.
func (m *ESPPTWC) Time(arena *Arena, id LabelID) float64 {
	return arena.Get(id).State[m.timeIdx].Scalar
}

// Load returns the current load-resource value of a label — exposed for
// the labeling solver's MinLoad strategy and for tests.
func (m *ESPPTWC) Load(arena *Arena, id LabelID) float64 {
	return arena.Get(id).State[m.loadIdx].Scalar
}

func (m *ESPPTWC) SetArcCosts(costs map[[2]int]float64) error {
	for key, c := range costs {
		if err := m.graph.SetArcCost(key[0], key[1], c); err != nil {
			return fmt.Errorf("%w: %d->%d", ErrUnknownArc, key[0], key[1])
		}
	}

	return nil
}

// ApplyDuals recomputes c̃_ij = c_ij - π_j for every arc in the instance
// graph, where π_j is the dual price of customer j's covering constraint
// (0 if j is a depot or absent from duals), and writes the result into
// each arc's DualCost overlay via the cost REF.
func (m *ESPPTWC) ApplyDuals(duals map[int]float64) error {
	for _, from := range m.graph.Nodes() {
		for _, a := range m.graph.Arcs(from) {
			pi := 0.0
			if a.To != m.origin && a.To != m.destination {
				pi = duals[a.To]
			}
			if err := m.graph.SetArcCost(a.From, a.To, a.Cost-pi); err != nil {
				return fmt.Errorf("%w: %d->%d", ErrUnknownArc, a.From, a.To)
			}
		}
	}

	return nil
}

// RouteCost sums the graph's true arc cost (as opposed to the possibly
// dual-adjusted DualCost the cost REF tracks) along the path ending at id.
func (m *ESPPTWC) RouteCost(arena *Arena, id LabelID) float64 {
	path := arena.Path(id)
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		a, err := m.graph.Arc(path[i], path[i+1])
		if err != nil {
			continue
		}
		total += a.Cost
	}

	return total
}

// Incidence returns the set of customer node ids visited by the path
// ending at label id, excluding depots — used by package rmp to build a
// column's covering incidence vector.
func (m *ESPPTWC) Incidence(arena *Arena, id LabelID) []int {
	path := arena.Path(id)
	out := make([]int, 0, len(path))
	for _, n := range path {
		if n != m.origin && n != m.destination {
			out = append(out, n)
		}
	}

	return out
}
