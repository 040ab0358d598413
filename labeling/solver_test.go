package labeling_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvecore/vrptw/espprc"
	"github.com/solvecore/vrptw/labeling"
	"github.com/solvecore/vrptw/network"
)

// buildDiamondInstance builds depot(0) with two alternative routes to
// depot(3): 0->1->3 (cheap, cost 4) and 0->2->3 (expensive, cost 10), plus
// a direct 0->3 arc (cost 20). The direct label visits no customer, so its
// empty visited set keeps either route from dominating it and all three
// labels reach the sink. Capacity is generous and windows are wide open.
func buildDiamondInstance(t *testing.T) *network.Graph {
	t.Helper()
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: 0, DueTime: 1000}))
	require.NoError(t, g.AddNode(network.Node{ID: 1, Demand: 1, DueTime: 1000}))
	require.NoError(t, g.AddNode(network.Node{ID: 2, Demand: 1, DueTime: 1000}))
	require.NoError(t, g.AddNode(network.Node{ID: 3, DueTime: 1000}))

	require.NoError(t, g.AddArc(0, 1, 1, 1))
	require.NoError(t, g.AddArc(1, 3, 3, 3))
	require.NoError(t, g.AddArc(0, 2, 5, 5))
	require.NoError(t, g.AddArc(2, 3, 5, 5))
	require.NoError(t, g.AddArc(0, 3, 20, 20))

	return g
}

func TestSolve_FindsMinimumCostSinkLabel(t *testing.T) {
	g := buildDiamondInstance(t)
	m, err := espprc.NewESPPTWC(g, 0, 3, 10, 2)
	require.NoError(t, err)

	arena, result, err := labeling.Solve(context.Background(), m, labeling.WithStrategy(labeling.MinCost))
	require.NoError(t, err)
	require.NotEmpty(t, result.Labels)
	require.Equal(t, 4.0, result.Cost)

	best := result.Labels[0]
	for _, id := range result.Labels {
		if m.Cost(arena, id) == result.Cost {
			best = id
		}
	}
	require.Equal(t, []int{0, 1, 3}, arena.Path(best))
}

func TestSolve_StrategiesAgreeOnResult(t *testing.T) {
	strategies := []labeling.Strategy{
		labeling.FIFO, labeling.LIFO, labeling.MinTime,
		labeling.MinCost, labeling.MinLoad, labeling.MinPathLength,
	}

	for _, s := range strategies {
		g := buildDiamondInstance(t)
		m, err := espprc.NewESPPTWC(g, 0, 3, 10, 2)
		require.NoError(t, err)

		_, result, err := labeling.Solve(context.Background(), m, labeling.WithStrategy(s))
		require.NoError(t, err, "strategy %s", s)
		require.Equal(t, 4.0, result.Cost, "strategy %s", s)
	}
}

func TestSolve_TraceCountsExtensionAttempts(t *testing.T) {
	g := buildDiamondInstance(t)
	m, err := espprc.NewESPPTWC(g, 0, 3, 10, 2)
	require.NoError(t, err)

	var extends, dominations int
	trace := func(e labeling.Event) {
		switch e.Kind {
		case labeling.EventExtend:
			extends++
		case labeling.EventDominated:
			dominations++
		}
	}

	_, result, err := labeling.Solve(context.Background(), m, labeling.WithTrace(trace))
	require.NoError(t, err)
	require.Equal(t, 4.0, result.Cost)
	require.Positive(t, extends)
}

func TestSolve_NoFeasiblePathReturnsEmptyResult(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: 0, DueTime: 100}))
	require.NoError(t, g.AddNode(network.Node{ID: 1, DueTime: 100}))
	// no arcs at all: destination unreachable from origin.

	m, err := espprc.NewESPPTWC(g, 0, 1, 10, 0)
	require.NoError(t, err)

	_, result, err := labeling.Solve(context.Background(), m)
	require.NoError(t, err)
	require.Empty(t, result.Labels)
	require.Zero(t, result.Cost)
}

func TestSolve_RespectsContextCancellation(t *testing.T) {
	g := buildDiamondInstance(t)
	m, err := espprc.NewESPPTWC(g, 0, 3, 10, 2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = labeling.Solve(ctx, m)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_NilModelRejected(t *testing.T) {
	_, _, err := labeling.Solve(context.Background(), nil)
	require.ErrorIs(t, err, labeling.ErrNilModel)
}

// buildNegativeCompleteInstance builds a complete digraph on depot(0),
// customers 1..customerCount, and destination(customerCount+1), every arc
// costing -1 with no time or capacity pressure. Nothing but elementarity
// (the visited-customer bitset) stops the search from chasing the negative
// cost around a cycle forever: a customer can be entered at most once, so
// every path is bounded at customerCount+2 nodes.
func buildNegativeCompleteInstance(t *testing.T, customerCount int) (*network.Graph, int) {
	t.Helper()
	destination := customerCount + 1
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: 0, DueTime: 1000}))
	for c := 1; c <= customerCount; c++ {
		require.NoError(t, g.AddNode(network.Node{ID: c, DueTime: 1000}))
	}
	require.NoError(t, g.AddNode(network.Node{ID: destination, DueTime: 1000}))

	for from := 0; from <= customerCount; from++ {
		for to := 1; to <= destination; to++ {
			if to == from {
				continue
			}
			require.NoError(t, g.AddArc(from, to, -1, 0))
		}
	}

	return g, destination
}

func TestSolve_NegativeArcCostsStillTerminateViaElementarity(t *testing.T) {
	const customerCount = 4
	g, destination := buildNegativeCompleteInstance(t, customerCount)
	m, err := espprc.NewESPPTWC(g, 0, destination, 1000, customerCount)
	require.NoError(t, err)

	arena, result, err := labeling.Solve(context.Background(), m, labeling.WithStrategy(labeling.MinCost))
	require.NoError(t, err)
	require.NotEmpty(t, result.Labels)
	require.Equal(t, -float64(customerCount+1), result.Cost)

	for _, id := range result.Labels {
		path := arena.Path(id)
		require.LessOrEqual(t, len(path), customerCount+2, "elementarity must cap path length at N+2")

		seen := make(map[int]bool, len(path))
		for _, node := range path {
			require.False(t, seen[node], "path revisits node %d despite elementarity", node)
			seen[node] = true
		}
	}
}

func TestSolve_MaxLabelsBoundsSearch(t *testing.T) {
	g := buildDiamondInstance(t)
	m, err := espprc.NewESPPTWC(g, 0, 3, 10, 2)
	require.NoError(t, err)

	arena, _, err := labeling.Solve(context.Background(), m, labeling.WithMaxLabels(1))
	require.NoError(t, err)
	require.LessOrEqual(t, arena.Len(), 2) // root + at most one extension before the cap halts the loop
}
