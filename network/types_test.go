package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvecore/vrptw/network"
)

func TestGraph_AddNodeAndArc(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: 0, ReadyTime: 0, DueTime: 100}))
	require.NoError(t, g.AddNode(network.Node{ID: 1, Demand: 5, ReadyTime: 0, DueTime: 50}))

	require.NoError(t, g.AddArc(0, 1, 4.2, 4.2))

	a, err := g.Arc(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.2, a.Cost)
	require.Equal(t, 4.2, a.DualCost)
}

func TestGraph_AddNodeDuplicate(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: 0}))
	require.ErrorIs(t, g.AddNode(network.Node{ID: 0}), network.ErrDuplicateNode)
}

func TestGraph_AddArcMissingNode(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: 0}))
	require.ErrorIs(t, g.AddArc(0, 1, 1, 1), network.ErrNodeNotFound)
}

func TestGraph_AddArcSelfAndNegativeTime(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: 0}))
	require.ErrorIs(t, g.AddArc(0, 0, 1, 1), network.ErrSelfArc)

	require.NoError(t, g.AddNode(network.Node{ID: 1}))
	require.ErrorIs(t, g.AddArc(0, 1, 1, -1), network.ErrNegativeTime)
}

func TestGraph_SetArcCostOverlay(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: 0}))
	require.NoError(t, g.AddNode(network.Node{ID: 1}))
	require.NoError(t, g.AddArc(0, 1, 10, 1))

	require.NoError(t, g.SetArcCost(0, 1, -3.5))

	a, err := g.Arc(0, 1)
	require.NoError(t, err)
	require.Equal(t, 10.0, a.Cost, "true cost must survive dual-cost overwrite")
	require.Equal(t, -3.5, a.DualCost)
}

func TestGraph_ArcsSortedByDestination(t *testing.T) {
	g := network.NewGraph()
	for _, id := range []int{0, 1, 2, 3} {
		require.NoError(t, g.AddNode(network.Node{ID: id}))
	}
	require.NoError(t, g.AddArc(0, 3, 1, 1))
	require.NoError(t, g.AddArc(0, 1, 1, 1))
	require.NoError(t, g.AddArc(0, 2, 1, 1))

	arcs := g.Arcs(0)
	require.Len(t, arcs, 3)
	require.Equal(t, []int{1, 2, 3}, []int{arcs[0].To, arcs[1].To, arcs[2].To})
}

func TestGraph_Stats(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: 0}))
	require.NoError(t, g.AddNode(network.Node{ID: 1}))
	require.NoError(t, g.AddArc(0, 1, 1, 1))

	s := g.Stats()
	require.Equal(t, 2, s.NodeCount)
	require.Equal(t, 1, s.ArcCount)
}
