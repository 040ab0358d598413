package preprocess_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvecore/vrptw/instance"
	"github.com/solvecore/vrptw/preprocess"
)

func parseInstance(t *testing.T, text string) *instance.Instance {
	t.Helper()
	inst, err := instance.Parse(strings.NewReader(text))
	require.NoError(t, err)

	return inst
}

func TestBuild_NilInstanceRejected(t *testing.T) {
	_, err := preprocess.Build(nil)
	require.ErrorIs(t, err, preprocess.ErrNilInstance)
}

func TestBuild_SplitDepotNodesPresent(t *testing.T) {
	text := "VEHICLE\nNUMBER CAPACITY\n10 100\nCUSTOMER\n" +
		"0 0 0 0 0 100 0\n" +
		"1 10 0 5 0 100 0\n" +
		"2 0 10 5 0 100 0\n"
	inst := parseInstance(t, text)

	g, err := preprocess.Build(inst)
	require.NoError(t, err)
	require.True(t, g.HasNode(0))
	require.True(t, g.HasNode(1))
	require.True(t, g.HasNode(2))
	require.True(t, g.HasNode(3)) // N+1 destination copy

	dest, err := g.Node(3)
	require.NoError(t, err)
	require.Equal(t, 0.0, dest.ReadyTime)
	require.Equal(t, 100.0, dest.DueTime)
}

func TestBuild_DestinationHasNoOutgoingArcs(t *testing.T) {
	text := "VEHICLE\nNUMBER CAPACITY\n10 100\nCUSTOMER\n" +
		"0 0 0 0 0 100 0\n" +
		"1 10 0 5 0 100 0\n"
	inst := parseInstance(t, text)

	g, err := preprocess.Build(inst)
	require.NoError(t, err)
	require.Empty(t, g.Arcs(2)) // destination id = N+1 = 2
}

func TestBuild_OriginHasNoIncomingArcs(t *testing.T) {
	text := "VEHICLE\nNUMBER CAPACITY\n10 100\nCUSTOMER\n" +
		"0 0 0 0 0 100 0\n" +
		"1 10 0 5 0 100 0\n"
	inst := parseInstance(t, text)

	g, err := preprocess.Build(inst)
	require.NoError(t, err)

	_, err = g.Arc(1, 0)
	require.Error(t, err)
}

func TestBuild_CostIsTruncatedEuclideanDistance(t *testing.T) {
	text := "VEHICLE\nNUMBER CAPACITY\n10 100\nCUSTOMER\n" +
		"0 0 0 0 0 100 0\n" +
		"1 3 4 5 0 100 0\n"
	inst := parseInstance(t, text)

	g, err := preprocess.Build(inst)
	require.NoError(t, err)

	a, err := g.Arc(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 5.0, a.Cost, 1e-9)
}

func TestBuild_CapacityFilterDropsOverweightPair(t *testing.T) {
	text := "VEHICLE\nNUMBER CAPACITY\n10 8\nCUSTOMER\n" +
		"0 0 0 0 0 100 0\n" +
		"1 1 0 5 0 100 0\n" +
		"2 2 0 5 0 100 0\n"
	inst := parseInstance(t, text)

	g, err := preprocess.Build(inst)
	require.NoError(t, err)

	_, err = g.Arc(1, 2)
	require.Error(t, err, "demand 5+5=10 exceeds capacity 8")
}

func TestBuild_WindowFilterDropsUnreachablePair(t *testing.T) {
	text := "VEHICLE\nNUMBER CAPACITY\n10 100\nCUSTOMER\n" +
		"0 0 0 0 0 1000 0\n" +
		"1 0 0 1 900 1000 0\n" +
		"2 0 0 1 0 50 0\n"
	inst := parseInstance(t, text)

	g, err := preprocess.Build(inst)
	require.NoError(t, err)

	_, err = g.Arc(1, 2)
	require.Error(t, err, "arriving after customer 1's ready time already exceeds customer 2's due date")
}

func TestBuild_DepotToDepotDirectArcExists(t *testing.T) {
	text := "VEHICLE\nNUMBER CAPACITY\n10 100\nCUSTOMER\n" +
		"0 0 0 0 0 100 0\n" +
		"1 10 0 5 0 100 0\n"
	inst := parseInstance(t, text)

	g, err := preprocess.Build(inst)
	require.NoError(t, err)

	a, err := g.Arc(0, 2) // destination id = N+1 = 2
	require.NoError(t, err)
	require.Equal(t, 0.0, a.Cost)
}
