package instancegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvecore/vrptw/instance"
	"github.com/solvecore/vrptw/instancegen"
)

func TestGenerate_ProducesValidInstance(t *testing.T) {
	inst, err := instancegen.Generate(10, instancegen.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, 10, inst.N)
	require.Len(t, inst.Customers, 11)
	require.NoError(t, instance.Validate(inst))
}

func TestGenerate_DeterministicForFixedSeed(t *testing.T) {
	a, err := instancegen.Generate(20, instancegen.WithSeed(7))
	require.NoError(t, err)
	b, err := instancegen.Generate(20, instancegen.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := instancegen.Generate(20, instancegen.WithSeed(1))
	require.NoError(t, err)
	b, err := instancegen.Generate(20, instancegen.WithSeed(2))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestGenerate_TooFewCustomersRejected(t *testing.T) {
	_, err := instancegen.Generate(0, instancegen.WithSeed(1))
	require.ErrorIs(t, err, instancegen.ErrTooFewCustomers)
}

func TestGenerate_NoRandSourceRejected(t *testing.T) {
	_, err := instancegen.Generate(5)
	require.ErrorIs(t, err, instancegen.ErrNeedRandSource)
}

func TestGenerate_CustomVehicleParamsApplied(t *testing.T) {
	inst, err := instancegen.Generate(5, instancegen.WithSeed(3), instancegen.WithVehicles(7, 300))
	require.NoError(t, err)
	require.Equal(t, 7, inst.K)
	require.Equal(t, int64(300), inst.Q)
}

func TestGenerate_TightHorizonFailsConstruction(t *testing.T) {
	_, err := instancegen.Generate(5,
		instancegen.WithSeed(9),
		instancegen.WithCoordRange(1000),
		instancegen.WithHorizon(1),
	)
	require.ErrorIs(t, err, instancegen.ErrConstructFailed)
}
