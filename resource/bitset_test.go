package resource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvecore/vrptw/resource"
)

func TestBitset_WithAndHas(t *testing.T) {
	b := resource.NewBitset(10)
	require.False(t, b.Has(3))

	b2 := b.With(3)
	require.True(t, b2.Has(3))
	require.False(t, b.Has(3), "With must not mutate the receiver")
}

func TestBitset_SubsetOf(t *testing.T) {
	a := resource.NewBitset(10).With(1).With(2)
	b := resource.NewBitset(10).With(1).With(2).With(3)

	require.True(t, a.SubsetOf(b))
	require.False(t, b.SubsetOf(a))
}

func TestBitset_Equal(t *testing.T) {
	a := resource.NewBitset(10).With(5)
	b := resource.NewBitset(10).With(5)
	c := resource.NewBitset(10).With(6)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestBitset_Count(t *testing.T) {
	b := resource.NewBitset(200).With(1).With(100).With(199)
	require.Equal(t, 3, b.Count())
}

func TestBitset_SpansMultipleWords(t *testing.T) {
	b := resource.NewBitset(200).With(130)
	require.True(t, b.Has(130))
	require.False(t, b.Has(129))
}
