package rmp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvecore/vrptw/rmp"
)

func TestProblem_TrivialRoutesCoverAllCustomers(t *testing.T) {
	p, err := rmp.NewProblem([]int{1, 2})
	require.NoError(t, err)

	_, err = p.AddColumn([]int{0, 1, 3}, 4, []int{1})
	require.NoError(t, err)
	_, err = p.AddColumn([]int{0, 2, 3}, 6, []int{2})
	require.NoError(t, err)

	res, err := p.SolveRelaxation(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 10.0, res.Objective, 1e-6)
	require.Len(t, res.DualByCustomer, 2)
}

func TestProblem_CheaperCombinedRouteWins(t *testing.T) {
	p, err := rmp.NewProblem([]int{1, 2})
	require.NoError(t, err)

	trivial1, err := p.AddColumn([]int{0, 1, 3}, 4, []int{1})
	require.NoError(t, err)
	trivial2, err := p.AddColumn([]int{0, 2, 3}, 6, []int{2})
	require.NoError(t, err)
	combined, err := p.AddColumn([]int{0, 1, 2, 3}, 7, []int{1, 2})
	require.NoError(t, err)

	res, err := p.SolveRelaxation(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 7.0, res.Objective, 1e-6)
	require.InDelta(t, 1.0, res.Allocation[combined], 1e-6)
	require.InDelta(t, 0.0, res.Allocation[trivial1], 1e-6)
	require.InDelta(t, 0.0, res.Allocation[trivial2], 1e-6)
}

func TestProblem_SlackFallbackKeepsFeasibility(t *testing.T) {
	p, err := rmp.NewProblem([]int{1})
	require.NoError(t, err)

	_, err = p.AddSlack(1, 1e6)
	require.NoError(t, err)

	res, err := p.SolveRelaxation(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 1e6, res.Objective, 1e-3)
}

func TestProblem_AddColumnUnknownCustomerRejected(t *testing.T) {
	p, err := rmp.NewProblem([]int{1})
	require.NoError(t, err)

	_, err = p.AddColumn([]int{0, 5, 2}, 3, []int{5})
	require.ErrorIs(t, err, rmp.ErrUnknownCustomer)
}

func TestProblem_AddColumnEmptyIncidenceRejected(t *testing.T) {
	p, err := rmp.NewProblem([]int{1})
	require.NoError(t, err)

	_, err = p.AddColumn([]int{0, 1, 2}, 3, nil)
	require.ErrorIs(t, err, rmp.ErrEmptyIncidence)
}

func TestProblem_DuplicateCustomerRejected(t *testing.T) {
	_, err := rmp.NewProblem([]int{1, 1})
	require.ErrorIs(t, err, rmp.ErrDuplicateCustomer)
}

func TestProblem_SolveIntegerRestoresWholeAllocation(t *testing.T) {
	p, err := rmp.NewProblem([]int{1, 2})
	require.NoError(t, err)

	_, err = p.AddColumn([]int{0, 1, 3}, 4, []int{1})
	require.NoError(t, err)
	_, err = p.AddColumn([]int{0, 2, 3}, 6, []int{2})
	require.NoError(t, err)

	res, err := p.SolveInteger(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 10.0, res.Objective, 1e-6)
	require.Nil(t, res.DualByCustomer)
}
