// Package vrptw_test provides an end-to-end (integration) check for the
// full pipeline: Solomon-format parsing, preprocessing into an instance
// graph, ESPPTWC model construction, and one column-generation round trip.
package vrptw_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvecore/vrptw/colgen"
	"github.com/solvecore/vrptw/espprc"
	"github.com/solvecore/vrptw/instance"
	"github.com/solvecore/vrptw/preprocess"
	"github.com/solvecore/vrptw/rmp"
)

// solomonR101Subset is the depot plus the first 10 customers of the
// Solomon R101 benchmark, in the standard VEHICLE/CUSTOMER text layout.
const solomonR101Subset = `R101

VEHICLE
NUMBER     CAPACITY
  25         200

CUSTOMER
CUST NO.  XCOORD.  YCOORD.  DEMAND  READY TIME  DUE DATE  SERVICE TIME

    0      35       35        0          0       230          0
    1      41       49        10       161       171         10
    2      35       17        7         50        60         10
    3      55       45        13       116       126         10
    4      55       20        19       149       159         10
    5      15       30        26        34        44         10
    6      25       30        3         99       109         10
    7      20       50        5         81        91         10
    8      10       43        9         95       105         10
    9      55       60        16        97       107         10
   10      30       60        16       124       134         10
`

func TestPipeline_SolomonR101Subset_PricesImprovingColumnOnFirstIteration(t *testing.T) {
	inst, err := instance.Parse(strings.NewReader(solomonR101Subset))
	require.NoError(t, err)
	require.Equal(t, 10, inst.N)

	g, err := preprocess.Build(inst)
	require.NoError(t, err)

	model, err := espprc.NewESPPTWC(g, 0, inst.N+1, inst.Q, inst.N)
	require.NoError(t, err)

	customers := make([]int, inst.N)
	for i := range customers {
		customers[i] = i + 1
	}
	problem, err := rmp.NewProblem(customers)
	require.NoError(t, err)

	var firstPricingCost float64
	sawFirstPricing := false
	orch := colgen.New(model, problem, colgen.WithTrace(func(e colgen.Event) {
		if e.Kind == colgen.EventPricingRound && !sawFirstPricing {
			sawFirstPricing = true
			firstPricingCost = e.ReducedCost
		}
	}))

	res, err := orch.Run(context.Background())
	require.NoError(t, err)
	require.True(t, sawFirstPricing, "orchestrator must run at least one pricing round")
	require.Less(t, firstPricingCost, -1e-6, "seeded trivial routes must leave room for a negative-reduced-cost column")

	require.NotEqual(t, colgen.StatusInfeasible, res.Status)
	for _, route := range res.Routes {
		requireRouteRespectsWindowsAndCapacity(t, inst, route.Nodes)
	}
}

// requireRouteRespectsWindowsAndCapacity re-derives cumulative load and
// arrival time along route directly from the parsed instance, independent
// of the resource catalog the solver itself uses, closing the parse ->
// build -> solve -> reconstruct round trip.
func requireRouteRespectsWindowsAndCapacity(t *testing.T, inst *instance.Instance, route []int) {
	t.Helper()
	if len(route) == 0 {
		return
	}

	var load int64
	var clock float64
	prev := inst.Depot()
	for _, id := range route {
		var cust instance.Customer
		switch id {
		case 0, inst.N + 1:
			cust = inst.Depot()
		default:
			c, ok := inst.Customer(id)
			require.True(t, ok, "route references unknown customer %d", id)
			cust = c
		}

		if id != 0 {
			dx := cust.X - prev.X
			dy := cust.Y - prev.Y
			dist := truncate1(math.Sqrt(dx*dx + dy*dy))
			arrival := clock + dist
			if arrival < cust.ReadyTime {
				arrival = cust.ReadyTime
			}
			require.LessOrEqual(t, arrival, cust.DueTime, "node %d visited outside its window", id)
			clock = arrival + cust.ServiceTime
			load += cust.Demand
		}

		prev = cust
	}

	require.LessOrEqual(t, load, inst.Q, "route exceeds vehicle capacity")
}

func truncate1(x float64) float64 {
	const scale = 10.0
	return math.Trunc(x*scale) / scale
}
