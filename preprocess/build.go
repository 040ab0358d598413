package preprocess

import (
	"github.com/solvecore/vrptw/instance"
	"github.com/solvecore/vrptw/network"
)

// Build materializes a validated instance.Instance into a network.Graph
// with a split depot: node 0 is the origin copy and node N+1 is the
// destination copy, both placed at the depot's coordinates in the cost
// matrix and carrying its time window
// (spec.md §3's split-depot convention, SPEC_FULL.md §4.10). Customers
// keep their ids, 1..N.
//
// Arcs are filtered per spec.md §6: (i,j) is dropped if the earliest
// possible arrival at j — departing i no earlier than a_i, plus travel
// time τ_ij (which already absorbs i's service time) — exceeds j's due
// date, or if the two endpoints' demands alone already exceed vehicle
// capacity Q.
func Build(inst *instance.Instance) (*network.Graph, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	destID := inst.N + 1
	depot := inst.Depot()

	g := network.NewGraph(network.WithCapacity(inst.N + 2))

	if err := g.AddNode(network.Node{
		ID:        0,
		ReadyTime: depot.ReadyTime,
		DueTime:   depot.DueTime,
	}); err != nil {
		return nil, err
	}
	for id := 1; id <= inst.N; id++ {
		c, _ := inst.Customer(id)
		if err := g.AddNode(network.Node{
			ID:          id,
			Demand:      c.Demand,
			ServiceTime: c.ServiceTime,
			ReadyTime:   c.ReadyTime,
			DueTime:     c.DueTime,
		}); err != nil {
			return nil, err
		}
	}
	if err := g.AddNode(network.Node{
		ID:        destID,
		ReadyTime: depot.ReadyTime,
		DueTime:   depot.DueTime,
	}); err != nil {
		return nil, err
	}

	coords := make([]struct{ X, Y float64 }, destID+1)
	attrs := func(id int) (demand int64, service, ready, due float64) {
		if id == 0 || id == destID {
			return 0, 0, depot.ReadyTime, depot.DueTime
		}
		c, _ := inst.Customer(id)

		return c.Demand, c.ServiceTime, c.ReadyTime, c.DueTime
	}
	for id := 0; id <= destID; id++ {
		if id == 0 || id == destID {
			coords[id] = struct{ X, Y float64 }{depot.X, depot.Y}
			continue
		}
		c, _ := inst.Customer(id)
		coords[id] = struct{ X, Y float64 }{c.X, c.Y}
	}

	costs := CostMatrix(coords)

	for i := 0; i <= destID; i++ {
		if i == destID {
			continue // destination has no outgoing arcs
		}
		di, si, ai, _ := attrs(i)

		for j := 0; j <= destID; j++ {
			if j == 0 || j == i {
				continue // nothing arrives back at the origin; no self-arcs
			}
			dj, _, _, bj := attrs(j)

			if di+dj > inst.Q {
				continue
			}

			cost := costs[i][j]
			travel := TravelTime(cost, si)
			if ai+travel > bj {
				continue
			}

			if err := g.AddArc(i, j, cost, travel); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
