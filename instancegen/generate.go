package instancegen

import (
	"fmt"
	"math"

	"github.com/solvecore/vrptw/instance"
)

const methodGenerate = "Generate"

// Generate builds a random instance.Instance with n customers placed in a
// [0,coordRange]^2 square around a centered depot, retrying each
// customer's window sampling up to a bounded attempt limit until it finds
// a configuration the depot can actually reach and return from within its
// own window — the same stub-matching discipline as
// builder.RandomRegular's bounded-retry construction, applied to time
// windows instead of graph edges.
//
// Generate requires a seeded RNG (WithSeed or WithRand); it never falls
// back to an unseeded source, so callers get reproducible instances.
func Generate(n int, opts ...Option) (*instance.Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrTooFewCustomers)
	}

	cfg := newGenConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	depotX, depotY := cfg.coordRange/2, cfg.coordRange/2
	customers := make([]instance.Customer, n+1)
	customers[0] = instance.Customer{
		ID: 0, X: depotX, Y: depotY,
		ReadyTime: 0, DueTime: cfg.horizon,
	}

	for id := 1; id <= n; id++ {
		c, err := generateCustomer(cfg, id, depotX, depotY)
		if err != nil {
			return nil, err
		}
		customers[id] = c
	}

	inst := &instance.Instance{N: n, K: cfg.vehicles, Q: cfg.capacity, Customers: customers}
	if err := instance.Validate(inst); err != nil {
		return nil, fmt.Errorf("%s: generated instance failed validation: %w", methodGenerate, err)
	}

	return inst, nil
}

// generateCustomer samples coordinates, demand, and a time window for
// customer id, retrying the window up to cfg.maxAttempts times until the
// depot can reach it and return within the planning horizon.
func generateCustomer(cfg *genConfig, id int, depotX, depotY float64) (instance.Customer, error) {
	x := cfg.rng.Float64() * cfg.coordRange
	y := cfg.rng.Float64() * cfg.coordRange
	dist := euclid(depotX, depotY, x, y)

	demandMax := cfg.demandMax
	if demandMax > cfg.capacity {
		demandMax = cfg.capacity
	}
	demand := int64(1)
	if demandMax > 1 {
		demand = 1 + cfg.rng.Int63n(demandMax)
	}

	slack := cfg.horizon - cfg.minWindowWidth - 2*dist - cfg.serviceTime
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		if slack <= 0 {
			continue
		}
		ready := cfg.rng.Float64() * slack
		width := cfg.minWindowWidth + cfg.rng.Float64()*slack
		due := ready + width
		if due > cfg.horizon {
			due = cfg.horizon
		}

		if dist > due { // depot cannot reach this customer in time
			continue
		}
		if ready+cfg.serviceTime+dist > cfg.horizon { // customer cannot return to depot in time
			continue
		}

		return instance.Customer{
			ID: id, X: x, Y: y, Demand: demand,
			ReadyTime: ready, DueTime: due, ServiceTime: cfg.serviceTime,
		}, nil
	}

	return instance.Customer{}, fmt.Errorf("%s: customer %d: %w", methodGenerate, id, ErrConstructFailed)
}

func euclid(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1

	return math.Sqrt(dx*dx + dy*dy)
}
