package instancegen

import "math/rand"

// Option customizes Generate's synthetic-instance parameters. Mirrors
// builder.BuilderOption: option constructors never panic and silently
// ignore meaningless input, leaving the prior value in place.
type Option func(cfg *genConfig)

// genConfig holds Generate's configurable parameters, defaulted by
// newGenConfig and then overridden in order by the supplied Options.
type genConfig struct {
	rng            *rand.Rand
	vehicles       int
	capacity       int64
	coordRange     float64
	demandMax      int64
	horizon        float64
	serviceTime    float64
	minWindowWidth float64
	maxAttempts    int
}

// newGenConfig returns defaults (a loosely Solomon-R101-shaped instance:
// 100x100 coordinate square, capacity 200, 1000-unit planning horizon)
// then applies opts in order.
func newGenConfig(opts ...Option) *genConfig {
	cfg := &genConfig{
		rng:            nil,
		vehicles:       25,
		capacity:       200,
		coordRange:     100,
		demandMax:      20,
		horizon:        1000,
		serviceTime:    10,
		minWindowWidth: 30,
		maxAttempts:    5,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand seeded with seed and installs it.
func WithSeed(seed int64) Option {
	return func(cfg *genConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs an explicit *rand.Rand. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *genConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithVehicles overrides the generated vehicle count and capacity.
func WithVehicles(k int, q int64) Option {
	return func(cfg *genConfig) {
		if k > 0 {
			cfg.vehicles = k
		}
		if q > 0 {
			cfg.capacity = q
		}
	}
}

// WithCoordRange overrides the side length of the square customer
// coordinates are sampled from, [0, max]x[0, max]. A non-positive max is
// a no-op.
func WithCoordRange(max float64) Option {
	return func(cfg *genConfig) {
		if max > 0 {
			cfg.coordRange = max
		}
	}
}

// WithDemandRange overrides the maximum per-customer demand sampled
// (demands are drawn from [1, max]). A non-positive max is a no-op.
func WithDemandRange(max int64) Option {
	return func(cfg *genConfig) {
		if max > 0 {
			cfg.demandMax = max
		}
	}
}

// WithHorizon overrides the depot's closing time (and thus the planning
// horizon every customer window must fit inside). A non-positive horizon
// is a no-op.
func WithHorizon(horizon float64) Option {
	return func(cfg *genConfig) {
		if horizon > 0 {
			cfg.horizon = horizon
		}
	}
}

// WithServiceTime overrides the fixed per-customer service duration. A
// negative value is a no-op.
func WithServiceTime(s float64) Option {
	return func(cfg *genConfig) {
		if s >= 0 {
			cfg.serviceTime = s
		}
	}
}
