// Package instancegen generates synthetic, seeded VRPTW instances for
// property-based tests — the Solomon-format parser's counterpart for
// instances that don't need to round-trip through text.
//
// Error policy: only sentinel variables are exposed; context is attached
// with fmt.Errorf("%w: ...") at the call site, never baked into the
// sentinel message, mirroring builder/errors.go's documented convention.
package instancegen

import "errors"

// ErrTooFewCustomers indicates Generate was asked for fewer than one customer.
var ErrTooFewCustomers = errors.New("instancegen: n must be >= 1")

// ErrNeedRandSource indicates Generate was called without a seeded RNG
// (WithSeed or WithRand must be supplied).
var ErrNeedRandSource = errors.New("instancegen: rng is required")

// ErrConstructFailed indicates a customer's coordinates, demand, and time
// window could not be reconciled into a depot-reachable configuration
// within the bounded retry budget — typically because Horizon is too
// small relative to CoordRange for the sampled distance.
var ErrConstructFailed = errors.New("instancegen: construction failed")
