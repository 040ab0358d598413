package labeling

import (
	"context"
	"errors"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilModel indicates a nil espprc.Model was passed to Solve.
	ErrNilModel = errors.New("labeling: model is nil")

	// ErrBadMaxLabels indicates a negative MaxLabels was configured.
	ErrBadMaxLabels = errors.New("labeling: MaxLabels must not be negative")
)

// Strategy selects which label the frontier pops next (spec.md §4.4: "the
// order in which labels are popped from the frontier is a configurable
// strategy, not part of the algorithm's correctness"). Every strategy
// produces the same set of non-dominated sink labels; only the number of
// labels examined to get there differs.
type Strategy int

const (
	// FIFO pops labels in the order they were pushed (breadth-first).
	FIFO Strategy = iota
	// LIFO pops the most recently pushed label (depth-first).
	LIFO
	// MinTime pops the label with the smallest "time" resource value.
	MinTime
	// MinCost pops the label with the smallest "cost" resource value —
	// the default, since it tends to discover low-cost sink labels (and
	// therefore tighter pruning via dominance) earliest.
	MinCost
	// MinLoad pops the label with the smallest "load" resource value.
	MinLoad
	// MinPathLength pops the label with the fewest arcs traversed.
	MinPathLength
)

// String renders the strategy name for logging/trace output.
func (s Strategy) String() string {
	switch s {
	case FIFO:
		return "FIFO"
	case LIFO:
		return "LIFO"
	case MinTime:
		return "MinTime"
	case MinCost:
		return "MinCost"
	case MinLoad:
		return "MinLoad"
	case MinPathLength:
		return "MinPathLength"
	default:
		return "Unknown"
	}
}

// Options configures a Solve call.
type Options struct {
	// Strategy picks the frontier pop order. Default MinCost.
	Strategy Strategy

	// MaxLabels caps the total number of labels the arena may hold: once
	// it holds at least MaxLabels labels, Solve stops popping and returns
	// whatever sink labels were found so far, with a nil error. The cap is
	// checked before each pop, so one pop's extensions can carry the arena
	// past it. Zero means unlimited; a negative value makes Solve return
	// ErrBadMaxLabels. Guards against runaway enumeration on instances
	// with weak dominance pruning.
	MaxLabels int

	// Trace, if non-nil, is called once per label extension attempt —
	// used by callers that want visibility into the search without a
	// logging dependency (mirrors the orchestrator's Trace hook).
	Trace func(Event)
}

// Option is a functional option for Solve, following the same convention
// as package espprc's resource constructors and the teacher lineage's
// Option/DefaultOptions pattern.
type Option func(*Options)

// WithStrategy sets the frontier pop-order strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithMaxLabels caps the number of labels the search may create.
func WithMaxLabels(n int) Option {
	return func(o *Options) { o.MaxLabels = n }
}

// WithTrace installs a trace hook.
func WithTrace(fn func(Event)) Option {
	return func(o *Options) { o.Trace = fn }
}

// DefaultOptions returns the default Solve configuration: MinCost
// strategy, unlimited labels, no trace hook.
func DefaultOptions() Options {
	return Options{
		Strategy:  MinCost,
		MaxLabels: 0,
		Trace:     nil,
	}
}

// EventKind enumerates the search events reported to a Trace hook.
type EventKind int

const (
	// EventExtend fires once per Extend attempt, feasible or not.
	EventExtend EventKind = iota
	// EventDominated fires when a label is discarded as dominated.
	EventDominated
	// EventSink fires when a label is accepted into the sink.
	EventSink
)

// Event is a single search occurrence, passed to Options.Trace.
type Event struct {
	Kind EventKind
	Node int
}

// ctxErr reports whether ctx has been cancelled, returning its error if so.
func ctxErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
