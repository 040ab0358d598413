package resource

import "errors"

// Sentinel errors for resource-catalog operations.
var (
	// ErrEmptyName indicates a Resource with an empty Name() was registered.
	ErrEmptyName = errors.New("resource: empty resource name")

	// ErrDuplicateName indicates two resources were registered under the same name.
	ErrDuplicateName = errors.New("resource: duplicate resource name")

	// ErrKindMismatch indicates a Value of the wrong Kind was supplied to a
	// resource's Extend/FeasibleAt/LessEqual method.
	ErrKindMismatch = errors.New("resource: value kind mismatch")

	// ErrMisdeclared indicates a REF produced a value outside its resource's
	// documented domain, or (when debug-checked) a non-monotone transformation
	// was detected. This corresponds to spec.md §7's ResourceMisdeclared.
	ErrMisdeclared = errors.New("resource: misdeclared resource")
)

// Kind distinguishes the two value shapes spec.md §3 allows for a resource:
// a scalar quantity, or a bit-set indexed by customer node.
type Kind int

const (
	// KindScalar is a single real-valued quantity (time, load, cost, ...).
	KindScalar Kind = iota

	// KindBitset is a bit-set over customer node ids (the visited set).
	KindBitset
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindBitset:
		return "bitset"
	default:
		return "unknown"
	}
}

// Arc is the minimal per-arc information a REF needs: endpoints, base cost,
// travel time, and the current (possibly dual-adjusted) reduced cost. It is
// deliberately decoupled from package network so the resource catalog has
// no dependency on the instance-graph representation; package espprc is
// responsible for translating a network.Arc into a resource.Arc.
type Arc struct {
	From, To int
	Cost     float64 // original, undualized arc cost
	DualCost float64 // current reduced cost used by the cost REF
	Time     float64 // travel time
}

// Value holds a single resource's state for one label. Exactly one of
// Scalar or Bits is meaningful, selected by Kind.
type Value struct {
	Kind   Kind
	Scalar float64
	Bits   Bitset
}

// ScalarValue constructs a KindScalar Value.
func ScalarValue(v float64) Value { return Value{Kind: KindScalar, Scalar: v} }

// BitsetValue constructs a KindBitset Value.
func BitsetValue(b Bitset) Value { return Value{Kind: KindBitset, Bits: b} }
