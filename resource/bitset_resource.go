package resource

// BitsetResource is the concrete Resource implementation for the "visited"
// resource: a bit-set over customer node ids enforcing elementarity
// (spec.md §3: "j ∉ V_i for customer j"). Depot nodes are never added to
// the set (the REF below is a no-op when the target is a depot).
type BitsetResource struct {
	name    string
	n       int // customer count (ids 1..n)
	isDepot func(node int) bool
}

// NewBitsetResource constructs the visited-set resource. n is the number
// of customers; isDepot reports whether a node id is a depot copy (depots
// are never marked visited and never checked for repeat visitation).
func NewBitsetResource(name string, n int, isDepot func(node int) bool) *BitsetResource {
	return &BitsetResource{name: name, n: n, isDepot: isDepot}
}

func (b *BitsetResource) Name() string { return b.name }

func (b *BitsetResource) Kind() Kind { return KindBitset }

func (b *BitsetResource) Initial(_ int) Value {
	return BitsetValue(NewBitset(b.n))
}

func (b *BitsetResource) Extend(a Arc, parent Value) Value {
	if b.isDepot(a.To) {
		return Value{Kind: KindBitset, Bits: parent.Bits}
	}

	return BitsetValue(parent.Bits.With(a.To))
}

// FeasibleAt checks the pre-extension parent value: j must not already be
// a member of V_i (spec.md §3). Checking the child would be a tautology,
// since Extend has already unioned j into it.
func (b *BitsetResource) FeasibleAt(node int, parent, _ Value) bool {
	if b.isDepot(node) {
		return true
	}

	return !parent.Bits.Has(node)
}

func (b *BitsetResource) LessEqual(a, b2 Value) bool {
	return a.Bits.SubsetOf(b2.Bits)
}

func (b *BitsetResource) Equal(a, b2 Value) bool {
	return a.Bits.Equal(b2.Bits)
}
