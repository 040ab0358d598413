package resource

import "fmt"

// Resource is the capability interface every registered resource must
// implement (spec.md §4.1). One concrete type exists per resource kind
// (ScalarResource, BitsetResource); the catalog holds a fixed,
// construction-time list of them and dispatches through this interface.
type Resource interface {
	// Name uniquely identifies this resource within its catalog.
	Name() string

	// Kind reports whether this resource's Value is scalar or bit-set.
	Kind() Kind

	// Initial returns this resource's value at the origin label.
	Initial(originNode int) Value

	// Extend applies this resource's REF along arc a to the parent state,
	// returning the child state. Extend must be monotone: for all
	// states s ≤ s' (per this resource's own order), Extend(a, s) ≤
	// Extend(a, s'). The catalog does not verify this.
	Extend(a Arc, parent Value) Value

	// FeasibleAt evaluates this resource's feasibility predicate at the
	// target node. Most resources (time, load) check only the extended
	// child value against their window; the visited resource is the
	// documented exception (spec.md §3: "feasibility: j ∉ V_i for
	// customer j") and must check the pre-extension parent value instead,
	// since the child value already contains j by construction. Both
	// values are therefore passed so each resource can choose.
	FeasibleAt(node int, parent, child Value) bool

	// LessEqual reports whether a is "no worse than" b in this resource's
	// partial order (≤ for scalars, ⊆ for bit-sets). Used to build the
	// generic cross-resource dominance rule in spec.md §3.
	LessEqual(a, b Value) bool

	// Equal reports whether a and b are identical in this resource's order.
	Equal(a, b Value) bool
}

// Catalog is a fixed, ordered collection of resources bound to one ESPPRC
// model. Resources are iterated in registration order for both Extend and
// Feasible, per spec.md §4.1.
type Catalog struct {
	resources []Resource
	index     map[string]int
}

// NewCatalog builds a Catalog from the given resources in the order given.
// Returns ErrEmptyName or ErrDuplicateName if registration is invalid.
func NewCatalog(resources ...Resource) (*Catalog, error) {
	c := &Catalog{
		resources: make([]Resource, 0, len(resources)),
		index:     make(map[string]int, len(resources)),
	}
	for _, r := range resources {
		if err := c.register(r); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) register(r Resource) error {
	if r.Name() == "" {
		return ErrEmptyName
	}
	if _, exists := c.index[r.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, r.Name())
	}
	c.index[r.Name()] = len(c.resources)
	c.resources = append(c.resources, r)

	return nil
}

// Len returns the number of registered resources.
func (c *Catalog) Len() int { return len(c.resources) }

// At returns the resource registered at position i (registration order).
func (c *Catalog) At(i int) Resource { return c.resources[i] }

// Index returns the registration-order position of the named resource, or
// -1 if absent.
func (c *Catalog) Index(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}

	return -1
}

// InitialState returns the length-Len() state tuple for a label at originNode.
func (c *Catalog) InitialState(originNode int) []Value {
	out := make([]Value, len(c.resources))
	for i, r := range c.resources {
		out[i] = r.Initial(originNode)
	}

	return out
}

// Extend applies every registered REF to parent in order, then checks every
// feasibility predicate at the target node, short-circuiting at the first
// infeasible resource (spec.md §4.1: "extension aborts at the first
// infeasible resource"). Returns the child state tuple and true on success,
// or a nil tuple and false if any resource's feasibility predicate failed.
func (c *Catalog) Extend(a Arc, parent []Value) ([]Value, bool) {
	child := make([]Value, len(c.resources))
	for i, r := range c.resources {
		v := r.Extend(a, parent[i])
		if !r.FeasibleAt(a.To, parent[i], v) {
			return nil, false
		}
		child[i] = v
	}

	return child, true
}

// Dominates implements the generic cross-resource dominance rule of
// spec.md §3: ℓ dominates ℓ' iff every resource of ℓ is LessEqual the
// corresponding resource of ℓ', and at least one is strictly better
// (not Equal).
func (c *Catalog) Dominates(a, b []Value) bool {
	strict := false
	for i, r := range c.resources {
		if !r.LessEqual(a[i], b[i]) {
			return false
		}
		if !r.Equal(a[i], b[i]) {
			strict = true
		}
	}

	return strict
}

// MutuallyDominated reports whether a and b are identical across every
// registered resource — the tie-break rule of spec.md §4.4 ("treat them as
// mutually dominated and keep the first inserted").
func (c *Catalog) MutuallyDominated(a, b []Value) bool {
	for i, r := range c.resources {
		if !r.Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
