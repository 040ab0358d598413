package resource

// ScalarREF computes the child scalar value from the parent scalar value
// and the traversed arc. It must be monotone (spec.md §4.1).
type ScalarREF func(a Arc, parent float64) float64

// ScalarWindow evaluates the feasibility predicate lo ≤ state ≤ hi at the
// target node. Implementations may ignore node for a constant window, or
// index a per-node array for a per-node window (spec.md §3).
type ScalarWindow func(node int, v float64) bool

// ScalarResource is the concrete Resource implementation for a named,
// real-valued quantity (time, load, cost, ...). No window is required —
// a resource such as "cost" with no feasibility constraint can pass a
// ScalarWindow that always returns true.
type ScalarResource struct {
	name    string
	initial func(originNode int) float64
	ref     ScalarREF
	window  ScalarWindow
}

// NewScalarResource constructs a ScalarResource. initial supplies the
// value at the origin label; ref is the REF; window is the feasibility
// predicate evaluated at the target node.
func NewScalarResource(name string, initial func(originNode int) float64, ref ScalarREF, window ScalarWindow) *ScalarResource {
	return &ScalarResource{name: name, initial: initial, ref: ref, window: window}
}

func (s *ScalarResource) Name() string { return s.name }

func (s *ScalarResource) Kind() Kind { return KindScalar }

func (s *ScalarResource) Initial(originNode int) Value {
	return ScalarValue(s.initial(originNode))
}

func (s *ScalarResource) Extend(a Arc, parent Value) Value {
	return ScalarValue(s.ref(a, parent.Scalar))
}

func (s *ScalarResource) FeasibleAt(node int, _, child Value) bool {
	return s.window(node, child.Scalar)
}

func (s *ScalarResource) LessEqual(a, b Value) bool {
	return a.Scalar <= b.Scalar
}

func (s *ScalarResource) Equal(a, b Value) bool {
	return a.Scalar == b.Scalar
}

// ConstantWindow returns a ScalarWindow enforcing lo ≤ v ≤ hi at every node.
func ConstantWindow(lo, hi float64) ScalarWindow {
	return func(_ int, v float64) bool { return v >= lo && v <= hi }
}

// PerNodeWindow returns a ScalarWindow enforcing lo[node] ≤ v ≤ hi[node].
// node must be a valid index into lo and hi.
func PerNodeWindow(lo, hi []float64) ScalarWindow {
	return func(node int, v float64) bool {
		return v >= lo[node] && v <= hi[node]
	}
}

// NoWindow returns a ScalarWindow that is always satisfied — used by
// resources with no feasibility constraint (e.g. the "cost" resource).
func NoWindow() ScalarWindow {
	return func(_ int, _ float64) bool { return true }
}
