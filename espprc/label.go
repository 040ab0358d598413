package espprc

import "github.com/solvecore/vrptw/resource"

// LabelID indexes a Label within an Arena. The root label of a search
// always has a nil parent, represented by NoParent.
type LabelID int

// NoParent marks a label with no predecessor (the initial label).
const NoParent LabelID = -1

// Label is a partial-path state: the current node, the resource state
// tuple in catalog registration order, and a pointer to the parent label
// from which it was extended (spec.md §3). Labels are immutable once
// created; Extend always produces a brand new Label via Arena.Push.
type Label struct {
	Node   int
	State  []resource.Value
	Parent LabelID
	Depth  int // number of arcs traversed since the origin; 0 for the root
}

// Arena owns every Label created during one labeling search. Labels are
// appended and never removed — dominated labels are simply no longer
// referenced by the solver's bucket/frontier structures, but remain valid
// ancestors for any surviving descendant's path reconstruction.
type Arena struct {
	labels []Label
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Push appends a new Label and returns its id.
func (a *Arena) Push(l Label) LabelID {
	a.labels = append(a.labels, l)

	return LabelID(len(a.labels) - 1)
}

// Get returns the Label stored at id.
func (a *Arena) Get(id LabelID) Label {
	return a.labels[id]
}

// Len reports how many labels have been created in this arena so far.
func (a *Arena) Len() int {
	return len(a.labels)
}

// Path reconstructs the node sequence from the origin to id by walking
// parent pointers and reversing. Complexity: O(path length).
func (a *Arena) Path(id LabelID) []int {
	var rev []int
	for id != NoParent {
		l := a.labels[id]
		rev = append(rev, l.Node)
		id = l.Parent
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}
