package labeling

import (
	"container/heap"

	"github.com/solvecore/vrptw/espprc"
)

// frontierItem is one entry in the priority queue: a label id with a
// priority score frozen at push time, plus a monotonically increasing
// sequence number used to break ties deterministically. FIFO and LIFO do
// not order by this field: their priority is the solver's own per-label
// sequence number (negated for LIFO), supplied through priorityFunc.
type frontierItem struct {
	id       espprc.LabelID
	priority float64
	seq      int64
	index    int // maintained by container/heap for Fix/Remove; unused here
}

// frontierPQ is a min-heap of *frontierItem ordered by priority ascending,
// then by seq to break ties — following the lazy-decrease-key discipline
// of the teacher's dijkstra package's nodePQ: stale entries for a label
// that has since been dominated are simply skipped when popped, rather
// than removed from the heap.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontierPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *frontierPQ) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// frontier wraps frontierPQ with the sequence counter and priority
// function, so the solver's main loop doesn't need to know the strategy's
// sign convention (LIFO orders by -seq, every other strategy by +value).
type frontier struct {
	pq       frontierPQ
	nextSeq  int64
	priority func(id espprc.LabelID) float64
}

func newFrontier(priority func(espprc.LabelID) float64) *frontier {
	f := &frontier{priority: priority}
	heap.Init(&f.pq)

	return f
}

func (f *frontier) push(id espprc.LabelID) {
	item := &frontierItem{id: id, seq: f.nextSeq}
	f.nextSeq++
	item.priority = f.priority(id)
	heap.Push(&f.pq, item)
}

func (f *frontier) len() int { return f.pq.Len() }

func (f *frontier) pop() espprc.LabelID {
	item := heap.Pop(&f.pq).(*frontierItem)

	return item.id
}

// priorityFunc builds the priority function for a Strategy over a given
// model and arena, per spec.md §4.4's selection-strategy table.
func priorityFunc(strategy Strategy, model espprc.Model, arena *espprc.Arena, seqOf func(espprc.LabelID) int64) func(espprc.LabelID) float64 {
	switch strategy {
	case FIFO:
		return func(id espprc.LabelID) float64 { return float64(seqOf(id)) }
	case LIFO:
		return func(id espprc.LabelID) float64 { return -float64(seqOf(id)) }
	case MinTime:
		return func(id espprc.LabelID) float64 {
			v, _ := model.ResourceValue(arena, id, "time")

			return v
		}
	case MinLoad:
		return func(id espprc.LabelID) float64 {
			v, _ := model.ResourceValue(arena, id, "load")

			return v
		}
	case MinPathLength:
		return func(id espprc.LabelID) float64 { return float64(model.Depth(arena, id)) }
	case MinCost:
		fallthrough
	default:
		return func(id espprc.LabelID) float64 { return model.Cost(arena, id) }
	}
}
