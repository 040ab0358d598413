package labeling

import (
	"context"

	"github.com/solvecore/vrptw/espprc"
)

// Result is the outcome of a labeling search: the non-dominated labels
// surviving at the destination depot (the sink) and the minimum cost
// among them. Empty if no feasible elementary path reaches the
// destination (Labels is nil and Cost is 0).
type Result struct {
	Labels []espprc.LabelID
	Cost   float64
}

// Solve runs the labeling algorithm of spec.md §4.4 over model, starting
// from its origin depot and terminating at its destination depot. It
// returns the arena holding every label created (needed by callers to
// reconstruct paths via arena.Path) and the Result.
//
// Solve is cooperatively cancellable: ctx is checked at every frontier-pop
// boundary (spec.md §5), so a cancelled context stops the search and
// returns whatever sink labels have been found so far, with ctx.Err().
func Solve(ctx context.Context, model espprc.Model, opts ...Option) (*espprc.Arena, Result, error) {
	if model == nil {
		return nil, Result{}, ErrNilModel
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxLabels < 0 {
		return nil, Result{}, ErrBadMaxLabels
	}

	arena := espprc.NewArena()
	dominated := make(map[espprc.LabelID]bool)
	buckets := make(map[int][]espprc.LabelID)
	labelSeq := make(map[espprc.LabelID]int64)
	var seqCounter int64

	seqOf := func(id espprc.LabelID) int64 { return labelSeq[id] }
	prio := priorityFunc(cfg.Strategy, model, arena, seqOf)
	fr := newFrontier(prio)

	root := model.InitialLabel(arena)
	labelSeq[root] = seqCounter
	seqCounter++
	buckets[model.OriginNode()] = append(buckets[model.OriginNode()], root)
	fr.push(root)

	var sink []espprc.LabelID

	for fr.len() > 0 {
		if err := ctxErr(ctx); err != nil {
			return arena, sinkResult(model, arena, sink, dominated), err
		}

		if cfg.MaxLabels > 0 && arena.Len() >= cfg.MaxLabels {
			break
		}

		id := fr.pop()
		if dominated[id] {
			continue
		}

		node := arena.Get(id).Node
		for _, to := range model.Neighbors(node) {
			child, ok := model.Extend(arena, id, to)
			if cfg.Trace != nil {
				cfg.Trace(Event{Kind: EventExtend, Node: to})
			}
			if !ok {
				continue
			}

			labelSeq[child] = seqCounter
			seqCounter++

			bucket, inserted := insert(buckets[to], child, arena, model, dominated)
			buckets[to] = bucket
			if !inserted {
				if cfg.Trace != nil {
					cfg.Trace(Event{Kind: EventDominated, Node: to})
				}
				continue
			}

			if model.IsTerminal(arena, child) {
				sink, _ = insert(sink, child, arena, model, dominated)
				if cfg.Trace != nil {
					cfg.Trace(Event{Kind: EventSink, Node: to})
				}
				continue
			}

			fr.push(child)
		}
	}

	return arena, sinkResult(model, arena, sink, dominated), nil
}

// insert applies the dominance rule of spec.md §3/§4.4 to add newID into
// bucket: if any live (non-tombstoned) member of bucket dominates newID,
// or is mutually dominated with it (the tie-break: keep whichever was
// inserted first), newID is tombstoned and discarded. Otherwise newID is
// kept and every bucket member it dominates is tombstoned and dropped.
func insert(bucket []espprc.LabelID, newID espprc.LabelID, arena *espprc.Arena, model espprc.Model, dominated map[espprc.LabelID]bool) ([]espprc.LabelID, bool) {
	for _, exID := range bucket {
		if dominated[exID] {
			continue
		}
		if model.MutuallyDominated(arena, exID, newID) || model.Dominates(arena, exID, newID) {
			dominated[newID] = true

			return bucket, false
		}
	}

	kept := bucket[:0]
	for _, exID := range bucket {
		if dominated[exID] {
			continue
		}
		if model.Dominates(arena, newID, exID) {
			dominated[exID] = true

			continue
		}
		kept = append(kept, exID)
	}
	kept = append(kept, newID)

	return kept, true
}

// sinkResult filters tombstoned labels out of sink (some may have been
// dominated after insertion, by a later sink arrival) and reports the
// minimum cost among the survivors.
func sinkResult(model espprc.Model, arena *espprc.Arena, sink []espprc.LabelID, dominated map[espprc.LabelID]bool) Result {
	var live []espprc.LabelID
	best := 0.0
	haveBest := false
	for _, id := range sink {
		if dominated[id] {
			continue
		}
		live = append(live, id)
		c := model.Cost(arena, id)
		if !haveBest || c < best {
			best = c
			haveBest = true
		}
	}
	if !haveBest {
		return Result{}
	}

	return Result{Labels: live, Cost: best}
}
