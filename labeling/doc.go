// Package labeling implements the labeling solver (component S of
// spec.md §4.4): a frontier-based dynamic-programming search over an
// espprc.Model that produces the set of non-dominated elementary paths
// reaching the destination depot with minimum reduced cost.
//
// The frontier is a single priority queue (container/heap, following the
// lazy-decrease-key discipline of the teacher's dijkstra package) whose
// ordering is a configurable label-selection Strategy; the dominance
// index is a node→label-id bucket map with a tombstone flag for labels
// removed mid-scan, exactly as spec.md §4.4/§9 describe.
//
// Complexity: the search enumerates every feasible elementary extension;
// in the worst case (no effective dominance pruning) this is exponential
// in customer count, which is why ESPPRC is NP-hard in general — the
// dominance rule is what makes instances of practical size tractable.
package labeling
