// Package espprc implements the Label type (component L) and the ESPPRC/
// ESPPTWC model (components M and E of spec.md §4.2–4.3): the Elementary
// Shortest Path Problem with Resource Constraints, and its concrete
// time-window-and-capacity (ESPPTWC) binding used by VRPTW pricing.
//
// Labels are packed records holding a node id, a fixed-layout resource
// state tuple (spec.md §9), and a parent pointer rather than a cloned
// path — path reconstruction walks the parent chain. Labels are owned by
// an Arena (an append-only slice indexed by LabelID), never individually
// freed; the labeling solver in package labeling discards references to
// dominated labels but the arena keeps them addressable until the whole
// search ends, which is simpler than individual deallocation and cheap
// because ESPPTWC instances are small (tens to low hundreds of
// customers).
package espprc
