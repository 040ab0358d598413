// Package network defines the instance graph: a directed graph of nodes
// (depot and customers) connected by arcs that each carry two quantities —
// a base cost and a travel time — instead of the single scalar weight an
// ordinary graph edge would carry.
//
// The graph is thread-safe: node/arc storage is guarded by one RWMutex and
// the per-arc dual-adjusted cost overlay (rewritten between pricing rounds
// by the column-generation orchestrator) is guarded by a second, so node
// lookups never contend with the orchestrator's cost updates; Arc and Arcs
// hold the second lock for reading only while they copy arcs out.
//
// Construction uses functional options, mirroring the rest of this module's
// ambient configuration style.
package network
