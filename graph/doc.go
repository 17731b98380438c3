// Package graph provides the weighted, symmetric graph substrate that the
// clustering engine builds on.
//
// A Graph[N] is a container of nodes and weighted edges between them, with
// neighbour queries bounded by a distance. Three interchangeable flavours
// are provided:
//
//   - AdjacencyGraph[N]     — edges materialised as nested maps.
//   - BoundedAdjacencyGraph[N] — as above, but silently drops edges above a
//     construction-time bound and short-circuits neighbour queries.
//   - ComputedGraph[N]      — nodes only; edges computed on demand from a
//     distance.Distance[N], optionally memoised via Cache().
//
// All three satisfy the same Graph[N] interface, so the engine package never
// branches on concrete substrate type.
//
// Edges are addressed by passing both endpoints as separate (a, b N)
// arguments; the package has no edge pair value type, and it does not
// reject node identifiers that are themselves pair-like values.
//
// AI-HINT (package):
//   - Neighbours(v, eps) never yields v itself, even over a self-edge.
//   - graph.Any is the typed "no upper bound" sentinel; do not compare
//     distances against +Inf or a magic float to mean "unbounded".
//   - Graph mutation methods are not safe for concurrent use from multiple
//     goroutines mutating the SAME node/edge at once; see engine's single-
//     threaded contract (spec.md §5) which is the only supported caller.
package graph
