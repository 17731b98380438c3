// Package distance provides the pluggable distance abstraction consumed by
// graph, cluster, engine, and probe.
//
// A Distance[T] is a pure mapping (x, y T) -> nonnegative real. Two optional
// capabilities extend it:
//
//   - Meaner[T]:  computes a representative point for a set of nodes. Needed
//     by the virtual-probe facet and by quality scorers.
//   - Updater[T, D]: recomputes a distance incrementally for a node that has
//     drifted by a known delta, without recomputing from scratch.
//
// Failures never surface as NaN or +Inf: a distance that cannot be computed
// (numeric overflow, divergent input) returns ErrNoDistance explicitly.
package distance
