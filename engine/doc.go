// Package engine implements DenGraph, the incremental, overlap-tolerant,
// density-based graph clustering engine (spec.md component C4).
//
// Engine maintains a dynamic partition of a graph.Graph[N] into clusters
// plus a residual noise set, under live edits: node/edge insertion,
// removal, and edge weight updates. Clusters may overlap on border nodes;
// a node may be core of at most one cluster but border of many.
//
// What:
//   - New(g, eps, eta) performs an initial batch DBSCAN pass (spec.md §4.4.2).
//   - InsertNode/SetEdge/DeleteNode/DeleteEdge run the corresponding
//     incremental reclassification procedure (spec.md §4.4.4-§4.4.8) instead
//     of re-clustering from scratch.
//   - Clusters()/Noise() expose read-only snapshots.
//
// Why:
//   - Re-running batch DBSCAN after every edit is O(V+E) per edit; the
//     incremental procedures touch only the neighbourhood of the edit.
//   - Overlap on border nodes lets downstream consumers (quality scorers,
//     the probe facet) see a node as a partial member of more than one
//     density region without the engine inventing a forced tie-break.
//
// Concurrency:
//   - Engine is single-threaded and not reentrant (spec.md §5): its
//     invariants span multiple mutations of clusters and noise during one
//     edit. No method suspends; every public call completes synchronously.
//
// Errors:
//   - ErrNoSuchNode / ErrNoSuchEdge  -- propagated from the graph substrate.
//   - ErrCrossGraph                 -- merge attempted across substrates.
//   - ErrInvalidArgument             -- malformed role/argument.
//
// AI-HINT (package):
//   - Never mutate a Cluster or the noise set returned by Clusters()/Noise()
//     directly; all mutation must go through Engine's edit methods.
//   - After any edit returns an error, treat the engine as potentially
//     dirty (spec.md §7): no rollback is attempted.
package engine
