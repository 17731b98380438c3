// Package dengraph implements DenGraph: an incremental, overlap-tolerant,
// density-based graph clustering engine in the DBSCAN family.
//
// A graph substrate (package graph) carries nodes and weighted edges.
// Clusters (package cluster) are core/border node-role pairs borrowing that
// substrate. The engine (package engine) maintains a live partition of the
// substrate into clusters plus a residual noise set, reclassifying only the
// affected neighbourhood on every edit instead of re-running batch DBSCAN.
//
// Subpackages:
//
//	distance/  — pluggable Distance[T]/Meaner[T]/Updater[T,D] node metrics
//	graph/     — the Graph[N] substrate interface and its implementations
//	cluster/   — the Cluster[N] core/border role-set value
//	engine/    — the incremental clustering engine (C4)
//	probe/     — the virtual-probe facet for measuring unadmitted nodes (C5)
//	csvloader/ — builds a Graph[N] from a CSV distance matrix
//	quality/   — external cluster-quality scorers (silhouette and friends)
//
// This root package re-exports the sentinel errors most callers branch on,
// so `errors.Is(err, dengraph.ErrNoSuchNode)` works without importing graph
// or engine directly.
package dengraph

import (
	"github.com/MaineKuehn/dengraph/engine"
	"github.com/MaineKuehn/dengraph/graph"
)

var (
	// ErrNoSuchNode is graph.ErrNoSuchNode, re-exported for convenience.
	ErrNoSuchNode = graph.ErrNoSuchNode
	// ErrNoSuchEdge is graph.ErrNoSuchEdge, re-exported for convenience.
	ErrNoSuchEdge = graph.ErrNoSuchEdge
	// ErrConflictingEdge is graph.ErrConflictingEdge, re-exported for convenience.
	ErrConflictingEdge = graph.ErrConflictingEdge
	// ErrCrossGraph is engine.ErrCrossGraph, re-exported for convenience.
	ErrCrossGraph = engine.ErrCrossGraph
	// ErrInvalidArgument is engine.ErrInvalidArgument, re-exported for convenience.
	ErrInvalidArgument = engine.ErrInvalidArgument
)
