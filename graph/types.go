// File: types.go
// Role: Sentinel errors, the Bound/Any distance sentinel, and the Graph[N]
//       interface shared by all three substrate flavours.
// AI-HINT (file):
//   - Any is a typed sentinel, not NaN/+Inf: Neighbours(v, Any) means
//     "no upper bound", matching spec.md §4.2's ANY_DISTANCE.

package graph

import (
	"errors"

	"github.com/MaineKuehn/dengraph/distance"
)

// Sentinel errors surfaced by every Graph[N] implementation.
var (
	// ErrNoSuchNode indicates an operation referenced a node absent from the graph.
	ErrNoSuchNode = errors.New("graph: no such node")

	// ErrNoSuchEdge indicates an operation referenced an edge absent from the graph.
	ErrNoSuchEdge = errors.New("graph: no such edge")

	// ErrConflictingEdge indicates a Union found the same edge with disagreeing weights.
	ErrConflictingEdge = errors.New("graph: conflicting edge weight")
)

// Bound represents either a concrete maximum distance or the "no limit"
// sentinel Any, replacing the source's global ANY_DISTANCE placeholder with
// an explicit optional upper bound (design notes §9).
type Bound struct {
	value   float64
	unbound bool
}

// WithMax builds a concrete (bounded) Bound of the given value.
func WithMax(v float64) Bound {
	return Bound{value: v}
}

// Any is the "no upper bound" sentinel for Neighbours queries.
var Any = Bound{unbound: true}

// Unbounded reports whether b represents Any (no upper limit).
func (b Bound) Unbounded() bool {
	return b.unbound
}

// Value returns the concrete bound; only meaningful if !Unbounded().
func (b Bound) Value() float64 {
	return b.value
}

// Covers reports whether a weight w falls within the bound.
func (b Bound) Covers(w float64) bool {
	return b.unbound || w <= b.value
}

// Graph is the substrate every clustering operation reads and writes
// through. All three shipped implementations (AdjacencyGraph,
// BoundedAdjacencyGraph, ComputedGraph) satisfy it identically, so the
// engine package never branches on concrete substrate type.
//
// Implementations must guarantee Edge(a,b) == Edge(b,a) (the substrate is
// always symmetric) and must never yield v itself from Neighbours(v, ...),
// even if a self-edge is stored.
type Graph[N comparable] interface {
	// Contains reports whether v is a node of the graph.
	Contains(v N) bool
	// ContainsEdge reports whether both endpoints exist and carry an edge.
	ContainsEdge(a, b N) bool
	// Len returns the number of nodes.
	Len() int
	// Nodes returns a stable-for-one-traversal snapshot of all nodes.
	Nodes() []N
	// Edge returns the weight of the edge between a and b, or ErrNoSuchEdge.
	Edge(a, b N) (float64, error)
	// SetEdge stores or updates the weight between a and b. Both endpoints
	// must already exist, else ErrNoSuchNode.
	SetEdge(a, b N, w float64) error
	// DeleteEdge removes the edge between a and b, or fails ErrNoSuchEdge.
	DeleteEdge(a, b N) error
	// InsertNode adds v with an empty adjacency, idempotent if v is present.
	InsertNode(v N)
	// SetAdjacency sets v's full adjacency map in one call, inserting v if
	// absent; edges from v not present in adj are removed.
	SetAdjacency(v N, adj map[N]float64)
	// DeleteNode removes v and every edge incident to it, or ErrNoSuchNode.
	DeleteNode(v N) error
	// Neighbours yields every u != v with Edge(v, u) within bound, or ErrNoSuchNode.
	Neighbours(v N, bound Bound) ([]N, error)
}

// DistanceAware is implemented by substrates that carry a distance.Distance
// function. probe.New uses a type assertion against this interface to
// detect ErrNoDistanceSupport, the Go rendering of the source's
// hasattr(graph, 'distance') duck-typed check.
type DistanceAware[N comparable] interface {
	Graph[N]
	Distance() distance.Distance[N]
}
