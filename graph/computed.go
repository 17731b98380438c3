// File: computed.go
// Role: ComputedGraph[N] -- nodes only, edges computed on demand from a
//       distance.Distance[N]. The Cache() wrapper memoises computed weights
//       and treats DeleteEdge as forcing the pair to +Inf, per spec.md §4.2.
package graph

import (
	"math"
	"sync"

	"github.com/MaineKuehn/dengraph/distance"
)

// ComputedGraph has no stored edges: Edge(a, b) always calls its distance
// function. SetEdge is rejected (edges are derived, not assigned).
type ComputedGraph[N comparable] struct {
	mu    sync.RWMutex
	nodes map[N]struct{}
	dist  distance.Distance[N]
}

// NewComputedGraph returns a ComputedGraph over the given nodes, using d to
// compute edge weights on demand.
func NewComputedGraph[N comparable](d distance.Distance[N], nodes ...N) *ComputedGraph[N] {
	g := &ComputedGraph[N]{
		nodes: make(map[N]struct{}, len(nodes)),
		dist:  d,
	}
	for _, v := range nodes {
		g.nodes[v] = struct{}{}
	}
	return g
}

// Distance returns the distance function backing this graph, implementing
// DistanceAware for the probe package.
func (g *ComputedGraph[N]) Distance() distance.Distance[N] {
	return g.dist
}

// Contains reports whether v is a node of the graph.
func (g *ComputedGraph[N]) Contains(v N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[v]
	return ok
}

// ContainsEdge reports whether both endpoints exist (a computed edge always
// exists between two present, distinct nodes).
func (g *ComputedGraph[N]) ContainsEdge(a, b N) bool {
	return a != b && g.Contains(a) && g.Contains(b)
}

// Len returns the number of nodes.
func (g *ComputedGraph[N]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Nodes returns a snapshot of all nodes.
func (g *ComputedGraph[N]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]N, 0, len(g.nodes))
	for v := range g.nodes {
		out = append(out, v)
	}
	return out
}

// Edge computes the weight between a and b via the graph's distance
// function. ErrNoSuchEdge is returned if either endpoint is absent.
func (g *ComputedGraph[N]) Edge(a, b N) (float64, error) {
	if !g.ContainsEdge(a, b) {
		return 0, ErrNoSuchEdge
	}
	w, err := g.dist.Between(a, b)
	if err != nil {
		return 0, err
	}
	return w, nil
}

// SetEdge always fails: ComputedGraph derives edges, it does not store them.
func (g *ComputedGraph[N]) SetEdge(a, b N, w float64) error {
	return ErrNoSuchEdge
}

// DeleteEdge is rejected on the uncached variant: there is no stored weight
// to delete. Use Cache() for a variant that can mark a pair as +Inf.
func (g *ComputedGraph[N]) DeleteEdge(a, b N) error {
	if !g.ContainsEdge(a, b) {
		return ErrNoSuchEdge
	}
	return ErrNoSuchEdge
}

// InsertNode adds v, idempotent if already present.
func (g *ComputedGraph[N]) InsertNode(v N) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[v] = struct{}{}
}

// SetAdjacency is a no-op beyond inserting v: edges are always computed.
func (g *ComputedGraph[N]) SetAdjacency(v N, adj map[N]float64) {
	g.InsertNode(v)
}

// DeleteNode removes v, or ErrNoSuchNode.
func (g *ComputedGraph[N]) DeleteNode(v N) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[v]; !ok {
		return ErrNoSuchNode
	}
	delete(g.nodes, v)
	return nil
}

// Neighbours computes the distance to every other node and filters by bound.
func (g *ComputedGraph[N]) Neighbours(v N, bound Bound) ([]N, error) {
	if !g.Contains(v) {
		return nil, ErrNoSuchNode
	}
	var out []N
	for _, u := range g.Nodes() {
		if u == v {
			continue
		}
		w, err := g.dist.Between(v, u)
		if err != nil {
			return nil, err
		}
		if bound.Covers(w) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Cached wraps a ComputedGraph so that computed weights are memoised, and
// DeleteEdge marks a pair as +Inf instead of being rejected outright.
type Cached[N comparable] struct {
	*ComputedGraph[N]
	mu      sync.RWMutex
	memo    map[edgeKey[N]]float64
	deleted map[edgeKey[N]]bool
}

type edgeKey[N comparable] struct {
	a, b N
}

// Cache wraps g with memoisation of computed edge weights.
func Cache[N comparable](g *ComputedGraph[N]) *Cached[N] {
	return &Cached[N]{
		ComputedGraph: g,
		memo:          make(map[edgeKey[N]]float64),
		deleted:       make(map[edgeKey[N]]bool),
	}
}

// unorderedKey builds a lookup key without requiring N to be orderable. The
// key itself is ordered (a, b); callers store both orientations, so either
// call order finds the entry at the cost of one extra map write per edge.
func (c *Cached[N]) unorderedKey(a, b N) edgeKey[N] {
	return edgeKey[N]{a: a, b: b}
}

// Edge returns the memoised weight if present, recomputing and caching it
// otherwise. A deleted pair returns +Inf, matching spec.md §4.2's treatment
// of edge deletion on the cached computed-distance store.
func (c *Cached[N]) Edge(a, b N) (float64, error) {
	if !c.ContainsEdge(a, b) {
		return 0, ErrNoSuchEdge
	}
	c.mu.RLock()
	if c.deleted[c.unorderedKey(a, b)] || c.deleted[c.unorderedKey(b, a)] {
		c.mu.RUnlock()
		return math.Inf(1), nil
	}
	if w, ok := c.memo[c.unorderedKey(a, b)]; ok {
		c.mu.RUnlock()
		return w, nil
	}
	c.mu.RUnlock()

	w, err := c.ComputedGraph.Edge(a, b)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	c.memo[c.unorderedKey(a, b)] = w
	c.memo[c.unorderedKey(b, a)] = w
	c.mu.Unlock()
	return w, nil
}

// DeleteEdge marks the pair as permanently +Inf rather than rejecting the
// call, matching the cached variant's documented semantics.
func (c *Cached[N]) DeleteEdge(a, b N) error {
	if !c.ContainsEdge(a, b) {
		return ErrNoSuchEdge
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted[c.unorderedKey(a, b)] = true
	c.deleted[c.unorderedKey(b, a)] = true
	delete(c.memo, c.unorderedKey(a, b))
	delete(c.memo, c.unorderedKey(b, a))
	return nil
}

// Neighbours uses the memoised/deleted Edge() rather than recomputing via
// the underlying distance function directly.
func (c *Cached[N]) Neighbours(v N, bound Bound) ([]N, error) {
	if !c.Contains(v) {
		return nil, ErrNoSuchNode
	}
	var out []N
	for _, u := range c.Nodes() {
		if u == v {
			continue
		}
		w, err := c.Edge(v, u)
		if err != nil {
			return nil, err
		}
		if bound.Covers(w) {
			out = append(out, u)
		}
	}
	return out, nil
}
