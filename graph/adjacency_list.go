// File: adjacency_list.go
// Role: AdjacencyGraph[N] and BoundedAdjacencyGraph[N] -- edges materialised
//       as nested maps, exactly as core.Graph materialises adjacencyList,
//       generalised over a comparable node type instead of a string ID.
// Concurrency:
//   - muNode guards the node set; muEdge guards the adjacency map.
//   - Lock order is muNode -> muEdge, matching core's muVert -> muEdgeAdj.
package graph

import "sync"

// AdjacencyGraph stores edges as nested maps: adjacency[a][b] = weight.
// InsertNode is idempotent; SetEdge requires both endpoints present.
type AdjacencyGraph[N comparable] struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	nodes     map[N]struct{}
	adjacency map[N]map[N]float64
}

// NewAdjacencyGraph returns an empty AdjacencyGraph[N].
func NewAdjacencyGraph[N comparable]() *AdjacencyGraph[N] {
	return &AdjacencyGraph[N]{
		nodes:     make(map[N]struct{}),
		adjacency: make(map[N]map[N]float64),
	}
}

// Contains reports whether v is a node of the graph.
func (g *AdjacencyGraph[N]) Contains(v N) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[v]
	return ok
}

// ContainsEdge reports whether a and b carry an edge.
func (g *AdjacencyGraph[N]) ContainsEdge(a, b N) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.adjacency[a][b]
	return ok
}

// Len returns the number of nodes.
func (g *AdjacencyGraph[N]) Len() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}

// Nodes returns a snapshot of all nodes, stable for one traversal.
func (g *AdjacencyGraph[N]) Nodes() []N {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]N, 0, len(g.nodes))
	for v := range g.nodes {
		out = append(out, v)
	}
	return out
}

// Edge returns the weight between a and b, or ErrNoSuchEdge.
func (g *AdjacencyGraph[N]) Edge(a, b N) (float64, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	w, ok := g.adjacency[a][b]
	if !ok {
		return 0, ErrNoSuchEdge
	}
	return w, nil
}

// SetEdge stores the weight between a and b in both directions atomically.
// Both endpoints must already exist, else ErrNoSuchNode.
func (g *AdjacencyGraph[N]) SetEdge(a, b N, w float64) error {
	g.muNode.RLock()
	_, aok := g.nodes[a]
	_, bok := g.nodes[b]
	g.muNode.RUnlock()
	if !aok || !bok {
		return ErrNoSuchNode
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.ensureRow(a)
	g.ensureRow(b)
	g.adjacency[a][b] = w
	g.adjacency[b][a] = w
	return nil
}

// DeleteEdge removes the edge between a and b, or fails ErrNoSuchEdge.
func (g *AdjacencyGraph[N]) DeleteEdge(a, b N) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, ok := g.adjacency[a][b]; !ok {
		return ErrNoSuchEdge
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	return nil
}

// InsertNode adds v with empty adjacency. Idempotent if v is already present.
func (g *AdjacencyGraph[N]) InsertNode(v N) {
	g.muNode.Lock()
	if _, ok := g.nodes[v]; ok {
		g.muNode.Unlock()
		return
	}
	g.nodes[v] = struct{}{}
	g.muNode.Unlock()

	g.muEdge.Lock()
	g.ensureRow(v)
	g.muEdge.Unlock()
}

// SetAdjacency replaces v's adjacency wholesale, inserting v if absent.
// Edges from v not present in adj are removed, including their mirror.
func (g *AdjacencyGraph[N]) SetAdjacency(v N, adj map[N]float64) {
	g.InsertNode(v)

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	for other := range g.adjacency[v] {
		if _, keep := adj[other]; !keep {
			delete(g.adjacency[other], v)
		}
	}
	row := make(map[N]float64, len(adj))
	for other, w := range adj {
		row[other] = w
		g.ensureRow(other)
		g.adjacency[other][v] = w
	}
	g.adjacency[v] = row
}

// DeleteNode removes v and every edge incident to it, or ErrNoSuchNode.
func (g *AdjacencyGraph[N]) DeleteNode(v N) error {
	g.muNode.Lock()
	if _, ok := g.nodes[v]; !ok {
		g.muNode.Unlock()
		return ErrNoSuchNode
	}
	delete(g.nodes, v)
	g.muNode.Unlock()

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	for other := range g.adjacency[v] {
		delete(g.adjacency[other], v)
	}
	delete(g.adjacency, v)
	return nil
}

// Neighbours yields every u != v with Edge(v, u) within bound, or ErrNoSuchNode.
func (g *AdjacencyGraph[N]) Neighbours(v N, bound Bound) ([]N, error) {
	g.muNode.RLock()
	_, ok := g.nodes[v]
	g.muNode.RUnlock()
	if !ok {
		return nil, ErrNoSuchNode
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]N, 0, len(g.adjacency[v]))
	for u, w := range g.adjacency[v] {
		if u == v {
			continue // self-edges are never exposed as neighbours
		}
		if bound.Covers(w) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Union merges g1 and g2: nodes are unioned, and common edges must agree in
// weight or ErrConflictingEdge is returned. The result is an AdjacencyGraph.
func Union[N comparable](g1, g2 *AdjacencyGraph[N]) (*AdjacencyGraph[N], error) {
	out := NewAdjacencyGraph[N]()
	for _, v := range g1.Nodes() {
		out.InsertNode(v)
	}
	for _, v := range g2.Nodes() {
		out.InsertNode(v)
	}
	if err := mergeEdges(out, g1); err != nil {
		return nil, err
	}
	if err := mergeEdges(out, g2); err != nil {
		return nil, err
	}
	return out, nil
}

func mergeEdges[N comparable](dst *AdjacencyGraph[N], src *AdjacencyGraph[N]) error {
	src.muEdge.RLock()
	defer src.muEdge.RUnlock()
	for a, row := range src.adjacency {
		for b, w := range row {
			if existing, ok := dst.adjacency[a][b]; ok {
				if existing != w {
					return ErrConflictingEdge
				}
				continue
			}
			dst.ensureRow(a)
			dst.ensureRow(b)
			dst.adjacency[a][b] = w
			dst.adjacency[b][a] = w
		}
	}
	return nil
}

// ensureRow allocates the adjacency row for v if missing. Callers must hold
// muEdge for writing.
func (g *AdjacencyGraph[N]) ensureRow(v N) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[N]float64)
	}
}

// BoundedAdjacencyGraph is an AdjacencyGraph that silently discards edges
// above a construction-time maximum, and short-circuits neighbour queries
// whose requested bound already exceeds that maximum.
type BoundedAdjacencyGraph[N comparable] struct {
	*AdjacencyGraph[N]
	epsMax float64
}

// NewBoundedAdjacencyGraph returns an empty graph that drops edges heavier
// than epsMax.
func NewBoundedAdjacencyGraph[N comparable](epsMax float64) *BoundedAdjacencyGraph[N] {
	return &BoundedAdjacencyGraph[N]{
		AdjacencyGraph: NewAdjacencyGraph[N](),
		epsMax:         epsMax,
	}
}

// SetEdge stores the edge unless w exceeds epsMax, in which case it is
// silently discarded (not an error: spec.md §4.2 specifies silent dropping).
func (g *BoundedAdjacencyGraph[N]) SetEdge(a, b N, w float64) error {
	if w > g.epsMax {
		if !g.Contains(a) || !g.Contains(b) {
			return ErrNoSuchNode
		}
		return nil
	}
	return g.AdjacencyGraph.SetEdge(a, b, w)
}

// Neighbours returns the full adjacency unfiltered whenever bound is Any or
// already covers epsMax, since no stored edge can exceed epsMax anyway.
func (g *BoundedAdjacencyGraph[N]) Neighbours(v N, bound Bound) ([]N, error) {
	if bound.Unbounded() || bound.Value() >= g.epsMax {
		return g.AdjacencyGraph.Neighbours(v, Any)
	}
	return g.AdjacencyGraph.Neighbours(v, bound)
}
