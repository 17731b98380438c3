package cluster

import (
	"errors"

	"github.com/MaineKuehn/dengraph/graph"
)

// ErrInvalidArgument is returned by Categorize for any role other than Core
// or Border.
var ErrInvalidArgument = errors.New("cluster: invalid role argument")

// ErrCrossGraph is returned by MergeInto when the two clusters do not share
// the same substrate reference.
var ErrCrossGraph = errors.New("cluster: clusters reference different substrates")

// Role is the tagged role a node holds within a single cluster. There is no
// Unassigned variant: a node absent from both sets is simply not a member.
type Role int

const (
	// Core marks a node with at least eta neighbours within eps.
	Core Role = iota
	// Border marks a node reachable within eps from at least one core.
	Border
)

// Cluster is a pair of disjoint node sets (core, border) over a graph
// substrate the Cluster borrows but does not own. insOrder records the
// order nodes were first categorized, so Nodes() is deterministic per run
// even when N has no natural ordering.
type Cluster[N comparable] struct {
	substrate graph.Graph[N]
	eps       float64

	core     map[N]struct{}
	border   map[N]struct{}
	insOrder []N
}

// New returns an empty cluster over g, whose Neighbours queries use eps as
// the cluster's neighbourhood radius.
func New[N comparable](g graph.Graph[N], eps float64) *Cluster[N] {
	return &Cluster[N]{
		substrate: g,
		eps:       eps,
		core:      make(map[N]struct{}),
		border:    make(map[N]struct{}),
	}
}

// Substrate returns the graph this cluster borrows, for identity comparison
// by MergeInto and by the engine.
func (c *Cluster[N]) Substrate() graph.Graph[N] {
	return c.substrate
}

// Categorize ensures v is in exactly the named set, removing it from the
// other set if present. Any role other than Core or Border is rejected.
func (c *Cluster[N]) Categorize(v N, role Role) error {
	wasMember := c.Contains(v)
	switch role {
	case Core:
		delete(c.border, v)
		c.core[v] = struct{}{}
	case Border:
		delete(c.core, v)
		c.border[v] = struct{}{}
	default:
		return ErrInvalidArgument
	}
	if !wasMember {
		c.insOrder = append(c.insOrder, v)
	}
	return nil
}

// Uncategorize removes v from both role sets, dropping it from the cluster
// entirely.
func (c *Cluster[N]) Uncategorize(v N) {
	if !c.Contains(v) {
		return
	}
	delete(c.core, v)
	delete(c.border, v)
	for i, u := range c.insOrder {
		if u == v {
			c.insOrder = append(c.insOrder[:i], c.insOrder[i+1:]...)
			break
		}
	}
}

// Contains reports whether v is a core or border member.
func (c *Cluster[N]) Contains(v N) bool {
	if _, ok := c.core[v]; ok {
		return true
	}
	_, ok := c.border[v]
	return ok
}

// IsCore reports whether v is specifically a core member.
func (c *Cluster[N]) IsCore(v N) bool {
	_, ok := c.core[v]
	return ok
}

// IsBorder reports whether v is specifically a border member.
func (c *Cluster[N]) IsBorder(v N) bool {
	_, ok := c.border[v]
	return ok
}

// Len returns |core| + |border|.
func (c *Cluster[N]) Len() int {
	return len(c.core) + len(c.border)
}

// CoreLen returns the number of core members.
func (c *Cluster[N]) CoreLen() int {
	return len(c.core)
}

// Nodes returns cores first, then borders, in the order each was first
// categorized -- deterministic per run, per spec.md's cluster iteration
// contract, without requiring N to be orderable.
func (c *Cluster[N]) Nodes() []N {
	out := make([]N, 0, c.Len())
	for _, v := range c.insOrder {
		if _, ok := c.core[v]; ok {
			out = append(out, v)
		}
	}
	for _, v := range c.insOrder {
		if _, ok := c.border[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// CoreNodes returns the core set in first-categorized order.
func (c *Cluster[N]) CoreNodes() []N {
	out := make([]N, 0, len(c.core))
	for _, v := range c.insOrder {
		if _, ok := c.core[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// BorderNodes returns the border set in first-categorized order.
func (c *Cluster[N]) BorderNodes() []N {
	out := make([]N, 0, len(c.border))
	for _, v := range c.insOrder {
		if _, ok := c.border[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Edge delegates to the substrate, but only if both endpoints are members of
// this cluster; otherwise ErrNoSuchEdge, even if the substrate itself has
// the edge.
func (c *Cluster[N]) Edge(a, b N) (float64, error) {
	if !c.Contains(a) || !c.Contains(b) {
		return 0, graph.ErrNoSuchEdge
	}
	return c.substrate.Edge(a, b)
}

// Neighbours returns the subset of v's eps-neighbours (in the substrate)
// that are also members of this cluster.
func (c *Cluster[N]) Neighbours(v N) ([]N, error) {
	all, err := c.substrate.Neighbours(v, graph.WithMax(c.eps))
	if err != nil {
		return nil, err
	}
	out := make([]N, 0, len(all))
	for _, u := range all {
		if c.Contains(u) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Equal reports whether c and other have set-equal core and border sets and
// share the identical substrate reference.
func (c *Cluster[N]) Equal(other *Cluster[N]) bool {
	if other == nil {
		return false
	}
	if c.substrate != other.substrate {
		return false
	}
	if len(c.core) != len(other.core) || len(c.border) != len(other.border) {
		return false
	}
	for v := range c.core {
		if _, ok := other.core[v]; !ok {
			return false
		}
	}
	for v := range c.border {
		if _, ok := other.border[v]; !ok {
			return false
		}
	}
	return true
}

// MergeInto unions other into c: cores are unioned, borders are unioned and
// then the merged core set is subtracted from borders to preserve
// disjointness. Merging a cluster with itself is a no-op (identity rule).
// Requires both clusters share the same substrate, else ErrCrossGraph.
func (c *Cluster[N]) MergeInto(other *Cluster[N]) error {
	if c == other {
		return nil
	}
	if c.substrate != other.substrate {
		return ErrCrossGraph
	}
	for _, v := range other.CoreNodes() {
		if err := c.Categorize(v, Core); err != nil {
			return err
		}
	}
	for _, v := range other.BorderNodes() {
		if !c.IsCore(v) {
			if err := c.Categorize(v, Border); err != nil {
				return err
			}
		}
	}
	return nil
}
