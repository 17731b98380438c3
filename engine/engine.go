// File: engine.go
// Role: Engine[N] type, constructor (initial batch clustering), and the
//       read-only public surface (Len/Contains/ContainsEdge/Edge/Clusters/
//       Noise/Equal). Mutating edits live in edit.go; the incremental
//       reclassification procedures live in transitions.go.
// AI-HINT (file):
//   - New() runs the full batch pass of spec.md §4.4.2 once, up front.
//   - Clusters() is sorted ascending by size as an optimisation (spec.md
//     §4.4.1 note), not a correctness requirement; do not rely on order
//     beyond "ascending size" for any invariant.
package engine

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/MaineKuehn/dengraph/cluster"
	"github.com/MaineKuehn/dengraph/graph"
)

// Engine maintains a dynamic partition of a graph into overlap-tolerant
// density clusters plus a residual noise set (spec.md component C4).
//
// Engine is single-threaded and not reentrant: callers must serialize all
// edits (spec.md §5). A zero Engine is not usable; construct with New.
type Engine[N comparable] struct {
	g   graph.Graph[N]
	eps float64
	eta int

	clusters []*cluster.Cluster[N]
	noise    map[N]struct{}

	log        zerolog.Logger
	generation uint64
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	log zerolog.Logger
}

// WithLogger attaches a structured logger; every role assignment emits a
// Debug event with fields node/role/reason. Default is zerolog.Nop(),
// so an Engine built without this option has zero logging overhead.
func WithLogger(l zerolog.Logger) Option {
	return func(c *engineConfig) { c.log = l }
}

// New constructs an Engine over g with the given (eps, eta) and performs the
// initial batch clustering pass (spec.md §4.4.2).
func New[N comparable](g graph.Graph[N], eps float64, eta int, opts ...Option) *Engine[N] {
	cfg := engineConfig{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine[N]{
		g:     g,
		eps:   eps,
		eta:   eta,
		noise: make(map[N]struct{}),
		log:   cfg.log,
	}
	for _, v := range g.Nodes() {
		e.noise[v] = struct{}{}
	}
	e.initialCluster()
	return e
}

// initialCluster performs the batch DBSCAN pass of spec.md §4.4.2: for each
// node still in noise, expand a new cluster via worklist if it qualifies as
// core, else leave it tentatively in noise.
func (e *Engine[N]) initialCluster() {
	for _, v := range e.g.Nodes() {
		if _, stillNoise := e.noise[v]; !stillNoise {
			continue
		}
		neighbours, err := e.g.Neighbours(v, graph.WithMax(e.eps))
		if err != nil {
			continue
		}
		if len(neighbours) < e.eta {
			continue // remains tentatively in noise
		}

		k := cluster.New[N](e.g, e.eps)
		e.categorize(k, v, cluster.Core, "initial")
		delete(e.noise, v)

		visited := map[N]bool{v: true}
		worklist := append([]N(nil), neighbours...)
		for len(worklist) > 0 {
			u := worklist[0]
			worklist = worklist[1:]
			if visited[u] {
				continue
			}
			visited[u] = true
			delete(e.noise, u)

			nu, err := e.g.Neighbours(u, graph.WithMax(e.eps))
			if err != nil {
				continue
			}
			if len(nu) >= e.eta {
				e.categorize(k, u, cluster.Core, "initial")
				for _, w := range nu {
					if !visited[w] {
						worklist = append(worklist, w)
					}
				}
			} else {
				e.categorize(k, u, cluster.Border, "initial")
			}
		}
		e.clusters = append(e.clusters, k)
	}
	e.sortClusters()
}

// sortClusters orders clusters ascending by size, an optimisation (not a
// correctness requirement) that makes subsequent containment tests cheaper
// on average, following the source's documented rationale.
func (e *Engine[N]) sortClusters() {
	sort.SliceStable(e.clusters, func(i, j int) bool {
		return e.clusters[i].Len() < e.clusters[j].Len()
	})
}

// categorize assigns role to v in k, bumps the generation counter, and logs
// the transition if a logger was configured.
func (e *Engine[N]) categorize(k *cluster.Cluster[N], v N, role cluster.Role, reason string) {
	_ = k.Categorize(v, role)
	e.generation++
	if e.log.GetLevel() <= zerolog.DebugLevel {
		roleName := "border"
		if role == cluster.Core {
			roleName = "core"
		}
		e.log.Debug().
			Interface("node", v).
			Str("role", roleName).
			Str("reason", reason).
			Msg("engine: role transition")
	}
}

// Generation returns a counter bumped on every successful structural
// mutation (role change, cluster creation/merge/destruction). probe.Facet
// uses it to invalidate cached cluster means (spec.md §9's open question 3).
func (e *Engine[N]) Generation() uint64 {
	return e.generation
}

// Len returns the sum of |K| over all clusters. A border node shared by
// multiple clusters is counted once per cluster (spec.md §4.4.1 note and §9
// open question 1): this is the source's documented, if debatable, choice.
// See DedupedLen for the deduplicated alternative.
func (e *Engine[N]) Len() int {
	total := 0
	for _, k := range e.clusters {
		total += k.Len()
	}
	return total
}

// DedupedLen returns the number of distinct nodes that belong to at least
// one cluster, counting overlapping border nodes once. This is the
// alternative policy spec.md §9 says implementers may choose instead of Len.
func (e *Engine[N]) DedupedLen() int {
	seen := make(map[N]struct{})
	for _, k := range e.clusters {
		for _, v := range k.Nodes() {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// Contains reports whether v belongs to some cluster (core or border).
func (e *Engine[N]) Contains(v N) bool {
	for _, k := range e.clusters {
		if k.Contains(v) {
			return true
		}
	}
	return false
}

// ContainsEdge reports whether both endpoints belong to some cluster (not
// necessarily the same one).
func (e *Engine[N]) ContainsEdge(a, b N) bool {
	return e.Contains(a) && e.Contains(b)
}

// Edge returns the substrate edge weight, gated by ContainsEdge.
func (e *Engine[N]) Edge(a, b N) (float64, error) {
	if !e.ContainsEdge(a, b) {
		return 0, ErrNoSuchEdge
	}
	return e.g.Edge(a, b)
}

// Clusters returns a snapshot of the current cluster list, ascending by
// size. Callers must not mutate the returned clusters; all mutation goes
// through Engine's edit methods (spec.md §5 shared-resource policy).
func (e *Engine[N]) Clusters() []*cluster.Cluster[N] {
	out := make([]*cluster.Cluster[N], len(e.clusters))
	copy(out, e.clusters)
	return out
}

// Noise returns the current noise set as a slice snapshot.
func (e *Engine[N]) Noise() []N {
	out := make([]N, 0, len(e.noise))
	for v := range e.noise {
		out = append(out, v)
	}
	return out
}

// Eps returns the engine's cluster_distance parameter.
func (e *Engine[N]) Eps() float64 { return e.eps }

// Eta returns the engine's core_neighbours parameter.
func (e *Engine[N]) Eta() int { return e.eta }

// Graph returns the underlying substrate. Mutating it directly bypasses the
// engine's invariants; callers should use Engine's edit methods instead.
func (e *Engine[N]) Graph() graph.Graph[N] {
	return e.g
}

// Equal reports whether e and other have the same (eps, eta), the same
// total size, the same noise set, and every cluster on one side is
// set-equal to some cluster on the other (spec.md §4.4.9). Cluster order is
// irrelevant.
func (e *Engine[N]) Equal(other *Engine[N]) bool {
	if other == nil {
		return false
	}
	if e.eps != other.eps || e.eta != other.eta {
		return false
	}
	if e.Len() != other.Len() {
		return false
	}
	if len(e.noise) != len(other.noise) {
		return false
	}
	for v := range e.noise {
		if _, ok := other.noise[v]; !ok {
			return false
		}
	}
	if len(e.clusters) != len(other.clusters) {
		return false
	}
	matched := make([]bool, len(other.clusters))
	for _, k := range e.clusters {
		found := false
		for i, ok := range other.clusters {
			if matched[i] || k.CoreLen() != ok.CoreLen() || k.Len() != ok.Len() {
				continue
			}
			same := true
			for _, v := range k.CoreNodes() {
				if !ok.IsCore(v) {
					same = false
					break
				}
			}
			for _, v := range k.BorderNodes() {
				if !same || !ok.IsBorder(v) {
					same = false
					break
				}
			}
			if same {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
