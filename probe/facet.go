// File: facet.go
// Role: Facet[N], the virtual-probe handle over a live engine.Engine.
// AI-HINT (file):
//   - A virtual node is never added to the graph or any cluster; Probe only
//     reads engine state, it never mutates it.
//   - meanOf's cache key is the generation stamp at computation time, not a
//     TTL: any engine call that changes a role or merges or destroys a
//     cluster advances the generation and invalidates every cached mean,
//     resolving spec.md §9's open question 3 toward "always fresh"
//     over "stale until explicitly refreshed".
package probe

import (
	"errors"

	"github.com/MaineKuehn/dengraph/cluster"
	"github.com/MaineKuehn/dengraph/distance"
	"github.com/MaineKuehn/dengraph/engine"
	"github.com/MaineKuehn/dengraph/graph"
)

// ErrNoDistanceSupport is returned by New when the engine's substrate does
// not implement graph.DistanceAware[N] and no explicit distance was given
// via WithDistance. It is the Go rendering of the source's duck-typed
// hasattr(graph, 'distance') check.
var ErrNoDistanceSupport = errors.New("probe: engine graph does not support distances")

// ErrNoMeanSupport is returned when a cluster's mean is requested but the
// engine's distance does not implement distance.Meaner[N].
var ErrNoMeanSupport = errors.New("probe: distance does not support computing a mean")

// ProbeResult pairs a cluster with a virtual node's measured distance to
// that cluster's current mean.
type ProbeResult[N comparable] struct {
	Cluster  *cluster.Cluster[N]
	Distance float64
}

type meanCache[N comparable] struct {
	value      N
	generation uint64
}

// Facet measures virtual (not-yet-admitted) nodes against the clusters of a
// live engine.Engine.
type Facet[N comparable] struct {
	eng  *engine.Engine[N]
	dist distance.Distance[N]

	means map[*cluster.Cluster[N]]meanCache[N]
	last  map[N]map[*cluster.Cluster[N]]float64
}

// New constructs a Facet over e, deriving the distance function from e's
// substrate. Returns ErrNoDistanceSupport if the substrate isn't
// graph.DistanceAware[N]; use WithDistance to supply one explicitly instead.
func New[N comparable](e *engine.Engine[N]) (*Facet[N], error) {
	da, ok := e.Graph().(graph.DistanceAware[N])
	if !ok {
		return nil, ErrNoDistanceSupport
	}
	return newFacet(e, da.Distance()), nil
}

// WithDistance constructs a Facet over e using an explicitly supplied
// distance function, for substrates that do not implement
// graph.DistanceAware[N] (spec.md §5's escape hatch for the bounded and
// plain adjacency substrates).
func WithDistance[N comparable](e *engine.Engine[N], d distance.Distance[N]) *Facet[N] {
	return newFacet(e, d)
}

func newFacet[N comparable](e *engine.Engine[N], d distance.Distance[N]) *Facet[N] {
	return &Facet[N]{
		eng:   e,
		dist:  d,
		means: make(map[*cluster.Cluster[N]]meanCache[N]),
		last:  make(map[N]map[*cluster.Cluster[N]]float64),
	}
}

// meanOf returns k's current mean, recomputing it if the engine's
// generation has advanced since it was last cached.
func (f *Facet[N]) meanOf(k *cluster.Cluster[N]) (N, error) {
	gen := f.eng.Generation()
	if cached, ok := f.means[k]; ok && cached.generation == gen {
		return cached.value, nil
	}

	meaner, ok := f.dist.(distance.Meaner[N])
	if !ok {
		var zero N
		return zero, ErrNoMeanSupport
	}
	mean, err := meaner.Mean(k.Nodes())
	if err != nil {
		var zero N
		return zero, err
	}
	f.means[k] = meanCache[N]{value: mean, generation: gen}
	return mean, nil
}

// Probe measures vn against the mean of every nonempty current cluster,
// remembering the measured distances so a later UpdateProbe can apply an
// incremental delta instead of recomputing from scratch.
func (f *Facet[N]) Probe(vn N) ([]ProbeResult[N], error) {
	clusters := f.eng.Clusters()
	results := make([]ProbeResult[N], 0, len(clusters))
	remembered := make(map[*cluster.Cluster[N]]float64, len(clusters))

	for _, k := range clusters {
		if k.Len() == 0 {
			continue
		}
		mean, err := f.meanOf(k)
		if err != nil {
			continue
		}
		d, err := f.dist.Between(mean, vn)
		if err != nil {
			continue
		}
		results = append(results, ProbeResult[N]{Cluster: k, Distance: d})
		remembered[k] = d
	}
	f.last[vn] = remembered
	return results, nil
}

// UpdateProbe recomputes vn's distance to every cluster it was previously
// probed against, applying changes as an incremental delta via
// distance.Updater[N, any] when the engine's distance supports it. If vn
// has no prior Probe call, or the distance has no Updater, it falls back to
// a full Probe.
func (f *Facet[N]) UpdateProbe(vn N, changes any) ([]ProbeResult[N], error) {
	remembered, known := f.last[vn]
	updater, updatable := f.dist.(distance.Updater[N, any])
	if !known || !updatable {
		return f.Probe(vn)
	}

	results := make([]ProbeResult[N], 0, len(remembered))
	for _, k := range f.eng.Clusters() {
		base, ok := remembered[k]
		if !ok {
			continue
		}
		mean, err := f.meanOf(k)
		if err != nil {
			continue
		}
		d, err := updater.Update(mean, vn, changes, base)
		if err != nil {
			continue
		}
		remembered[k] = d
		results = append(results, ProbeResult[N]{Cluster: k, Distance: d})
	}
	return results, nil
}

// Persist forgets vn's virtual-probe state and admits it to the graph via
// engine.InsertNode, running the normal node-added procedure.
func (f *Facet[N]) Persist(vn N) error {
	delete(f.last, vn)
	return f.eng.InsertNode(vn)
}
