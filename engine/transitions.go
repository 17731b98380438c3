// File: transitions.go
// Role: the incremental reclassification procedures -- edgeAdded, nodeAdded,
//       edgeRemoved, nodeRemoved -- that let the engine avoid a full batch
//       DBSCAN pass after every edit.
// AI-HINT (file):
//   - promoteToCore's worklist is the merge-aware twin of engine.go's
//     initialCluster worklist: the difference is that encountering an
//     already-core node from a different cluster triggers a merge instead
//     of a duplicate classification, and the worklist is re-seeded from the
//     absorbed cluster's cores so the merge closure is transitive.
//   - revalidateSplit never assumes a removed edge split exactly two
//     pieces; it walks connected components of the surviving core graph and
//     creates as many sibling clusters as there are components.
package engine

import (
	"github.com/MaineKuehn/dengraph/cluster"
	"github.com/MaineKuehn/dengraph/graph"
)

// edgeAdded runs the procedure of spec.md §4.4.4 for an edge {a,b} that is
// newly present, or whose weight just crossed into [0, eps].
func (e *Engine[N]) edgeAdded(a, b N) error {
	for _, xy := range [2][2]N{{a, b}, {b, a}} {
		x, y := xy[0], xy[1]
		if !e.g.Contains(x) {
			return ErrNoSuchNode
		}
		if Kx, isCore := e.coreClusterOf(x); isCore {
			Ky, yCore := e.coreClusterOf(y)
			switch {
			case yCore && Ky != Kx:
				if err := e.mergeClusters(Kx, Ky); err != nil {
					return wrapf("edgeAdded", err)
				}
			case !yCore && !Kx.Contains(y):
				e.categorize(Kx, y, cluster.Border, "edge-added")
				delete(e.noise, y)
			}
			continue
		}
		Nx, err := e.g.Neighbours(x, graph.WithMax(e.eps))
		if err != nil {
			return wrapf("edgeAdded", err)
		}
		if len(Nx) >= e.eta {
			e.promoteToCore(x)
		}
	}
	e.sortClusters()
	return nil
}

// promoteToCore marks x CORE in a fresh cluster and expands outward exactly
// as the initial batch pass does, except that any already-core neighbour
// found along the way triggers mergeClusters instead of re-classification.
// The worklist is re-seeded from a merged-in cluster's cores so that chained
// density-reachability (spec.md §4.4.4 step 2) is resolved transitively.
func (e *Engine[N]) promoteToCore(x N) *cluster.Cluster[N] {
	Nx, err := e.g.Neighbours(x, graph.WithMax(e.eps))
	if err != nil {
		Nx = nil
	}

	k := cluster.New[N](e.g, e.eps)
	e.categorize(k, x, cluster.Core, "edge-added")
	delete(e.noise, x)
	e.clusters = append(e.clusters, k)

	visited := map[N]bool{x: true}
	worklist := append([]N(nil), Nx...)
	for len(worklist) > 0 {
		y := worklist[0]
		worklist = worklist[1:]
		if visited[y] {
			continue
		}
		visited[y] = true

		if ky, ok := e.coreClusterOf(y); ok && ky != k {
			absorbedCores := ky.CoreNodes()
			_ = e.mergeClusters(k, ky)
			for _, z := range absorbedCores {
				nz, err := e.g.Neighbours(z, graph.WithMax(e.eps))
				if err == nil {
					worklist = append(worklist, nz...)
				}
			}
			continue
		}

		delete(e.noise, y)
		ny, err := e.g.Neighbours(y, graph.WithMax(e.eps))
		if err != nil {
			continue
		}
		if len(ny) >= e.eta {
			e.categorize(k, y, cluster.Core, "edge-added")
			for _, w := range ny {
				if !visited[w] {
					worklist = append(worklist, w)
				}
			}
		} else if !k.IsCore(y) {
			e.categorize(k, y, cluster.Border, "edge-added")
		}
	}

	e.sortClusters()
	return k
}

// nodeAdded runs the procedure of spec.md §4.4.5: insert v with empty
// adjacency, place it tentatively in noise, then run edgeAdded against each
// pre-existing eps-neighbour (present if the caller wired edges atomically
// with the insertion).
func (e *Engine[N]) nodeAdded(v N) error {
	e.g.InsertNode(v)
	e.noise[v] = struct{}{}

	neighbours, err := e.g.Neighbours(v, graph.WithMax(e.eps))
	if err != nil {
		return wrapf("nodeAdded", err)
	}
	for _, u := range neighbours {
		if err := e.edgeAdded(v, u); err != nil {
			return wrapf("nodeAdded", err)
		}
	}
	return nil
}

// demoteIfNeeded recomputes x's neighbourhood and, if x is core somewhere
// and has fallen below eta, demotes it to BORDER there (spec.md §4.4.6 step
// 1). It reports the affected cluster so the caller can check whether that
// cluster has lost its last core.
func (e *Engine[N]) demoteIfNeeded(x N) (*cluster.Cluster[N], bool) {
	k, isCore := e.coreClusterOf(x)
	if !isCore {
		return nil, false
	}
	nx, err := e.g.Neighbours(x, graph.WithMax(e.eps))
	if err != nil || len(nx) >= e.eta {
		return nil, false
	}
	e.categorize(k, x, cluster.Border, "edge-removed")
	return k, true
}

// edgeRemoved runs the procedure of spec.md §4.4.6 for an edge {a,b} that
// has just left [0, eps] or been deleted outright.
func (e *Engine[N]) edgeRemoved(a, b N) error {
	shared := e.clustersContainingBoth(a, b)

	if k, ok := e.demoteIfNeeded(a); ok && k.CoreLen() == 0 {
		e.destroyCluster(k)
	}
	if k, ok := e.demoteIfNeeded(b); ok && k.CoreLen() == 0 {
		e.destroyCluster(k)
	}

	for _, k := range shared {
		if e.clusterIndex(k) >= 0 {
			e.revalidateSplit(k)
		}
	}
	return nil
}

// revalidateSplit partitions k's surviving cores into connected components
// under eps-adjacency (spec.md §4.4.6 step 2): component zero reuses k,
// every further component becomes a new sibling cluster. Former border
// members reattach to every surviving component whose core they remain
// within eps of (overlap is preserved across the split); a border that
// attaches to none and has no other cluster membership falls to noise.
func (e *Engine[N]) revalidateSplit(k *cluster.Cluster[N]) {
	cores := k.CoreNodes()
	if len(cores) == 0 {
		e.destroyCluster(k)
		return
	}

	borders := k.BorderNodes()
	coreSet := make(map[N]bool, len(cores))
	for _, c := range cores {
		coreSet[c] = true
	}

	visited := make(map[N]bool, len(cores))
	var components [][]N
	for _, seed := range cores {
		if visited[seed] {
			continue
		}
		var comp []N
		queue := []N{seed}
		visited[seed] = true
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			comp = append(comp, c)
			nc, err := e.g.Neighbours(c, graph.WithMax(e.eps))
			if err != nil {
				continue
			}
			for _, u := range nc {
				if coreSet[u] && !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		components = append(components, comp)
	}

	for _, v := range append(append([]N(nil), cores...), borders...) {
		k.Uncategorize(v)
	}

	survivors := make([]*cluster.Cluster[N], 0, len(components))
	for i, comp := range components {
		dst := k
		if i > 0 {
			dst = cluster.New[N](e.g, e.eps)
			e.clusters = append(e.clusters, dst)
		}
		for _, c := range comp {
			e.categorize(dst, c, cluster.Core, "edge-removed-split")
		}
		survivors = append(survivors, dst)
	}

	for _, v := range borders {
		attached := false
		for _, s := range survivors {
			if e.coreNeighbourAdjacent(v, s) {
				e.categorize(s, v, cluster.Border, "edge-removed-split")
				attached = true
			}
		}
		if !attached && !e.inOtherCluster(v, survivors) {
			e.noise[v] = struct{}{}
		}
	}

	e.sortClusters()
}

// nodeRemoved runs the procedure of spec.md §4.4.7.
func (e *Engine[N]) nodeRemoved(v N) error {
	if _, ok := e.noise[v]; ok {
		delete(e.noise, v)
		return e.g.DeleteNode(v)
	}

	neighbours, err := e.g.Neighbours(v, graph.Any)
	if err != nil {
		return wrapf("nodeRemoved", err)
	}

	var affected []*cluster.Cluster[N]
	for _, k := range e.clusters {
		if k.Contains(v) {
			k.Uncategorize(v)
			affected = append(affected, k)
		}
	}

	// Deleting v from the substrate drops every edge incident to it, which
	// also works for substrates that reject DeleteEdge (ComputedGraph).
	if err := e.g.DeleteNode(v); err != nil {
		return wrapf("nodeRemoved", err)
	}

	var touched []*cluster.Cluster[N]
	for _, u := range neighbours {
		if k, ok := e.demoteIfNeeded(u); ok {
			touched = append(touched, k)
		}
	}
	for _, k := range touched {
		if e.clusterIndex(k) >= 0 && k.CoreLen() == 0 {
			e.destroyCluster(k)
		}
	}

	for _, k := range affected {
		if e.clusterIndex(k) >= 0 {
			e.revalidateSplit(k)
		}
	}
	return nil
}
