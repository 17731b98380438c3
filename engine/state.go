// File: state.go
// Role: private lookup and bookkeeping helpers shared by edit.go and
//       transitions.go. None of these mutate noise/clusters in a way that
//       leaves the engine observably inconsistent between calls; each is a
//       single borrowed step of a larger edit procedure.
package engine

import (
	"github.com/MaineKuehn/dengraph/cluster"
)

// coreClusterOf returns the unique cluster v is core in, if any. A node is
// core in at most one cluster at a time (spec.md §4.3's role table), so the
// first match is the only match.
func (e *Engine[N]) coreClusterOf(v N) (*cluster.Cluster[N], bool) {
	for _, k := range e.clusters {
		if k.IsCore(v) {
			return k, true
		}
	}
	return nil, false
}

// clustersContaining returns every cluster (core or border) v belongs to.
func (e *Engine[N]) clustersContaining(v N) []*cluster.Cluster[N] {
	var out []*cluster.Cluster[N]
	for _, k := range e.clusters {
		if k.Contains(v) {
			out = append(out, k)
		}
	}
	return out
}

// clustersContainingBoth returns every cluster that currently holds both a
// and b as members, used to decide which clusters need split validation
// after an edge removal.
func (e *Engine[N]) clustersContainingBoth(a, b N) []*cluster.Cluster[N] {
	var out []*cluster.Cluster[N]
	for _, k := range e.clusters {
		if k.Contains(a) && k.Contains(b) {
			out = append(out, k)
		}
	}
	return out
}

// clusterIndex returns k's position in e.clusters, or -1 if k is no longer
// tracked (e.g. destroyed or absorbed by a merge).
func (e *Engine[N]) clusterIndex(k *cluster.Cluster[N]) int {
	for i, c := range e.clusters {
		if c == k {
			return i
		}
	}
	return -1
}

// removeClusterAt drops the cluster at index i, preserving relative order of
// the rest.
func (e *Engine[N]) removeClusterAt(i int) {
	e.clusters = append(e.clusters[:i], e.clusters[i+1:]...)
}

// inOtherCluster reports whether v belongs to some tracked cluster other
// than any of exclude.
func (e *Engine[N]) inOtherCluster(v N, exclude []*cluster.Cluster[N]) bool {
	for _, k := range e.clusters {
		excluded := false
		for _, x := range exclude {
			if k == x {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if k.Contains(v) {
			return true
		}
	}
	return false
}

// destroyCluster removes k from the engine entirely. Every node that was a
// member of k and is not a member of any other tracked cluster falls back to
// noise (spec.md §4.4.6's "destroy K" clause).
func (e *Engine[N]) destroyCluster(k *cluster.Cluster[N]) {
	i := e.clusterIndex(k)
	if i < 0 {
		return
	}
	members := k.Nodes()
	e.removeClusterAt(i)
	e.generation++
	for _, v := range members {
		if !e.inOtherCluster(v, nil) {
			e.noise[v] = struct{}{}
		}
	}
}

// mergeClusters absorbs src into dst (spec.md §4.4.8) and drops src from the
// engine's cluster list. Merging a cluster with itself is a no-op, mirroring
// Cluster.MergeInto's identity rule.
func (e *Engine[N]) mergeClusters(dst, src *cluster.Cluster[N]) error {
	if dst == src {
		return nil
	}
	if err := dst.MergeInto(src); err != nil {
		return wrapf("mergeClusters", err)
	}
	if i := e.clusterIndex(src); i >= 0 {
		e.removeClusterAt(i)
	}
	e.generation++
	return nil
}

// coreNeighbourAdjacent reports whether v is within eps of at least one core
// node of k, used to decide border re-attachment after a split.
func (e *Engine[N]) coreNeighbourAdjacent(v N, k *cluster.Cluster[N]) bool {
	for _, c := range k.CoreNodes() {
		w, err := e.g.Edge(v, c)
		if err == nil && w <= e.eps {
			return true
		}
	}
	return false
}
