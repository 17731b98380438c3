package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MaineKuehn/dengraph/cluster"
	"github.com/MaineKuehn/dengraph/engine"
	"github.com/MaineKuehn/dengraph/graph"
)

// assertInvariants checks quantified invariants 1-6 of spec.md §8 against
// e's current state; invariant 7 (two cores within eps share a cluster) is
// not checked here. It is invoked after every mutating call in the tests
// below rather than wired into Engine itself, keeping the invariant
// machinery out of the production type.
func assertInvariants[N comparable](t *testing.T, e *engine.Engine[N]) {
	t.Helper()

	coreOwner := make(map[N]*cluster.Cluster[N])
	for _, k := range e.Clusters() {
		require.GreaterOrEqual(t, k.CoreLen(), 1, "invariant 6: every cluster must have at least one core")

		for _, v := range k.CoreNodes() {
			require.False(t, k.IsBorder(v), "invariant 1: core and border must be disjoint within a cluster")

			if owner, ok := coreOwner[v]; ok {
				require.Same(t, owner, k, "invariant 2: a node is core in at most one cluster")
			}
			coreOwner[v] = k

			n, err := e.Graph().Neighbours(v, graph.WithMax(e.Eps()))
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(n), e.Eta(), "invariant 3: core density")
		}

		for _, v := range k.BorderNodes() {
			attached := false
			for _, c := range k.CoreNodes() {
				w, err := e.Graph().Edge(v, c)
				if err == nil && w <= e.Eps() {
					attached = true
					break
				}
			}
			require.True(t, attached, "invariant 4: every border must reach some core of its cluster within eps")
		}
	}

	for _, v := range e.Graph().Nodes() {
		_, isNoise := noiseSet(e)[v]
		inCluster := e.Contains(v)
		require.True(t, isNoise != inCluster, "invariant 5: every node is noise xor clustered, never both or neither")
	}
}

func noiseSet[N comparable](e *engine.Engine[N]) map[N]struct{} {
	out := make(map[N]struct{})
	for _, v := range e.Noise() {
		out[v] = struct{}{}
	}
	return out
}
