package quality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MaineKuehn/dengraph/cluster"
	"github.com/MaineKuehn/dengraph/distance"
	"github.com/MaineKuehn/dengraph/graph"
	"github.com/MaineKuehn/dengraph/quality"
)

func twoSeparatedClusters(t *testing.T) []*cluster.Cluster[int] {
	g := graph.NewAdjacencyGraph[int]()
	for _, v := range []int{1, 2, 3, 100, 101, 102} {
		g.InsertNode(v)
	}
	k1 := cluster.New[int](g, 5)
	require.NoError(t, k1.Categorize(1, cluster.Core))
	require.NoError(t, k1.Categorize(2, cluster.Core))
	require.NoError(t, k1.Categorize(3, cluster.Core))

	k2 := cluster.New[int](g, 5)
	require.NoError(t, k2.Categorize(100, cluster.Core))
	require.NoError(t, k2.Categorize(101, cluster.Core))
	require.NoError(t, k2.Categorize(102, cluster.Core))

	return []*cluster.Cluster[int]{k1, k2}
}

func TestSilhouetteOfWellSeparatedClusters(t *testing.T) {
	clusters := twoSeparatedClusters(t)
	score, err := quality.Silhouette[int](clusters, distance.Numeric[int]{})
	require.NoError(t, err)
	require.Greater(t, score, 0.9, "two tight, far-apart clusters should score close to 1")
}

func TestInterIntraRatioAboveOneForSeparatedClusters(t *testing.T) {
	clusters := twoSeparatedClusters(t)
	ratio, err := quality.InterIntra[int](clusters, distance.Numeric[int]{})
	require.NoError(t, err)
	require.Greater(t, ratio, 1.0)
}

func TestSilhouetteInsufficientClusters(t *testing.T) {
	g := graph.NewAdjacencyGraph[int]()
	g.InsertNode(1)
	k := cluster.New[int](g, 5)
	require.NoError(t, k.Categorize(1, cluster.Core))

	_, err := quality.Silhouette[int]([]*cluster.Cluster[int]{k}, distance.Numeric[int]{})
	require.ErrorIs(t, err, quality.ErrInsufficientClusters)
}
