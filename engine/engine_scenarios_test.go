package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/MaineKuehn/dengraph/distance"
	"github.com/MaineKuehn/dengraph/engine"
	"github.com/MaineKuehn/dengraph/graph"
)

// ScenarioSuite encodes the end-to-end scenarios S1-S5 from spec.md §8 as
// named test methods over an integer graph with the |a-b| distance. S6
// (virtual-probe mean invalidation) lives in probe/facet_test.go since it
// exercises the probe package, not the engine alone.
type ScenarioSuite struct {
	suite.Suite
}

func computedGraph(nodes ...int) *graph.ComputedGraph[int] {
	return graph.NewComputedGraph[int](distance.Numeric[int]{}, nodes...)
}

func (s *ScenarioSuite) TestScenario_S1_OneClusterOneOutlier() {
	g := computedGraph(1, 2, 3, 4, 5, 6, 20)
	e := engine.New[int](g, 5, 5)
	assertInvariants(s.T(), e)

	clusters := e.Clusters()
	require.Len(s.T(), clusters, 1)
	require.ElementsMatch(s.T(), []int{1, 2, 3, 4, 5, 6}, clusters[0].CoreNodes())
	require.Empty(s.T(), clusters[0].BorderNodes())
	require.ElementsMatch(s.T(), []int{20}, e.Noise())
}

func (s *ScenarioSuite) TestScenario_S2_TwoDisjointClusters() {
	g := computedGraph(1, 2, 3, 4, 5, 6, 13, 14, 15, 16, 17, 18)
	e := engine.New[int](g, 5, 5)
	assertInvariants(s.T(), e)

	clusters := e.Clusters()
	require.Len(s.T(), clusters, 2)
	require.Empty(s.T(), e.Noise())
	for _, k := range clusters {
		require.Len(s.T(), k.CoreNodes(), 6)
		require.Empty(s.T(), k.BorderNodes())
	}
}

func (s *ScenarioSuite) TestScenario_S3_OverlapOnBorder() {
	g := computedGraph(1, 2, 3, 4, 5, 6, 9, 14, 15, 16, 17, 18, 19, 20)
	e := engine.New[int](g, 5, 5)
	assertInvariants(s.T(), e)

	clusters := e.Clusters()
	require.Len(s.T(), clusters, 2)

	var sawNineAsBorderCount int
	for _, k := range clusters {
		if k.IsBorder(9) {
			sawNineAsBorderCount++
		}
		require.False(s.T(), k.IsCore(9), "9 must never be core: its own neighbour count is below eta")
	}
	require.Equal(s.T(), 2, sawNineAsBorderCount, "9 must overlap as a border of both clusters")
}

func (s *ScenarioSuite) TestScenario_S4_DeleteNodeSplitsCluster() {
	g := computedGraph(1, 2, 3, 4, 5, 6, 7, 12, 13, 14, 15, 16, 17)
	e := engine.New[int](g, 5, 5)
	assertInvariants(s.T(), e)
	require.Len(s.T(), e.Clusters(), 1, "the bridge node 7 should initially unite both halves into one cluster")

	require.NoError(s.T(), e.DeleteNode(7))
	assertInvariants(s.T(), e)

	clusters := e.Clusters()
	require.Len(s.T(), clusters, 2)
	require.Empty(s.T(), e.Noise())

	var coreSets [][]int
	for _, k := range clusters {
		coreSets = append(coreSets, k.CoreNodes())
	}
	require.ElementsMatch(s.T(), []int{1, 2, 3, 4, 5, 6}, pickMatching(coreSets, 1))
	require.ElementsMatch(s.T(), []int{12, 13, 14, 15, 16, 17}, pickMatching(coreSets, 12))
}

func (s *ScenarioSuite) TestScenario_S5_DeleteNoiseIsInverseOfInsert() {
	base := computedGraph(1, 2, 3, 4, 5, 6)
	baseline := engine.New[int](base, 5, 5)

	g := computedGraph(1, 2, 3, 4, 5, 6, 30, 31)
	e := engine.New[int](g, 5, 5)
	assertInvariants(s.T(), e)

	require.NoError(s.T(), e.DeleteNode(30))
	require.NoError(s.T(), e.DeleteNode(31))
	assertInvariants(s.T(), e)

	require.Empty(s.T(), e.Noise())
	require.True(s.T(), e.Equal(baseline))
}

func pickMatching(sets [][]int, want int) []int {
	for _, s := range sets {
		for _, v := range s {
			if v == want {
				return s
			}
		}
	}
	return nil
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}
