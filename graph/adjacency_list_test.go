package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/MaineKuehn/dengraph/graph"
)

// AdjacencyGraphSuite exercises AdjacencyGraph[string] under basic mutation
// and query scenarios.
type AdjacencyGraphSuite struct {
	suite.Suite
}

func (s *AdjacencyGraphSuite) TestInsertAndSetEdge() {
	g := graph.NewAdjacencyGraph[string]()
	g.InsertNode("a")
	g.InsertNode("b")
	require.NoError(s.T(), g.SetEdge("a", "b", 1.5))

	w, err := g.Edge("a", "b")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.5, w)

	w, err = g.Edge("b", "a")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.5, w, "edges must be symmetric")
}

func (s *AdjacencyGraphSuite) TestSetEdgeMissingNode() {
	g := graph.NewAdjacencyGraph[string]()
	g.InsertNode("a")
	err := g.SetEdge("a", "b", 1.0)
	require.True(s.T(), errors.Is(err, graph.ErrNoSuchNode))
}

func (s *AdjacencyGraphSuite) TestNeighboursExcludesSelfAndRespectsBound() {
	g := graph.NewAdjacencyGraph[string]()
	for _, v := range []string{"a", "b", "c"} {
		g.InsertNode(v)
	}
	require.NoError(s.T(), g.SetEdge("a", "b", 1.0))
	require.NoError(s.T(), g.SetEdge("a", "c", 5.0))

	near, err := g.Neighbours("a", graph.WithMax(2.0))
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []string{"b"}, near)

	all, err := g.Neighbours("a", graph.Any)
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []string{"b", "c"}, all)
}

func (s *AdjacencyGraphSuite) TestDeleteNodeRemovesIncidentEdges() {
	g := graph.NewAdjacencyGraph[string]()
	for _, v := range []string{"a", "b"} {
		g.InsertNode(v)
	}
	require.NoError(s.T(), g.SetEdge("a", "b", 1.0))
	require.NoError(s.T(), g.DeleteNode("a"))
	require.False(s.T(), g.Contains("a"))
	require.False(s.T(), g.ContainsEdge("a", "b"))

	_, err := g.Neighbours("b", graph.Any)
	require.NoError(s.T(), err)
}

func (s *AdjacencyGraphSuite) TestUnionConflictingEdge() {
	g1 := graph.NewAdjacencyGraph[string]()
	g1.InsertNode("a")
	g1.InsertNode("b")
	require.NoError(s.T(), g1.SetEdge("a", "b", 1.0))

	g2 := graph.NewAdjacencyGraph[string]()
	g2.InsertNode("a")
	g2.InsertNode("b")
	require.NoError(s.T(), g2.SetEdge("a", "b", 2.0))

	_, err := graph.Union[string](g1, g2)
	require.True(s.T(), errors.Is(err, graph.ErrConflictingEdge))
}

func (s *AdjacencyGraphSuite) TestBoundedGraphSilentlyDropsOversizedEdges() {
	g := graph.NewBoundedAdjacencyGraph[string](2.0)
	g.InsertNode("a")
	g.InsertNode("b")
	require.NoError(s.T(), g.SetEdge("a", "b", 5.0))
	require.False(s.T(), g.ContainsEdge("a", "b"), "edges above epsMax are dropped silently, not erred")
}

func TestAdjacencyGraphSuite(t *testing.T) {
	suite.Run(t, new(AdjacencyGraphSuite))
}
