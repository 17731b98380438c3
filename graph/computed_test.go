package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/MaineKuehn/dengraph/distance"
	"github.com/MaineKuehn/dengraph/graph"
)

type ComputedGraphSuite struct {
	suite.Suite
}

func (s *ComputedGraphSuite) newGraph() *graph.ComputedGraph[float64] {
	return graph.NewComputedGraph[float64](distance.Numeric[float64]{})
}

func (s *ComputedGraphSuite) TestEdgeIsComputedNotStored() {
	g := s.newGraph()
	g.InsertNode(1.0)
	g.InsertNode(4.0)

	w, err := g.Edge(1.0, 4.0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, w)

	err = g.SetEdge(1.0, 4.0, 99.0)
	require.True(s.T(), errors.Is(err, graph.ErrNoSuchEdge), "a computed graph rejects explicit edge writes")
}

func (s *ComputedGraphSuite) TestCachedTreatsDeletionAsInfinite() {
	g := s.newGraph()
	cached := graph.Cache[float64](g)
	cached.InsertNode(1.0)
	cached.InsertNode(2.0)

	w, err := cached.Edge(1.0, 2.0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.0, w)

	require.NoError(s.T(), cached.DeleteEdge(1.0, 2.0))
	w, err = cached.Edge(1.0, 2.0)
	require.NoError(s.T(), err)
	require.True(s.T(), w > 1e300, "a deleted cached edge reads back as +Inf")

	near, err := cached.Neighbours(1.0, graph.WithMax(10.0))
	require.NoError(s.T(), err)
	require.Empty(s.T(), near, "an edge marked deleted must never satisfy a finite bound")
}

func TestComputedGraphSuite(t *testing.T) {
	suite.Run(t, new(ComputedGraphSuite))
}
