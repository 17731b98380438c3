package probe_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MaineKuehn/dengraph/distance"
	"github.com/MaineKuehn/dengraph/engine"
	"github.com/MaineKuehn/dengraph/graph"
	"github.com/MaineKuehn/dengraph/probe"
)

func TestNewRejectsSubstrateWithoutDistance(t *testing.T) {
	g := graph.NewAdjacencyGraph[int]()
	e := engine.New[int](g, 1.0, 1)
	_, err := probe.New[int](e)
	require.True(t, errors.Is(err, probe.ErrNoDistanceSupport))
}

func TestProbeMeasuresAgainstClusterMean(t *testing.T) {
	g := graph.NewComputedGraph[int](distance.Numeric[int]{}, 1, 2, 3, 4, 5, 6)
	e := engine.New[int](g, 5, 5)
	require.Len(t, e.Clusters(), 1)

	f, err := probe.New[int](e)
	require.NoError(t, err)

	results, err := f.Probe(10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 7.0, results[0].Distance, "Numeric[int]'s mean truncates 3.5 to 3, so |10-3| = 7")
}

func TestScenario_S6_MeanInvalidatesOnInsert(t *testing.T) {
	g := graph.NewComputedGraph[float64](distance.Numeric[float64]{}, 1, 2, 3, 4, 5, 6)
	e := engine.New[float64](g, 5, 5)
	f, err := probe.New[float64](e)
	require.NoError(t, err)

	results, err := f.Probe(1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 2.5, results[0].Distance, "mean of 1..6 is 3.5, |1-3.5| = 2.5")

	require.NoError(t, e.InsertNode(7))

	results, err = f.Probe(1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotEqual(t, 2.5, results[0].Distance,
		"this facet invalidates cached means on every structural change, per the chosen S6 policy")
	require.Equal(t, 3.0, results[0].Distance, "mean of 1..7 is 4, |1-4| = 3")
}

func TestUpdateProbeAppliesIncrementalDelta(t *testing.T) {
	g := graph.NewComputedGraph[int](distance.Numeric[int]{}, 1, 2, 3, 4, 5, 6)
	e := engine.New[int](g, 5, 5)
	f, err := probe.New[int](e)
	require.NoError(t, err)

	initial, err := f.Probe(10)
	require.NoError(t, err)
	require.Len(t, initial, 1)
	require.Equal(t, 7.0, initial[0].Distance, "Numeric[int]'s mean truncates 3.5 to 3, so |10-3| = 7")

	updated, err := f.UpdateProbe(10, 5)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	require.Equal(t, 12.0, updated[0].Distance, "dynamic moves from 10 to 15, |3-15| = 12, via the Updater path not a full Probe")
}

func TestUpdateProbeFallsBackToProbeWithoutPriorCall(t *testing.T) {
	g := graph.NewComputedGraph[int](distance.Numeric[int]{}, 1, 2, 3, 4, 5, 6)
	e := engine.New[int](g, 5, 5)
	f, err := probe.New[int](e)
	require.NoError(t, err)

	results, err := f.UpdateProbe(10, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 7.0, results[0].Distance, "no prior Probe(10) call: falls back to a full Probe, ignoring changes")
}

func TestPersistForgetsVirtualStateAndInsertsNode(t *testing.T) {
	g := graph.NewComputedGraph[int](distance.Numeric[int]{}, 1, 2, 3, 4, 5, 6)
	e := engine.New[int](g, 5, 5)
	f, err := probe.New[int](e)
	require.NoError(t, err)

	_, err = f.Probe(7)
	require.NoError(t, err)
	require.False(t, e.Contains(7))

	require.NoError(t, f.Persist(7))
	require.True(t, e.Contains(7))
}
