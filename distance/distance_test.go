package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MaineKuehn/dengraph/distance"
)

func TestNumericBetweenAndMean(t *testing.T) {
	d := distance.Numeric[float64]{}

	w, err := d.Between(3.0, 7.0)
	require.NoError(t, err)
	require.Equal(t, 4.0, w)
	require.True(t, d.IsSymmetric())

	mean, err := d.Mean([]float64{2, 4, 6})
	require.NoError(t, err)
	require.Equal(t, 4.0, mean)

	_, err = d.Mean(nil)
	require.ErrorIs(t, err, distance.ErrEmptyMean)
}

func TestEuclideanBetweenAndMean(t *testing.T) {
	d := distance.Euclidean{}

	w, err := d.Between([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, w)

	mean, err := d.Mean([][]float64{{0, 0}, {2, 0}, {4, 0}})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0}, mean)
}

func TestEuclideanUpdateAppliesDelta(t *testing.T) {
	d := distance.Euclidean{}

	w, err := d.Update([]float64{0, 0}, []float64{1, 0}, []float64{2, 0}, 1.0)
	require.NoError(t, err, "changes is any at the interface but a real []float64 at the call site")
	require.Equal(t, 3.0, w, "dynamic moves from (1,0) to (3,0), distance to (0,0) is 3")

	_, err = d.Update([]float64{0, 0}, []float64{1, 0}, "not-a-delta", 1.0)
	require.ErrorIs(t, err, distance.ErrNoDistance)
}

func TestNumericUpdateAppliesDelta(t *testing.T) {
	d := distance.Numeric[int]{}

	w, err := d.Update(3, 10, 5, 0)
	require.NoError(t, err)
	require.Equal(t, 12.0, w, "dynamic moves from 10 to 15, |3-15| = 12")

	_, err = d.Update(3, 10, "not-a-delta", 0)
	require.ErrorIs(t, err, distance.ErrNoDistance)
}

func TestFuncAdapter(t *testing.T) {
	d := distance.Func[int]{
		Fn:        func(a, b int) float64 { return float64(a + b) },
		Symmetric: false,
	}
	w, err := d.Between(2, 3)
	require.NoError(t, err)
	require.Equal(t, 5.0, w)
	require.False(t, d.IsSymmetric())
}
