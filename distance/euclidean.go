package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Euclidean is the L2 distance over fixed-dimension float64 points.
//
// Mean and Update are backed by gonum.org/v1/gonum/floats rather than
// hand-rolled summation loops, matching how the wider example pack leans on
// gonum for numeric reductions.
type Euclidean struct{}

// Between returns the Euclidean (L2) distance between x and y.
// ErrNoDistance is returned if x and y have mismatched dimensionality or
// the result is NaN or infinite.
func (Euclidean) Between(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrNoDistance
	}
	var sumSq float64
	for i := range x {
		d := x[i] - y[i]
		sumSq += d * d
	}
	r := math.Sqrt(sumSq)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrNoDistance
	}
	return r, nil
}

// IsSymmetric always returns true: the L2 norm is symmetric.
func (Euclidean) IsSymmetric() bool {
	return true
}

// Mean returns the per-dimension arithmetic mean (centroid) of xs.
func (Euclidean) Mean(xs [][]float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyMean
	}
	dim := len(xs[0])
	sum := make([]float64, dim)
	for _, x := range xs {
		floats.Add(sum, x)
	}
	floats.Scale(1/float64(len(xs)), sum)
	return sum, nil
}

// Update recomputes the distance from center to dynamic after dynamic has
// moved by changes (a per-dimension []float64 delta), by applying the delta
// to a copy of dynamic and calling Between on it; base is not used. changes
// is typed any so
// Euclidean satisfies the single non-generic distance.Updater[T, any]
// capability interface that callers type-assert against; a changes value
// that isn't a []float64 of matching length returns ErrNoDistance.
func (e Euclidean) Update(center, dynamic []float64, changes any, base float64) (float64, error) {
	delta, ok := changes.([]float64)
	if !ok || len(dynamic) != len(delta) {
		return 0, ErrNoDistance
	}
	moved := make([]float64, len(dynamic))
	copy(moved, dynamic)
	floats.Add(moved, delta)
	return e.Between(center, moved)
}
