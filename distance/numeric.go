package distance

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Numeric is the absolute-difference distance over any ordered numeric type.
// It satisfies Distance[T], Meaner[T] (arithmetic mean), and is the distance
// used by the scenarios in spec.md §8 (S1-S5: integer nodes, |a-b|).
type Numeric[T constraints.Integer | constraints.Float] struct{}

// Between returns the absolute difference between x and y, or
// ErrNoDistance if that difference is NaN or infinite.
func (Numeric[T]) Between(x, y T) (float64, error) {
	d := float64(x) - float64(y)
	if d < 0 {
		d = -d
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, ErrNoDistance
	}
	return d, nil
}

// IsSymmetric always returns true: |a-b| == |b-a|.
func (Numeric[T]) IsSymmetric() bool {
	return true
}

// Mean returns the arithmetic mean of xs, converted back to T (for an
// integer T the fraction is truncated toward zero, so the mean of 1..6 is 3).
func (Numeric[T]) Mean(xs []T) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrEmptyMean
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return T(sum / float64(len(xs))), nil
}

// Update recomputes the distance from center to dynamic after dynamic has
// shifted by a numeric delta, by calling Between on the shifted value; base
// is not used. changes is
// typed any so Numeric satisfies the single non-generic
// distance.Updater[T, any] capability interface that callers type-assert
// against; a changes value that isn't T returns ErrNoDistance.
func (n Numeric[T]) Update(center, dynamic T, changes any, base float64) (float64, error) {
	delta, ok := changes.(T)
	if !ok {
		return 0, ErrNoDistance
	}
	return n.Between(center, dynamic+delta)
}
