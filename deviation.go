package ndstats

import (
	"fmt"
	"math"
	"slices"
)

// Deviation metrics between two arrays of the same shape, computed
// elementwise over their row-major data.

func sameShape[T Element](a, b *Array[T]) error {
	if !slices.Equal(a.shape, b.shape) {
		return fmt.Errorf("%w: shapes %v and %v", ErrDimensionMismatch, a.shape, b.shape)
	}
	return nil
}

// CountEq returns the number of coordinates where a and b agree.
func CountEq[T Element](a, b *Array[T]) (int, error) {
	if err := sameShape(a, b); err != nil {
		return 0, err
	}
	n := 0
	for i, v := range a.data {
		if v == b.data[i] {
			n++
		}
	}
	return n, nil
}

// CountNeq returns the number of coordinates where a and b differ.
func CountNeq[T Element](a, b *Array[T]) (int, error) {
	eq, err := CountEq(a, b)
	if err != nil {
		return 0, err
	}
	return a.Len() - eq, nil
}

// L1Dist returns the L1 (taxicab) distance sum |a - b|.
func L1Dist[T Element](a, b *Array[T]) (float64, error) {
	if err := sameShape(a, b); err != nil {
		return 0, err
	}
	s := 0.0
	for i, v := range a.data {
		s += math.Abs(float64(v) - float64(b.data[i]))
	}
	return s, nil
}

// L2Dist returns the Euclidean distance sqrt(sum (a - b)^2).
func L2Dist[T Element](a, b *Array[T]) (float64, error) {
	if err := sameShape(a, b); err != nil {
		return 0, err
	}
	s := 0.0
	for i, v := range a.data {
		d := float64(v) - float64(b.data[i])
		s += d * d
	}
	return math.Sqrt(s), nil
}

// LinfDist returns the maximum absolute elementwise difference.
func LinfDist[T Element](a, b *Array[T]) (float64, error) {
	if err := sameShape(a, b); err != nil {
		return 0, err
	}
	m := 0.0
	for i, v := range a.data {
		d := math.Abs(float64(v) - float64(b.data[i]))
		if d > m {
			m = d
		}
	}
	return m, nil
}

// MeanAbsErr returns the mean absolute elementwise difference.
func MeanAbsErr[T Element](a, b *Array[T]) (float64, error) {
	l1, err := L1Dist(a, b)
	if err != nil {
		return 0, err
	}
	if a.Len() == 0 {
		return 0, ErrEmptyInput
	}
	return l1 / float64(a.Len()), nil
}

// MeanSqErr returns the mean squared elementwise difference.
func MeanSqErr[T Element](a, b *Array[T]) (float64, error) {
	if err := sameShape(a, b); err != nil {
		return 0, err
	}
	if a.Len() == 0 {
		return 0, ErrEmptyInput
	}
	s := 0.0
	for i, v := range a.data {
		d := float64(v) - float64(b.data[i])
		s += d * d
	}
	return s / float64(a.Len()), nil
}
