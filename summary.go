package ndstats

import (
	"fmt"
	"math"
)

// Sum returns the sum of data in float64. The sum of an empty slice is 0.
func Sum[T Element](data []T) float64 {
	s := 0.0
	for _, v := range data {
		s += float64(v)
	}
	return s
}

// Mean returns the arithmetic mean of data.
func Mean[T Element](data []T) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	return Sum(data) / float64(len(data)), nil
}

// WeightedSum returns the sum of data[i]*weights[i]. The slices must have
// equal length. The weighted sum of empty slices is 0.
func WeightedSum[T Element](data []T, weights []float64) (float64, error) {
	if len(data) != len(weights) {
		return 0, fmt.Errorf("%w: %d values, %d weights", ErrDimensionMismatch, len(data), len(weights))
	}
	s := 0.0
	for i, v := range data {
		s += float64(v) * weights[i]
	}
	return s, nil
}

// WeightedMean returns the weighted arithmetic mean. Fails with
// ErrDegenerateSample when the weights sum to zero.
func WeightedMean[T Element](data []T, weights []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	ws, err := WeightedSum(data, weights)
	if err != nil {
		return 0, err
	}
	wt := 0.0
	for _, w := range weights {
		wt += w
	}
	if wt == 0 {
		return 0, fmt.Errorf("%w: weights sum to zero", ErrDegenerateSample)
	}
	return ws / wt, nil
}

// HarmonicMean returns n / sum(1/x).
func HarmonicMean[T Element](data []T) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	s := 0.0
	for _, v := range data {
		s += 1 / float64(v)
	}
	return float64(len(data)) / s, nil
}

// GeometricMean returns exp(mean(ln x)).
func GeometricMean[T Element](data []T) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	s := 0.0
	for _, v := range data {
		s += math.Log(float64(v))
	}
	return math.Exp(s / float64(len(data))), nil
}

// Min returns the smallest element under the NaN-aware total order, so a
// sample with at least one ordinary value never reports NaN as its minimum.
func Min[T Element](data []T) (T, error) {
	var zero T
	if len(data) == 0 {
		return zero, ErrEmptyInput
	}
	ord := TotalOrder[T]()
	m := data[0]
	for _, v := range data[1:] {
		if ord(v, m) < 0 {
			m = v
		}
	}
	return m, nil
}

// Max returns the largest element under the NaN-aware total order. NaN
// ranks above every ordinary value, so a sample containing NaN reports NaN.
func Max[T Element](data []T) (T, error) {
	var zero T
	if len(data) == 0 {
		return zero, ErrEmptyInput
	}
	ord := TotalOrder[T]()
	m := data[0]
	for _, v := range data[1:] {
		if ord(v, m) > 0 {
			m = v
		}
	}
	return m, nil
}

// Variance returns the variance of data with divisor n - ddof: ddof 0 is
// the population variance, ddof 1 the sample variance. Computed with
// Welford's single-pass recurrence. Fails with ErrDegenerateSample when
// n - ddof <= 0; a negative ddof panics.
func Variance[T Element](data []T, ddof float64) (float64, error) {
	if ddof < 0 {
		panic(fmt.Sprintf("ndstats: negative ddof %v", ddof))
	}
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	n := float64(len(data))
	if n-ddof <= 0 {
		return 0, fmt.Errorf("%w: %v observations with ddof %v", ErrDegenerateSample, n, ddof)
	}
	mean, m2 := 0.0, 0.0
	for i, v := range data {
		x := float64(v)
		d := x - mean
		mean += d / float64(i+1)
		m2 += d * (x - mean)
	}
	return m2 / (n - ddof), nil
}

// StdDev returns the square root of Variance(data, ddof).
func StdDev[T Element](data []T, ddof float64) (float64, error) {
	v, err := Variance(data, ddof)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// CentralMoment returns the p-th moment of data about its mean. Order 0 is
// 1 and order 1 is 0 by definition.
func CentralMoment[T Element](data []T, order int) (float64, error) {
	if order < 0 {
		panic(fmt.Sprintf("ndstats: negative moment order %d", order))
	}
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	switch order {
	case 0:
		return 1, nil
	case 1:
		return 0, nil
	}
	mean, _ := Mean(data)
	s := 0.0
	for _, v := range data {
		s += math.Pow(float64(v)-mean, float64(order))
	}
	return s / float64(len(data)), nil
}

// Skewness returns the standardized third central moment m3 / m2^(3/2).
// Fails with ErrDegenerateSample on a zero-variance sample.
func Skewness[T Element](data []T) (float64, error) {
	m2, m3, err := twoMoments(data, 2, 3)
	if err != nil {
		return 0, err
	}
	return m3 / math.Pow(m2, 1.5), nil
}

// Kurtosis returns the (non-excess) Pearson kurtosis m4 / m2^2; a normal
// distribution scores 3. Fails with ErrDegenerateSample on a zero-variance
// sample.
func Kurtosis[T Element](data []T) (float64, error) {
	m2, m4, err := twoMoments(data, 2, 4)
	if err != nil {
		return 0, err
	}
	return m4 / (m2 * m2), nil
}

func twoMoments[T Element](data []T, p, q int) (float64, float64, error) {
	mp, err := CentralMoment(data, p)
	if err != nil {
		return 0, 0, err
	}
	if mp == 0 {
		return 0, 0, fmt.Errorf("%w: zero variance", ErrDegenerateSample)
	}
	mq, err := CentralMoment(data, q)
	if err != nil {
		return 0, 0, err
	}
	return mp, mq, nil
}
