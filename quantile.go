package ndstats

import (
	"fmt"
	"math"
	"slices"
)

// Interpolation selects how the two order statistics bracketing a
// non-integral rank position combine into a single result.
type Interpolation int

const (
	// InterpLower takes the order statistic at floor(r).
	InterpLower Interpolation = iota
	// InterpHigher takes the order statistic at ceil(r).
	InterpHigher
	// InterpNearest takes whichever statistic is closer; an exact half
	// tie rounds up to the higher statistic.
	InterpNearest
	// InterpLinear interpolates linearly between the two statistics.
	InterpLinear
	// InterpMidpoint takes their mean regardless of the fraction.
	InterpMidpoint
	interpMax
)

func (ip Interpolation) String() string {
	switch ip {
	case InterpLower:
		return "lower"
	case InterpHigher:
		return "higher"
	case InterpNearest:
		return "nearest"
	case InterpLinear:
		return "linear"
	case InterpMidpoint:
		return "midpoint"
	}
	return fmt.Sprintf("Interpolation(%d)", int(ip))
}

// interpolate combines the bracketing statistics; frac is in [0, 1).
func (ip Interpolation) interpolate(lower, upper, frac float64) float64 {
	switch ip {
	case InterpLower:
		return lower
	case InterpHigher:
		return upper
	case InterpNearest:
		if frac < 0.5 {
			return lower
		}
		return upper
	case InterpLinear:
		return lower + frac*(upper-lower)
	case InterpMidpoint:
		return (lower + upper) / 2
	}
	panic(fmt.Sprintf("ndstats: unknown interpolation %d", int(ip)))
}

// Quantile returns the q-th quantile of data, q in [0, 1], under interp.
//
// The fractional rank is r = q*(n-1), zero-indexed, so q=0 is the minimum
// and q=1 the maximum for every policy. data is partitioned in place by the
// selection pass; callers that need the original order must pass a copy.
// Ordering is the NaN-aware total order, so NaN elements sort above
// everything else.
//
// Fails with ErrEmptyInput on zero-length data and ErrInvalidQuantile if q
// is outside [0, 1] or NaN.
func Quantile[T Element](data []T, q float64, interp Interpolation) (float64, error) {
	vs, err := Quantiles(data, []float64{q}, interp)
	if err != nil {
		return 0, err
	}
	return vs[0], nil
}

// Median is shorthand for Quantile(data, 0.5, InterpLinear).
func Median[T Element](data []T) (float64, error) {
	return Quantile(data, 0.5, InterpLinear)
}

// Quantiles computes every quantile in qs with a single selection pass over
// data: the bracketing ranks of all quantiles are resolved together through
// SelectMany, which is the dominant saving over repeated Quantile calls.
// qs need not be sorted. data is partitioned in place.
func Quantiles[T Element](data []T, qs []float64, interp Interpolation) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	for _, q := range qs {
		if isNaN(q) || q < 0 || q > 1 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuantile, q)
		}
	}
	n := len(data)
	type bracket struct {
		lo, hi int
		frac   float64
	}
	brs := make([]bracket, len(qs))
	ranks := make([]int, 0, 2*len(qs))
	for i, q := range qs {
		r := q * float64(n-1)
		lo := int(math.Floor(r))
		brs[i] = bracket{lo: lo, hi: int(math.Ceil(r)), frac: r - float64(lo)}
		ranks = append(ranks, brs[i].lo, brs[i].hi)
	}
	slices.Sort(ranks)
	ranks = slices.Compact(ranks)

	vals, err := SelectMany(data, ranks, TotalOrder[T]())
	if err != nil {
		return nil, err
	}
	byRank := make(map[int]float64, len(ranks))
	for i, k := range ranks {
		byRank[k] = float64(vals[i])
	}
	out := make([]float64, len(qs))
	for i, b := range brs {
		out[i] = interp.interpolate(byRank[b.lo], byRank[b.hi], b.frac)
	}
	return out, nil
}

// QuantileAxis computes every quantile in qs independently along axis of
// arr. The result replaces the axis length with len(qs), in qs order; for a
// single quantile the axis collapses to length 1. Each lane is copied into a
// scratch buffer, so arr itself is left untouched. Lanes are disjoint, so
// the per-lane work is trivially parallelizable by the caller.
//
// Fails with ErrEmptyInput if the axis has zero length. An axis outside
// [0, NDim()) panics.
func QuantileAxis[T Element](arr *Array[T], axis int, qs []float64, interp Interpolation) (*Array[float64], error) {
	if axis < 0 || axis >= arr.NDim() {
		panic(fmt.Sprintf("ndstats: axis %d out of range [0, %d)", axis, arr.NDim()))
	}
	n := arr.shape[axis]
	if n == 0 {
		return nil, ErrEmptyInput
	}
	outShape := arr.Shape()
	outShape[axis] = len(qs)
	out := Zeros[float64](outShape...)

	buf := make([]T, n)
	for lane := 0; lane < arr.laneCount(axis); lane++ {
		arr.readLane(axis, lane, buf)
		vs, err := Quantiles(buf, qs, interp)
		if err != nil {
			return nil, err
		}
		out.writeLane(axis, lane, vs)
	}
	return out, nil
}
