// Package ndstats adds statistical operations to a dense n-dimensional
// array: order statistics and quantiles by in-place selection, histogram
// binning over rectangular grids, and summary, deviation, correlation and
// entropy measures computed along axes.
package ndstats

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Element is the set of numeric types the statistics operate on.
type Element interface {
	constraints.Integer | constraints.Float
}

// Array is a dense row-major n-dimensional array.
type Array[T Element] struct {
	shape   []int
	strides []int
	data    []T
}

// Zeros returns a zero-filled array of the given shape.
// A zero-length shape yields a 0-dimensional array holding one element.
func Zeros[T Element](shape ...int) *Array[T] {
	n := 1
	for _, s := range shape {
		if s < 0 {
			panic(fmt.Sprintf("ndstats: negative dimension %d in shape %v", s, shape))
		}
		n *= s
	}
	return &Array[T]{
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
		data:    make([]T, n),
	}
}

// FromSlice wraps data as an array of the given shape without copying.
// The array shares the backing slice with the caller.
func FromSlice[T Element](data []T, shape ...int) (*Array[T], error) {
	n := 1
	for _, s := range shape {
		if s < 0 {
			panic(fmt.Sprintf("ndstats: negative dimension %d in shape %v", s, shape))
		}
		n *= s
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, data has %d",
			ErrDimensionMismatch, shape, n, len(data))
	}
	return &Array[T]{
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
		data:    data,
	}, nil
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}
	return strides
}

// NDim returns the number of axes.
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Shape returns a copy of the per-axis lengths.
func (a *Array[T]) Shape() []int {
	return slices.Clone(a.shape)
}

// Data returns the backing slice in row-major order, shared with the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// At returns the element at the given index.
// Panics if the index has the wrong arity or is out of range.
func (a *Array[T]) At(ix ...int) T {
	return a.data[a.offset(ix)]
}

// Set stores v at the given index.
func (a *Array[T]) Set(v T, ix ...int) {
	a.data[a.offset(ix)] = v
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

func (a *Array[T]) offset(ix []int) int {
	if len(ix) != len(a.shape) {
		panic(fmt.Sprintf("ndstats: index has %d axes, array has %d", len(ix), len(a.shape)))
	}
	off := 0
	for d, i := range ix {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("ndstats: index %d out of range [0, %d) on axis %d", i, a.shape[d], d))
		}
		off += i * a.strides[d]
	}
	return off
}

// laneCount returns the number of 1-D lanes running along axis.
func (a *Array[T]) laneCount(axis int) int {
	if a.shape[axis] == 0 {
		return 0
	}
	return len(a.data) / a.shape[axis]
}

// laneBase returns the flat offset of the first element of the given lane.
// Lanes are numbered row-major over the remaining axes, so two arrays that
// agree on every axis but the lane axis enumerate lanes identically.
func (a *Array[T]) laneBase(axis, lane int) int {
	off := 0
	for d := len(a.shape) - 1; d >= 0; d-- {
		if d == axis {
			continue
		}
		off += (lane % a.shape[d]) * a.strides[d]
		lane /= a.shape[d]
	}
	return off
}

func (a *Array[T]) readLane(axis, lane int, buf []T) {
	base, step := a.laneBase(axis, lane), a.strides[axis]
	for i := range buf {
		buf[i] = a.data[base+i*step]
	}
}

func (a *Array[T]) writeLane(axis, lane int, vals []T) {
	base, step := a.laneBase(axis, lane), a.strides[axis]
	for i, v := range vals {
		a.data[base+i*step] = v
	}
}
