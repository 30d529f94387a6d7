package ndstats

import (
	"errors"

	"github.com/ugorji/go/codec"
)

// Histogram accumulates observation counts over a Grid. Counts only ever
// increase; there is no removal. Observations outside the grid's range are
// dropped and tallied in a separate counter for visibility.
type Histogram struct {
	grid       *Grid
	counts     *Array[uint64]
	outOfRange uint64
}

// NewHistogram returns a zero-filled histogram co-indexed with grid's bin
// coordinates. The histogram keeps a reference to grid for bin lookups and
// must not outlive it.
func NewHistogram(grid *Grid) *Histogram {
	return &Histogram{
		grid:   grid,
		counts: Zeros[uint64](grid.Shape()...),
	}
}

// Grid returns the grid the histogram was built over.
func (h *Histogram) Grid() *Grid {
	return h.grid
}

// Add folds one observation in, incrementing the count at the point's bin
// coordinate. An out-of-range point is silently dropped and counted in
// OutOfRangeCount. A point of the wrong dimensionality is an error.
func (h *Histogram) Add(point []float64) error {
	ix, err := h.grid.IndexOf(point)
	if err != nil {
		if errors.Is(err, ErrOutOfRange) {
			h.outOfRange++
			return nil
		}
		return err
	}
	h.counts.Set(h.counts.At(ix...)+1, ix...)
	return nil
}

// AddAll folds a whole collection of observations in.
func (h *Histogram) AddAll(points [][]float64) error {
	for _, p := range points {
		if err := h.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// Counts returns the counting array, co-indexed with the grid's bin
// coordinates. Read-only view; the histogram keeps ownership.
func (h *Histogram) Counts() *Array[uint64] {
	return h.counts
}

// OutOfRangeCount returns the number of observations dropped for falling
// outside the grid.
func (h *Histogram) OutOfRangeCount() uint64 {
	return h.outOfRange
}

// MarshalBinary encodes the histogram, including its grid edges, into a
// binary form and returns the result.
func (h *Histogram) MarshalBinary() (out []byte, err error) {
	var bh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &bh)
	err = enc.Encode(len(h.grid.dims))
	if err != nil {
		return
	}
	for i := 0; i < len(h.grid.dims); i++ {
		err = enc.Encode([]float64(h.grid.dims[i]))
		if err != nil {
			return
		}
	}
	err = enc.Encode(h.counts.data)
	if err != nil {
		return
	}
	err = enc.Encode(h.outOfRange)
	return
}

// UnmarshalBinary decodes a histogram from a binary form generated by
// MarshalBinary, rebuilding the grid it was accumulated over.
func (h *Histogram) UnmarshalBinary(in []byte) (err error) {
	var bh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &bh)
	ndim := 0
	err = dec.Decode(&ndim)
	if err != nil {
		return
	}
	dims := make([]BinEdges, ndim)
	for i := 0; i < ndim; i++ {
		var edges []float64
		err = dec.Decode(&edges)
		if err != nil {
			return
		}
		dims[i], err = NewBinEdges(edges)
		if err != nil {
			return
		}
	}
	grid, err := NewGrid(dims...)
	if err != nil {
		return
	}
	var data []uint64
	err = dec.Decode(&data)
	if err != nil {
		return
	}
	counts, err := FromSlice(data, grid.Shape()...)
	if err != nil {
		return
	}
	err = dec.Decode(&h.outOfRange)
	if err != nil {
		return
	}
	h.grid = grid
	h.counts = counts
	return
}
