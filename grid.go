package ndstats

import "fmt"

// Grid composes one BinEdges per dimension into an n-dimensional
// rectangular binning scheme. The grid owns its edges; the slices passed to
// NewGrid are validated and copied.
type Grid struct {
	dims []BinEdges
}

// NewGrid builds a grid from per-dimension edges. Every dimension must have
// at least one bin with strictly increasing boundaries.
func NewGrid(dims ...BinEdges) (*Grid, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: grid needs at least one dimension", ErrEmptyInput)
	}
	owned := make([]BinEdges, len(dims))
	for d, edges := range dims {
		validated, err := NewBinEdges(edges)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", d, err)
		}
		owned[d] = validated
	}
	return &Grid{dims: owned}, nil
}

// NDim returns the grid's dimensionality.
func (g *Grid) NDim() int {
	return len(g.dims)
}

// Shape returns the number of bins per dimension.
func (g *Grid) Shape() []int {
	shape := make([]int, len(g.dims))
	for d, edges := range g.dims {
		shape[d] = edges.NumBins()
	}
	return shape
}

// Edges returns the boundaries of the given dimension. Read-only.
func (g *Grid) Edges(dim int) BinEdges {
	return g.dims[dim]
}

// IndexOf maps point to its bin coordinate: for each dimension the bin with
// edge[i] <= x < edge[i+1], the top bin including its upper edge. Each
// dimension is a binary search over its boundaries.
//
// Fails with ErrDimensionMismatch if the point's arity differs from the
// grid's, and ErrOutOfRange if any coordinate falls outside the covered
// range (including NaN). Out of range is recoverable; the caller decides
// whether to drop or clamp.
func (g *Grid) IndexOf(point []float64) ([]int, error) {
	if len(point) != len(g.dims) {
		return nil, fmt.Errorf("%w: point has %d dimensions, grid has %d",
			ErrDimensionMismatch, len(point), len(g.dims))
	}
	ix := make([]int, len(point))
	for d, x := range point {
		b := g.dims[d].find(x)
		if b < 0 {
			return nil, fmt.Errorf("%w: %v on dimension %d", ErrOutOfRange, x, d)
		}
		ix[d] = b
	}
	return ix, nil
}
