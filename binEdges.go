package ndstats

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// BinRule names a strategy for estimating histogram bin edges from the
// distribution of a 1-D sample.
type BinRule int

const (
	// RuleSturges uses ceil(log2(n) + 1) bins.
	RuleSturges BinRule = iota
	// RuleRice uses ceil(2 * n^(1/3)) bins.
	RuleRice
	// RuleSqrt uses ceil(sqrt(n)) bins.
	RuleSqrt
	// RuleScott uses a bin width of 3.49 * stddev * n^(-1/3).
	RuleScott
	// RuleFreedmanDiaconis uses a bin width of 2 * IQR * n^(-1/3).
	RuleFreedmanDiaconis
	ruleMax
)

func (r BinRule) String() string {
	switch r {
	case RuleSturges:
		return "sturges"
	case RuleRice:
		return "rice"
	case RuleSqrt:
		return "sqrt"
	case RuleScott:
		return "scott"
	case RuleFreedmanDiaconis:
		return "freedman-diaconis"
	}
	return fmt.Sprintf("BinRule(%d)", int(r))
}

// BinEdges is an ordered sequence of n+1 strictly increasing boundaries
// defining n bins. Each bin is the half-open interval [edge[i], edge[i+1])
// except the last, which is closed on both ends so the maximum sample is
// counted.
type BinEdges []float64

// NewBinEdges validates explicit boundaries and returns them as BinEdges.
// The input is copied. At least two strictly increasing edges are required.
func NewBinEdges(edges []float64) (BinEdges, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: need at least two edges, got %d", ErrEmptyInput, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i-1] < edges[i]) {
			return nil, fmt.Errorf("%w: edges not strictly increasing at %d (%v >= %v)",
				ErrDegenerateSample, i, edges[i-1], edges[i])
		}
	}
	return BinEdges(slices.Clone(edges)), nil
}

// NumBins returns the number of bins.
func (be BinEdges) NumBins() int {
	return len(be) - 1
}

// Min returns the lowest covered value.
func (be BinEdges) Min() float64 {
	return be[0]
}

// Max returns the highest covered value (inclusive).
func (be BinEdges) Max() float64 {
	return be[len(be)-1]
}

// find returns the bin index containing x, or -1 if x is outside [Min, Max]
// or NaN.
func (be BinEdges) find(x float64) int {
	if math.IsNaN(x) || x < be[0] || x > be[len(be)-1] {
		return -1
	}
	if x == be[len(be)-1] {
		return len(be) - 2 // top bin is closed
	}
	i := sort.SearchFloat64s([]float64(be), x)
	if i < len(be) && be[i] == x {
		return i
	}
	return i - 1
}

// EdgesByRule estimates bin edges for sample under the named rule. Edges
// are placed uniformly over [min(sample), max(sample)], inclusive on both
// ends. When a width-based rule (Scott, Freedman-Diaconis) computes a zero
// width over a positive range, the result degrades to a single bin spanning
// the range.
//
// sample is read only; the quantile pass for Freedman-Diaconis runs on an
// internal copy.
//
// Fails with ErrEmptyInput on a zero-length sample and ErrDegenerateSample
// when the sample has zero range (all values equal) or contains NaN.
func EdgesByRule[T Element](sample []T, rule BinRule) (BinEdges, error) {
	if len(sample) == 0 {
		return nil, ErrEmptyInput
	}
	mnT, _ := Min(sample)
	mxT, _ := Max(sample)
	mn, mx := float64(mnT), float64(mxT)
	if !(mx-mn > 0) {
		return nil, fmt.Errorf("%w: sample range [%v, %v]", ErrDegenerateSample, mn, mx)
	}
	n := float64(len(sample))

	var bins int
	switch rule {
	case RuleSturges:
		bins = int(math.Ceil(math.Log2(n) + 1))
	case RuleRice:
		bins = int(math.Ceil(2 * math.Cbrt(n)))
	case RuleSqrt:
		bins = int(math.Ceil(math.Sqrt(n)))
	case RuleScott:
		sd, err := StdDev(sample, 0)
		if err != nil {
			return nil, err
		}
		bins = binsForWidth(mn, mx, 3.49*sd*math.Pow(n, -1.0/3.0))
	case RuleFreedmanDiaconis:
		scratch := slices.Clone(sample)
		qs, err := Quantiles(scratch, []float64{0.25, 0.75}, InterpLinear)
		if err != nil {
			return nil, err
		}
		iqr := qs[1] - qs[0]
		bins = binsForWidth(mn, mx, 2*iqr*math.Pow(n, -1.0/3.0))
	default:
		panic(fmt.Sprintf("ndstats: unknown bin rule %d", int(rule)))
	}
	if bins < 1 {
		bins = 1 // zero width over a positive range: one bin spans it all
	}
	return uniformEdges(mn, mx, bins)
}

func binsForWidth(mn, mx, width float64) int {
	if !(width > 0) {
		return 0
	}
	return int(math.Ceil((mx - mn) / width))
}

func uniformEdges(mn, mx float64, bins int) (BinEdges, error) {
	edges := make([]float64, bins+1)
	step := (mx - mn) / float64(bins)
	for i := range edges {
		edges[i] = mn + float64(i)*step
	}
	edges[bins] = mx // keep the top edge exact
	return NewBinEdges(edges)
}
