package ndstats

import "errors"

// Error taxonomy. Every failure returned by this package wraps one of these
// sentinels; test with errors.Is.
var (
	// ErrEmptyInput reports zero-length data where a statistic needs at
	// least one element.
	ErrEmptyInput = errors.New("ndstats: empty input")

	// ErrInvalidQuantile reports a quantile outside [0, 1] or NaN.
	ErrInvalidQuantile = errors.New("ndstats: invalid quantile")

	// ErrDegenerateSample reports a zero-range or zero-variance sample
	// where a strictly positive width is required.
	ErrDegenerateSample = errors.New("ndstats: degenerate sample")

	// ErrDimensionMismatch reports disagreeing dimensionality between a
	// point or array and the structure it is applied to.
	ErrDimensionMismatch = errors.New("ndstats: dimension mismatch")

	// ErrOutOfRange reports a point outside a Grid's covered range.
	// Recoverable: the caller decides whether to drop or clamp.
	ErrOutOfRange = errors.New("ndstats: point out of range")
)
