package ndstats

// Ordering is a strict total-order comparator: the result is negative if
// a < b, zero if a == b and positive if a > b. Comparison-based algorithms
// in this package take the comparator as an explicit argument.
type Ordering[T Element] func(a, b T) int

// TotalOrder returns a comparator that is a strict total order for every
// value of T, including floating-point NaN: every NaN compares greater than
// every other value and all NaNs compare equal, so a single canonical
// position exists for values the native < cannot order. The comparator
// never panics.
func TotalOrder[T Element]() Ordering[T] {
	return func(a, b T) int {
		an, bn := isNaN(a), isNaN(b)
		switch {
		case an && bn:
			return 0
		case an:
			return 1
		case bn:
			return -1
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// isNaN holds for IEEE NaN only; integer values always compare equal to
// themselves.
func isNaN[T Element](v T) bool {
	return v != v
}
