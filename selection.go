package ndstats

import "fmt"

// SelectNth partitions buf in place so that buf[k] holds the k-th smallest
// element (0-indexed) under ord: afterwards every element left of k is <=
// buf[k] and every element right of k is >= buf[k]. The multiset of buf is
// unchanged; no other ordering may be assumed. Returns the value at k.
//
// The pivot is the median of the first, middle and last elements, which
// keeps already-sorted and reverse-sorted inputs off the quadratic worst
// case and makes tie resolution deterministic. Partitioning is Hoare's
// scheme with the pivot parked at the front of the range.
//
// Fails with ErrEmptyInput on a zero-length buffer. A rank outside
// [0, len(buf)) is programming misuse and panics.
func SelectNth[T Element](buf []T, k int, ord Ordering[T]) (T, error) {
	var zero T
	if len(buf) == 0 {
		return zero, ErrEmptyInput
	}
	if k < 0 || k >= len(buf) {
		panic(fmt.Sprintf("ndstats: rank %d out of range [0, %d)", k, len(buf)))
	}
	selectNth(buf, k, ord)
	return buf[k], nil
}

// SelectMany resolves every rank in ks in one pass, recursively partitioning
// around each resolved rank so later ranks only touch the subrange they can
// still fall in. ks must be sorted ascending; duplicates are allowed. The
// result holds the order statistic for each rank, in ks order, and buf ends
// up partitioned around every rank as for SelectNth.
func SelectMany[T Element](buf []T, ks []int, ord Ordering[T]) ([]T, error) {
	if len(ks) == 0 {
		return nil, nil
	}
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}
	for i, k := range ks {
		if k < 0 || k >= len(buf) {
			panic(fmt.Sprintf("ndstats: rank %d out of range [0, %d)", k, len(buf)))
		}
		if i > 0 && k < ks[i-1] {
			panic(fmt.Sprintf("ndstats: ranks not ascending at %d", i))
		}
	}
	out := make([]T, len(ks))
	selectMany(buf, ks, 0, out, ord)
	return out, nil
}

func selectMany[T Element](buf []T, ks []int, base int, out []T, ord Ordering[T]) {
	if len(ks) == 0 {
		return
	}
	mid := len(ks) / 2
	k := ks[mid] - base
	selectNth(buf, k, ord)
	out[mid] = buf[k]

	lo := mid
	for lo > 0 && ks[lo-1] == ks[mid] {
		lo--
		out[lo] = buf[k]
	}
	hi := mid + 1
	for hi < len(ks) && ks[hi] == ks[mid] {
		out[hi] = buf[k]
		hi++
	}
	selectMany(buf[:k], ks[:lo], base, out[:lo], ord)
	selectMany(buf[k+1:], ks[hi:], base+k+1, out[hi:], ord)
}

func selectNth[T Element](buf []T, k int, ord Ordering[T]) {
	for len(buf) > 1 {
		// Min and max need a single scan, not a partition chain.
		switch k {
		case 0:
			m := 0
			for i := 1; i < len(buf); i++ {
				if ord(buf[i], buf[m]) < 0 {
					m = i
				}
			}
			buf[0], buf[m] = buf[m], buf[0]
			return
		case len(buf) - 1:
			m := 0
			for i := 1; i < len(buf); i++ {
				if ord(buf[i], buf[m]) > 0 {
					m = i
				}
			}
			buf[len(buf)-1], buf[m] = buf[m], buf[len(buf)-1]
			return
		}
		p := partition(buf, medianOfThree(buf, ord), ord)
		switch {
		case k < p:
			buf = buf[:p]
		case k > p:
			buf, k = buf[p+1:], k-(p+1)
		default:
			return
		}
	}
}

// partition rearranges buf so that buf[p] is in its sorted position, all
// elements before it are smaller and all after it are >= it, and returns p.
func partition[T Element](buf []T, pivotIndex int, ord Ordering[T]) int {
	pivot := buf[pivotIndex]
	buf[0], buf[pivotIndex] = buf[pivotIndex], buf[0]
	i, j := 1, len(buf)-1
	for {
		for i <= j && ord(buf[i], pivot) < 0 {
			i++
		}
		for j > 1 && ord(pivot, buf[j]) <= 0 {
			j--
		}
		if i >= j {
			break
		}
		buf[i], buf[j] = buf[j], buf[i]
		i++
		j--
	}
	buf[0], buf[i-1] = buf[i-1], buf[0]
	return i - 1
}

func medianOfThree[T Element](buf []T, ord Ordering[T]) int {
	a, b, c := 0, len(buf)/2, len(buf)-1
	if ord(buf[b], buf[a]) < 0 {
		a, b = b, a
	}
	if ord(buf[c], buf[b]) < 0 {
		b = c
		if ord(buf[b], buf[a]) < 0 {
			b = a
		}
	}
	return b
}
