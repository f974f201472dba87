// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constsort

// Pattern-defeating quicksort, following Orson Peters' pdqsort:
// https://github.com/orlp/pdqsort
// The driver is written as iteration over a fixed-size work list rather
// than recursion, so the whole sort runs with a constant amount of
// auxiliary state no matter the input.

type lessFn[E any] func(a, b E) bool

type sortedHint int

const (
	unknownHint sortedHint = iota
	increasingHint
	decreasingHint
)

// xorshift paper: https://www.jstatsoft.org/article/view/v008i14/xorshift.pdf
type xorshift uint64

func (r *xorshift) Next() uint64 {
	*r ^= *r << 13
	*r ^= *r >> 17
	*r ^= *r << 5
	return uint64(*r)
}

func nextPowerOfTwo(length int) uint {
	shift := uint(0)
	for (1 << shift) < length {
		shift++
	}
	return 1 << shift
}

const (
	// Ranges at or below this length are finished with insertion sort.
	maxInsertion = 12

	// maxSpans bounds the pending-range work list. Only the larger side
	// of a partition is ever parked, so the list is never deeper than
	// log2(n); 64 entries cover any slice addressable on 64-bit.
	maxSpans = 64
)

// span is a parked [lo, hi) range, carrying the pivot budget and the
// balance state it would have held in a recursive formulation.
type span struct {
	lo, hi, limit  int
	wasBalanced    bool
	wasPartitioned bool
}

// sort sorts data[lo:hi]. limit is the number of imbalanced partitions
// tolerated before the remaining range is handed to heapsort, which
// bounds the total work to O(n log n) on any input.
func (lt lessFn[E]) sort(data []E, lo, hi, limit int) {
	var (
		pending [maxSpans]span
		depth   int

		wasBalanced    = true // last partitioning was reasonably balanced
		wasPartitioned = true // last partitioning found the range already partitioned
	)

	for {
		for {
			length := hi - lo

			if length <= maxInsertion {
				lt.insertionSort(data, lo, hi)
				break
			}

			// Too many bad pivots: finish this range with the
			// guaranteed-complexity fallback. Never skipped, even when
			// the range is barely above the insertion threshold.
			if limit == 0 {
				lt.heapSort(data, lo, hi)
				break
			}

			// Work list full. Unreachable while the smaller side is
			// taken eagerly; finish the range directly instead of
			// partitioning further.
			if depth == maxSpans {
				lt.heapSort(data, lo, hi)
				break
			}

			if !wasBalanced {
				lt.breakPatterns(data, lo, hi)
				limit--
			}

			pivot, hint := lt.choosePivot(data, lo, hi)
			if hint == decreasingHint {
				lt.reverseRange(data, lo, hi)
				// The pivot was pivot-lo elements after the start of the
				// range; after reversing it is that many before the end.
				pivot = (hi - 1) - (pivot - lo)
				hint = increasingHint
			}

			// The range is likely already sorted.
			if wasBalanced && wasPartitioned && hint == increasingHint {
				if lt.partialInsertionSort(data, lo, hi) {
					break
				}
			}

			// The pivot equals the predecessor placed by an earlier
			// partition, so it is the smallest element in the range.
			// Split off the run equal to it and continue with what is
			// greater; duplicate-heavy input finishes in O(n).
			if lo > 0 && !lt(data[lo-1], data[pivot]) {
				lo = lt.partitionEqual(data, lo, hi, pivot)
				continue
			}

			mid, alreadyPartitioned := lt.partition(data, lo, hi, pivot)
			wasPartitioned = alreadyPartitioned

			// Park the larger side together with its budget and balance
			// state, continue with the smaller one. The parked side
			// resumes exactly where a recursive call would have
			// returned to it.
			leftLen, rightLen := mid-lo, hi-(mid+1)
			if leftLen < rightLen {
				wasBalanced = leftLen >= length/8
				pending[depth] = span{mid + 1, hi, limit, wasBalanced, wasPartitioned}
				hi = mid
			} else {
				wasBalanced = rightLen >= length/8
				pending[depth] = span{lo, mid, limit, wasBalanced, wasPartitioned}
				lo = mid + 1
			}
			depth++
			wasBalanced, wasPartitioned = true, true
		}

		if depth == 0 {
			return
		}
		depth--
		next := pending[depth]
		lo, hi, limit = next.lo, next.hi, next.limit
		wasBalanced, wasPartitioned = next.wasBalanced, next.wasPartitioned
	}
}

// insertionSort sorts data[a:b] using insertion sort.
func (lt lessFn[E]) insertionSort(data []E, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && lt(data[j], data[j-1]); j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

// partition moves elements in data[a:b] around, so that data[i]<p and
// data[j]>=p for i<newpivot and j>newpivot, with p = data[pivot] and
// data[newpivot] = p on return. It reports whether the range was
// already partitioned, in which case no element moved.
func (lt lessFn[E]) partition(data []E, a, b, pivot int) (newpivot int, alreadyPartitioned bool) {
	data[a], data[pivot] = data[pivot], data[a]
	i, j := a+1, b-1 // i and j are inclusive of the elements remaining to be partitioned

	for i <= j && lt(data[i], data[a]) {
		i++
	}
	for i <= j && !lt(data[j], data[a]) {
		j--
	}
	if i > j {
		data[j], data[a] = data[a], data[j]
		return j, true
	}
	data[i], data[j] = data[j], data[i]
	i++
	j--

	for {
		for i <= j && lt(data[i], data[a]) {
			i++
		}
		for i <= j && !lt(data[j], data[a]) {
			j--
		}
		if i > j {
			break
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
	data[j], data[a] = data[a], data[j]
	return j, false
}

// partitionEqual partitions data[a:b] into elements equal to
// data[pivot] followed by elements greater than data[pivot]. The range
// must not contain elements smaller than data[pivot].
func (lt lessFn[E]) partitionEqual(data []E, a, b, pivot int) (newpivot int) {
	data[a], data[pivot] = data[pivot], data[a]
	i, j := a+1, b-1 // i and j are inclusive of the elements remaining to be partitioned

	for {
		for i <= j && !lt(data[a], data[i]) {
			i++
		}
		for i <= j && lt(data[a], data[j]) {
			j--
		}
		if i > j {
			break
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
	return i
}

// partialInsertionSort partially sorts data[a:b] by shifting at most a
// handful of out-of-order elements around, and reports whether the
// range ended up sorted.
func (lt lessFn[E]) partialInsertionSort(data []E, a, b int) bool {
	const (
		maxSteps         = 5  // maximum number of adjacent out-of-order pairs that will get shifted
		shortestShifting = 50 // don't shift any elements on short arrays
	)
	i := a + 1
	for j := 0; j < maxSteps; j++ {
		for i < b && !lt(data[i], data[i-1]) {
			i++
		}

		if i == b {
			return true
		}

		if b-a < shortestShifting {
			return false
		}

		data[i], data[i-1] = data[i-1], data[i]

		// Shift the smaller one to the left.
		if i-a >= 2 {
			for j := i - 1; j >= 1; j-- {
				if !lt(data[j], data[j-1]) {
					break
				}
				data[j], data[j-1] = data[j-1], data[j]
			}
		}
		// Shift the greater one to the right.
		if b-i >= 2 {
			for j := i + 1; j < b; j++ {
				if !lt(data[j], data[j-1]) {
					break
				}
				data[j], data[j-1] = data[j-1], data[j]
			}
		}
	}
	return false
}

// breakPatterns scatters some elements around in an attempt to break
// patterns that might cause imbalanced partitions. The scatter is
// driven by a xorshift generator seeded from the range length, so the
// sort stays deterministic and needs no entropy source.
func (lt lessFn[E]) breakPatterns(data []E, a, b int) {
	length := b - a
	if length >= 8 {
		random := xorshift(length)
		modulus := nextPowerOfTwo(length)

		for idx := a + (length/4)*2 - 1; idx <= a+(length/4)*2+1; idx++ {
			other := int(uint(random.Next()) & (modulus - 1))
			if other >= length {
				other -= length
			}
			data[idx], data[a+other] = data[a+other], data[idx]
		}
	}
}

// choosePivot chooses a pivot in data[a:b].
//
// [0,8): picks a static pivot.
// [8,shortestNinther): simple median-of-three.
// [shortestNinther,∞): Tukey ninther, median of three medians of three.
func (lt lessFn[E]) choosePivot(data []E, a, b int) (pivot int, hint sortedHint) {
	const (
		shortestNinther = 50
		maxSwaps        = 4 * 3
	)

	l := b - a

	var (
		swaps int
		i     = a + l/4*1
		j     = a + l/4*2
		k     = a + l/4*3
	)

	if l >= 8 {
		if l >= shortestNinther {
			i = lt.medianAdjacent(data, i, &swaps)
			j = lt.medianAdjacent(data, j, &swaps)
			k = lt.medianAdjacent(data, k, &swaps)
		}
		j = lt.median(data, i, j, k, &swaps)
	}

	switch swaps {
	case 0:
		return j, increasingHint
	case maxSwaps:
		return j, decreasingHint
	default:
		return j, unknownHint
	}
}

// order2 returns x,y where data[x] <= data[y], where x,y=a,b or x,y=b,a.
func (lt lessFn[E]) order2(data []E, a, b int, swaps *int) (int, int) {
	if lt(data[b], data[a]) {
		*swaps++
		return b, a
	}
	return a, b
}

// median returns x where data[x] is the median of data[a],data[b],data[c], where x is a, b, or c.
func (lt lessFn[E]) median(data []E, a, b, c int, swaps *int) int {
	a, b = lt.order2(data, a, b, swaps)
	b, _ = lt.order2(data, b, c, swaps)
	_, b = lt.order2(data, a, b, swaps)
	return b
}

// medianAdjacent finds the median of data[a-1], data[a], data[a+1].
func (lt lessFn[E]) medianAdjacent(data []E, a int, swaps *int) int {
	return lt.median(data, a-1, a, a+1, swaps)
}

func (lt lessFn[E]) reverseRange(data []E, a, b int) {
	i := a
	j := b - 1
	for i < j {
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
}

// siftDown implements the heap property on data[lo:hi].
// first is an offset into the array where the root of the heap lies.
func (lt lessFn[E]) siftDown(data []E, lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && lt(data[first+child], data[first+child+1]) {
			child++
		}
		if !lt(data[first+root], data[first+child]) {
			return
		}
		data[first+root], data[first+child] = data[first+child], data[first+root]
		root = child
	}
}

// heapSort sorts data[a:b] in place; the heap is encoded purely by
// index arithmetic over the range.
func (lt lessFn[E]) heapSort(data []E, a, b int) {
	first := a
	lo := 0
	hi := b - a

	// Build heap with greatest element at top.
	for i := (hi - 1) / 2; i >= 0; i-- {
		lt.siftDown(data, i, hi, first)
	}

	// Pop elements, largest first, into end of data.
	for i := hi - 1; i >= 0; i-- {
		data[first], data[first+i] = data[first+i], data[first]
		lt.siftDown(data, lo, i, first)
	}
}
