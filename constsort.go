// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constsort sorts slices in place without allocating.
//
// The sort is unstable: elements that compare equal may end up in any
// relative order. What it guarantees instead is a fixed, small resource
// envelope, which makes it usable in constrained execution contexts
// where the usual library sorts are not: it performs no allocation,
// never panics on well-typed input, uses no recursion, and keeps its
// auxiliary state to a fixed-capacity work list of O(log n) ranges.
//
// The algorithm is pattern-defeating quicksort: insertion sort below a
// small cutoff, quicksort with deterministic median-of-three (or Tukey
// ninther) pivots above it, and a heapsort fallback once a budget of
// log2(n) imbalanced partitions is spent, bounding the worst case to
// O(n log n) on any input, adversarial ones included. Sorted, reversed
// and duplicate-heavy inputs are detected and finished in O(n). The
// cutoff and the budget formula are internal tuning constants, not part
// of the API contract.
//
// Comparators passed to the *Func variants must describe a strict weak
// ordering: cmp(a, b) is negative when a orders before b, positive when
// after, and zero otherwise, consistently across calls. If the
// comparator breaks that contract the resulting order is unspecified,
// but the sort still terminates, still touches only in-range indices,
// and still leaves the slice a permutation of its input.
package constsort

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Sort sorts a slice of any ordered type in ascending order.
func Sort[E constraints.Ordered](x []E) {
	n := len(x)
	if n < 2 {
		return
	}
	limit := bits.Len(uint(n))
	lessFn[E](less[E]).sort(x, 0, n, limit)
}

// SortFunc sorts the slice x as determined by the three-way comparator
// cmp, in ascending order. The comparator must be a strict weak
// ordering; see the package documentation.
func SortFunc[E any](x []E, cmp func(a, b E) int) {
	n := len(x)
	if n < 2 {
		return
	}
	limit := bits.Len(uint(n))
	cmpLess(cmp).sort(x, 0, n, limit)
}

// Heapsort sorts a slice of any ordered type using heapsort only,
// skipping the quicksort phase. It is the same guaranteed O(n log n)
// routine Sort falls back to, exposed for callers that want fully
// input-independent behavior.
func Heapsort[E constraints.Ordered](x []E) {
	if len(x) < 2 {
		return
	}
	lessFn[E](less[E]).heapSort(x, 0, len(x))
}

// HeapsortFunc is Heapsort with a three-way comparator.
func HeapsortFunc[E any](x []E, cmp func(a, b E) int) {
	if len(x) < 2 {
		return
	}
	cmpLess(cmp).heapSort(x, 0, len(x))
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E constraints.Ordered](x []E) bool {
	for i := len(x) - 1; i > 0; i-- {
		if x[i] < x[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether x is sorted in ascending order according
// to the three-way comparator cmp.
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	for i := len(x) - 1; i > 0; i-- {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}

func less[E constraints.Ordered](a, b E) bool {
	return a < b
}

// cmpLess normalizes a three-way comparator into the is-less predicate
// the sorting loops branch on.
func cmpLess[E any](cmp func(a, b E) int) lessFn[E] {
	return func(a, b E) bool { return cmp(a, b) < 0 }
}
