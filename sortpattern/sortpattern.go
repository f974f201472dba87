// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortpattern generates integer sequences with the shapes that
// make or break quicksort implementations, and provides a counting
// comparator for instrumenting sorts. It backs both the constsort tests
// and the sortbench command.
package sortpattern

import "math/rand"

// Ascending returns 0, 1, ..., n-1.
func Ascending(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

// Descending returns n, n-1, ..., 1.
func Descending(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = n - i
	}
	return v
}

// Random returns n values drawn uniformly from [0, n) using seed.
func Random(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	v := make([]int, n)
	for i := range v {
		v[i] = r.Intn(n)
	}
	return v
}

// OrganPipe rises to n/2 and falls back down: 0, 1, ..., k, ..., 1, 0.
func OrganPipe(n int) []int {
	v := make([]int, n)
	for i := range v {
		if i <= n/2 {
			v[i] = i
		} else {
			v[i] = n - 1 - i
		}
	}
	return v
}

// Sawtooth repeats 0, 1, ..., period-1 across n elements.
func Sawtooth(n, period int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i % period
	}
	return v
}

// Duplicates returns n values drawn from only k distinct keys.
func Duplicates(n, k int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	v := make([]int, n)
	for i := range v {
		v[i] = r.Intn(k)
	}
	return v
}

// AllEqual returns n copies of the same value.
func AllEqual(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = 42
	}
	return v
}

// Mixed is one third ascending, one third random, one third descending.
func Mixed(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	v := make([]int, n)
	m := n / 3
	for i := 0; i < m; i++ {
		v[i] = i
	}
	for i := m; i < n-m; i++ {
		v[i] = r.Intn(n)
	}
	for i := n - m; i < n; i++ {
		v[i] = n - i
	}
	return v
}

// MedianKiller returns the Musser sequence engineered to drive a
// median-of-three quicksort quadratic. A sort with a working worst-case
// guard must still finish it in O(n log n) comparisons.
func MedianKiller(n int) []int {
	v := make([]int, 0, n)
	k := n / 2
	for i := 1; i <= k; i++ {
		if i%2 == 1 {
			v = append(v, i)
		} else {
			v = append(v, k+i-1)
		}
	}
	for i := 1; i <= k; i++ {
		v = append(v, 2*i)
	}
	for len(v) < n {
		v = append(v, n)
	}
	return v
}

// Counter wraps a three-way comparator and counts how often it is
// invoked. The zero value is not usable; construct with NewCounter.
type Counter[E any] struct {
	cmp   func(a, b E) int
	calls int
}

// NewCounter returns a Counter wrapping cmp.
func NewCounter[E any](cmp func(a, b E) int) *Counter[E] {
	return &Counter[E]{cmp: cmp}
}

// Compare invokes the wrapped comparator and counts the call.
func (c *Counter[E]) Compare(a, b E) int {
	c.calls++
	return c.cmp(a, b)
}

// Calls returns the number of comparisons made since the last Reset.
func (c *Counter[E]) Calls() int {
	return c.calls
}

// Reset zeroes the call count.
func (c *Counter[E]) Reset() {
	c.calls = 0
}
