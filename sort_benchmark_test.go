// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constsort

import (
	"sort"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/constsort/constsort/sortpattern"
)

// These benchmarks compare sorting a large slice of int with sort.Ints,
// slices.Sort and constsort.Sort.

const benchN = 100_000

func benchSort(b *testing.B, makeInput func() []int, sort func([]int)) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeInput()
		b.StartTimer()
		sort(ints)
	}
}

func BenchmarkSortInts(b *testing.B) {
	benchSort(b, func() []int { return sortpattern.Random(benchN, 42) }, sort.Ints)
}

func BenchmarkSlicesSortInts(b *testing.B) {
	benchSort(b, func() []int { return sortpattern.Random(benchN, 42) }, slices.Sort[int])
}

func BenchmarkConstsortInts(b *testing.B) {
	benchSort(b, func() []int { return sortpattern.Random(benchN, 42) }, Sort[int])
}

func BenchmarkConstsortInts_Sorted(b *testing.B) {
	benchSort(b, func() []int { return sortpattern.Ascending(benchN) }, Sort[int])
}

func BenchmarkConstsortInts_Reversed(b *testing.B) {
	benchSort(b, func() []int { return sortpattern.Descending(benchN) }, Sort[int])
}

func BenchmarkConstsortInts_Mixed(b *testing.B) {
	benchSort(b, func() []int { return sortpattern.Mixed(benchN, 42) }, Sort[int])
}

func BenchmarkConstsortInts_MedianKiller(b *testing.B) {
	benchSort(b, func() []int { return sortpattern.MedianKiller(benchN) }, Sort[int])
}

func BenchmarkHeapsortInts(b *testing.B) {
	benchSort(b, func() []int { return sortpattern.Random(benchN, 42) }, Heapsort[int])
}
