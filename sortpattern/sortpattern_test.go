// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortpattern

import "testing"

func sum(v []int) int {
	s := 0
	for _, x := range v {
		s += x
	}
	return s
}

func TestLengths(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100, 1001} {
		for name, v := range map[string][]int{
			"Ascending":    Ascending(n),
			"Descending":   Descending(n),
			"Random":       Random(n, 1),
			"OrganPipe":    OrganPipe(n),
			"Sawtooth":     Sawtooth(n, 5),
			"Duplicates":   Duplicates(n, 3, 1),
			"AllEqual":     AllEqual(n),
			"Mixed":        Mixed(n, 1),
			"MedianKiller": MedianKiller(n),
		} {
			if len(v) != n {
				t.Errorf("%s(%d) has length %d", name, n, len(v))
			}
		}
	}
}

func TestAscendingDescending(t *testing.T) {
	up, down := Ascending(4), Descending(4)
	for i, want := range []int{0, 1, 2, 3} {
		if up[i] != want {
			t.Errorf("Ascending(4) = %v", up)
			break
		}
	}
	for i, want := range []int{4, 3, 2, 1} {
		if down[i] != want {
			t.Errorf("Descending(4) = %v", down)
			break
		}
	}
}

func TestOrganPipePeaksInMiddle(t *testing.T) {
	v := OrganPipe(101)
	if v[0] != 0 || v[100] != 0 || v[50] != 50 {
		t.Errorf("OrganPipe(101) endpoints/middle = %d, %d, %d", v[0], v[100], v[50])
	}
}

func TestDuplicatesKeyRange(t *testing.T) {
	for _, x := range Duplicates(1000, 3, 2) {
		if x < 0 || x >= 3 {
			t.Fatalf("Duplicates produced key %d outside [0,3)", x)
		}
	}
}

// For n divisible by 4, MedianKiller is a permutation of 1..n, so
// sorting it has a known answer.
func TestMedianKillerPermutation(t *testing.T) {
	n := 1000
	v := MedianKiller(n)
	if got, want := sum(v), n*(n+1)/2; got != want {
		t.Errorf("MedianKiller(%d) sums to %d, want %d", n, got, want)
	}
	seen := make(map[int]bool, n)
	for _, x := range v {
		if x < 1 || x > n || seen[x] {
			t.Fatalf("MedianKiller(%d) is not a permutation of 1..%d: %d repeated or out of range", n, n, x)
		}
		seen[x] = true
	}
}

func TestRandomDeterministicPerSeed(t *testing.T) {
	a, b := Random(100, 7), Random(100, 7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Random(100, 7) differs from itself at %d", i)
		}
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter(func(a, b int) int { return a - b })
	if c.Compare(1, 2) >= 0 || c.Compare(2, 1) <= 0 || c.Compare(3, 3) != 0 {
		t.Errorf("Counter.Compare altered the comparator result")
	}
	if c.Calls() != 3 {
		t.Errorf("Calls() = %d, want 3", c.Calls())
	}
	c.Reset()
	if c.Calls() != 0 {
		t.Errorf("Calls() after Reset = %d, want 0", c.Calls())
	}
}
