// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

import (
	"testing"

	"golang.org/x/exp/slices"
)

type triple [3]int32

func tripleInts(n int, seed uint64) []triple {
	u := randomInts(n, seed)
	v := make([]triple, n)
	for i := range v {
		x := int32(u[i])
		v[i] = triple{x, x + 1, x + 2}
	}
	return v
}

func countTriples(v []triple) map[triple]int {
	m := make(map[triple]int, len(v))
	for _, x := range v {
		m[x]++
	}
	return m
}

// sortPanicking sorts v with a comparison function that panics on its
// failAt-th invocation and reports whether the panic fired.
func sortPanicking(v []triple, failAt int) (panicked bool) {
	calls := 0
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	SortFunc(v, func(a, b triple) int {
		calls++
		if calls == failAt {
			panic("comparison failed")
		}
		return cmpInt(int(a[0]), int(b[0]))
	})
	return false
}

// TestComparatorPanic checks that a comparison function failing on any
// invocation leaves the slice holding exactly the original multiset of
// elements: nothing duplicated, nothing lost.
func TestComparatorPanic(t *testing.T) {
	for _, n := range []int{2, 10, 100, 1000} {
		base := tripleInts(n, 0x5150+uint64(n))
		want := countTriples(base)

		// Count the comparisons of an undisturbed run.
		total := 0
		{
			v := slices.Clone(base)
			SortFunc(v, func(a, b triple) int {
				total++
				return cmpInt(int(a[0]), int(b[0]))
			})
		}

		failAts := make([]int, 0, 128)
		for j := 1; j <= total && j <= 64; j++ {
			failAts = append(failAts, j)
		}
		if total >= 50 {
			failAts = append(failAts, 50)
		}
		for j := 65; j <= total; j += 1 + total/50 {
			failAts = append(failAts, j)
		}

		for _, j := range failAts {
			v := slices.Clone(base)
			panicked := sortPanicking(v, j)
			if !panicked {
				t.Fatalf("n=%d: no panic on comparison %d of %d",
					n, j, total)
			}
			got := countTriples(v)
			if len(got) != len(want) {
				t.Fatalf("n=%d failAt=%d: distinct count %d; want %d",
					n, j, len(got), len(want))
			}
			for k, c := range want {
				if got[k] != c {
					t.Fatalf("n=%d failAt=%d: element %v occurs %d times; want %d",
						n, j, k, got[k], c)
				}
			}
		}
	}
}

// TestComparatorPanicLarge does the same through the index-indirection
// path; payloads must not move before the index sort completes.
func TestComparatorPanicLarge(t *testing.T) {
	const n = 300
	u := randomInts(n, 0x600d)
	base := make([][17]uint64, n)
	for i := range base {
		base[i][0] = uint64(uint32(u[i]))
		base[i][16] = uint64(i)
	}

	for _, failAt := range []int{1, 10, 100, 1000} {
		v := slices.Clone(base)
		calls := 0
		panicked := func() (p bool) {
			defer func() {
				if recover() != nil {
					p = true
				}
			}()
			SortFunc(v, func(a, b [17]uint64) int {
				calls++
				if calls == failAt {
					panic("comparison failed")
				}
				return cmpArray17(a, b)
			})
			return false
		}()
		if !panicked {
			continue // the sort finished before failAt comparisons
		}
		got := slices.Clone(v)
		want := slices.Clone(base)
		slices.SortFunc(got, cmpArray17)
		slices.SortFunc(want, cmpArray17)
		if !slices.Equal(got, want) {
			t.Fatalf("failAt=%d: multiset changed", failAt)
		}
	}
}

// TestInconsistentComparator runs a comparison function that violates the
// total-order contract. The ordering of the result is unspecified, but the
// sort must terminate and keep the multiset intact.
func TestInconsistentComparator(t *testing.T) {
	for _, n := range []int{100, 1000, 10000} {
		base := tripleInts(n, 0xbad+uint64(n))
		want := countTriples(base)
		r := testRNG(0x105)
		v := slices.Clone(base)
		SortFunc(v, func(a, b triple) int {
			return int(r.next()%3) - 1
		})
		got := countTriples(v)
		for k, c := range want {
			if got[k] != c {
				t.Fatalf("n=%d: element %v occurs %d times; want %d",
					n, k, got[k], c)
			}
		}
	}
}
