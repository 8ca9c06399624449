// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package qsort provides a generic, comparison-based, in-place unstable
// sorting engine. The algorithm is a pattern-defeating quicksort: a
// two-sided block partition drives the common case, insertion sort handles
// short ranges, duplicate-heavy ranges are detected by comparing pivot
// candidates against the pivots of enclosing ranges and are cut out in a
// single pass, and a heapsort fallback bounds the worst case by O(n log n)
// comparisons.
//
// The sort is single-threaded and, outside of the large-element path,
// allocation free. All auxiliary state has fixed size independent of the
// slice length. The pseudo-random generator used for pivot sampling is
// seeded from the slice length alone, so repeated runs on identical input
// produce identical output and an identical comparison sequence on every
// machine.
//
// The comparison function may panic. The panic propagates out of the sort,
// but every pending element relocation is completed first, so the slice is
// always left holding a permutation of its original elements. A comparison
// function that does not describe a total order voids the ordering
// guarantee, nothing else; the sort still terminates with a permutation of
// the input.
package qsort

import "golang.org/x/exp/constraints"

// Sort sorts a slice of any ordered element type in ascending order. The
// sort is not stable.
func Sort[E constraints.Ordered](x []E) {
	SortFunc(x, func(a, b E) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
}

// SortFunc sorts the slice x in ascending order as determined by the cmp
// function. The sort is not stable. cmp must return a negative number when
// a < b, a positive number when a > b and zero when a == b.
func SortFunc[E any](x []E, cmp func(a, b E) int) {
	if cmp == nil {
		panic("qsort: cmp must not be nil")
	}
	if len(x) < 2 {
		return
	}
	switch elemClass[E]() {
	case classIndirect:
		sortIndirect(x, cmp)
	case classBlock:
		quickSort(x, cmp, true)
	default:
		quickSort(x, cmp, false)
	}
}

func quickSort[E any](x []E, cmp func(a, b E) int, blocky bool) {
	var q sorter[E]
	q.s = x
	q.cmp = cmp
	q.blocky = blocky
	q.sort()
}
