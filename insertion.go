// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

// hole marks the slot a shifted-out element must return to. While an
// insertion shift is in flight, the element lives in *v and dst names the
// slot that currently holds a duplicate. Filling the hole restores the
// permutation; doing it in a deferred call makes the restoration run even
// when a comparison panics mid-shift.
type hole[E any] struct {
	v   *E
	dst int
}

func (h *hole[E]) fill(s []E) { s[h.dst] = *h.v }

// insertionSort sorts s[a:b]. It is the terminal case for short ranges.
func (q *sorter[E]) insertionSort(a, b int) {
	for i := a + 1; i < b; i++ {
		q.insertTail(a, i)
	}
}

// insertTail inserts s[i] into the sorted range s[a:i]. The element is
// lifted into a hole so that at every instant exactly one copy of every
// element is reachable: the slice slots shift one by one, the hole tracks
// the slot owed the lifted element, and a deferred fill writes it back no
// matter how the function exits.
func (q *sorter[E]) insertTail(a, i int) {
	s := q.s
	if q.cmp(s[i], s[i-1]) >= 0 {
		return
	}
	v := s[i]
	h := hole[E]{v: &v, dst: i}
	defer h.fill(s)
	for j := i - 1; ; j-- {
		s[j+1] = s[j]
		h.dst = j
		if j == a || q.cmp(v, s[j-1]) >= 0 {
			return
		}
	}
}

// partialInsertionSort sorts s[a:b] if it is at most a handful of swaps
// away from sorted and reports whether it succeeded. The driver tries it
// when the pivot sample showed no inversions, which makes an already
// sorted slice, or one with a few appended elements, cost a linear scan.
func (q *sorter[E]) partialInsertionSort(a, b int) bool {
	const (
		maxSteps         = 5
		shortestShifting = 50
	)
	i := a + 1
	for step := 0; step < maxSteps; step++ {
		for i < b && !q.less(i, i-1) {
			i++
		}
		if i == b {
			return true
		}
		if b-a < shortestShifting {
			return false
		}
		q.swap(i, i-1)

		// Shift the smaller element to the left.
		for j := i - 1; j > a; j-- {
			if !q.less(j, j-1) {
				break
			}
			q.swap(j, j-1)
		}
		// Shift the greater element to the right.
		for j := i + 1; j < b; j++ {
			if !q.less(j, j-1) {
				break
			}
			q.swap(j, j-1)
		}
	}
	return false
}
