// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

// siftDown restores the max-heap property on the heap rooted at lo within
// the heap s[first:first+hi].
func (q *sorter[E]) siftDown(lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && q.less(first+child, first+child+1) {
			child++
		}
		if !q.less(first+root, first+child) {
			return
		}
		q.swap(first+root, first+child)
		root = child
	}
}

// heapSort sorts s[a:b] with a binary max-heap. It needs O(l log l)
// comparisons for a range of length l no matter what the input looks
// like, which is what makes it the fallback when partitioning degrades.
// All relocations are plain swaps, so a panicking comparison cannot tear
// an element.
func (q *sorter[E]) heapSort(a, b int) {
	first := a
	hi := b - a

	// Build heap with the greatest element at the top.
	for i := (hi - 1) / 2; i >= 0; i-- {
		q.siftDown(i, hi, first)
	}

	// Pop elements, largest first, into the end of the range.
	for i := hi - 1; i >= 0; i-- {
		q.swap(first, first+i)
		q.siftDown(0, i, first)
	}
}
