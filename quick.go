// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

import "math/bits"

const (
	// maxInsertion is the largest range length sorted by insertion sort.
	maxInsertion = 12

	// maxDepth bounds the pending-range stack and the ancestor-pivot
	// stack. Every deferred range is at most half the size of the range
	// below it on the stack, so 64 entries cover any slice addressable
	// on a 64-bit machine.
	maxDepth = 64
)

// task is a deferred sorting range. anc records the height of the
// ancestor-pivot stack the range was created under and pivot the position
// of the partition pivot that bounds the range from below, or -1 if the
// range is a left child. balanced and partitioned carry the partition
// quality flags of the creating step.
type task struct {
	lo, hi      int
	limit       int
	anc         int
	pivot       int
	balanced    bool
	partitioned bool
}

// sorter holds the per-call state of one sort: the slice, the comparison
// function, the pseudo-random generator, the pending-range stack and the
// stack of ancestor pivot positions. All arrays have fixed size, so a
// sorter lives in a single stack frame.
type sorter[E any] struct {
	s      []E
	cmp    func(a, b E) int
	rng    xorshift
	blocky bool

	stack [maxDepth]task
	top   int

	anc    [maxDepth]int
	ancTop int
}

func (q *sorter[E]) less(i, j int) bool { return q.cmp(q.s[i], q.s[j]) < 0 }

func (q *sorter[E]) swap(i, j int) { q.s[i], q.s[j] = q.s[j], q.s[i] }

func (q *sorter[E]) push(t task) {
	q.stack[q.top] = t
	q.top++
}

// pop resumes the most recently deferred range. It rewinds the ancestor
// stack to the height recorded at deferral and reinstates the bounding
// pivot of a right child.
func (q *sorter[E]) pop() (t task, ok bool) {
	if q.top == 0 {
		return t, false
	}
	q.top--
	t = q.stack[q.top]
	q.ancTop = t.anc
	if t.pivot >= 0 {
		q.anc[q.ancTop] = t.pivot
		q.ancTop++
	}
	return t, true
}

// sort runs the quicksort loop over the whole slice. The loop descends
// tail-position into the smaller child of every partition and defers the
// larger child on the explicit range stack, so the machine stack stays
// flat while the deferred work is bounded by maxDepth entries.
//
// limit counts the bad partitions the current path may still produce.
// Every bad partition shuffles the range before the next pivot choice;
// once limit reaches zero the remaining range goes to heapsort, which
// caps the total comparison count at O(n log n).
func (q *sorter[E]) sort() {
	n := len(q.s)
	q.rng = newXorshift(n)

	var (
		a, b           = 0, n
		limit          = bits.Len(uint(n))
		wasBalanced    = true
		wasPartitioned = true
	)

	for {
		length := b - a

		if length <= maxInsertion {
			q.insertionSort(a, b)
			t, ok := q.pop()
			if !ok {
				return
			}
			a, b, limit = t.lo, t.hi, t.limit
			wasBalanced, wasPartitioned = t.balanced, t.partitioned
			continue
		}

		if limit == 0 {
			q.heapSort(a, b)
			t, ok := q.pop()
			if !ok {
				return
			}
			a, b, limit = t.lo, t.hi, t.limit
			wasBalanced, wasPartitioned = t.balanced, t.partitioned
			continue
		}

		if !wasBalanced {
			q.breakPatterns(a, b)
			limit--
		}

		pivot, hint := q.choosePivot(a, b)
		if hint == decreasingHint {
			q.reverseRange(a, b)
			// The pivot was pivot-a positions after the start, so it
			// is pivot-a positions before the end now.
			pivot = (b - 1) - (pivot - a)
			hint = increasingHint
		}

		// The range is likely already sorted.
		if wasBalanced && wasPartitioned && hint == increasingHint {
			if q.partialInsertionSort(a, b) {
				t, ok := q.pop()
				if !ok {
					return
				}
				a, b, limit = t.lo, t.hi, t.limit
				wasBalanced, wasPartitioned = t.balanced, t.partitioned
				continue
			}
		}

		// A pivot equal to the pivot of an enclosing range means the
		// range holds no smaller element. Split off the run of equal
		// elements in one pass; it never has to be looked at again.
		if q.equalsAncestor(pivot) {
			a = q.partitionEqual(a, b, pivot)
			continue
		}

		mid, alreadyPartitioned := q.partition(a, b, pivot)

		leftLen, rightLen := mid-a, b-(mid+1)
		wasBalanced = min(leftLen, rightLen) >= length/8
		wasPartitioned = alreadyPartitioned

		if leftLen < rightLen {
			// Defer the right child. It sees the committed pivot as
			// its bounding ancestor once it resumes.
			q.push(task{lo: mid + 1, hi: b, limit: limit,
				anc: q.ancTop, pivot: mid,
				balanced: wasBalanced, partitioned: wasPartitioned})
			b = mid
		} else {
			q.push(task{lo: a, hi: mid, limit: limit,
				anc: q.ancTop, pivot: -1,
				balanced: wasBalanced, partitioned: wasPartitioned})
			a = mid + 1
			q.anc[q.ancTop] = mid
			q.ancTop++
		}
		wasBalanced, wasPartitioned = true, true
	}
}

// equalsAncestor reports whether the element at p compares equal to an
// ancestor pivot. Ancestor pivots never exceed any element of the current
// range, so a match proves the range holds no element smaller than the
// candidate. Entries further down the stack are no larger than the top
// entry, which ends the scan early for a consistent comparison function.
func (q *sorter[E]) equalsAncestor(p int) bool {
	for i := q.ancTop - 1; i >= 0; i-- {
		c := q.cmp(q.s[q.anc[i]], q.s[p])
		if c == 0 {
			return true
		}
		if c < 0 {
			return false
		}
	}
	return false
}

func (q *sorter[E]) reverseRange(a, b int) {
	i, j := a, b-1
	for i < j {
		q.swap(i, j)
		i++
		j--
	}
}
