// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

type sortedHint int

const (
	unknownHint sortedHint = iota
	increasingHint
	decreasingHint
)

// choosePivot selects a pivot position in s[a:b] and classifies the range
// as likely increasing, likely decreasing or unknown.
//
// Three candidate positions are drawn pseudo-randomly from separate
// quarters of the range. Ranges of at least eight elements take the median
// of the three candidates; ranges of at least shortestNinther elements
// take the Tukey ninther, the median of the three medians of the
// candidates and their immediate neighbors. The median networks count
// their exchanges: zero exchanges over a full ninther means every sampled
// triple was in order, maximal exchanges that every triple was reversed.
func (q *sorter[E]) choosePivot(a, b int) (pivot int, hint sortedHint) {
	const (
		shortestNinther = 50
		maxSwaps        = 4 * 3
	)

	l := b - a
	var swaps int
	i, j, k := q.sample3(a, b)

	if l >= 8 {
		if l >= shortestNinther {
			i = q.medianAdjacent(i, &swaps)
			j = q.medianAdjacent(j, &swaps)
			k = q.medianAdjacent(k, &swaps)
		}
		j = q.median(i, j, k, &swaps)
	}

	switch swaps {
	case 0:
		return j, increasingHint
	case maxSwaps:
		return j, decreasingHint
	}
	return j, unknownHint
}

// sample3 draws three ordered candidate positions from the second, third
// and fourth eighth-boundaries of s[a:b], each jittered by up to an eighth
// of the range length. The jitter windows do not overlap and keep one
// position of margin at both ends for the adjacent-median networks.
func (q *sorter[E]) sample3(a, b int) (i, j, k int) {
	l := b - a
	spread := l / 8
	i = a + l/4 + q.rng.intn(spread)
	j = a + l/2 + q.rng.intn(spread)
	k = a + l/4*3 + q.rng.intn(spread)
	return i, j, k
}

// order2 returns x, y with s[x] <= s[y], where x, y is a, b or b, a.
func (q *sorter[E]) order2(a, b int, swaps *int) (int, int) {
	if q.less(b, a) {
		*swaps++
		return b, a
	}
	return a, b
}

// median returns x such that s[x] is the median of s[a], s[b], s[c].
func (q *sorter[E]) median(a, b, c int, swaps *int) int {
	a, b = q.order2(a, b, swaps)
	b, _ = q.order2(b, c, swaps)
	_, b = q.order2(a, b, swaps)
	return b
}

// medianAdjacent returns the position of the median of s[a-1], s[a],
// s[a+1].
func (q *sorter[E]) medianAdjacent(a int, swaps *int) int {
	return q.median(a-1, a, a+1, swaps)
}
