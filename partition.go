// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

// blockSize is the number of elements classified per side before flagged
// positions are exchanged. Offsets within a block fit a uint8.
const blockSize = 64

// partition rearranges s[a:b] around the element at position pivot and
// returns the final pivot position m: s[i] < s[m] for a <= i < m and
// s[m] <= s[j] for m < j < b. alreadyPartitioned reports that no element
// had to move. The pivot is parked at position a for the duration, outside
// the region the partitioning relocates, and every comparison reads it
// from the slice again, so a comparison function that mutates observed
// elements cannot desynchronize the scan from the slice contents.
func (q *sorter[E]) partition(a, b, pivot int) (mid int, alreadyPartitioned bool) {
	q.swap(a, pivot)
	i, j := a+1, b-1

	for i <= j && q.less(i, a) {
		i++
	}
	for i <= j && !q.less(j, a) {
		j--
	}
	if i > j {
		q.swap(j, a)
		return j, true
	}

	var m int
	if q.blocky {
		m = i + q.blockPartition(i, j+1, a)
	} else {
		m = q.branchyPartition(i, j, a)
	}
	q.swap(a, m-1)
	return m - 1, false
}

// branchyPartition finishes a Hoare partition of the region [i, j+1) with
// the pivot at position p. On entry s[i] >= pivot and s[j] < pivot. It
// returns the first position of the >= side.
func (q *sorter[E]) branchyPartition(i, j, p int) int {
	for {
		q.swap(i, j)
		i++
		j--
		for i <= j && q.less(i, p) {
			i++
		}
		for i <= j && !q.less(j, p) {
			j--
		}
		if i > j {
			return i
		}
	}
}

// blockPartition partitions the region [l, r) against the pivot at
// position p, which lies outside the region, and returns the number of
// elements smaller than the pivot. Both ends are classified in blocks:
// the offsets of misplaced elements are collected into fixed buffers
// without branching on the comparison result, then a left and a right
// block exchange their misplaced elements in one cyclic pass. The element
// moves themselves involve no comparisons, so an interrupted call cannot
// leave a partial relocation behind.
func (q *sorter[E]) blockPartition(l, r, p int) int {
	base := l
	var (
		blockL, blockR = blockSize, blockSize
		offL, offR     [blockSize]uint8

		startL, endL int
		startR, endR int
	)

	for {
		done := r-l <= 2*blockSize
		if done {
			// The last round works on shrunken blocks that exactly
			// tile what is left. A side with pending offsets keeps
			// its block; only the other side shrinks.
			rem := r - l
			if startL < endL || startR < endR {
				rem -= blockSize
			}
			switch {
			case startL < endL:
				blockR = rem
			case startR < endR:
				blockL = rem
			default:
				blockL = rem / 2
				blockR = rem - blockL
			}
		}

		if startL == endL {
			startL, endL = 0, 0
			for k := 0; k < blockL; k++ {
				offL[endL] = uint8(k)
				endL += iverson(!q.less(l+k, p))
			}
		}
		if startR == endR {
			startR, endR = 0, 0
			for k := 0; k < blockR; k++ {
				offR[endR] = uint8(k)
				endR += iverson(q.less(r-1-k, p))
			}
		}

		if n := min(endL-startL, endR-startR); n > 0 {
			q.cycleSwap(l, r, offL[startL:startL+n], offR[startR:startR+n])
			startL += n
			startR += n
		}

		if startL == endL {
			l += blockL
		}
		if startR == endR {
			r -= blockR
		}
		if done {
			break
		}
	}

	// At most one side still has offsets pending. Its flagged elements
	// are moved one by one to the boundary, highest offset first.
	if startL < endL {
		for startL < endL {
			endL--
			q.swap(l+int(offL[endL]), r-1)
			r--
		}
		return r - base
	}
	for startR < endR {
		endR--
		q.swap(l, r-int(offR[endR])-1)
		l++
	}
	return l - base
}

// cycleSwap exchanges the flagged elements of a left and a right block
// through a single cyclic permutation: one element is lifted out and every
// other element moves directly to its final slot.
func (q *sorter[E]) cycleSwap(l, r int, offL, offR []uint8) {
	s := q.s
	left := l + int(offL[0])
	right := r - int(offR[0]) - 1
	tmp := s[left]
	s[left] = s[right]
	for k := 1; k < len(offL); k++ {
		left = l + int(offL[k])
		s[right] = s[left]
		right = r - int(offR[k]) - 1
		s[left] = s[right]
	}
	s[right] = tmp
}

// partitionEqual partitions s[a:b] into elements equal to the element at
// position pivot followed by elements greater than it, returning the first
// position of the greater side. The caller must know that the range holds
// no element smaller than the pivot. The scan is branchy on purpose: on
// the duplicate-heavy ranges this runs on, block classification buys
// nothing.
func (q *sorter[E]) partitionEqual(a, b, pivot int) int {
	q.swap(a, pivot)
	i, j := a+1, b-1
	for {
		for i <= j && !q.less(a, i) {
			i++
		}
		for i <= j && q.less(a, j) {
			j--
		}
		if i > j {
			break
		}
		q.swap(i, j)
		i++
		j--
	}
	return i
}
