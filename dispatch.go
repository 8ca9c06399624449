// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

import "unsafe"

// The element class is determined once per top-level call from the static
// size of the element type. Small elements are cheap to relocate, so they
// take the branchless block-partition path. Mid-size elements use the
// branchy partition, which performs fewer element copies. Elements above
// indirectMin bytes are sorted through an index vector and moved once at
// the end. Go values carry no destructors or self-references, so size is
// the only property that matters for relocation cost.
type class int

const (
	classBlock class = iota
	classGeneric
	classIndirect
)

const (
	blockMax    = 32
	indirectMin = 128
)

func elemClass[E any]() class {
	var e E
	size := unsafe.Sizeof(e)
	switch {
	case size <= blockMax:
		return classBlock
	case size <= indirectMin:
		return classGeneric
	}
	return classIndirect
}

// sortIndirect sorts large elements through an index vector. Only indices
// move during partitioning; each payload is relocated exactly once when
// the final permutation is applied. A panicking comparison function leaves
// the payload slice untouched because no payload moves before the index
// sort has completed.
func sortIndirect[E any](x []E, cmp func(a, b E) int) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	quickSort(idx, func(a, b int) int { return cmp(x[a], x[b]) }, true)
	permute(x, idx)
}

// permute rearranges x so that the element previously at position idx[i]
// ends up at position i. It follows the cycles of the permutation, writing
// every element to its final position exactly once. idx is consumed.
func permute[E any](x []E, idx []int) {
	for i := range idx {
		if idx[i] == i {
			continue
		}
		v := x[i]
		j := i
		for {
			k := idx[j]
			idx[j] = j
			if k == i {
				x[j] = v
				break
			}
			x[j] = x[k]
			j = k
		}
	}
}
