// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

import "math/bits"

// iverson returns 1 or 0 depending whether the boolean parameter is true or
// false. The compiler turns it into a conditional move, which keeps the
// block classification loops free of data-dependent branches.
func iverson(f bool) int {
	if f {
		return 1
	}
	return 0
}

// nextPowerOfTwo returns the smallest power of two greater than n.
func nextPowerOfTwo(n int) uint64 {
	return 1 << uint(bits.Len(uint(n)))
}
