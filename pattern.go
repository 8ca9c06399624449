// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

// xorshift is the 64-bit xorshift generator from Marsaglia's paper. It is
// the only source of randomness in the package.
type xorshift uint64

// seedMix is combined with the slice length to seed the generator. The seed
// depends on nothing but the length, never on time or addresses, so a sort
// of identical input is identical on every machine and every run. The high
// bit keeps the state nonzero for any length.
const seedMix = 0x9e3779b97f4a7c15

func newXorshift(n int) xorshift {
	return xorshift(seedMix ^ uint64(n))
}

func (r *xorshift) next() uint64 {
	*r ^= *r << 13
	*r ^= *r >> 7
	*r ^= *r << 17
	return uint64(*r)
}

// intn returns a pseudo-random number in [0, n).
func (r *xorshift) intn(n int) int {
	return int(r.next() % uint64(n))
}

// breakPatterns swaps three elements around the midpoint of s[a:b] with
// pseudo-randomly chosen partners. The driver calls it after a bad
// partition; the bounded shuffle is enough to break inputs constructed
// against median-based pivot selection, since the positions the shuffle
// disturbs feed the next pivot sample.
func (q *sorter[E]) breakPatterns(a, b int) {
	length := b - a
	if length < 8 {
		return
	}
	modulus := nextPowerOfTwo(length)
	for i := a + (length/4)*2 - 1; i <= a+(length/4)*2+1; i++ {
		other := int(q.rng.next() & (modulus - 1))
		if other >= length {
			other -= length
		}
		q.swap(i, a+other)
	}
}
