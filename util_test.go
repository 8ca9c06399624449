// SPDX-FileCopyrightText: © 2024 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package qsort

// Deterministic input patterns for tests and benchmarks. The generators
// cover the shapes that stress different code paths: random data, skewed
// and low-cardinality distributions, presorted and reversed runs, saws,
// pipe-organ shapes and a median-of-three adversary.

type testRNG uint64

func (r *testRNG) next() uint64 {
	*r ^= *r << 13
	*r ^= *r >> 7
	*r ^= *r << 17
	return uint64(*r)
}

func (r *testRNG) intn(n int) int {
	return int(r.next() % uint64(n))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func randomInts(n int, seed uint64) []int {
	r := testRNG(seed | 1)
	v := make([]int, n)
	for i := range v {
		v[i] = int(int32(r.next()))
	}
	return v
}

func uniformInts(n, k int, seed uint64) []int {
	r := testRNG(seed | 1)
	v := make([]int, n)
	for i := range v {
		v[i] = r.intn(k)
	}
	return v
}

func ascendingInts(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

func descendingInts(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = n - i
	}
	return v
}

func constantInts(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = 42
	}
	return v
}

func ascendingSawInts(n, period int) []int {
	if period < 1 {
		period = 1
	}
	v := make([]int, n)
	for i := range v {
		v[i] = i % period
	}
	return v
}

func descendingSawInts(n, period int) []int {
	if period < 1 {
		period = 1
	}
	v := make([]int, n)
	for i := range v {
		v[i] = period - i%period
	}
	return v
}

func pipeOrganInts(n int) []int {
	v := make([]int, n)
	h := n / 2
	for i := 0; i < h; i++ {
		v[i] = i
	}
	for i := h; i < n; i++ {
		v[i] = n - i
	}
	return v
}

// medianKillerInts produces Musser's median-of-three killer sequence,
// which drives quadratic behavior in a plain median-of-three quicksort.
func medianKillerInts(n int) []int {
	n -= n % 2
	k := n / 2
	v := make([]int, n)
	for i := 0; i < k; i++ {
		if i%2 == 0 {
			v[i] = i + 1
		} else {
			v[i] = k + i
		}
		v[k+i] = 2 * (i + 1)
	}
	return v
}
