// Package generate builds input buffers for the sort engines.
package generate

import (
	"math/rand/v2"
)

// Permutation returns the values 1..n in an order fixed by seed.
// The same (n, seed) always gives the same slice.
func Permutation(n int, seed uint64) []int {
	if n <= 0 {
		return []int{}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec
	out := rng.Perm(n)

	for i := range out {
		out[i]++
	}

	return out
}

// Sorted returns 1..n ascending.
func Sorted(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// Reversed returns n..1, the worst case for the quadratic engines.
func Reversed(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = n - i
	}

	return out
}
