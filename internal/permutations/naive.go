package permutations

import (
	"math/rand"
)

// naive holds the whole permutation vector in memory, the O(n) space
// approach the constant-space engines avoid.
type naive struct {
	p []uint64
}

// NewNaive permutation method, a seeded Fisher-Yates shuffle of [0, n).
func NewNaive(n uint64, seed int64) (naive, error) {
	var p = make([]uint64, n)
	r := rand.New(rand.NewSource(seed))
	for i := uint64(0); i < n; i++ {
		j := uint64(r.Int63n(int64(i) + 1))
		p[i] = p[j]
		p[j] = i
	}
	return naive{p: p}, nil
}

// Shuffle using the naive method
// with n the number to permute/the index of the permutation vector.
func (k naive) Shuffle(n uint64) uint64 {
	return k.p[n]
}
