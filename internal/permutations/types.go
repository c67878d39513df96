// Package permutations provides reference permutations of [0, n) used
// to baseline the Feistel-based engine: a hashed constant-space shuffle
// and a materialized Fisher-Yates shuffle. Both are deterministic for a
// fixed seed.
package permutations

// Permutations is an interface satisfied by anything with a proper
// Shuffle method
type Permutations interface {
	Shuffle(n uint64) uint64
}

const (
	Kensler = iota
	Naive
)
