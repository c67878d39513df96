// Package permute provides constant-space random access permutations
// over dense integer ranges [0, n), built on a Feistel network cipher
// whose power-of-two block space is restricted to the target range by
// cycle walking.
//
// A Permutation is an immutable value: construction fixes the domain
// size, the seed, the round count and the hasher, and every later call
// is a pure computation over that state. It is safe for unbounded
// concurrent readers with no locking.
//
// n = 0 is a valid, empty domain: construction succeeds, every Get and
// Invert fails with ErrOutOfRange, and iterators are immediately
// exhausted.
package permute

import (
	"fmt"

	"github.com/optable/permute/internal/feistel"
	"github.com/optable/permute/internal/hash"
)

const (
	// MaxN is the largest supported domain size. Bounding n at 2^62
	// keeps the derived block width at or below 62 bits so that the
	// block space 1<<bits never overflows a uint64.
	MaxN = uint64(1) << 62

	// DefaultRounds is the Feistel round count used unless overridden
	// with WithRounds.
	DefaultRounds = 4

	// walkLimit caps the cycle walk. The expected walk length is at
	// most 4 applications (the block space is at most 4n because the
	// block width is the smallest even width covering n), so hitting
	// the cap means the configured hasher is defective, not that the
	// input was unlucky.
	walkLimit = 500
)

var (
	ErrInvalidDomain = fmt.Errorf("domain size exceeds MaxN")
	ErrOutOfRange    = fmt.Errorf("index outside the permutation domain")
	ErrInvalidRange  = fmt.Errorf("range bounds must satisfy lo <= hi <= n")
	ErrInvalidRounds = fmt.Errorf("round count must be at least 1")
	ErrNilHasher     = fmt.Errorf("hasher must not be nil")
	// ErrHashDefect reports a cycle walk that exceeded its safety cap.
	// It signals a non-deterministic or degenerate hasher and is a
	// configuration defect, never a normal outcome.
	ErrHashDefect = fmt.Errorf("cycle walk exceeded %d iterations: defective hasher", walkLimit)
)

// Option configures a Permutation at construction time.
type Option func(*config)

type config struct {
	rounds int
	hasher hash.Hasher
}

// WithRounds overrides the Feistel round count. More rounds buy better
// mixing at a proportional cost per query.
func WithRounds(rounds int) Option {
	return func(c *config) {
		c.rounds = rounds
	}
}

// WithHasher swaps the hash function driving the round function. The
// hasher must be deterministic; two Permutations with the same n, seed,
// rounds and hasher realize the same bijection in any process.
func WithHasher(h hash.Hasher) Option {
	return func(c *config) {
		c.hasher = h
	}
}

// Permutation is a deterministic pseudorandom bijection on [0, n).
type Permutation struct {
	n   uint64
	net *feistel.Network // nil when n <= 1 and every query is the identity
}

// New constructs the permutation of [0, n) selected by seed.
func New(n, seed uint64, opts ...Option) (*Permutation, error) {
	if n > MaxN {
		return nil, ErrInvalidDomain
	}

	c := &config{
		rounds: DefaultRounds,
		hasher: hash.NewMurmur3Hasher(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rounds < 1 {
		return nil, ErrInvalidRounds
	}
	if c.hasher == nil {
		return nil, ErrNilHasher
	}

	bits := feistel.BlockBits(n)
	if bits == 0 {
		return &Permutation{n: n}, nil
	}

	net, err := feistel.NewNetwork(bits, seed, c.rounds, c.hasher)
	if err != nil {
		return nil, err
	}
	return &Permutation{n: n, net: net}, nil
}

// N returns the domain size.
func (p *Permutation) N() uint64 {
	return p.n
}

// Get returns the ith element of the permutation.
func (p *Permutation) Get(i uint64) (uint64, error) {
	if i >= p.n {
		return 0, ErrOutOfRange
	}
	if p.net == nil {
		return i, nil
	}
	x, _, err := p.walk(i, p.net.Encrypt)
	return x, err
}

// Invert returns the index whose image under Get is j, walking the
// same cycle as Get in the opposite direction.
func (p *Permutation) Invert(j uint64) (uint64, error) {
	if j >= p.n {
		return 0, ErrOutOfRange
	}
	if p.net == nil {
		return j, nil
	}
	x, _, err := p.walk(j, p.net.Decrypt)
	return x, err
}

// walk reapplies the cipher until the value falls back inside [0, n).
// Termination is guaranteed for any bijective step because the orbit of
// x is finite and contains x itself; the cap exists to turn a broken
// hasher into an error instead of a hang.
func (p *Permutation) walk(x uint64, step func(uint64) uint64) (uint64, int, error) {
	for i := 1; i <= walkLimit; i++ {
		x = step(x)
		if x < p.n {
			return x, i, nil
		}
	}
	return 0, walkLimit, ErrHashDefect
}
