package hash

import (
	"fmt"

	"github.com/minio/highwayhash"
	"github.com/shivakar/metrohash"
	"github.com/twmb/murmur3"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

const (
	Murmur3 = iota
	Metro
	Highway
	Blake3
	XXH3
)

var ErrUnknownHash = fmt.Errorf("cannot create a hasher of unknown hash type")

// highwayKey is the fixed 32 byte key required by the highwayhash API.
// Keying material for the permutation comes from the seed folded into the
// hashed message, so every hasher must produce the same digest for the same
// bytes in every process.
var highwayKey = []byte("permute.highwayhash.fixed.key..1")

// Hasher implements different non cryptographic hashing functions
// reduced to a 64-bit digest. Implementations must be deterministic
// and safe for concurrent use.
type Hasher interface {
	Hash64([]byte) uint64
}

// New creates a hasher of type t
func New(t int) (Hasher, error) {
	switch t {
	case Murmur3:
		return NewMurmur3Hasher(), nil
	case Metro:
		return NewMetroHasher(), nil
	case Highway:
		return NewHighwayHasher(), nil
	case Blake3:
		return NewBlake3Hasher(), nil
	case XXH3:
		return NewXXH3Hasher(), nil
	default:
		return nil, ErrUnknownHash
	}
}

// Murmur3 implementation of Hasher
type murmur64 struct{}

// NewMurmur3Hasher returns a Murmur3 hasher
func NewMurmur3Hasher() Hasher {
	return murmur64{}
}

func (murmur64) Hash64(p []byte) uint64 {
	return murmur3.Sum64(p)
}

// Metro Hash implementation of Hasher
type metro struct{}

// NewMetroHasher returns a metro64 hasher
func NewMetroHasher() Hasher {
	return metro{}
}

func (metro) Hash64(p []byte) uint64 {
	h := metrohash.NewMetroHash64()
	h.Write(p)
	return h.Sum64()
}

// HighwayHash implementation of Hasher
type highway struct{}

// NewHighwayHasher returns a highwayhash hasher keyed with the
// package constant key
func NewHighwayHasher() Hasher {
	return highway{}
}

func (highway) Hash64(p []byte) uint64 {
	return highwayhash.Sum64(p, highwayKey)
}

// Blake3 implementation of Hasher, truncated to the first 8 bytes
// of the digest
type blake3Hasher struct{}

// NewBlake3Hasher returns a blake3 hasher
func NewBlake3Hasher() Hasher {
	return blake3Hasher{}
}

func (blake3Hasher) Hash64(p []byte) uint64 {
	sum := blake3.Sum256(p)
	return uint64(sum[0])<<56 | uint64(sum[1])<<48 | uint64(sum[2])<<40 | uint64(sum[3])<<32 |
		uint64(sum[4])<<24 | uint64(sum[5])<<16 | uint64(sum[6])<<8 | uint64(sum[7])
}

// XXH3 implementation of Hasher
type xxh3Hasher struct{}

// NewXXH3Hasher returns a xxh3 hasher
func NewXXH3Hasher() Hasher {
	return xxh3Hasher{}
}

func (xxh3Hasher) Hash64(p []byte) uint64 {
	return xxh3.Hash(p)
}
