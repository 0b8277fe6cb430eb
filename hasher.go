package interner

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes the content hash a pool uses to find resident values.
// A Hasher must be deterministic for the lifetime of the pool it is given to
// and safe for concurrent use.
type Hasher interface {
	HashString(s string) uint64
	HashBytes(b []byte) uint64
}

// XXHash hashes with xxHash64. It is unseeded and is the default Hasher.
type XXHash struct{}

// HashString implements Hasher.
func (XXHash) HashString(s string) uint64 { return xxhash.Sum64String(s) }

// HashBytes implements Hasher.
func (XXHash) HashBytes(b []byte) uint64 { return xxhash.Sum64(b) }

// MapHash hashes with hash/maphash under a fixed seed.
type MapHash struct {
	seed maphash.Seed
}

// NewMapHash returns a MapHash with a random seed. It has the signature of a
// hasher factory and can be passed to WithHasherFactory directly.
func NewMapHash() Hasher {
	return MapHash{seed: maphash.MakeSeed()}
}

// HashString implements Hasher.
func (m MapHash) HashString(s string) uint64 { return maphash.String(m.seed, s) }

// HashBytes implements Hasher.
func (m MapHash) HashBytes(b []byte) uint64 { return maphash.Bytes(m.seed, b) }

func defaultHasher() Hasher { return XXHash{} }
