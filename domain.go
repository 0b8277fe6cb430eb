package interner

import (
	"bytes"
	"os"
	"strings"
)

// Domain describes how values of type T are pooled.
//
// Hash and Equal decide which values share a slot and must agree with each
// other: equal values must hash equally under every Hasher. Compare must be a
// total order consistent with Equal. Clone returns the owned copy that the
// pool stores when a value is first inserted; lookups that hit a resident
// value never call it.
//
// Domains are used as type parameters and should be zero-size types.
type Domain[T any] interface {
	Hash(h Hasher, v T) uint64
	Equal(a, b T) bool
	Compare(a, b T) int
	Clone(v T) T
}

// StringDomain pools strings.
type StringDomain struct{}

func (StringDomain) Hash(h Hasher, v string) uint64 { return h.HashString(v) }
func (StringDomain) Equal(a, b string) bool         { return a == b }
func (StringDomain) Compare(a, b string) int        { return strings.Compare(a, b) }

// Clone copies v so that the pool never pins a larger string v was sliced
// from.
func (StringDomain) Clone(v string) string { return strings.Clone(v) }

// BufferDomain pools byte slices. Handles from a buffer pool expose the
// canonical slice; callers must not modify it.
type BufferDomain struct{}

func (BufferDomain) Hash(h Hasher, v []byte) uint64 { return h.HashBytes(v) }
func (BufferDomain) Equal(a, b []byte) bool         { return bytes.Equal(a, b) }
func (BufferDomain) Compare(a, b []byte) int        { return bytes.Compare(a, b) }

// Clone copies v. A nil v is stored as an empty, non-nil slice.
func (BufferDomain) Clone(v []byte) []byte {
	c := make([]byte, len(v))
	copy(c, v)
	return c
}

// Path is a filesystem path stored in a path pool.
type Path string

// String implements fmt.Stringer.
func (p Path) String() string { return string(p) }

// PathDomain pools filesystem paths. Paths are compared component by
// component, so "a/b", "a//b", "a/./b" and "a/b/" are the same value. The
// representation kept is the one first inserted.
type PathDomain struct{}

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

func (PathDomain) Hash(h Hasher, v Path) uint64 {
	sum := uint64(fnvOffset)
	it := newComponents(v)
	for c, ok := it.next(); ok; c, ok = it.next() {
		sum = (sum ^ h.HashString(c)) * fnvPrime
	}
	return sum
}

func (d PathDomain) Equal(a, b Path) bool { return d.Compare(a, b) == 0 }

func (PathDomain) Compare(a, b Path) int {
	ia, ib := newComponents(a), newComponents(b)
	for {
		ca, oka := ia.next()
		cb, okb := ib.next()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return 1
		}
		if c := strings.Compare(ca, cb); c != 0 {
			return c
		}
	}
}

func (PathDomain) Clone(v Path) Path { return Path(strings.Clone(string(v))) }

// components walks the normalized components of a path without allocating.
// A rooted path yields a leading separator component; "." is kept only as
// the first component of a relative path.
type components struct {
	p     string
	i     int
	first bool
}

func newComponents(p Path) components {
	return components{p: string(p), first: true}
}

func (c *components) next() (string, bool) {
	if c.first && len(c.p) > 0 && os.IsPathSeparator(c.p[0]) {
		c.first = false
		for c.i < len(c.p) && os.IsPathSeparator(c.p[c.i]) {
			c.i++
		}
		return string(os.PathSeparator), true
	}
	for c.i < len(c.p) {
		start := c.i
		for c.i < len(c.p) && !os.IsPathSeparator(c.p[c.i]) {
			c.i++
		}
		comp := c.p[start:c.i]
		for c.i < len(c.p) && os.IsPathSeparator(c.p[c.i]) {
			c.i++
		}
		first := c.first
		c.first = false
		if comp == "" || (comp == "." && !first) {
			continue
		}
		return comp, true
	}
	return "", false
}
