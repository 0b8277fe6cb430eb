package interner

import (
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

const staticFlight = "static"

// Static resolves a declared value into a handle on first access and serves
// the same handle on every later access. The value, or the factory that
// produces it, is resolved at most once:
//
//	var names interner.GlobalStrings
//	var admin = names.Static("admin")
//
//	h := admin.Get()
//	defer h.Release()
//
// The Static keeps its own handle for as long as it is reachable, so the
// value stays resident in the pool.
type Static[T any] struct {
	pool  Pool[T]
	value T
	init  func() T

	resolved atomic.Pointer[Handle[T]]
	group    singleflight.Group
}

// NewStatic returns a Static that interns v in pool on first access.
func NewStatic[T any](pool Pool[T], v T) *Static[T] {
	return &Static[T]{pool: pool, value: v}
}

// NewStaticFunc returns a Static that interns fn() in pool on first access.
// fn is called at most once, even under concurrent first accesses, unless
// it panics.
func NewStaticFunc[T any](pool Pool[T], fn func() T) *Static[T] {
	return &Static[T]{pool: pool, init: fn}
}

// Get returns a new handle to the resolved value. After the first call it
// never locks.
func (s *Static[T]) Get() *Handle[T] {
	// Fast path: already resolved.
	if h := s.resolved.Load(); h != nil {
		return h.Clone()
	}

	// Slow path: concurrent first callers share one resolution.
	v, _, _ := s.group.Do(staticFlight, func() (any, error) {
		// Double-check: an earlier flight may have finished while we waited.
		if h := s.resolved.Load(); h != nil {
			return h, nil
		}

		value := s.value
		if s.init != nil {
			value = s.init()
		}

		h := s.pool.Get(value)
		s.resolved.Store(h)
		return h, nil
	})
	return v.(*Handle[T]).Clone()
}
