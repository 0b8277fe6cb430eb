package interner

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// cell is the shared, reference-counted storage of one canonical value.
// While resident, the owning table holds tableRefs references to it and
// every live Handle holds one more.
type cell[T any] struct {
	value T
	index int
	// hash is the content hash the cell is filed under in the active set.
	hash uint64

	refs    atomic.Int64
	freeing atomic.Bool

	pool          tableAccess[T]
	manualRelease bool
}

// release drops one handle reference. If no handle is left, the releasing
// goroutine competes through freeing to become the single remover, then
// re-checks the count under the table lock because a concurrent Get may
// have revived the cell in between.
func (c *cell[T]) release() {
	if c.refs.Add(-1) != tableRefs {
		return
	}

	// A remover that backs off clears freeing after re-checking the count.
	// A handle released during that window fails the election, so the loop
	// takes another look once the flag is clear.
	for c.refs.Load() == tableRefs && c.freeing.CompareAndSwap(false, true) {
		removed := withTable(c.pool, func(t *table[T]) bool {
			return t.reclaim(c)
		})
		if removed {
			emit(c.pool.observer(), EventRelease, c.index)
			return
		}
		emit(c.pool.observer(), EventReacquire, c.index)
	}
}

// Handle is a reference to a canonical value in a pool. Every Handle owns
// one reference: Clone creates another and Release gives it back. When the
// last reference to a value is released the value leaves its pool.
//
// Handles that become unreachable without being released are released by
// the garbage collector, unless the pool was built with WithManualRelease.
// A Handle must not be used after Release.
//
// Handle.Hash and Handle.Key identify the slot, not the content. They are
// consistent with Equal only for handles from the same pool.
type Handle[T any] struct {
	c        *cell[T]
	released atomic.Bool
	cleanup  runtime.Cleanup
}

func newHandle[T any](c *cell[T]) *Handle[T] {
	h := &Handle[T]{c: c}
	if !c.manualRelease {
		h.cleanup = runtime.AddCleanup(h, (*cell[T]).release, c)
	}
	return h
}

// Value returns the canonical value. Slices and other reference types must
// not be modified through the returned value.
func (h *Handle[T]) Value() T {
	return h.c.value
}

// Index returns the value's slot index in its pool. Indexes are reused
// after a value is released.
func (h *Handle[T]) Index() int {
	return h.c.index
}

// Clone returns a new Handle to the same value. It never locks the pool.
func (h *Handle[T]) Clone() *Handle[T] {
	if h.released.Load() {
		panic("interner: Clone called on a released handle")
	}
	h.c.refs.Add(1)
	return newHandle(h.c)
}

// Release gives the handle's reference back to the pool. Releasing a nil or
// already released handle does nothing.
func (h *Handle[T]) Release() {
	if h == nil || !h.released.CompareAndSwap(false, true) {
		return
	}
	if !h.c.manualRelease {
		h.cleanup.Stop()
	}
	h.c.release()
}

// PtrEq reports whether a and b refer to the same value in the same pool.
// It never compares content.
func PtrEq[T any](a, b *Handle[T]) bool {
	return a.c.pool == b.c.pool && a.c.index == b.c.index
}

// Equal reports whether h and other hold equal values. Handles from the same
// pool are compared by slot index; handles from different pools fall back
// to comparing content.
func (h *Handle[T]) Equal(other *Handle[T]) bool {
	if h.c.pool == other.c.pool {
		return h.c.index == other.c.index
	}
	return h.domain().Equal(h.c.value, other.c.value)
}

// Compare orders handles by content. Handles to the same value compare
// equal without looking at the content.
func (h *Handle[T]) Compare(other *Handle[T]) int {
	if PtrEq(h, other) {
		return 0
	}
	return h.domain().Compare(h.c.value, other.c.value)
}

// Hash returns a hash of the slot index.
func (h *Handle[T]) Hash() uint64 {
	return uint64(h.c.index)
}

// Key identifies a resident value by pool and slot index. It is comparable
// and can be used as a map key for as long as a handle to the value is held.
type Key[T any] struct {
	pool  tableAccess[T]
	index int
}

// Key returns the handle's identity key.
func (h *Handle[T]) Key() Key[T] {
	return Key[T]{pool: h.c.pool, index: h.c.index}
}

func (h *Handle[T]) domain() Domain[T] {
	return h.c.pool.valueDomain()
}

// String implements fmt.Stringer.
func (h *Handle[T]) String() string {
	return fmt.Sprint(h.c.value)
}

// GoString implements fmt.GoStringer.
func (h *Handle[T]) GoString() string {
	return fmt.Sprintf("Handle{value: %#v, index: %d, pool: %p}", h.c.value, h.c.index, h.c.pool)
}
