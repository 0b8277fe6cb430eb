package interner

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cockroachdb/swiss"
)

// tableRefs is the number of references a table holds on each resident
// cell: one from the active set and one from the slot array. The release
// protocol treats a count of exactly tableRefs as "no handles left", so any
// change to the table's storage shape must update this constant.
const tableRefs = 2

// tableAccess is the capability handles use to reach their owning table.
// Two capabilities refer to the same table iff they are the same pointer.
type tableAccess[T any] interface {
	lockTable() *table[T]
	unlockTable()
	observer() Observer
	valueDomain() Domain[T]
}

// table is the canonical storage of one pool. All fields are guarded by the
// lock of the tableAccess that owns it.
//
// The active set hashes by content and is only used to find resident values.
// Handles hash by slot index instead (see Handle.Hash); the two must not be
// mixed.
type table[T any] struct {
	domain Domain[T]
	hasher Hasher
	// active maps a content hash to every resident cell with that hash.
	active *swiss.Map[uint64, []*cell[T]]
	// slots maps a slot index to its resident cell, nil when free.
	slots []*cell[T]
	free  []int

	logger        *slog.Logger
	manualRelease bool
	poisoned      bool
}

func newTable[T any](domain Domain[T], cfg *config) *table[T] {
	return &table[T]{
		domain:        domain,
		hasher:        cfg.resolveHasher(),
		active:        swiss.New[uint64, []*cell[T]](cfg.capacity),
		slots:         make([]*cell[T], 0, cfg.capacity),
		logger:        cfg.log(),
		manualRelease: cfg.manualRelease,
	}
}

// withTable runs fn with the table locked. A panic in fn poisons the table:
// the panic propagates and every later call panics with ErrPoisoned.
func withTable[T, R any](a tableAccess[T], fn func(t *table[T]) R) R {
	t := a.lockTable()
	defer a.unlockTable()

	if t.poisoned {
		panic(fmt.Errorf("interner: table locked after panic: %w", ErrPoisoned))
	}

	done := false
	defer func() {
		if !done {
			t.poisoned = true
			t.logger.Error("panic while pool table was locked, pool is poisoned")
		}
	}()

	r := fn(t)
	done = true
	return r
}

// get returns the resident cell equal to v with its count already raised
// for the caller, inserting an owned copy of v on a miss. hit reports
// whether v was already resident.
func (t *table[T]) get(v T, pool tableAccess[T]) (c *cell[T], hit bool) {
	h := t.domain.Hash(t.hasher, v)
	chain, _ := t.active.Get(h)
	for _, resident := range chain {
		if t.domain.Equal(resident.value, v) {
			resident.refs.Add(1)
			return resident, true
		}
	}

	index, reused := t.allocSlot()
	c = &cell[T]{
		value:         t.domain.Clone(v),
		index:         index,
		hash:          h,
		pool:          pool,
		manualRelease: t.manualRelease,
	}
	c.refs.Store(tableRefs + 1)

	t.active.Put(h, append(chain, c))
	t.slots[index] = c

	t.logger.Debug("value interned", "index", index, "reused_slot", reused)
	return c, false
}

func (t *table[T]) allocSlot() (index int, reused bool) {
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
		return index, true
	}
	t.slots = append(t.slots, nil)
	return len(t.slots) - 1, false
}

// reclaim finishes a release claimed by the caller through c.freeing. If a
// handle was obtained since the claim, it gives the claim up and leaves c
// resident. It reports whether c was removed.
func (t *table[T]) reclaim(c *cell[T]) bool {
	if c.refs.Load() > tableRefs {
		c.freeing.Store(false)
		return false
	}

	t.remove(c)
	c.refs.Add(-tableRefs)

	t.logger.Debug("value released", "index", c.index)
	return true
}

func (t *table[T]) remove(c *cell[T]) {
	chain, _ := t.active.Get(c.hash)
	if i := slices.Index(chain, c); i >= 0 {
		chain = slices.Delete(chain, i, i+1)
	}
	if len(chain) == 0 {
		t.active.Delete(c.hash)
	} else {
		t.active.Put(c.hash, chain)
	}

	t.slots[c.index] = nil
	t.free = append(t.free, c.index)
}

// snapshot returns every resident cell with its count raised for the caller.
func (t *table[T]) snapshot() []*cell[T] {
	cells := make([]*cell[T], 0, t.len())
	for _, c := range t.slots {
		if c != nil {
			c.refs.Add(1)
			cells = append(cells, c)
		}
	}
	return cells
}

func (t *table[T]) len() int {
	return len(t.slots) - len(t.free)
}

// checkInvariants reports the first inconsistency between the active set,
// the slot array and the free list.
func (t *table[T]) checkInvariants() error {
	free := make(map[int]bool, len(t.free))
	for _, i := range t.free {
		if i < 0 || i >= len(t.slots) {
			return fmt.Errorf("free index %d out of range", i)
		}
		if free[i] {
			return fmt.Errorf("free index %d listed twice", i)
		}
		if t.slots[i] != nil {
			return fmt.Errorf("free index %d has a resident cell", i)
		}
		free[i] = true
	}

	resident := 0
	hashes := make(map[uint64]bool)
	for i, c := range t.slots {
		if c == nil {
			if !free[i] {
				return fmt.Errorf("empty slot %d is not on the free list", i)
			}
			continue
		}
		resident++
		hashes[c.hash] = true
		if c.index != i {
			return fmt.Errorf("slot %d holds cell with index %d", i, c.index)
		}
		chain, _ := t.active.Get(c.hash)
		if !slices.Contains(chain, c) {
			return fmt.Errorf("slot %d is missing from the active set", i)
		}
		if n := c.refs.Load(); n < tableRefs {
			return fmt.Errorf("slot %d has %d references, want at least %d", i, n, tableRefs)
		}
	}

	if n := t.active.Len(); n != len(hashes) {
		return fmt.Errorf("active set has %d hashes, slot array has %d", n, len(hashes))
	}
	inActive := 0
	for h := range hashes {
		chain, _ := t.active.Get(h)
		inActive += len(chain)
	}
	if inActive != resident {
		return fmt.Errorf("active set holds %d cells, slot array holds %d", inActive, resident)
	}
	return nil
}
