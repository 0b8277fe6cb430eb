package interner

import "sync"

// Shared is an explicitly constructed pool with its own storage. Handles
// from different Shared pools never compare identical, even for equal
// content. A Shared pool must not be copied after first use.
type Shared[T any, D Domain[T]] struct {
	mu  sync.Mutex
	tab *table[T]
	obs Observer
}

// StringPool is a Shared pool of strings.
type StringPool = Shared[string, StringDomain]

// PathPool is a Shared pool of filesystem paths.
type PathPool = Shared[Path, PathDomain]

// BufferPool is a Shared pool of byte buffers.
type BufferPool = Shared[[]byte, BufferDomain]

// NewShared returns an empty pool. Its storage, including the hasher, is
// built immediately.
func NewShared[T any, D Domain[T]](opts ...Option) *Shared[T, D] {
	cfg := newConfig(opts)
	var domain D
	return &Shared[T, D]{
		tab: newTable[T](domain, &cfg),
		obs: cfg.observer,
	}
}

// NewStringPool returns an empty StringPool.
func NewStringPool(opts ...Option) *StringPool {
	return NewShared[string, StringDomain](opts...)
}

// NewPathPool returns an empty PathPool.
func NewPathPool(opts ...Option) *PathPool {
	return NewShared[Path, PathDomain](opts...)
}

// NewBufferPool returns an empty BufferPool.
func NewBufferPool(opts ...Option) *BufferPool {
	return NewShared[[]byte, BufferDomain](opts...)
}

// Get returns a handle to the canonical copy of v. See Pool.Get.
func (s *Shared[T, D]) Get(v T) *Handle[T] {
	return get[T](s, v)
}

// Pooled returns a new handle to every resident value.
func (s *Shared[T, D]) Pooled() []*Handle[T] {
	return pooled[T](s)
}

// Len returns the number of resident values.
func (s *Shared[T, D]) Len() int {
	return length[T](s)
}

// Static returns an accessor that resolves v in s on first use.
func (s *Shared[T, D]) Static(v T) *Static[T] {
	return NewStatic[T](s, v)
}

// StaticFunc returns an accessor that resolves fn() in s on first use.
func (s *Shared[T, D]) StaticFunc(fn func() T) *Static[T] {
	return NewStaticFunc[T](s, fn)
}

func (s *Shared[T, D]) lockTable() *table[T] {
	s.mu.Lock()
	return s.tab
}

func (s *Shared[T, D]) unlockTable() { s.mu.Unlock() }

func (s *Shared[T, D]) observer() Observer { return s.obs }

func (s *Shared[T, D]) valueDomain() Domain[T] {
	var domain D
	return domain
}
