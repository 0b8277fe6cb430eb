package interner

import (
	"fmt"
	"sync"
)

// Global is a pool meant to be declared as a package-level variable. Its
// storage is built on first use, under the pool's lock, so declaring one
// costs nothing and has no initialization-order hazards. The zero value is
// ready to use with default options:
//
//	var names interner.GlobalStrings
//
// Use NewGlobal to declare a pool with options. A Global must not be copied.
type Global[T any, D Domain[T]] struct {
	mu  sync.Mutex
	cfg config
	// tab is nil until first use.
	tab        *table[T]
	initFailed bool
}

// GlobalStrings is a Global pool of strings.
type GlobalStrings = Global[string, StringDomain]

// GlobalPaths is a Global pool of filesystem paths.
type GlobalPaths = Global[Path, PathDomain]

// GlobalBuffers is a Global pool of byte buffers.
type GlobalBuffers = Global[[]byte, BufferDomain]

// NewGlobal declares a Global pool. Nothing is allocated for the pool's
// storage, and a hasher factory given with WithHasherFactory is not called,
// until the first operation on the pool.
func NewGlobal[T any, D Domain[T]](opts ...Option) *Global[T, D] {
	return &Global[T, D]{cfg: newConfig(opts)}
}

// Get returns a handle to the canonical copy of v. See Pool.Get.
func (g *Global[T, D]) Get(v T) *Handle[T] {
	return get[T](g, v)
}

// Pooled returns a new handle to every resident value.
func (g *Global[T, D]) Pooled() []*Handle[T] {
	return pooled[T](g)
}

// Len returns the number of resident values.
func (g *Global[T, D]) Len() int {
	return length[T](g)
}

// Static returns an accessor that resolves v in g on first use.
func (g *Global[T, D]) Static(v T) *Static[T] {
	return NewStatic[T](g, v)
}

// StaticFunc returns an accessor that resolves fn() in g on first use.
func (g *Global[T, D]) StaticFunc(fn func() T) *Static[T] {
	return NewStaticFunc[T](g, fn)
}

func (g *Global[T, D]) lockTable() *table[T] {
	g.mu.Lock()
	if g.tab == nil {
		g.initLocked()
	}
	return g.tab
}

// initLocked builds the table. If building panics (a panicking hasher
// factory), the lock is released and the pool stays unusable.
func (g *Global[T, D]) initLocked() {
	if g.initFailed {
		g.mu.Unlock()
		panic(fmt.Errorf("interner: global pool failed to initialize: %w", ErrPoisoned))
	}

	done := false
	defer func() {
		if !done {
			g.initFailed = true
			g.mu.Unlock()
		}
	}()

	var domain D
	g.tab = newTable[T](domain, &g.cfg)
	g.tab.logger.Debug("global pool initialized", "capacity", g.cfg.capacity)
	done = true
}

func (g *Global[T, D]) unlockTable() { g.mu.Unlock() }

func (g *Global[T, D]) observer() Observer { return g.cfg.observer }

func (g *Global[T, D]) valueDomain() Domain[T] {
	var domain D
	return domain
}

var (
	defaultStrings GlobalStrings
	defaultPaths   GlobalPaths
	defaultBuffers GlobalBuffers
)

// String interns s in the process-wide string pool.
func String(s string) *Handle[string] {
	return defaultStrings.Get(s)
}

// PathOf interns p in the process-wide path pool.
func PathOf[P ~string](p P) *Handle[Path] {
	return defaultPaths.Get(Path(p))
}

// Buffer interns b in the process-wide buffer pool.
func Buffer(b []byte) *Handle[[]byte] {
	return defaultBuffers.Get(b)
}

// DefaultStrings returns the process-wide string pool used by String.
func DefaultStrings() *GlobalStrings { return &defaultStrings }

// DefaultPaths returns the process-wide path pool used by PathOf.
func DefaultPaths() *GlobalPaths { return &defaultPaths }

// DefaultBuffers returns the process-wide buffer pool used by Buffer.
func DefaultBuffers() *GlobalBuffers { return &defaultBuffers }
