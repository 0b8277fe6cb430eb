// Package interner provides concurrent value interning with reference-counted
// handles.
//
// A pool keeps exactly one canonical copy of every distinct value that is
// currently referenced. Callers asking for equal content receive handles to
// the same allocation, so identity checks are a pointer comparison instead of
// a content comparison:
//
//	pool := interner.NewStringPool()
//
//	a := pool.Get("hello")
//	b := pool.Get("hello")
//	interner.PtrEq(a, b) // true
//
// Handles are cloned with [Handle.Clone] and given back with
// [Handle.Release]. When the last handle for a value is released the value
// is removed from its pool. Cloning and releasing never take a lock unless
// the released handle was the last one.
//
// Two kinds of pools exist. A [Shared] pool is created explicitly and owns
// its storage. A [Global] pool is meant to be declared as a package-level
// variable; its storage is built lazily on first use:
//
//	var names interner.GlobalStrings
//
//	h := names.Get("alice")
//	defer h.Release()
//
// A [Static] binds a pool to a literal value or a factory and resolves it
// into a handle once, on first access.
//
// The built-in domains cover strings ([StringDomain]), filesystem paths
// ([PathDomain]) and byte buffers ([BufferDomain]). Other value types can
// be pooled by implementing [Domain].
//
// If code panics while a pool's table is locked (for example a panicking
// [Hasher]), the pool is poisoned and every later operation on it panics
// with [ErrPoisoned].
package interner
