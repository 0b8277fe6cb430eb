package interner

// Pool is implemented by Shared and Global pools.
type Pool[T any] interface {
	// Get returns a handle to the canonical copy of v, inserting a copy of
	// v if no equal value is resident. While any handle to a value is alive,
	// Get returns handles to that same value.
	Get(v T) *Handle[T]
	// Pooled returns a new handle to every resident value.
	Pooled() []*Handle[T]
	// Len returns the number of resident values.
	Len() int
}

type getResult[T any] struct {
	c   *cell[T]
	hit bool
}

func get[T any](a tableAccess[T], v T) *Handle[T] {
	r := withTable(a, func(t *table[T]) getResult[T] {
		c, hit := t.get(v, a)
		return getResult[T]{c: c, hit: hit}
	})

	event := EventMiss
	if r.hit {
		event = EventHit
	}
	emit(a.observer(), event, r.c.index)

	return newHandle(r.c)
}

func pooled[T any](a tableAccess[T]) []*Handle[T] {
	cells := withTable(a, func(t *table[T]) []*cell[T] {
		return t.snapshot()
	})

	handles := make([]*Handle[T], len(cells))
	for i, c := range cells {
		handles[i] = newHandle(c)
	}
	return handles
}

func length[T any](a tableAccess[T]) int {
	return withTable(a, func(t *table[T]) int {
		return t.len()
	})
}
