package interner_test

import (
	"fmt"

	interner "github.com/probablyarth/interner-go"
)

func Example() {
	pool := interner.NewStringPool()

	a := pool.Get("a")
	again := pool.Get("a")
	fmt.Println(interner.PtrEq(a, again))

	// Once every handle is released the value leaves the pool.
	a.Release()
	again.Release()
	fmt.Println(len(pool.Pooled()))
	// Output:
	// true
	// 0
}

var stringPool interner.GlobalStrings

var staticA = stringPool.Static("a")

func ExampleStatic() {
	a := staticA.Get()
	aAgain := stringPool.Get("a")
	fmt.Println(interner.PtrEq(a, aAgain))

	// The static keeps "a" resident after the local handles are gone.
	aAgain.Release()
	a.Release()
	pooled := stringPool.Pooled()
	fmt.Println(len(pooled), pooled[0])
	pooled[0].Release()
	// Output:
	// true
	// 1 a
}

func ExamplePathPool() {
	pool := interner.NewPathPool()

	p := pool.Get("/var//log/./app/")
	defer p.Release()
	q := pool.Get("/var/log/app")
	defer q.Release()

	fmt.Println(interner.PtrEq(p, q), q)
	// Output:
	// true /var//log/./app/
}
