package interner_test

import (
	"fmt"
	"sync"
	"testing"

	interner "github.com/probablyarth/interner-go"
)

// ---------------------------------------------------------------------------
// Single-goroutine benchmarks: measure per-call latency.
// ---------------------------------------------------------------------------

// How fast is a hit (lock + hash + compare)?
func BenchmarkGetHit(b *testing.B) {
	pool := interner.NewStringPool(interner.WithManualRelease())
	held := pool.Get("v")
	defer held.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Get("v").Release()
	}
}

// Insert and remove on every iteration: the miss and last-release paths.
func BenchmarkGetMissRelease(b *testing.B) {
	pool := interner.NewStringPool(interner.WithManualRelease())

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pool.Get("v").Release()
	}
}

// Cost of the garbage-collector backstop on the hit path.
func BenchmarkGetHitAutoRelease(b *testing.B) {
	pool := interner.NewStringPool()
	held := pool.Get("v")
	defer held.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Get("v").Release()
	}
}

// Clone and release never touch the table while another handle is alive.
func BenchmarkCloneRelease(b *testing.B) {
	pool := interner.NewStringPool(interner.WithManualRelease())
	held := pool.Get("v")
	defer held.Release()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		held.Clone().Release()
	}
}

func BenchmarkPtrEq(b *testing.B) {
	pool := interner.NewStringPool(interner.WithManualRelease())
	x := pool.Get("a fairly long value that would be slow to compare by content")
	y := pool.Get("a fairly long value that would be slow to compare by content")
	defer x.Release()
	defer y.Release()

	for i := 0; i < b.N; i++ {
		if !interner.PtrEq(x, y) {
			b.Fatal("handles differ")
		}
	}
}

func BenchmarkStaticGet(b *testing.B) {
	pool := interner.NewStringPool(interner.WithManualRelease())
	static := pool.Static("v")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		static.Get().Release()
	}
}

// ---------------------------------------------------------------------------
// Concurrent benchmarks: measure throughput under contention.
// ---------------------------------------------------------------------------

// 1000 goroutines all requesting and releasing the same value.
func BenchmarkConcurrent_SameValue(b *testing.B) {
	pool := interner.NewStringPool(interner.WithManualRelease())

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var wg sync.WaitGroup
		wg.Add(1000)
		for j := 0; j < 1000; j++ {
			go func() {
				defer wg.Done()
				pool.Get("v").Release()
			}()
		}
		wg.Wait()
	}
}

// 1000 goroutines sharing 100 values. Mix of hits, inserts and removals.
func BenchmarkConcurrent_MixedValues(b *testing.B) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i)
	}
	pool := interner.NewStringPool(interner.WithManualRelease())

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var wg sync.WaitGroup
		wg.Add(1000)
		for j := 0; j < 1000; j++ {
			go func(j int) {
				defer wg.Done()
				pool.Get(ids[j%100]).Release()
			}(j)
		}
		wg.Wait()
	}
}

// b.RunParallel: clone/release under true parallel contention.
func BenchmarkParallel_CloneRelease(b *testing.B) {
	pool := interner.NewStringPool(interner.WithManualRelease())
	held := pool.Get("v")
	defer held.Release()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			held.Clone().Release()
		}
	})
}
