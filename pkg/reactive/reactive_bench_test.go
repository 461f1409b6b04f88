package reactive

import "testing"

// Benchmark tests for the reactive core.
// Propagation is synchronous, so Set benchmarks include the full fan-out.

func BenchmarkNodeGet(b *testing.B) {
	n := New(42)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = n.Get()
	}
}

func BenchmarkNodeSetNoSubscribers(b *testing.B) {
	n := New(0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n.Set(i)
	}
}

func BenchmarkNodeSetTenObservers(b *testing.B) {
	n := New(0)
	sink := 0
	for i := 0; i < 10; i++ {
		n.Observe(func(v int) { sink += v })
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n.Set(i)
	}
	_ = sink
}

func BenchmarkNodeUpdateInPlaceAppend(b *testing.B) {
	n := New(make([]int, 0, 1024))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n.UpdateInPlace(func(nums *[]int) {
			if len(*nums) == cap(*nums) {
				*nums = (*nums)[:0]
			}
			*nums = append(*nums, i)
		})
	}
}

func BenchmarkDeriveChainDepth10(b *testing.B) {
	root := New(0)
	tail := root
	for i := 0; i < 10; i++ {
		tail = Derive(tail, func(v int) int { return v + 1 })
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		root.Set(i)
	}
	_ = tail
}

func BenchmarkMergePropagation(b *testing.B) {
	x := New(0)
	y := New(0)
	m := Merge(x, y)
	sum := Derive(m, func(p Pair[int, int]) int { return p.First + p.Second })
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		x.Set(i)
	}
	_ = sum
}
