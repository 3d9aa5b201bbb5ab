package vec_test

import (
	"testing"

	"github.com/plus3/inplace/vec"
)

func BenchmarkPush(b *testing.B) {
	v := vec.New[int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Len() == v.Cap() {
			v.Clear()
		}
		_ = v.Push(i)
	}
}

func BenchmarkPushPop(b *testing.B) {
	v := vec.New[int](16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Push(i)
		_, _ = v.PopBack()
	}
}

func BenchmarkInsertFront(b *testing.B) {
	v := vec.New[int](256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Len() == v.Cap() {
			v.Clear()
		}
		_, _ = v.Insert(0, i)
	}
}

func BenchmarkEraseFront(b *testing.B) {
	v := vec.New[int](256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Empty() {
			b.StopTimer()
			for v.Len() < v.Cap() {
				_ = v.Push(i)
			}
			b.StartTimer()
		}
		_, _ = v.EraseAt(0)
	}
}

func BenchmarkGet(b *testing.B) {
	v := vec.New[int](1024)
	for i := 0; i < v.Cap(); i++ {
		_ = v.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Get(i & 1023)
	}
}

func BenchmarkValues(b *testing.B) {
	v := vec.New[int](1024)
	for i := 0; i < v.Cap(); i++ {
		_ = v.Push(i)
	}

	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for x := range v.Values() {
			sum += x
		}
	}
	_ = sum
}
