package vec

import "cmp"

// Equal reports whether a and b hold the same elements in the same order.
// Capacity does not participate in equality.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, av := range a.All() {
		if av != b.store.slots[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, av := range a.All() {
		if !eq(av, b.store.slots[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically, element by element; a shorter
// prefix orders first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], compare func(T, U) int) int {
	for i, av := range a.All() {
		if i >= b.Len() {
			return 1
		}
		if c := compare(av, b.store.slots[i]); c != 0 {
			return c
		}
	}
	if a.Len() < b.Len() {
		return -1
	}
	return 0
}
