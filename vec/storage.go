package vec

// storage owns the slot array and the live-element count of a vector.
// Slots [0, size) hold live elements; slots [size, cap) are spare. Callers
// bump or lower size immediately after constructAt / before destroyAt, so
// the live range never contains a hole.
//
// A zero-capacity storage has a nil slot array and every primitive on it
// is a no-op; no special casing is needed elsewhere.
type storage[T any] struct {
	slots []T
	size  int
	ops   elemOps[T]
}

func newStorage[T any](capacity int, ops elemOps[T]) storage[T] {
	s := storage[T]{ops: ops}
	if capacity > 0 {
		s.slots = make([]T, capacity)
	}
	return s
}

func (s *storage[T]) capacity() int { return len(s.slots) }

// data returns the live prefix. Nil for a zero-capacity storage.
func (s *storage[T]) data() []T {
	if s.slots == nil {
		return nil
	}
	return s.slots[:s.size]
}

// constructAt places a value into slot i. The caller advances size
// immediately afterwards.
func (s *storage[T]) constructAt(i int, v T) {
	s.slots[i] = v
}

// destroyAt tears down the live element in slot i.
func (s *storage[T]) destroyAt(i int) {
	s.ops.doDispose(&s.slots[i])
}

// destroyRange tears down the live elements in [first, last).
func (s *storage[T]) destroyRange(first, last int) {
	for i := first; i < last; i++ {
		s.ops.doDispose(&s.slots[i])
	}
}

func (s *storage[T]) clear() {
	s.destroyRange(0, s.size)
	s.size = 0
}

// guard runs fn and, if it fails, destroys every element constructed so far
// before handing the error back. The live-range invariant holds across the
// failure: the storage is simply empty afterwards.
func (s *storage[T]) guard(fn func() error) error {
	if err := fn(); err != nil {
		s.clear()
		return err
	}
	return nil
}

// moveOut relocates the value out of slot i, leaving the slot in its
// disposed state.
func (s *storage[T]) moveOut(i int) (T, error) {
	return s.ops.doMove(&s.slots[i])
}

// moveAssign replaces the live element in slot dst with the one relocated
// out of slot src. On failure dst keeps its previous value.
func (s *storage[T]) moveAssign(dst, src int) error {
	v, err := s.ops.doMove(&s.slots[src])
	if err != nil {
		return err
	}
	s.ops.doDispose(&s.slots[dst])
	s.slots[dst] = v
	return nil
}

// copyFrom makes s an element-wise copy of other: surplus elements are
// destroyed, the common prefix is overwritten, the remainder is
// clone-constructed. Runs under the guard, so a clone failure empties s.
// The caller has already verified other.size fits s's capacity.
func (s *storage[T]) copyFrom(other *storage[T]) error {
	if s.ops.moveOnly {
		return ErrNotCopyable
	}
	return s.guard(func() error {
		if s.size > other.size {
			s.destroyRange(other.size, s.size)
			s.size = other.size
		}
		for i := 0; i < s.size; i++ {
			v, err := s.ops.doClone(other.slots[i])
			if err != nil {
				return err
			}
			s.ops.doDispose(&s.slots[i])
			s.slots[i] = v
		}
		for s.size < other.size {
			v, err := s.ops.doClone(other.slots[s.size])
			if err != nil {
				return err
			}
			s.constructAt(s.size, v)
			s.size++
		}
		return nil
	})
}

// moveFrom transfers other's elements into s one by one and empties other
// on success. There is no bulk pointer handoff: the slot arrays are fixed,
// so every element relocates individually. Runs under the guard.
func (s *storage[T]) moveFrom(other *storage[T]) error {
	return s.guard(func() error {
		if s.size > other.size {
			s.destroyRange(other.size, s.size)
			s.size = other.size
		}
		for i := 0; i < s.size; i++ {
			v, err := other.moveOut(i)
			if err != nil {
				return err
			}
			s.ops.doDispose(&s.slots[i])
			s.slots[i] = v
		}
		for s.size < other.size {
			v, err := other.moveOut(s.size)
			if err != nil {
				return err
			}
			s.constructAt(s.size, v)
			s.size++
		}
		other.size = 0
		return nil
	})
}
