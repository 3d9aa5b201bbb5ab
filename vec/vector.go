package vec

import (
	"fmt"
	"iter"
)

// Vector is a contiguous sequence with a capacity fixed at construction.
// See the package documentation for the ownership and failure model.
type Vector[T any] struct {
	store   storage[T]
	checked bool
}

// New creates an empty vector with the given capacity. Capacity zero is
// valid and yields a degenerate vector whose Data is nil and whose every
// growing operation fails with ErrCapacity.
func New[T any](capacity int, opts ...Option[T]) *Vector[T] {
	if capacity < 0 {
		panic("vec: negative capacity")
	}
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Vector[T]{
		store:   newStorage[T](capacity, cfg.ops),
		checked: cfg.checkedCursors,
	}
}

// NewSize creates a vector holding count zero-value elements.
func NewSize[T any](capacity, count int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](capacity, opts...)
	if err := v.Resize(count); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFilled creates a vector holding count clones of value.
func NewFilled[T any](capacity, count int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](capacity, opts...)
	if err := v.capacityCheck(count); err != nil {
		return nil, err
	}
	err := v.store.guard(func() error {
		for i := 0; i < count; i++ {
			c, err := v.store.ops.doClone(value)
			if err != nil {
				return err
			}
			v.store.constructAt(v.store.size, c)
			v.store.size++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// NewFromSlice creates a vector holding a clone of every element of src.
// src keeps ownership of its elements.
func NewFromSlice[T any](capacity int, src []T, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](capacity, opts...)
	if v.store.ops.moveOnly {
		return nil, ErrNotCopyable
	}
	if err := v.capacityCheck(len(src)); err != nil {
		return nil, err
	}
	err := v.store.guard(func() error {
		for _, value := range src {
			c, err := v.store.ops.doClone(value)
			if err != nil {
				return err
			}
			v.store.constructAt(v.store.size, c)
			v.store.size++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// NewFromSeq creates a vector from a single-pass sequence, taking ownership
// of every yielded value. The source's length is unknowable in advance, so
// capacity is checked per element; on overflow the elements constructed so
// far are destroyed and ErrCapacity is returned.
func NewFromSeq[T any](capacity int, seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v := New[T](capacity, opts...)
	err := v.store.guard(func() error {
		for value := range seq {
			if v.store.size == v.store.capacity() {
				v.store.ops.doDispose(&value) // ownership of the rejected value is ours
				return fmt.Errorf("%w: source longer than capacity %d", ErrCapacity, capacity)
			}
			v.store.constructAt(v.store.size, value)
			v.store.size++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Of creates a vector taking ownership of the given values.
func Of[T any](capacity int, values ...T) (*Vector[T], error) {
	v := New[T](capacity)
	if err := v.Append(values...); err != nil {
		return nil, err
	}
	return v, nil
}

// Clone returns a new vector with the same capacity, hooks and a clone of
// every element. A clone failure partway destroys the elements already
// cloned and returns the failure.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v.store.ops.moveOnly {
		return nil, ErrNotCopyable
	}
	out := &Vector[T]{
		store:   newStorage[T](v.store.capacity(), v.store.ops),
		checked: v.checked,
	}
	if err := out.store.copyFrom(&v.store); err != nil {
		return nil, err
	}
	return out, nil
}

// CopyFrom makes v an element-wise copy of other. On a clone failure v is
// left empty.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if err := v.capacityCheck(other.store.size); err != nil {
		return err
	}
	return v.store.copyFrom(&other.store)
}

// MoveFrom transfers other's elements into v, emptying other on success.
// Elements relocate one at a time; there is no storage handoff.
func (v *Vector[T]) MoveFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if err := v.capacityCheck(other.store.size); err != nil {
		return err
	}
	return v.store.moveFrom(&other.store)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.store.size }

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int { return v.store.capacity() }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.store.size == 0 }

// Data returns the live elements as a slice sharing the vector's backing
// array. It is nil for a zero-capacity vector. The slice is invalidated by
// any mutation; writing through it bypasses the element hooks.
func (v *Vector[T]) Data() []T { return v.store.data() }

// Get returns the element at index i without a range check; it panics if i
// is outside the live range.
func (v *Vector[T]) Get(i int) T { return v.store.data()[i] }

// Set replaces the element at index i without a range check, disposing the
// previous value. The vector takes ownership of value.
func (v *Vector[T]) Set(i int, value T) {
	d := v.store.data()
	v.store.ops.doDispose(&d[i])
	d[i] = value
}

// At returns the element at index i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.store.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.store.size)
	}
	return v.store.slots[i], nil
}

// Front returns the first element; it panics if the vector is empty.
func (v *Vector[T]) Front() T { return v.store.data()[0] }

// Back returns the last element; it panics if the vector is empty.
func (v *Vector[T]) Back() T { return v.store.data()[v.store.size-1] }

// All returns an index/value iterator over the live elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.store.size; i++ {
			if !yield(i, v.store.slots[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.store.size; i++ {
			if !yield(v.store.slots[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) cursorAt(pos int) Cursor[T] {
	return Cursor[T]{vec: v, pos: pos, limit: v.store.size, checked: v.checked}
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() Cursor[T] { return v.cursorAt(0) }

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] { return v.cursorAt(v.store.size) }

// ReadBegin returns a read-only cursor at the first element.
func (v *Vector[T]) ReadBegin() ReadCursor[T] { return v.Begin().Read() }

// ReadEnd returns a read-only cursor one past the last element.
func (v *Vector[T]) ReadEnd() ReadCursor[T] { return v.End().Read() }

func (v *Vector[T]) capacityCheck(need int) error {
	if need > v.store.capacity() {
		return fmt.Errorf("%w: need %d slots, capacity %d", ErrCapacity, need, v.store.capacity())
	}
	return nil
}

// posCheck validates an insertion point, which may be one past the end.
func (v *Vector[T]) posCheck(i int) error {
	if i < 0 || i > v.store.size {
		return fmt.Errorf("%w: position %d, len %d", ErrOutOfRange, i, v.store.size)
	}
	return nil
}

// Push appends value, taking ownership of it.
func (v *Vector[T]) Push(value T) error {
	if err := v.capacityCheck(v.store.size + 1); err != nil {
		return err
	}
	v.store.constructAt(v.store.size, value)
	v.store.size++
	return nil
}

// EmplaceBack appends the element produced by construct and returns a
// pointer to it. A construct failure leaves the vector unchanged.
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	if err := v.capacityCheck(v.store.size + 1); err != nil {
		return nil, err
	}
	value, err := construct()
	if err != nil {
		return nil, err
	}
	v.store.constructAt(v.store.size, value)
	v.store.size++
	return &v.store.slots[v.store.size-1], nil
}

// PopBack removes and returns the last element, or ErrOutOfRange on an
// empty vector.
func (v *Vector[T]) PopBack() (T, error) {
	if v.store.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pop on empty vector", ErrOutOfRange)
	}
	value, err := v.store.moveOut(v.store.size - 1)
	if err != nil {
		var zero T
		return zero, err
	}
	v.store.size--
	return value, nil
}

// Clear destroys all elements. It never fails.
func (v *Vector[T]) Clear() { v.store.clear() }

// Insert inserts value at position i, shifting later elements up. The
// vector takes ownership of value. Returns a cursor at the inserted
// element.
func (v *Vector[T]) Insert(i int, value T) (Cursor[T], error) {
	return v.Emplace(i, func() (T, error) { return value, nil })
}

// Emplace inserts the element produced by construct at position i. Later
// elements are parked in spare capacity while construct runs; if it fails
// they are destroyed and the error is returned.
func (v *Vector[T]) Emplace(i int, construct func() (T, error)) (Cursor[T], error) {
	if err := v.posCheck(i); err != nil {
		return Cursor[T]{}, err
	}
	if err := v.capacityCheck(v.store.size + 1); err != nil {
		return Cursor[T]{}, err
	}
	a, err := openAttic(&v.store, i, v.store.size+1)
	if err != nil {
		return Cursor[T]{}, err
	}
	defer a.drop()
	value, err := construct()
	if err != nil {
		return Cursor[T]{}, err
	}
	v.store.constructAt(v.store.size, value)
	v.store.size++
	if err := a.retrieve(); err != nil {
		return Cursor[T]{}, err
	}
	return v.cursorAt(i), nil
}

// InsertN inserts count clones of value at position i.
func (v *Vector[T]) InsertN(i, count int, value T) (Cursor[T], error) {
	if v.store.ops.moveOnly {
		return Cursor[T]{}, ErrNotCopyable
	}
	if count < 0 {
		return Cursor[T]{}, fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}
	if err := v.posCheck(i); err != nil {
		return Cursor[T]{}, err
	}
	if err := v.capacityCheck(v.store.size + count); err != nil {
		return Cursor[T]{}, err
	}
	a, err := openAttic(&v.store, i, v.store.size+count)
	if err != nil {
		return Cursor[T]{}, err
	}
	defer a.drop()
	for n := 0; n < count; n++ {
		c, err := v.store.ops.doClone(value)
		if err != nil {
			return Cursor[T]{}, err
		}
		v.store.constructAt(v.store.size, c)
		v.store.size++
	}
	if err := a.retrieve(); err != nil {
		return Cursor[T]{}, err
	}
	return v.cursorAt(i), nil
}

// InsertSlice inserts a clone of every element of src at position i. src
// keeps ownership of its elements.
func (v *Vector[T]) InsertSlice(i int, src []T) (Cursor[T], error) {
	if v.store.ops.moveOnly {
		return Cursor[T]{}, ErrNotCopyable
	}
	if err := v.posCheck(i); err != nil {
		return Cursor[T]{}, err
	}
	if err := v.capacityCheck(v.store.size + len(src)); err != nil {
		return Cursor[T]{}, err
	}
	a, err := openAttic(&v.store, i, v.store.size+len(src))
	if err != nil {
		return Cursor[T]{}, err
	}
	defer a.drop()
	for _, value := range src {
		c, err := v.store.ops.doClone(value)
		if err != nil {
			return Cursor[T]{}, err
		}
		v.store.constructAt(v.store.size, c)
		v.store.size++
	}
	if err := a.retrieve(); err != nil {
		return Cursor[T]{}, err
	}
	return v.cursorAt(i), nil
}

// InsertSeq inserts every value of a single-pass sequence at position i,
// taking ownership of the yielded values. The sequence's length is unknown
// in advance, so displaced elements are parked at the very top of the
// capacity and each incoming element is capacity-checked as it arrives. On
// overflow the operation stops with ErrCapacity: values appended before the
// failure remain (a partial but count-consistent result) and the parked
// elements are destroyed.
func (v *Vector[T]) InsertSeq(i int, seq iter.Seq[T]) (Cursor[T], error) {
	if err := v.posCheck(i); err != nil {
		return Cursor[T]{}, err
	}
	a, err := openAttic(&v.store, i, v.store.capacity())
	if err != nil {
		return Cursor[T]{}, err
	}
	defer a.drop()
	for value := range seq {
		if err := a.capacityCheck(v.store.size); err != nil {
			v.store.ops.doDispose(&value) // ownership of the rejected value is ours
			return Cursor[T]{}, err
		}
		v.store.constructAt(v.store.size, value)
		v.store.size++
	}
	if err := a.retrieve(); err != nil {
		return Cursor[T]{}, err
	}
	return v.cursorAt(i), nil
}

// Erase removes the elements in [first, last), shifting the surviving tail
// left by element-wise move assignment and destroying the vacated slots.
// Erase always shrinks, so it never needs the attic. Returns a cursor at
// the element that followed the erased range.
func (v *Vector[T]) Erase(first, last int) (Cursor[T], error) {
	if first < 0 || last < first || last > v.store.size {
		return Cursor[T]{}, fmt.Errorf("%w: erase range [%d, %d), len %d", ErrOutOfRange, first, last, v.store.size)
	}
	if first == last {
		return v.cursorAt(first), nil
	}
	n := last - first
	for src := last; src < v.store.size; src++ {
		if err := v.store.moveAssign(src-n, src); err != nil {
			return Cursor[T]{}, err
		}
	}
	v.store.destroyRange(v.store.size-n, v.store.size)
	v.store.size -= n
	return v.cursorAt(first), nil
}

// EraseAt removes the element at index i.
func (v *Vector[T]) EraseAt(i int) (Cursor[T], error) {
	return v.Erase(i, i+1)
}

// Resize grows the vector with zero-value elements or shrinks it by
// destroying the tail.
func (v *Vector[T]) Resize(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative size %d", ErrOutOfRange, count)
	}
	if err := v.capacityCheck(count); err != nil {
		return err
	}
	if v.store.size > count {
		v.store.destroyRange(count, v.store.size)
		v.store.size = count
	}
	for v.store.size < count {
		var zero T
		v.store.constructAt(v.store.size, zero)
		v.store.size++
	}
	return nil
}

// ResizeFilled grows the vector with clones of value or shrinks it by
// destroying the tail.
func (v *Vector[T]) ResizeFilled(count int, value T) error {
	if count < 0 {
		return fmt.Errorf("%w: negative size %d", ErrOutOfRange, count)
	}
	if v.store.size < count && v.store.ops.moveOnly {
		return ErrNotCopyable
	}
	if err := v.capacityCheck(count); err != nil {
		return err
	}
	if v.store.size > count {
		v.store.destroyRange(count, v.store.size)
		v.store.size = count
	}
	for v.store.size < count {
		c, err := v.store.ops.doClone(value)
		if err != nil {
			return err
		}
		v.store.constructAt(v.store.size, c)
		v.store.size++
	}
	return nil
}

// Assign appends count clones of value. Note that assign grows the current
// contents rather than replacing them; callers wanting replacement call
// Clear first.
func (v *Vector[T]) Assign(count int, value T) error {
	return v.ResizeFilled(v.store.size+count, value)
}

// AssignSlice appends a clone of every element of src, checking capacity
// per element.
func (v *Vector[T]) AssignSlice(src []T) error {
	if v.store.ops.moveOnly {
		return ErrNotCopyable
	}
	for _, value := range src {
		c, err := v.store.ops.doClone(value)
		if err != nil {
			return err
		}
		if err := v.Push(c); err != nil {
			v.store.ops.doDispose(&c) // dispose the orphaned clone
			return err
		}
	}
	return nil
}

// AssignSeq appends every value of the sequence, taking ownership. On
// overflow the rejected value is disposed and the values appended before
// the failure remain.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	for value := range seq {
		if err := v.Push(value); err != nil {
			v.store.ops.doDispose(&value)
			return err
		}
	}
	return nil
}

// Append appends the given values, taking ownership. The capacity check
// happens up front; on failure nothing is appended.
func (v *Vector[T]) Append(values ...T) error {
	if err := v.capacityCheck(v.store.size + len(values)); err != nil {
		return err
	}
	for _, value := range values {
		v.store.constructAt(v.store.size, value)
		v.store.size++
	}
	return nil
}

// AppendSeq appends every value of a single-pass sequence, taking
// ownership and checking capacity per element. On overflow the values
// appended before the failure remain.
func (v *Vector[T]) AppendSeq(seq iter.Seq[T]) error {
	return v.AssignSeq(seq)
}

// Reserve verifies that n elements fit the fixed capacity. It never
// allocates; it exists so callers can fail fast before a bulk operation.
func (v *Vector[T]) Reserve(n int) error { return v.capacityCheck(n) }

// ShrinkToFit is a no-op: storage is inline and cannot shrink.
func (v *Vector[T]) ShrinkToFit() {}

// Swap exchanges the contents of v and other. Elements over the common
// prefix are swapped pairwise; the longer side's surplus is moved into the
// shorter side and erased from its source, since no hidden buffer exists
// for a true three-way rotation. Both vectors must have capacity for the
// other's length.
//
// Swap is only weakly exception-safe: if a relocation fails partway the
// prefix already processed stays exchanged and surplus elements moved so
// far stay with the receiving side. Both vectors remain valid.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if v == other {
		return nil
	}
	short, long := v, other
	if short.store.size > long.store.size {
		short, long = long, short
	}
	if err := short.capacityCheck(long.store.size); err != nil {
		return err
	}
	n := short.store.size
	for i := 0; i < n; i++ {
		x, err := short.store.moveOut(i)
		if err != nil {
			return err
		}
		y, err := long.store.moveOut(i)
		if err != nil {
			short.store.constructAt(i, x) // put the in-flight element back
			return err
		}
		short.store.constructAt(i, y)
		long.store.constructAt(i, x)
	}
	surplus := long.store.size
	for i := n; i < surplus; i++ {
		x, err := long.store.moveOut(i)
		if err != nil {
			return err // slots [n, i) of long stay hollow
		}
		short.store.constructAt(short.store.size, x)
		short.store.size++
	}
	long.store.size = n
	return nil
}
