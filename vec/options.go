package vec

// elemOps bundles the per-element lifecycle hooks of a vector. The zero
// value gives plain value semantics: clone and move are assignments and
// dispose zeroes the slot.
type elemOps[T any] struct {
	clone    func(T) (T, error)
	move     func(*T) (T, error)
	dispose  func(*T)
	moveOnly bool
}

func (o *elemOps[T]) doClone(v T) (T, error) {
	if o.clone != nil {
		return o.clone(v)
	}
	return v, nil
}

// doMove relocates the value out of src. On success src is left in its
// disposed (hollow but valid) state.
func (o *elemOps[T]) doMove(src *T) (T, error) {
	if o.move != nil {
		return o.move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v, nil
}

func (o *elemOps[T]) doDispose(slot *T) {
	if o.dispose != nil {
		o.dispose(slot)
		return
	}
	var zero T
	*slot = zero // release referents to the GC
}

type config[T any] struct {
	ops            elemOps[T]
	checkedCursors bool
}

// Option configures a Vector at construction time.
type Option[T any] func(*config[T])

// WithClone installs a deep-copy hook, used by every copy-dependent
// operation (Clone, CopyFrom, InsertN, NewFilled, ResizeFilled, Assign).
// A clone failure aborts the surrounding operation.
func WithClone[T any](fn func(T) (T, error)) Option[T] {
	return func(c *config[T]) { c.ops.clone = fn }
}

// WithMove installs a relocation hook. It must either fail and leave src
// untouched, or succeed and leave src in a valid, disposed state. Disposing
// an already-disposed value must be a no-op.
func WithMove[T any](fn func(src *T) (T, error)) Option[T] {
	return func(c *config[T]) { c.ops.move = fn }
}

// WithDispose installs a teardown hook, run once for every element that
// leaves the vector.
func WithDispose[T any](fn func(*T)) Option[T] {
	return func(c *config[T]) { c.ops.dispose = fn }
}

// WithMoveOnly marks the element type as not copyable. Copy-dependent
// operations fail with ErrNotCopyable; everything that transfers ownership
// (Push, Insert, Emplace, Erase, Swap, MoveFrom) remains available.
func WithMoveOnly[T any]() Option[T] {
	return func(c *config[T]) { c.ops.moveOnly = true }
}

// WithCheckedCursors makes every cursor obtained from the vector validate
// its position on dereference and navigation, at a performance cost.
// Intended for diagnostic builds and tests.
func WithCheckedCursors[T any]() Option[T] {
	return func(c *config[T]) { c.checkedCursors = true }
}
