package vec

import "fmt"

// Cursor is a random-access position within a vector's live range. Obtain
// cursors from Begin, End or the insert family; the zero value is unusable.
//
// Cursors from a vector built with WithCheckedCursors validate every
// dereference against the live range [0, limit) and every navigation result
// against [0, limit], where limit is the live size captured at creation.
// Unchecked cursors perform no validation.
//
// Any mutation that changes the vector's size or relocates elements
// invalidates cursors at or after the point of change; cursors to untouched
// earlier elements stay valid only if no relocation touched their slot.
// Comparison and distance are defined only between cursors over the same
// vector.
type Cursor[T any] struct {
	vec     *Vector[T]
	pos     int
	limit   int
	checked bool
}

// ReadCursor is a read-only cursor. A Cursor converts one way via Read;
// there is no conversion back.
type ReadCursor[T any] struct {
	cur Cursor[T]
}

func (c Cursor[T]) derefCheck(pos int) error {
	if c.checked && (pos < 0 || pos >= c.limit) {
		return fmt.Errorf("%w: cursor dereference at %d, live range [0, %d)", ErrOutOfRange, pos, c.limit)
	}
	return nil
}

func (c Cursor[T]) rangeCheck(pos int) error {
	if c.checked && (pos < 0 || pos > c.limit) {
		return fmt.Errorf("%w: cursor position %d outside [0, %d]", ErrOutOfRange, pos, c.limit)
	}
	return nil
}

// Index returns the cursor's position as an element index.
func (c Cursor[T]) Index() int { return c.pos }

// Value returns the element at the cursor.
func (c Cursor[T]) Value() (T, error) {
	if err := c.derefCheck(c.pos); err != nil {
		var zero T
		return zero, err
	}
	return c.vec.store.slots[c.pos], nil
}

// Ptr returns a pointer to the element at the cursor. The one-past-end
// position is permitted and yields a nil pointer: a Go pointer one past the
// slot array cannot be formed.
func (c Cursor[T]) Ptr() (*T, error) {
	if err := c.rangeCheck(c.pos); err != nil {
		return nil, err
	}
	if c.pos == len(c.vec.store.slots) || (c.checked && c.pos == c.limit) {
		return nil, nil
	}
	return &c.vec.store.slots[c.pos], nil
}

// Set replaces the element at the cursor, disposing the previous value.
// The vector takes ownership of v.
func (c Cursor[T]) Set(v T) error {
	if err := c.derefCheck(c.pos); err != nil {
		return err
	}
	c.vec.store.destroyAt(c.pos)
	c.vec.store.slots[c.pos] = v
	return nil
}

// At returns the element n positions away without moving the cursor.
func (c Cursor[T]) At(n int) (T, error) {
	if err := c.rangeCheck(c.pos + n); err != nil {
		var zero T
		return zero, err
	}
	if err := c.derefCheck(c.pos + n); err != nil {
		var zero T
		return zero, err
	}
	return c.vec.store.slots[c.pos+n], nil
}

// Next advances the cursor by one.
func (c *Cursor[T]) Next() error { return c.Seek(1) }

// Prev moves the cursor back by one.
func (c *Cursor[T]) Prev() error { return c.Seek(-1) }

// Seek moves the cursor by n positions. The one-past-end position is a
// valid destination.
func (c *Cursor[T]) Seek(n int) error {
	pos := c.pos + n
	if err := c.rangeCheck(pos); err != nil {
		return err
	}
	c.pos = pos
	return nil
}

// Add returns a cursor n positions away, leaving c unchanged.
func (c Cursor[T]) Add(n int) (Cursor[T], error) {
	out := c
	if err := out.Seek(n); err != nil {
		return Cursor[T]{}, err
	}
	return out, nil
}

// Sub returns the distance c - other in elements.
func (c Cursor[T]) Sub(other Cursor[T]) int { return c.pos - other.pos }

// Equal reports whether both cursors sit at the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool { return c.pos == other.pos }

// Compare orders cursors by position.
func (c Cursor[T]) Compare(other Cursor[T]) int {
	switch {
	case c.pos < other.pos:
		return -1
	case c.pos > other.pos:
		return 1
	}
	return 0
}

// Read converts the cursor to its read-only form.
func (c Cursor[T]) Read() ReadCursor[T] { return ReadCursor[T]{cur: c} }

func (r ReadCursor[T]) Index() int          { return r.cur.Index() }
func (r ReadCursor[T]) Value() (T, error)   { return r.cur.Value() }
func (r ReadCursor[T]) At(n int) (T, error) { return r.cur.At(n) }
func (r *ReadCursor[T]) Next() error        { return r.cur.Next() }
func (r *ReadCursor[T]) Prev() error        { return r.cur.Prev() }
func (r *ReadCursor[T]) Seek(n int) error   { return r.cur.Seek(n) }

// Add returns a read cursor n positions away, leaving r unchanged.
func (r ReadCursor[T]) Add(n int) (ReadCursor[T], error) {
	cur, err := r.cur.Add(n)
	if err != nil {
		return ReadCursor[T]{}, err
	}
	return ReadCursor[T]{cur: cur}, nil
}

func (r ReadCursor[T]) Sub(other ReadCursor[T]) int     { return r.cur.Sub(other.cur) }
func (r ReadCursor[T]) Equal(other ReadCursor[T]) bool  { return r.cur.Equal(other.cur) }
func (r ReadCursor[T]) Compare(other ReadCursor[T]) int { return r.cur.Compare(other.cur) }
