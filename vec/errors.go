package vec

import "errors"

var (
	// ErrCapacity is reported by any operation that would need more slots
	// than the vector's fixed capacity.
	ErrCapacity = errors.New("vec: capacity exceeded")

	// ErrOutOfRange is reported by checked element access (index or cursor)
	// outside the live range.
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrNotCopyable is reported by copy-dependent operations on a vector
	// configured with WithMoveOnly.
	ErrNotCopyable = errors.New("vec: element type is move-only")
)
