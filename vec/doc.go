// Package vec provides a contiguous, dynamically-sized sequence container
// with a capacity fixed at construction. Storage is allocated exactly once;
// no operation ever reallocates or moves the backing array. Exceeding the
// capacity is a reported error (ErrCapacity), never a silent growth.
//
// # Basic Usage
//
//	v := vec.New[int](4)
//	_ = v.Push(10)
//	_ = v.Push(20)
//	_, _ = v.Insert(1, 15) // [10, 15, 20]
//
// # Element Lifecycle Hooks
//
// By default elements have plain value semantics: copying is assignment,
// relocation is assignment plus zeroing of the source slot, and teardown
// zeroes the slot so the garbage collector can reclaim referents. Types
// that own external resources, or tests that audit element lifetimes,
// can install hooks at construction time:
//
//	v := vec.New[Conn](8,
//	    vec.WithClone(cloneConn),
//	    vec.WithDispose(closeConn),
//	)
//
// Hook failures propagate to the caller. The container's obligation around
// such a failure is to keep its own invariants: no element is leaked,
// duplicated, or left half-initialized. Interior inserts stage displaced
// elements in spare capacity (there is no temporary heap buffer), and a
// failure partway through a bulk operation destroys whatever that
// operation had constructed so far.
//
// A Vector is not safe for concurrent mutation. Concurrent reads are fine
// while no goroutine mutates.
package vec
