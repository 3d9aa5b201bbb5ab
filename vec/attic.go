package vec

import "fmt"

// attic is a transient view over spare slots of a storage, used to park a
// suffix of live elements during an interior insert so new elements can be
// constructed in the gap they vacate. Slots [begin, end) hold parked
// elements owned by the attic; the range is disjoint from the storage's
// live range for the attic's whole lifetime.
type attic[T any] struct {
	store *storage[T]
	begin int
	end   int
}

// openAttic vacates the live suffix [savePos, size) so that it ends at slot
// atticEnd, leaving [savePos, begin) free for new elements. The suffix is
// walked from the tail backward: at every intermediate step each element
// has exactly one live copy, and a forward walk would need one more spare
// slot than exists. If a relocation fails partway the already-parked
// elements are destroyed before the error is returned.
//
// When atticEnd equals the current size nothing needs to move: the suffix
// [savePos, size) is claimed in place and size drops to savePos.
func openAttic[T any](store *storage[T], savePos, atticEnd int) (*attic[T], error) {
	a := &attic[T]{store: store, begin: atticEnd, end: atticEnd}
	if a.begin == store.size {
		a.begin = savePos
		store.size = savePos
		return a, nil
	}
	for store.size != savePos {
		last := store.size - 1
		v, err := store.moveOut(last)
		if err != nil {
			a.drop()
			return nil, err
		}
		store.constructAt(a.begin-1, v)
		store.size = last
		a.begin--
	}
	return a, nil
}

// retrieve pulls every parked element back into its final position,
// advancing size over it. If size already reached begin the parked block is
// in place and size jumps to end. After retrieve the attic is empty and
// drop is a no-op.
func (a *attic[T]) retrieve() error {
	if a.store.size == a.begin {
		a.begin = a.end
		a.store.size = a.end
		return nil
	}
	for a.begin != a.end {
		v, err := a.store.moveOut(a.begin)
		if err != nil {
			return err
		}
		a.store.constructAt(a.store.size, v)
		a.store.size++
		a.begin++
	}
	return nil
}

// drop destroys any elements still parked in the attic. Callers defer it;
// it only has work to do on a failure exit.
func (a *attic[T]) drop() {
	a.store.destroyRange(a.begin, a.end)
	a.begin = a.end
}

// capacityCheck reports ErrCapacity if pos has run into the parked block.
// Used on the single-pass insert path, where the incoming element count is
// unknown until the source is exhausted.
func (a *attic[T]) capacityCheck(pos int) error {
	if pos >= a.begin {
		return fmt.Errorf("%w: slot %d has reached the relocated suffix", ErrCapacity, pos)
	}
	return nil
}
