package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtticInteriorRelocation(t *testing.T) {
	var log []int
	s := newStorage[int](8, countingOps(&log))
	fillStorage(&s, 1, 2, 3, 4, 5)

	// Vacate [2, 5) so the suffix ends at slot 7.
	a, err := openAttic(&s, 2, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, s.size)
	assert.Equal(t, 4, a.begin)
	assert.Equal(t, 7, a.end)
	assert.Equal(t, []int{3, 4, 5}, s.slots[4:7], "relative order preserved")
	assert.Empty(t, log, "relocation destroys nothing")

	// Fill the vacated gap, then pull the suffix back down.
	fillStorage(&s, 10, 20)
	require.NoError(t, a.retrieve())
	a.drop()

	assert.Equal(t, []int{1, 2, 10, 20, 3, 4, 5}, s.data())
}

func TestAtticTailInsert(t *testing.T) {
	s := newStorage[int](4, elemOps[int]{})
	fillStorage(&s, 1, 2, 3)

	// Insertion point at the tail: the loop has nothing to move.
	a, err := openAttic(&s, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, s.size)
	assert.Equal(t, 4, a.begin)

	fillStorage(&s, 9)
	require.NoError(t, a.retrieve())
	a.drop()
	assert.Equal(t, []int{1, 2, 3, 9}, s.data())
}

func TestAtticInPlaceClaim(t *testing.T) {
	s := newStorage[int](4, elemOps[int]{})
	fillStorage(&s, 1, 2, 3)

	// atticEnd == size: the suffix [1, 3) is claimed where it sits.
	a, err := openAttic(&s, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, s.size)
	assert.Equal(t, 1, a.begin)
	assert.Equal(t, 3, a.end)

	require.NoError(t, a.retrieve())
	a.drop()
	assert.Equal(t, []int{1, 2, 3}, s.data())
}

func TestAtticDropDestroysParked(t *testing.T) {
	var log []int
	s := newStorage[int](8, countingOps(&log))
	fillStorage(&s, 1, 2, 3, 4)

	a, err := openAttic(&s, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, s.size)

	// Failure exit: no retrieve, drop destroys everything still parked.
	a.drop()
	assert.ElementsMatch(t, []int{2, 3, 4}, log)
	assert.Equal(t, []int{1}, s.data())

	a.drop()
	assert.Len(t, log, 3, "drop is idempotent")
}

func TestAtticCapacityCheck(t *testing.T) {
	s := newStorage[int](4, elemOps[int]{})
	fillStorage(&s, 1, 2)

	a, err := openAttic(&s, 1, 4)
	require.NoError(t, err)
	defer a.drop()

	assert.NoError(t, a.capacityCheck(a.begin-1))
	assert.ErrorIs(t, a.capacityCheck(a.begin), ErrCapacity)
}

func TestAtticOpenFailureDestroysParked(t *testing.T) {
	var log []int
	moves := 0
	ops := countingOps(&log)
	ops.move = func(src *int) (int, error) {
		moves++
		if moves > 1 {
			return 0, errBoom
		}
		v := *src
		*src = -1
		return v, nil
	}
	s := newStorage[int](8, ops)
	fillStorage(&s, 1, 2, 3, 4)

	// The second relocation fails; the one element already parked must be
	// destroyed, the rest stay live below size.
	_, err := openAttic(&s, 1, 6)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{4}, log)
	assert.Equal(t, []int{1, 2, 3}, s.data())
}
