package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/inplace/vec/audit"
)

func TestTrackerCounts(t *testing.T) {
	tr := audit.NewTracker()
	assert.Equal(t, 0, tr.Live())

	tr.Construct(1)
	tr.Construct(1)
	tr.Construct(2)
	assert.Equal(t, 3, tr.Live())
	assert.Equal(t, 2, tr.LiveOf(1))
	assert.Equal(t, 1, tr.LiveOf(2))
	assert.Equal(t, 0, tr.LiveOf(3))

	assert.True(t, tr.Destroy(1))
	assert.Equal(t, 1, tr.LiveOf(1))
	assert.True(t, tr.Destroy(1))
	assert.Equal(t, 0, tr.LiveOf(1))

	assert.Equal(t, int64(3), tr.Constructs())
	assert.Equal(t, int64(2), tr.Destroys())
}

func TestTrackerDoubleDestroy(t *testing.T) {
	tr := audit.NewTracker()

	assert.False(t, tr.Destroy(7), "destroy of an untracked id")

	tr.Construct(7)
	assert.True(t, tr.Destroy(7))
	assert.False(t, tr.Destroy(7), "second destroy of the same instance")
	assert.Equal(t, 0, tr.Live())
}

func TestTrackerReset(t *testing.T) {
	tr := audit.NewTracker()
	tr.Construct(1)
	tr.Construct(2)

	tr.Reset()
	assert.Equal(t, 0, tr.Live())
	assert.Equal(t, int64(0), tr.Constructs())
	assert.Equal(t, int64(0), tr.Destroys())
	assert.False(t, tr.Destroy(1))
}
