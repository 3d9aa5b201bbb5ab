// Package audit tracks live element instances by id, as a side channel for
// verifying that container operations neither leak nor duplicate elements.
// It is used by the vec test suite and by the vec-stress tool.
package audit

import "github.com/kamstrup/intmap"

// Tracker counts live instances per caller-chosen id. Like the container it
// audits, it is not safe for concurrent use.
type Tracker struct {
	live       *intmap.Map[int64, int32]
	total      int
	constructs int64
	destroys   int64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{live: intmap.New[int64, int32](256)}
}

// Construct records a new live instance of id.
func (t *Tracker) Construct(id int64) {
	n, _ := t.live.Get(id)
	t.live.Put(id, n+1)
	t.total++
	t.constructs++
}

// Destroy records the teardown of an instance of id. It returns false for
// an id with no live instances, which indicates a double-destroy.
func (t *Tracker) Destroy(id int64) bool {
	n, ok := t.live.Get(id)
	if !ok || n == 0 {
		return false
	}
	if n == 1 {
		t.live.Del(id)
	} else {
		t.live.Put(id, n-1)
	}
	t.total--
	t.destroys++
	return true
}

// Live returns the total number of live instances.
func (t *Tracker) Live() int { return t.total }

// LiveOf returns the number of live instances of id.
func (t *Tracker) LiveOf(id int64) int {
	n, _ := t.live.Get(id)
	return int(n)
}

// Constructs returns the lifetime construction count.
func (t *Tracker) Constructs() int64 { return t.constructs }

// Destroys returns the lifetime destruction count.
func (t *Tracker) Destroys() int64 { return t.destroys }

// Reset forgets all bookkeeping.
func (t *Tracker) Reset() {
	t.live = intmap.New[int64, int32](256)
	t.total = 0
	t.constructs = 0
	t.destroys = 0
}
