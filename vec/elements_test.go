package vec_test

import (
	"errors"

	"github.com/plus3/inplace/vec"
	"github.com/plus3/inplace/vec/audit"
)

var (
	errCloneFail = errors.New("clone failed")
	errMoveFail  = errors.New("move failed")
)

// item is the audited element used by the lifecycle tests. Every live
// instance carries a unique id registered with a Tracker; id zero marks a
// hollow (moved-from or disposed) value.
type item struct {
	id  int64
	val int
}

// lab wires a Tracker into vec element hooks and can inject clone or move
// failures after a set number of successes.
type lab struct {
	tr     *audit.Tracker
	nextID int64

	// Remaining successful operations before injection; negative means
	// never fail.
	cloneBudget int
	moveBudget  int
}

func newLab() *lab {
	return &lab{tr: audit.NewTracker(), cloneBudget: -1, moveBudget: -1}
}

// mk creates a tracked item owned by the caller.
func (l *lab) mk(val int) item {
	l.nextID++
	l.tr.Construct(l.nextID)
	return item{id: l.nextID, val: val}
}

// mkAll creates one tracked item per value.
func (l *lab) mkAll(vals ...int) []item {
	out := make([]item, len(vals))
	for i, v := range vals {
		out[i] = l.mk(v)
	}
	return out
}

func (l *lab) opts(extra ...vec.Option[item]) []vec.Option[item] {
	opts := []vec.Option[item]{
		vec.WithClone[item](func(src item) (item, error) {
			if l.cloneBudget == 0 {
				return item{}, errCloneFail
			}
			if l.cloneBudget > 0 {
				l.cloneBudget--
			}
			return l.mk(src.val), nil
		}),
		vec.WithMove[item](func(src *item) (item, error) {
			if l.moveBudget == 0 {
				return item{}, errMoveFail
			}
			if l.moveBudget > 0 {
				l.moveBudget--
			}
			out := *src
			*src = item{}
			return out, nil
		}),
		vec.WithDispose[item](func(p *item) {
			if p.id != 0 {
				l.tr.Destroy(p.id)
			}
			*p = item{}
		}),
	}
	return append(opts, extra...)
}

// dispose hands a caller-owned item back to the tracker.
func (l *lab) dispose(it *item) {
	if it.id != 0 {
		l.tr.Destroy(it.id)
		*it = item{}
	}
}

// payloads extracts the val field of every element.
func payloads(v *vec.Vector[item]) []int {
	out := make([]int, 0, v.Len())
	for _, it := range v.All() {
		out = append(out, it.val)
	}
	return out
}
