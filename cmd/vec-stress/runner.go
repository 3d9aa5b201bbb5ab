package main

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/plus3/inplace/vec"
	"github.com/plus3/inplace/vec/audit"
)

var (
	errInjectedClone = errors.New("injected clone failure")
	errInjectedMove  = errors.New("injected move failure")
)

// elem is the audited element type: id identifies the instance for the
// tracker, val is the payload mirrored in the model. id 0 is a hollow slot.
type elem struct {
	id  int64
	val int
}

type opKind int

const (
	opPush opKind = iota
	opPop
	opInsert
	opInsertN
	opErase
	opResize
	opSwap
	opClear
	opKinds
)

var opNames = [opKinds]string{"push", "pop", "insert", "insert_n", "erase", "resize", "swap", "clear"}

type opStats struct {
	Counts    [opKinds]int64
	Injected  int64
	Rejected  int64
	TotalOps  int64
	Divergent int64
}

// runner drives random mutations against a vector and a scratch partner,
// mirroring both in plain slices and auditing every element lifetime.
type runner struct {
	scn     *Scenario
	rng     *rand.Rand
	tracker *audit.Tracker
	nextID  int64
	nextVal int

	vec     *vec.Vector[elem]
	model   []int
	scratch *vec.Vector[elem]
	smodel  []int

	picks []opKind
	stats opStats
}

func newRunner(scn *Scenario) *runner {
	r := &runner{
		scn:     scn,
		rng:     rand.New(rand.NewSource(scn.Seed)),
		tracker: audit.NewTracker(),
	}
	opts := []vec.Option[elem]{
		vec.WithClone(func(e elem) (elem, error) {
			if r.rng.Float64() < scn.FailRate {
				return elem{}, errInjectedClone
			}
			return r.mk(e.val), nil
		}),
		vec.WithMove(func(src *elem) (elem, error) {
			if r.rng.Float64() < scn.FailRate {
				return elem{}, errInjectedMove
			}
			out := *src
			*src = elem{}
			return out, nil
		}),
		vec.WithDispose(func(e *elem) {
			if e.id != 0 && !r.tracker.Destroy(e.id) {
				panic(fmt.Sprintf("double destroy of element %d", e.id))
			}
			*e = elem{}
		}),
	}
	r.vec = vec.New(scn.Capacity, opts...)
	r.scratch = vec.New(scn.Capacity, opts...)

	w := scn.Weights
	weights := [opKinds]int{
		opPush: w.Push, opPop: w.Pop, opInsert: w.Insert, opInsertN: w.InsertN,
		opErase: w.Erase, opResize: w.Resize, opSwap: w.Swap, opClear: w.Clear,
	}
	for kind, weight := range weights {
		for i := 0; i < weight; i++ {
			r.picks = append(r.picks, opKind(kind))
		}
	}
	return r
}

func (r *runner) mk(val int) elem {
	r.nextID++
	r.tracker.Construct(r.nextID)
	return elem{id: r.nextID, val: val}
}

func (r *runner) fresh() elem {
	r.nextVal++
	return r.mk(r.nextVal)
}

func (r *runner) dispose(e *elem) {
	if e.id != 0 {
		r.tracker.Destroy(e.id)
		*e = elem{}
	}
}

func payloadsOf(v *vec.Vector[elem]) []int {
	out := make([]int, 0, v.Len())
	for e := range v.Values() {
		out = append(out, e.val)
	}
	return out
}

func injected(err error) bool {
	return errors.Is(err, errInjectedClone) || errors.Is(err, errInjectedMove)
}

func (r *runner) run() error {
	if len(r.picks) == 0 {
		return errors.New("all operation weights are zero")
	}
	for i := 0; i < r.scn.Ops; i++ {
		kind := r.picks[r.rng.Intn(len(r.picks))]
		if err := r.step(kind); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, opNames[kind], err)
		}
	}
	return r.verify()
}

// step runs one mutation and reconciles the model. A capacity rejection or
// an injected hook failure is part of normal operation; anything else that
// leaves the vector diverging from the documented semantics is fatal.
func (r *runner) step(kind opKind) error {
	r.stats.Counts[kind]++
	r.stats.TotalOps++

	switch kind {
	case opPush:
		value := r.fresh()
		err := r.vec.Push(value)
		switch {
		case err == nil:
			r.model = append(r.model, value.val)
		case errors.Is(err, vec.ErrCapacity):
			r.stats.Rejected++
			r.dispose(&value) // rejected up front, still ours
		default:
			return err
		}

	case opPop:
		got, err := r.vec.PopBack()
		switch {
		case err == nil:
			r.dispose(&got)
			r.model = r.model[:len(r.model)-1]
		case errors.Is(err, vec.ErrOutOfRange):
			// empty vector
		case injected(err):
			r.stats.Injected++ // move failed, element stayed in place
		default:
			return err
		}

	case opInsert:
		value := r.fresh()
		pos := r.rng.Intn(r.vec.Len() + 1)
		consumed := false
		_, err := r.vec.Emplace(pos, func() (elem, error) {
			consumed = true
			return value, nil
		})
		switch {
		case err == nil:
			r.model = slices.Insert(r.model, pos, value.val)
		case errors.Is(err, vec.ErrCapacity):
			r.stats.Rejected++
			r.dispose(&value)
		case injected(err):
			r.stats.Injected++
			if !consumed {
				r.dispose(&value)
			}
			r.resync()
		default:
			return err
		}

	case opInsertN:
		src := r.fresh()
		pos := r.rng.Intn(r.vec.Len() + 1)
		count := r.rng.Intn(4)
		_, err := r.vec.InsertN(pos, count, src)
		switch {
		case err == nil:
			for n := 0; n < count; n++ {
				r.model = slices.Insert(r.model, pos, src.val)
			}
		case errors.Is(err, vec.ErrCapacity):
			r.stats.Rejected++
		case injected(err):
			r.stats.Injected++
			r.resync()
		default:
			r.dispose(&src)
			return err
		}
		r.dispose(&src) // InsertN clones, the source stays ours

	case opErase:
		if r.vec.Len() == 0 {
			return nil
		}
		first := r.rng.Intn(r.vec.Len())
		last := first + r.rng.Intn(r.vec.Len()-first+1)
		_, err := r.vec.Erase(first, last)
		switch {
		case err == nil:
			r.model = slices.Delete(r.model, first, last)
		case injected(err):
			r.stats.Injected++
			r.resync()
		default:
			return err
		}

	case opResize:
		src := r.fresh()
		count := r.rng.Intn(r.scn.Capacity + 1)
		err := r.vec.ResizeFilled(count, src)
		switch {
		case err == nil:
			for len(r.model) > count {
				r.model = r.model[:len(r.model)-1]
			}
			for len(r.model) < count {
				r.model = append(r.model, src.val)
			}
		case injected(err):
			r.stats.Injected++
			r.resync()
		default:
			r.dispose(&src)
			return err
		}
		r.dispose(&src)

	case opSwap:
		err := r.vec.Swap(r.scratch)
		switch {
		case err == nil:
			r.model, r.smodel = r.smodel, r.model
		case injected(err):
			r.stats.Injected++
			r.resync()
		default:
			return err
		}

	case opClear:
		r.vec.Clear()
		r.model = r.model[:0]
	}

	return r.verify()
}

// resync adopts the vector's actual contents as the new model. Used after
// an injected failure, where the documented semantics permit a partial (but
// count-consistent) result.
func (r *runner) resync() {
	r.model = payloadsOf(r.vec)
	r.smodel = payloadsOf(r.scratch)
}

// held counts the non-hollow elements. A failed swap may leave hollow
// slots inside the live range, so Len alone overcounts.
func held(v *vec.Vector[elem]) int {
	n := 0
	for e := range v.Values() {
		if e.id != 0 {
			n++
		}
	}
	return n
}

// verify checks the vector against the model and the lifetime ledger
// against the live contents.
func (r *runner) verify() error {
	if got := payloadsOf(r.vec); !slices.Equal(got, r.model) {
		r.stats.Divergent++
		return fmt.Errorf("vector diverged from model:\n  vector: %v\n  model:  %v", got, r.model)
	}
	if got := payloadsOf(r.scratch); !slices.Equal(got, r.smodel) {
		r.stats.Divergent++
		return fmt.Errorf("scratch diverged from model:\n  vector: %v\n  model:  %v", got, r.smodel)
	}
	want := held(r.vec) + held(r.scratch)
	if live := r.tracker.Live(); live != want {
		return fmt.Errorf("lifetime leak: %d live instances, %d elements held", live, want)
	}
	return nil
}
