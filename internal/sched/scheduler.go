// internal/sched/scheduler.go

package sched

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Schedule simulates alg over tasks on a single processor and returns the
// execution trace with per-task metrics. It never mutates tasks and keeps no
// state between calls, so concurrent calls are safe.
func Schedule(tasks []Task, alg Algorithm) (Result, error) {
	if alg < FCFS || alg > RoundRobin {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if err := validate(tasks); err != nil {
		return Result{}, err
	}

	rs := newRunStates(tasks)

	var segments []Segment
	if alg == RoundRobin {
		segments = roundRobin(rs)
	} else {
		segments = runToCompletion(rs, alg)
	}

	res := Result{
		Algorithm: alg,
		Segments:  segments,
		Metrics:   make(map[TaskID]Metrics, len(rs)),
		order:     make([]TaskID, len(rs)),
	}
	for i, r := range rs {
		res.Metrics[r.task.ID] = newMetrics(r.task, r.start, r.completion)
		res.order[i] = r.task.ID
	}
	return res, nil
}

// validate rejects the structurally invalid inputs. Duplicate ids are
// rejected as well since metrics are keyed by id.
func validate(tasks []Task) error {
	if len(tasks) == 0 {
		return fmt.Errorf("%w: no tasks", ErrInvalidInput)
	}
	seen := make(map[TaskID]struct{}, len(tasks))
	for i, t := range tasks {
		switch {
		case t.ID == "":
			return fmt.Errorf("%w: task #%d has no id", ErrInvalidInput, i+1)
		case t.Arrival < 0:
			return fmt.Errorf("%w: task %s has negative arrival %d", ErrInvalidInput, t.ID, t.Arrival)
		case t.Burst < 1:
			return fmt.Errorf("%w: task %s has burst %d, want >= 1", ErrInvalidInput, t.ID, t.Burst)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate task id %s", ErrInvalidInput, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// runToCompletion is the shared loop of the non-preemptive strategies: each
// task runs its full burst once, in the order given by the strategy key.
func runToCompletion(rs []runState, alg Algorithm) []Segment {
	segments := make([]Segment, 0, len(rs))
	now := 0
	for _, i := range runOrder(rs, alg) {
		r := &rs[i]
		if now < r.task.Arrival {
			now = r.task.Arrival // idle until the task arrives
		}
		r.state = stateRunning
		r.start = now
		now += r.task.Burst
		r.remaining = 0
		r.completion = now
		r.state = stateDone

		segments = append(segments, Segment{
			TaskID:     r.task.ID,
			Start:      r.start,
			Execute:    r.task.Burst,
			Completion: now,
			Remaining:  0,
		})
	}
	return segments
}

// runOrder returns task indices sorted by the strategy key, then arrival,
// then input position.
func runOrder(rs []runState, alg Algorithm) []int {
	rbt := redblacktree.NewWith(cmp)
	for i, r := range rs {
		rbt.Put(nodeKey{
			key:     strategyKey(r.task, alg),
			arrival: r.task.Arrival,
			index:   i,
		}, i)
	}

	order := make([]int, 0, rbt.Size())
	it := rbt.Iterator()
	for it.Next() {
		order = append(order, it.Value().(int))
	}
	return order
}

func strategyKey(t Task, alg Algorithm) int {
	switch alg {
	case SJF:
		return t.Burst
	case Priority:
		return t.Priority
	default:
		return t.Arrival
	}
}

// nodeKey is used as a key in the red-black tree. index makes every key
// unique, which keeps equal-key tasks in input order.
type nodeKey struct {
	key     int
	arrival int
	index   int
}

// cmp implements the Comparator for red-black tree ordering.
func cmp(a, b any) int {
	ka, kb := a.(nodeKey), b.(nodeKey)
	switch {
	case ka.key != kb.key:
		return compareInts(ka.key, kb.key)
	case ka.arrival != kb.arrival:
		return compareInts(ka.arrival, kb.arrival)
	default:
		return compareInts(ka.index, kb.index)
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
