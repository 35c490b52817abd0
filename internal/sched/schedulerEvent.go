// internal/sched/schedulerEvent.go

package sched

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// StatusKind represents the type of scheduler event
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusEnqueue
	StatusDispatch
	StatusPreempt
	StatusFinish
)

// StatusEvent marks a key action on the simulated timeline.
type StatusEvent struct {
	Time      int // simulated tick
	Kind      StatusKind
	TaskID    TaskID // empty for StatusIdle
	Ran       int    // ticks run by the slice ending here, or idle length
	Remaining int
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusIdle:
		return "Idle"
	case StatusEnqueue:
		return "Enqueued"
	case StatusDispatch:
		return "Dispatch"
	case StatusPreempt:
		return "Preempt"
	case StatusFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// rank orders events sharing a tick: the processor is released before it
// idles, arrivals join before the next dispatch.
func (sk StatusKind) rank() int {
	switch sk {
	case StatusPreempt, StatusFinish:
		return 0
	case StatusIdle:
		return 1
	case StatusEnqueue:
		return 2
	default:
		return 3
	}
}

// eventKey is the red-black tree key for timeline ordering.
type eventKey struct {
	time int
	rank int
	seq  int
}

func cmpEvents(a, b any) int {
	ka, kb := a.(eventKey), b.(eventKey)
	switch {
	case ka.time != kb.time:
		return compareInts(ka.time, kb.time)
	case ka.rank != kb.rank:
		return compareInts(ka.rank, kb.rank)
	default:
		return compareInts(ka.seq, kb.seq)
	}
}

// Events derives the status event stream of a finished run, ordered by
// simulated time.
func Events(res Result) []StatusEvent {
	rbt := redblacktree.NewWith(cmpEvents)
	seq := 0
	put := func(ev StatusEvent) {
		rbt.Put(eventKey{time: ev.Time, rank: ev.Kind.rank(), seq: seq}, ev)
		seq++
	}

	for _, m := range res.Rows() {
		put(StatusEvent{Time: m.Arrival, Kind: StatusEnqueue, TaskID: m.ID, Remaining: m.Burst})
	}

	prev := 0
	for _, s := range res.Segments {
		if s.Start > prev {
			put(StatusEvent{Time: prev, Kind: StatusIdle, Ran: s.Start - prev})
		}
		put(StatusEvent{Time: s.Start, Kind: StatusDispatch, TaskID: s.TaskID, Remaining: s.Remaining + s.Execute})

		kind := StatusPreempt
		if s.Final() {
			kind = StatusFinish
		}
		put(StatusEvent{Time: s.End(), Kind: kind, TaskID: s.TaskID, Ran: s.Execute, Remaining: s.Remaining})
		prev = s.End()
	}

	events := make([]StatusEvent, 0, rbt.Size())
	it := rbt.Iterator()
	for it.Next() {
		events = append(events, it.Value().(StatusEvent))
	}
	return events
}
