// internal/sched/roundrobin.go

package sched

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// roundRobin runs the preemptive simulation with a fixed Quantum.
//
// Each iteration first admits every task that has arrived by now, then
// re-queues the task preempted by the previous slice, so a task arriving at
// the instant a slice ends is served before the preempted one.
func roundRobin(rs []runState) []Segment {
	arrivals := runOrder(rs, FCFS)
	ready := linkedlistqueue.New() // task indices in READY state

	var segments []Segment
	now, next, done := 0, 0, 0
	preempted := -1

	for done < len(rs) {
		// 1) admit arrivals
		for next < len(arrivals) && rs[arrivals[next]].task.Arrival <= now {
			i := arrivals[next]
			rs[i].state = stateReady
			ready.Enqueue(i)
			next++
		}

		// 2) requeue the task the last slice preempted
		if preempted >= 0 {
			ready.Enqueue(preempted)
			preempted = -1
		}

		v, ok := ready.Dequeue()
		if !ok {
			// idle: nothing is ready, so skip straight to the next arrival.
			// done < len(rs) with an empty queue means one is pending.
			now = rs[arrivals[next]].task.Arrival
			continue
		}

		// 3) run one slice
		i := v.(int)
		r := &rs[i]
		r.state = stateRunning
		if r.start < 0 {
			r.start = now
		}
		ran := min(Quantum, r.remaining)
		seg := Segment{TaskID: r.task.ID, Start: now, Execute: ran}
		r.remaining -= ran
		now += ran
		seg.Remaining = r.remaining

		// 4) finish or preempt
		if r.remaining == 0 {
			r.state = stateDone
			r.completion = now
			seg.Completion = now
			done++
		} else {
			r.state = stateReady
			preempted = i
		}
		segments = append(segments, seg)
	}
	return segments
}
