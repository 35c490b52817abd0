// internal/sched/result.go

package sched

// Segment is one contiguous interval during which a single task occupies
// the processor.
type Segment struct {
	TaskID  TaskID
	Start   int
	Execute int
	// Completion is only meaningful on a task's final segment (Remaining == 0).
	Completion int
	Remaining  int
}

// End returns the tick at which the segment releases the processor.
func (s Segment) End() int { return s.Start + s.Execute }

// Final reports whether this segment finishes its task.
func (s Segment) Final() bool { return s.Remaining == 0 }

// Metrics are the per-task timing figures of a finished run.
type Metrics struct {
	ID         TaskID
	Arrival    int
	Burst      int
	Priority   int
	Start      int // first dispatch
	Completion int
	Turnaround int // Completion - Arrival
	Waiting    int // Turnaround - Burst
	Response   int // Start - Arrival
}

func newMetrics(t Task, start, completion int) Metrics {
	turnaround := completion - t.Arrival
	return Metrics{
		ID:         t.ID,
		Arrival:    t.Arrival,
		Burst:      t.Burst,
		Priority:   t.Priority,
		Start:      start,
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - t.Burst,
		Response:   start - t.Arrival,
	}
}

// Result is the trace and metrics of one simulation run.
type Result struct {
	Algorithm Algorithm
	Segments  []Segment
	Metrics   map[TaskID]Metrics
	order     []TaskID // caller's input order
}

// Rows returns per-task metrics in the caller's input order.
func (r Result) Rows() []Metrics {
	rows := make([]Metrics, 0, len(r.order))
	for _, id := range r.order {
		rows = append(rows, r.Metrics[id])
	}
	return rows
}

// AverageWaiting is the mean waiting time over all tasks.
func (r Result) AverageWaiting() float64 {
	if len(r.Metrics) == 0 {
		return 0
	}
	total := 0
	for _, m := range r.Metrics {
		total += m.Waiting
	}
	return float64(total) / float64(len(r.Metrics))
}

// AverageTurnaround is the mean turnaround time over all tasks.
func (r Result) AverageTurnaround() float64 {
	if len(r.Metrics) == 0 {
		return 0
	}
	total := 0
	for _, m := range r.Metrics {
		total += m.Turnaround
	}
	return float64(total) / float64(len(r.Metrics))
}

// AverageResponse is the mean time from arrival to first dispatch.
func (r Result) AverageResponse() float64 {
	if len(r.Metrics) == 0 {
		return 0
	}
	total := 0
	for _, m := range r.Metrics {
		total += m.Response
	}
	return float64(total) / float64(len(r.Metrics))
}

// Makespan is the tick at which the last segment ends.
func (r Result) Makespan() int {
	if len(r.Segments) == 0 {
		return 0
	}
	return r.Segments[len(r.Segments)-1].End()
}

// IdleTime counts ticks in [0, Makespan) with no segment running.
func (r Result) IdleTime() int {
	busy := 0
	for _, s := range r.Segments {
		busy += s.Execute
	}
	return r.Makespan() - busy
}

// Utilization is the busy fraction of [0, Makespan).
func (r Result) Utilization() float64 {
	span := r.Makespan()
	if span == 0 {
		return 0
	}
	return float64(span-r.IdleTime()) / float64(span)
}

// Throughput is completed tasks per tick.
func (r Result) Throughput() float64 {
	span := r.Makespan()
	if span == 0 {
		return 0
	}
	return float64(len(r.Metrics)) / float64(span)
}

// ContextSwitches counts hand-offs between adjacent segments of different tasks.
func (r Result) ContextSwitches() int {
	n := 0
	for i := 1; i < len(r.Segments); i++ {
		if r.Segments[i].TaskID != r.Segments[i-1].TaskID {
			n++
		}
	}
	return n
}
