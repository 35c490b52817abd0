package httpserver

import "rqsim/internal/sched"

// ScheduleRequest is the body of POST /schedule.
type ScheduleRequest struct {
	Tasks     []sched.Task `json:"tasks"`
	Algorithm string       `json:"algorithm"`
}

// ScheduleResponse is the success body of POST /schedule. Field names and
// order are shared with the browser client and must not change.
type ScheduleResponse struct {
	Scheduled []ScheduledEntry `json:"scheduled"`
	Algorithm string           `json:"algorithm"`
}

// ScheduledEntry is one segment of the trace. Completion, waiting and
// turnaround are only present on a task's final segment.
type ScheduledEntry struct {
	ID             string `json:"id"`
	StartTime      int    `json:"startTime"`
	CompletionTime *int   `json:"completionTime,omitempty"`
	WaitingTime    *int   `json:"waitingTime,omitempty"`
	TurnaroundTime *int   `json:"turnaroundTime,omitempty"`
	ExecuteTime    int    `json:"executeTime"`
}

// ErrorResponse is the failure body of every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewScheduleResponse converts an engine result to its wire form.
func NewScheduleResponse(res sched.Result) ScheduleResponse {
	entries := make([]ScheduledEntry, 0, len(res.Segments))
	for _, s := range res.Segments {
		e := ScheduledEntry{
			ID:          string(s.TaskID),
			StartTime:   s.Start,
			ExecuteTime: s.Execute,
		}
		if s.Final() {
			m := res.Metrics[s.TaskID]
			completion, waiting, turnaround := m.Completion, m.Waiting, m.Turnaround
			e.CompletionTime = &completion
			e.WaitingTime = &waiting
			e.TurnaroundTime = &turnaround
		}
		entries = append(entries, e)
	}
	return ScheduleResponse{Scheduled: entries, Algorithm: res.Algorithm.String()}
}
