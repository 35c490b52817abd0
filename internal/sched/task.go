package sched

// TaskID uniquely identifies a task in a simulation run.
type TaskID string

// Task represents one schedulable task unit. Tasks are read-only to the
// engine; every run works on its own copy of the mutable fields.
type Task struct {
	ID       TaskID `json:"id" yaml:"id"`
	Arrival  int    `json:"arrival" yaml:"arrival"`   // tick when the task becomes eligible
	Burst    int    `json:"burst" yaml:"burst"`       // total CPU ticks required
	Priority int    `json:"priority" yaml:"priority"` // 1 is the most urgent
}

// NewTask creates a task. It performs no validation; Schedule rejects
// structurally invalid tasks.
func NewTask(id TaskID, arrival, burst, priority int) Task {
	return Task{
		ID:       id,
		Arrival:  arrival,
		Burst:    burst,
		Priority: priority,
	}
}

// taskState tracks a task through a preemptive run.
type taskState int

const (
	stateWaitingArrival taskState = iota
	stateReady
	stateRunning
	stateDone
)

// runState is the private per-run copy of a task.
type runState struct {
	task       Task
	state      taskState
	remaining  int
	start      int // first dispatch, -1 until the task runs
	completion int
}

func newRunStates(tasks []Task) []runState {
	rs := make([]runState, len(tasks))
	for i, t := range tasks {
		rs[i] = runState{
			task:      t,
			state:     stateWaitingArrival,
			remaining: t.Burst,
			start:     -1,
		}
	}
	return rs
}
