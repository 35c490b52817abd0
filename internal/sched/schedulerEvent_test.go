package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents_RoundRobin(t *testing.T) {
	res, err := Schedule([]Task{
		NewTask("A", 0, 7, 1),
		NewTask("B", 1, 2, 1),
	}, RoundRobin)
	require.NoError(t, err)

	want := []StatusEvent{
		{Time: 0, Kind: StatusEnqueue, TaskID: "A", Remaining: 7},
		{Time: 0, Kind: StatusDispatch, TaskID: "A", Remaining: 7},
		{Time: 1, Kind: StatusEnqueue, TaskID: "B", Remaining: 2},
		{Time: 3, Kind: StatusPreempt, TaskID: "A", Ran: 3, Remaining: 4},
		{Time: 3, Kind: StatusDispatch, TaskID: "B", Remaining: 2},
		{Time: 5, Kind: StatusFinish, TaskID: "B", Ran: 2, Remaining: 0},
		{Time: 5, Kind: StatusDispatch, TaskID: "A", Remaining: 4},
		{Time: 8, Kind: StatusPreempt, TaskID: "A", Ran: 3, Remaining: 1},
		{Time: 8, Kind: StatusDispatch, TaskID: "A", Remaining: 1},
		{Time: 9, Kind: StatusFinish, TaskID: "A", Ran: 1, Remaining: 0},
	}
	assert.Equal(t, want, Events(res))
}

func TestEvents_Idle(t *testing.T) {
	res, err := Schedule([]Task{NewTask("A", 5, 2, 1)}, FCFS)
	require.NoError(t, err)

	want := []StatusEvent{
		{Time: 0, Kind: StatusIdle, Ran: 5},
		{Time: 5, Kind: StatusEnqueue, TaskID: "A", Remaining: 2},
		{Time: 5, Kind: StatusDispatch, TaskID: "A", Remaining: 2},
		{Time: 7, Kind: StatusFinish, TaskID: "A", Ran: 2},
	}
	assert.Equal(t, want, Events(res))
}

func TestStatusKind_String(t *testing.T) {
	assert.Equal(t, "Enqueued", StatusEnqueue.String())
	assert.Equal(t, "Preempt", StatusPreempt.String())
	assert.Equal(t, "Unknown", StatusKind(99).String())
}
