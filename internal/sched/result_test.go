package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Summary(t *testing.T) {
	tasks := []Task{
		NewTask("A", 0, 5, 1),
		NewTask("B", 1, 3, 1),
		NewTask("C", 10, 2, 1),
	}
	res, err := Schedule(tasks, FCFS)
	require.NoError(t, err)

	assert.InDelta(t, 4.0/3, res.AverageWaiting(), 1e-9)
	assert.InDelta(t, 14.0/3, res.AverageTurnaround(), 1e-9)
	assert.InDelta(t, 4.0/3, res.AverageResponse(), 1e-9)
	assert.Equal(t, 12, res.Makespan())
	assert.Equal(t, 2, res.IdleTime())
	assert.InDelta(t, 10.0/12, res.Utilization(), 1e-9)
	assert.InDelta(t, 3.0/12, res.Throughput(), 1e-9)
	assert.Equal(t, 2, res.ContextSwitches())
}

func TestResult_RowsKeepInputOrder(t *testing.T) {
	tasks := []Task{
		NewTask("Z", 3, 1, 1),
		NewTask("Y", 0, 1, 1),
		NewTask("X", 1, 1, 1),
	}
	res, err := Schedule(tasks, FCFS)
	require.NoError(t, err)

	var ids []TaskID
	for _, m := range res.Rows() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []TaskID{"Z", "Y", "X"}, ids)
}

func TestResult_ContextSwitchesIgnoreSameTaskSlices(t *testing.T) {
	res, err := Schedule([]Task{NewTask("A", 0, 9, 1)}, RoundRobin)
	require.NoError(t, err)
	assert.Len(t, res.Segments, 3)
	assert.Equal(t, 0, res.ContextSwitches())
}

func TestResult_ZeroValue(t *testing.T) {
	var res Result
	assert.Zero(t, res.AverageWaiting())
	assert.Zero(t, res.AverageTurnaround())
	assert.Zero(t, res.Makespan())
	assert.Zero(t, res.Utilization())
	assert.Zero(t, res.Throughput())
	assert.Empty(t, res.Rows())
}
