package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"fcfs", FCFS},
		{"FCFS", FCFS},
		{"sjf", SJF},
		{"priority", Priority},
		{"PRIORITY", Priority},
		{"rr", RoundRobin},
		{"ROUND_ROBIN", RoundRobin},
		{"round-robin", RoundRobin},
		{" rr ", RoundRobin},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseAlgorithm_Unknown(t *testing.T) {
	for _, in := range []string{"", "lottery", "srtf"} {
		_, err := ParseAlgorithm(in)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm, in)
	}
}

func TestAlgorithm_StringRoundTrip(t *testing.T) {
	for _, alg := range Algorithms {
		got, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}
	assert.Equal(t, "unknown", Algorithm(9).String())
}

func TestAlgorithm_Text(t *testing.T) {
	b, err := RoundRobin.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "rr", string(b))

	_, err = Algorithm(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	var a Algorithm
	require.NoError(t, a.UnmarshalText([]byte("SJF")))
	assert.Equal(t, SJF, a)
	assert.ErrorIs(t, a.UnmarshalText([]byte("nope")), ErrUnknownAlgorithm)
}

func TestAlgorithm_Preemptive(t *testing.T) {
	assert.True(t, RoundRobin.Preemptive())
	assert.False(t, FCFS.Preemptive())
	assert.False(t, SJF.Preemptive())
	assert.False(t, Priority.Preemptive())
}
