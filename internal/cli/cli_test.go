package cli

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpserver "rqsim/internal/http"
	"rqsim/internal/sched"
)

const twoTasks = `
algorithm: rr
tasks:
  - {id: A, arrival: 0, burst: 7, priority: 1}
  - {id: B, arrival: 1, burst: 2, priority: 1}
`

func writeWorkload(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRun_RoundRobin(t *testing.T) {
	out, err := execute(t, "run", "-f", writeWorkload(t, twoTasks))
	require.NoError(t, err)

	assert.Contains(t, out, "Execution Order (Round-Robin (q=3))")
	assert.Contains(t, out, "|    A    |  B   |    A    | A |")
	axis := "0" + strings.Repeat(" ", 9) + "3" + strings.Repeat(" ", 6) + "5" + strings.Repeat(" ", 9) + "8" + strings.Repeat(" ", 3) + "9"
	assert.Contains(t, out, axis)
	assert.Contains(t, out, "Avg waiting: 2.00  Avg turnaround: 6.50")
}

func TestRun_AlgorithmFlagOverridesWorkload(t *testing.T) {
	out, err := execute(t, "run", "-f", writeWorkload(t, twoTasks), "-a", "fcfs", "--gantt=false")
	require.NoError(t, err)

	assert.Contains(t, out, "First-Come-First-Served")
	assert.NotContains(t, out, "Round-Robin")
	assert.NotContains(t, out, "|")
}

func TestRun_All(t *testing.T) {
	out, err := execute(t, "run", "-f", writeWorkload(t, twoTasks), "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "Comparison")
	for _, alg := range sched.Algorithms {
		assert.Contains(t, out, alg.Title())
	}
}

func TestRun_CSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "trace.csv")
	_, err := execute(t, "run", "-f", writeWorkload(t, twoTasks), "--csv", csvPath)
	require.NoError(t, err)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "algorithm,task_id,start,execute,end,remaining,completion", lines[0])
	assert.Equal(t, "rr,A,8,1,9,0,9", lines[4])
}

func TestRun_Replay(t *testing.T) {
	out, err := execute(t, "run", "-f", writeWorkload(t, twoTasks), "--replay", "--tick-ms", "1", "--gantt=false")
	require.NoError(t, err)

	assert.Contains(t, out, "Replay Round-Robin (q=3)")
	assert.Contains(t, out, "Tick: 00003 [ Preempt  ] => Task: A")
	assert.Contains(t, out, "Tick: 00009 [  Finish  ] => Task: A")
}

func TestRun_InvalidWorkload(t *testing.T) {
	_, err := execute(t, "run", "-f", writeWorkload(t, "tasks:\n  - {id: A, arrival: 0, burst: 0, priority: 1}\n"))
	assert.ErrorIs(t, err, sched.ErrInvalidInput)

	_, err = execute(t, "run", "-f", writeWorkload(t, twoTasks), "-a", "lottery")
	assert.ErrorIs(t, err, sched.ErrUnknownAlgorithm)
}

func TestRun_RequiresFile(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}

func startTestServer(t *testing.T) string {
	t.Helper()
	ts := httptest.NewServer(httpserver.New(zerolog.Nop(), sched.Priority).Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestSubmit(t *testing.T) {
	url := startTestServer(t)

	out, err := execute(t, "submit", "-f", writeWorkload(t, twoTasks), "--server", url)
	require.NoError(t, err)

	assert.Contains(t, out, "Results (rr)")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"A", "0", "3", "-", "-", "-"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"B", "3", "2", "5", "2", "4"}, strings.Fields(lines[3]))
}

func TestSubmit_ServerError(t *testing.T) {
	url := startTestServer(t)

	_, err := execute(t, "submit", "-f", writeWorkload(t, twoTasks), "--server", url, "-a", "lottery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server: unknown algorithm")
}
