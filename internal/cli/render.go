package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"rqsim/internal/sched"
)

// ticksWidth is the number of chart columns per simulated tick.
const ticksWidth = 3

func printResult(w io.Writer, res sched.Result) {
	fmt.Fprintf(w, "Execution Order (%s)\n", res.Algorithm.Title())
	fmt.Fprintf(w, "%-10s  %7s  %5s  %8s  %5s  %10s  %7s  %10s\n",
		"TASK", "ARRIVAL", "BURST", "PRIORITY", "START", "COMPLETION", "WAITING", "TURNAROUND")
	fmt.Fprintf(w, "%-10s  %7s  %5s  %8s  %5s  %10s  %7s  %10s\n",
		"----", "-------", "-----", "--------", "-----", "----------", "-------", "----------")
	for _, m := range res.Rows() {
		fmt.Fprintf(w, "%-10s  %7d  %5d  %8d  %5d  %10d  %7d  %10d\n",
			m.ID, m.Arrival, m.Burst, m.Priority, m.Start, m.Completion, m.Waiting, m.Turnaround)
	}
	fmt.Fprintf(w, "Avg waiting: %.2f  Avg turnaround: %.2f  Avg response: %.2f\n",
		res.AverageWaiting(), res.AverageTurnaround(), res.AverageResponse())
	fmt.Fprintf(w, "Makespan: %d  Idle: %d  Utilization: %.1f%%  Context switches: %d\n",
		res.Makespan(), res.IdleTime(), res.Utilization()*100, res.ContextSwitches())
}

// printGantt draws the timeline as one bar row and one time axis row.
// Idle gaps are drawn as "-".
func printGantt(w io.Writer, res sched.Result) {
	if len(res.Segments) == 0 {
		return
	}

	var bar, axis strings.Builder
	bar.WriteString("|")
	axis.WriteString("0")

	span := func(label string, from, to int) {
		width := max((to-from)*ticksWidth, len(label)+2)
		bar.WriteString(center(label, width))
		bar.WriteString("|")

		// place the end tick under the closing bar
		mark := strconv.Itoa(to)
		pad := bar.Len() - 1 - axis.Len()
		if pad < 1 {
			pad = 1
		}
		axis.WriteString(strings.Repeat(" ", pad))
		axis.WriteString(mark)
	}

	prev := 0
	for _, s := range res.Segments {
		if s.Start > prev {
			span("-", prev, s.Start)
		}
		span(string(s.TaskID), s.Start, s.End())
		prev = s.End()
	}

	fmt.Fprintln(w, bar.String())
	fmt.Fprintln(w, axis.String())
}

func printComparison(w io.Writer, results []sched.Result) {
	fmt.Fprintln(w, "Comparison")
	fmt.Fprintf(w, "%-28s  %11s  %14s  %12s  %8s  %8s\n",
		"ALGORITHM", "AVG WAITING", "AVG TURNAROUND", "AVG RESPONSE", "MAKESPAN", "SWITCHES")
	for _, res := range results {
		fmt.Fprintf(w, "%-28s  %11.2f  %14.2f  %12.2f  %8d  %8d\n",
			res.Algorithm.Title(), res.AverageWaiting(), res.AverageTurnaround(),
			res.AverageResponse(), res.Makespan(), res.ContextSwitches())
	}
}

func formatEvent(ev sched.StatusEvent) string {
	id := string(ev.TaskID)
	if ev.Kind == sched.StatusIdle {
		id = "-"
	}
	return fmt.Sprintf("Tick: %05d [%s] => Task: %-8s ran=%d remaining=%d",
		ev.Time, center(ev.Kind.String(), 10), id, ev.Ran, ev.Remaining)
}

// center pads str with spaces to width, biased left on odd padding.
func center(str string, width int) string {
	if len(str) >= width {
		return str
	}
	spaces := (width - len(str)) / 2
	return strings.Repeat(" ", spaces) + str + strings.Repeat(" ", width-(spaces+len(str)))
}
