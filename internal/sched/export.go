package sched

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes the execution traces of results, one row per segment.
// completion is left blank on segments that do not finish their task.
func WriteCSV(w io.Writer, results ...Result) error {
	cw := csv.NewWriter(w)

	// write header
	if err := cw.Write([]string{"algorithm", "task_id", "start", "execute", "end", "remaining", "completion"}); err != nil {
		return err
	}
	for _, res := range results {
		if err := writeTrace(cw, res); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTrace(cw *csv.Writer, res Result) error {
	for _, s := range res.Segments {
		completion := ""
		if s.Final() {
			completion = strconv.Itoa(s.Completion)
		}
		rec := []string{
			res.Algorithm.String(),
			string(s.TaskID),
			strconv.Itoa(s.Start),
			strconv.Itoa(s.Execute),
			strconv.Itoa(s.End()),
			strconv.Itoa(s.Remaining),
			completion,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
