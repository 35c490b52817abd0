package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rqsim/internal/job"
	"rqsim/internal/sched"
)

func newRunCmd() *cobra.Command {
	var (
		file      string
		algorithm string
		all       bool
		csvPath   string
		gantt     bool
		replay    bool
		tickMS    int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a workload locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := job.LoadFile(file)
			if err != nil {
				return err
			}
			if err := job.Validate(w.Tasks); err != nil {
				return err
			}

			algs := sched.Algorithms
			if !all {
				if algorithm != "" {
					w.Algorithm = algorithm
				}
				alg, err := w.Resolve(cfg.DefaultAlgorithm)
				if err != nil {
					return err
				}
				algs = []sched.Algorithm{alg}
			}

			out := cmd.OutOrStdout()
			results := make([]sched.Result, 0, len(algs))
			for _, alg := range algs {
				runLog := logger.With().Str("run_id", uuid.NewString()).Str("algorithm", alg.String()).Logger()

				res, err := sched.Schedule(w.Tasks, alg)
				if err != nil {
					return fmt.Errorf("schedule %s: %w", alg, err)
				}
				runLog.Debug().
					Int("tasks", len(w.Tasks)).
					Int("segments", len(res.Segments)).
					Int("makespan", res.Makespan()).
					Msg("simulation finished")
				results = append(results, res)

				printResult(out, res)
				if gantt {
					printGantt(out, res)
				}
				fmt.Fprintln(out)
			}
			if all {
				printComparison(out, results)
			}

			if csvPath != "" {
				if err := writeCSVFile(csvPath, results); err != nil {
					return err
				}
				logger.Info().Str("path", csvPath).Msg("trace written")
			}

			if replay {
				if tickMS <= 0 {
					tickMS = cfg.TickMS
				}
				for _, res := range results {
					if err := replayResult(cmd, res, time.Duration(tickMS)*time.Millisecond); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Workload file (YAML or JSON)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm (fcfs, sjf, priority, rr); overrides the workload")
	cmd.Flags().BoolVar(&all, "all", false, "Run every algorithm and compare them")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the execution trace as CSV to this path")
	cmd.Flags().BoolVar(&gantt, "gantt", true, "Print a gantt chart")
	cmd.Flags().BoolVar(&replay, "replay", false, "Replay scheduler events in paced simulated time")
	cmd.Flags().IntVar(&tickMS, "tick-ms", 0, "Replay pace per simulated tick (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func writeCSVFile(path string, results []sched.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := sched.WriteCSV(f, results...); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}

func replayResult(cmd *cobra.Command, res sched.Result, interval time.Duration) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Replay %s\n", res.Algorithm.Title())

	clock := sched.NewTickClock(1)
	clock.Start(interval)
	defer clock.Stop()

	return sched.Replay(cmd.Context(), sched.Events(res), clock, func(ev sched.StatusEvent) {
		fmt.Fprintln(out, formatEvent(ev))
	})
}
