package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	httpserver "rqsim/internal/http"
	"rqsim/internal/job"
)

// defaultServer returns the default server URL, checking RQSIM_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("RQSIM_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

func newSubmitCmd() *cobra.Command {
	var (
		file      string
		algorithm string
		server    string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Simulate a workload on a remote server",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := job.LoadFile(file)
			if err != nil {
				return err
			}
			if algorithm != "" {
				w.Algorithm = algorithm
			}

			client := NewClient(server, logger)
			resp, err := client.Schedule(cmd.Context(), httpserver.ScheduleRequest{
				Tasks:     w.Tasks,
				Algorithm: w.Algorithm,
			})
			if err != nil {
				return fmt.Errorf("submit: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Results (%s)\n", resp.Algorithm)
			fmt.Fprintf(out, "%-10s  %5s  %7s  %10s  %7s  %10s\n", "TASK", "START", "EXECUTE", "COMPLETION", "WAITING", "TURNAROUND")
			for _, e := range resp.Scheduled {
				fmt.Fprintf(out, "%-10s  %5d  %7d  %10s  %7s  %10s\n",
					e.ID, e.StartTime, e.ExecuteTime, optInt(e.CompletionTime), optInt(e.WaitingTime), optInt(e.TurnaroundTime))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Workload file (YAML or JSON)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm (fcfs, sjf, priority, rr); overrides the workload")
	cmd.Flags().StringVar(&server, "server", defaultServer(), "rqsim server URL (or RQSIM_SERVER env)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
