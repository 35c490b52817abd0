package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rqsim/internal/logging"
	"rqsim/internal/sched"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	cfg    sched.Config
	logger zerolog.Logger
)

// NewRootCmd creates the root cobra command for the rqsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rqsim",
		Short: "rqsim simulates CPU scheduling algorithms",
		Long:  "rqsim runs FCFS, SJF, Priority and Round-Robin over a task set and reports timing metrics and a timeline.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := sched.Load(flagConfig)
			if err != nil {
				return err
			}
			// flags win over the config file
			if f := cmd.Flag("log-level"); f != nil && f.Changed {
				c.LogLevel = flagLogLevel
			}
			if f := cmd.Flag("log-format"); f != nil && f.Changed {
				c.LogFormat = flagLogFormat
			}
			cfg = c
			logger = logging.NewWithWriter(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "config.yml", "Path to the YAML config file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "Log format (console, json)")

	root.AddCommand(
		newRunCmd(),
		newServeCmd(),
		newSubmitCmd(),
	)

	return root
}
