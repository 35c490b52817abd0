package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpserver "rqsim/internal/http"
	"rqsim/internal/sched"
)

func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduler over HTTP (POST /schedule)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = cfg.Listen
			}
			def, err := sched.ParseAlgorithm(cfg.DefaultAlgorithm)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              listen,
				Handler:           httpserver.New(logger, def).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info().Str("addr", listen).Str("default_algorithm", def.String()).Msg("listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
			}

			logger.Info().Msg("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from config)")
	return cmd
}
