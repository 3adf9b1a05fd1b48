package main

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/venturechess/portfolio/backend/internal/client/backend"
	"github.com/venturechess/portfolio/backend/internal/config"
	"github.com/venturechess/portfolio/backend/internal/logging"
)

const defaultBackend = "http://localhost:8080"

// cli carries the state shared by every subcommand.
type cli struct {
	out io.Writer

	backendURL string
	timeout    time.Duration
	verbose    bool

	logger *zap.Logger
	client *backend.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "contactctl",
		Short:         "Submit and inspect coaching inquiries",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				logger, err := logging.New(config.LogConfig{Level: "debug", Development: true})
				if err != nil {
					return err
				}
				c.logger = logger
			}
			c.client = backend.New(c.backendURL, backend.WithHTTPClient(&http.Client{Timeout: c.timeout}))
			c.logger.Debug("using backend", zap.String("url", c.client.BaseURL()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.SetOut(out)

	defaultURL := os.Getenv("BACKEND_BASE_URL")
	if defaultURL == "" {
		defaultURL = defaultBackend
	}

	root.PersistentFlags().StringVar(&c.backendURL, "backend", defaultURL, "backend base URL (env BACKEND_BASE_URL)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 15*time.Second, "per-request timeout, 0 disables it")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(c.submitCmd(), c.listCmd(), c.healthCmd())
	return root
}
