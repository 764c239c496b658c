package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"intervista/internal/server"
)

// ServeOptions holds command-line options for the serve command.
type ServeOptions struct {
	ConfigPath string
	Addr       string
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis pipeline over HTTP",
		Long: `Run an HTTP server exposing the analysis pipeline.

Endpoints:
  POST /v1/analyze  Interview-log text in the body, JSON report out.
                    Optional as_of=YYYY-MM-DD query parameter pins the
                    reference date.
  GET  /healthz     Liveness check.

Each request is one independent pipeline run; the server holds no state
between requests. The listen address comes from --addr, the INTERVISTA_ADDR
environment variable (a .env file is honored), or the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Optional config file (labels, slots, server)")
	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Listen address (overrides config and environment)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	// Optional .env for INTERVISTA_ADDR and friends; absence is fine.
	_ = godotenv.Load()

	cfg, err := loadConfig(cmd.Context(), opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}
