// Package main implements the entry point for the control validator API
// server, which asks a language model to assess internal-audit controls.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The root command runs the server.
func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "control-validator",
		Short: "Control Validator API - assess audit controls with a language model",
		Long: `Control Validator serves an HTTP API that evaluates whether an internal-audit
control is effectively designed to mitigate its risk. Each request is turned into a
prompt and answered by the configured text-generation provider.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, envFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		fmt.Sprintf("dotenv file to load before reading the environment (default %q when present)", ".env"))

	rootCmd.AddCommand(newPromptCmd())
	return rootCmd
}

// runServer loads configuration, wires the application and serves until ctx
// is cancelled. A configuration error is returned before anything listens.
func runServer(ctx context.Context, envFile string) error {
	cfg, err := loadAppConfig(envFile)
	if err != nil {
		return err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("failed to initialize application", "error", err)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
