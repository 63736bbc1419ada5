package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/control-validator/internal/config"
	"github.com/phrazzld/control-validator/internal/generation"
	"github.com/phrazzld/control-validator/internal/prompt"
	"github.com/phrazzld/control-validator/internal/redact"
	"github.com/phrazzld/control-validator/internal/service"
)

// application holds all the shared application dependencies. Everything here
// is built once at startup and only read afterwards.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Service interfaces
	generator         generation.Generator
	validationService service.ValidationService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	// Keep the credential out of every log line from here on
	redact.RegisterSecret(cfg.LLM.APIKey)

	// Parse the prompt template up front so a broken override fails startup
	builder, err := prompt.NewBuilderFromFile(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}
	logger.Info("Prompt template loaded", "template", builder.Name())

	// Create the LLM generator
	app.generator, err = newGenerator(ctx, cfg.LLM, logger.With("component", "llm_generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully", "provider", cfg.LLM.Provider)

	// Initialize validation service
	app.validationService, err = service.NewValidationService(
		builder,
		app.generator,
		cfg.LLM.Provider,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// shutdownTimeout bounds how long in-flight requests may run after a shutdown signal.
func (app *application) shutdownTimeout() time.Duration {
	if app.config.Server.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
