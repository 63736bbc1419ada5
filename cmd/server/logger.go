package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/control-validator/internal/config"
	"github.com/phrazzld/control-validator/internal/platform/logger"
)

// setupAppLogger configures and initializes the application logger based on config settings.
// Returns the configured logger or an error if setup fails.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	// Log basic configuration details after the logger is in place
	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"provider", cfg.LLM.Provider)
	if cfg.LLM.ModelName != "" {
		l.Debug("LLM model override", "model", cfg.LLM.ModelName)
	}
	if cfg.LLM.PromptTemplatePath != "" {
		l.Debug("Prompt template override", "path", cfg.LLM.PromptTemplatePath)
	}

	return l, nil
}
