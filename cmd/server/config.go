package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/control-validator/internal/config"
)

// loadAppConfig loads the application configuration from the environment, an
// optional dotenv file and an optional config file.
// Returns the loaded config and any loading error.
func loadAppConfig(envFile string) (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}
