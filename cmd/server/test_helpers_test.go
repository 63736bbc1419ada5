package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/control-validator/internal/config"
	"github.com/phrazzld/control-validator/internal/redact"
	"github.com/stretchr/testify/require"
)

// newTestConfig returns a valid configuration for provider.
func newTestConfig(provider string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 1,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
		LLM: config.LLMConfig{
			Provider:    provider,
			APIKey:      "test-api-key-0123456789",
			MaxTokens:   300,
			Temperature: 0.5,
		},
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCohereStub serves Cohere's generate endpoint with a fixed completion.
func newCohereStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

// newTestApplication wires an application whose cohere generator talks to baseURL.
func newTestApplication(t *testing.T, baseURL string) *application {
	t.Helper()
	t.Cleanup(redact.ResetSecrets)

	cfg := newTestConfig("cohere")
	cfg.LLM.BaseURL = baseURL

	app, err := newApplication(context.Background(), cfg, newTestLogger())
	require.NoError(t, err)
	return app
}
