package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/control-validator/internal/platform/logger"
	"github.com/phrazzld/control-validator/internal/redact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "result payload",
			status:       http.StatusOK,
			data:         map[string]string{"result": "VALID - ok"},
			expectedBody: `{"result":"VALID - ok"}`,
		},
		{
			name:         "empty response",
			status:       http.StatusOK,
			data:         map[string]interface{}{},
			expectedBody: `{}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody+"\n", w.Body.String())
		})
	}
}

// Test for json encoding errors - this requires a data type that can't be JSON encoded
type unencodable struct {
	Fn func()
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	log, buf := logger.GetTestLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, unencodable{Fn: func() {}})

	// Status code is already written
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	ctx := WithTraceID(context.Background(), "test-trace-id")
	req := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusUnprocessableEntity, "missing required query parameter(s): risk")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "missing required query parameter(s): risk", response.Detail)
	assert.Equal(t, "test-trace-id", response.TraceID)
}

func TestRespondWithErrorNoTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusInternalServerError, "boom")

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "boom", raw["detail"])
	_, hasTrace := raw["trace_id"]
	assert.False(t, hasTrace, "trace_id should be omitted when unknown")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		detail           string
		err              error
		expectedLogLevel string
	}{
		{
			name:             "server error",
			statusCode:       http.StatusInternalServerError,
			detail:           "upstream unavailable",
			err:              errors.New("upstream unavailable"),
			expectedLogLevel: "ERROR",
		},
		{
			name:             "gateway timeout",
			statusCode:       http.StatusGatewayTimeout,
			detail:           "context deadline exceeded",
			err:              context.DeadlineExceeded,
			expectedLogLevel: "ERROR",
		},
		{
			name:             "client error",
			statusCode:       http.StatusUnprocessableEntity,
			detail:           "missing required query parameter(s): control",
			err:              errors.New("missing required query parameter(s): control"),
			expectedLogLevel: "DEBUG",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.GetTestLogger(t)
			ctx := WithTraceID(context.Background(), "test-trace-id")
			ctx = logger.WithLogger(ctx, log)
			req := httptest.NewRequest(http.MethodPost, "/validate-control", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.statusCode, tc.detail, tc.err)

			assert.Equal(t, tc.statusCode, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.detail, response.Detail)
			assert.Equal(t, "test-trace-id", response.TraceID)

			logger.AssertLogField(t, buf, "level", tc.expectedLogLevel)
			logger.AssertLogField(t, buf, "trace_id", "test-trace-id")
			logger.AssertLogField(t, buf, "status_code", float64(tc.statusCode))
			assert.Contains(t, buf.String(), "error_type")
		})
	}
}

func TestRespondWithErrorAndLog_RedactsLogOnly(t *testing.T) {
	redact.RegisterSecret("sk-live-0123456789abcdef")
	t.Cleanup(redact.ResetSecrets)

	log, buf := logger.GetTestLogger(t)
	req := httptest.NewRequest(http.MethodPost, "/validate-control", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	err := errors.New("auth failed for key sk-live-0123456789abcdef")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, err.Error(), err)

	assert.NotContains(t, buf.String(), "sk-live-0123456789abcdef")

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, strings.HasPrefix(response.Detail, "auth failed"))
}

func TestRespondWithErrorAndLog_DefaultLogger(t *testing.T) {
	var sb strings.Builder
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&sb, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(old)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "boom", errors.New("boom"))

	assert.Contains(t, sb.String(), "API error response")
	assert.Contains(t, sb.String(), "level=ERROR")
}
