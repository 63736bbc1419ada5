package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/phrazzld/control-validator/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks. Should be used in tests when receiving an HTTP response.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// ValidControlQuery returns a query with all seven control fields populated.
func ValidControlQuery() url.Values {
	q := url.Values{}
	q.Set("process", "Procure to Pay")
	q.Set("subprocess", "Invoice Processing")
	q.Set("risk", "Duplicate payments")
	q.Set("frequency", "Monthly")
	q.Set("risk_description", "The same invoice is paid twice")
	q.Set("control", "Duplicate invoice report")
	q.Set("control_description", "AP supervisor reviews the duplicate invoice report each month")
	return q
}

// ExecuteValidateControl posts query to /validate-control on server.
// Automatically registers cleanup for the response body.
func ExecuteValidateControl(t *testing.T, server *httptest.Server, query url.Values) *http.Response {
	t.Helper()

	resp, err := http.Post(server.URL+"/validate-control?"+query.Encode(), "", nil)
	require.NoError(t, err, "Failed to execute validate-control request")
	CleanupResponseBody(t, resp)
	return resp
}

// AssertJSONResponse checks the status code and decodes the JSON body into target.
func AssertJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, target interface{}) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	require.NoError(t, json.Unmarshal(body, target), "Failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse checks that a response contains an error with the
// expected status code and detail, and returns the decoded body.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedDetailPart string,
) shared.ErrorResponse {
	t.Helper()

	var errResp shared.ErrorResponse
	AssertJSONResponse(t, resp, expectedStatus, &errResp)
	assert.Contains(t, errResp.Detail, expectedDetailPart,
		"Detail should contain '%s' but got '%s'", expectedDetailPart, errResp.Detail)
	return errResp
}
