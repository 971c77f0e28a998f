package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DecodeJSON reads and decodes a response body, then closes it
func DecodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NoError(t, json.Unmarshal(body, target), "failed to decode body: %s", string(body))
}

// AssertJSONResponse asserts the status code and decodes the body into target
func AssertJSONResponse(t *testing.T, resp *http.Response, wantStatus int, target interface{}) {
	t.Helper()

	assert.Equal(t, wantStatus, resp.StatusCode)
	DecodeJSON(t, resp, target)
}

// ErrorPayload is the JSON shape of error responses
type ErrorPayload struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// AssertErrorResponse asserts the status code and the error message. An empty
// wantMessage skips the message check.
func AssertErrorResponse(t *testing.T, resp *http.Response, wantStatus int, wantMessage string) ErrorPayload {
	t.Helper()

	assert.Equal(t, wantStatus, resp.StatusCode)

	var payload ErrorPayload
	DecodeJSON(t, resp, &payload)
	if wantMessage != "" {
		assert.Contains(t, payload.Error, wantMessage)
	}
	return payload
}
