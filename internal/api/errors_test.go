package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "error field preferred",
			status:  400,
			body:    `{"error":"title is required","message":"ignored"}`,
			wantMsg: "title is required",
		},
		{
			name:    "message field fallback",
			status:  422,
			body:    `{"message":"validation failed"}`,
			wantMsg: "validation failed",
		},
		{
			name:    "empty body falls back to status message",
			status:  500,
			body:    "",
			wantMsg: "request failed with status 500",
		},
		{
			name:    "non-JSON body falls back to status message",
			status:  502,
			body:    "Bad Gateway",
			wantMsg: "request failed with status 502",
		},
		{
			name:    "JSON body without known fields",
			status:  503,
			body:    `{"detail":"downstream"}`,
			wantMsg: "request failed with status 503",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			apiErr := newAPIError(tc.status, []byte(tc.body))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.wantMsg, apiErr.Message)
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUnauthorized(newAPIError(401, nil)))
	assert.False(t, IsUnauthorized(newAPIError(403, nil)))
	assert.False(t, IsUnauthorized(errors.New("connection refused")))
	assert.False(t, IsUnauthorized(nil))

	// Wrapped errors still match.
	wrapped := fmt.Errorf("listing tasks: %w", newAPIError(401, nil))
	assert.True(t, IsUnauthorized(wrapped))
}

func TestAPIErrorString(t *testing.T) {
	t.Parallel()

	apiErr := newAPIError(404, []byte(`{"error":"task not found"}`))
	assert.Equal(t, "api error (status 404): task not found", apiErr.Error())
}
