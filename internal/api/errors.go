package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx HTTP response from the task API. It carries
// the status code so callers can distinguish authorization failures
// (401) from validation failures (4xx) from server faults (5xx).
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the server-provided error or message field, or a
	// generic status-coded fallback when the body was not parseable.
	Message string

	// Body is the raw response body, kept for diagnostics.
	Body json.RawMessage
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// errorBody is the error shape the API uses: an `error` or `message`
// field on non-2xx responses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// newAPIError builds an APIError from a non-2xx response body,
// extracting the server message when one is present.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("request failed with status %d", status),
	}
	if len(body) == 0 {
		return apiErr
	}

	apiErr.Body = json.RawMessage(body)
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}
	switch {
	case parsed.Error != "":
		apiErr.Message = parsed.Error
	case parsed.Message != "":
		apiErr.Message = parsed.Message
	}
	return apiErr
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is an APIError with status 401.
// The orchestration layer uses this to force a logout.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}
