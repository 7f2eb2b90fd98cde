package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/gcunha/taskdeck/internal/config"
	"github.com/gcunha/taskdeck/internal/platform/logger"
)

// Client talks to the task API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from the API configuration.
func New(cfg config.APIConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		log:        log,
	}
}

// do issues one JSON request. A non-empty token is sent as a bearer
// credential. out, when non-nil, receives the decoded 2xx body.
// Non-2xx responses become *APIError; transport failures are wrapped
// and returned as is. There are no retries.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	bearer string,
	body, out interface{},
) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	log := logger.FromContextOrDefault(ctx, c.log).With(
		"method", method,
		"path", path,
		"request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("request transport failure", "error", err)
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newAPIError(resp.StatusCode, raw)
		log.Debug("request rejected",
			"status", resp.StatusCode,
			"message", apiErr.Message)
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}
