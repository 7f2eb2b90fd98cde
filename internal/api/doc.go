// Package api is the HTTP client for the task API. It issues
// authenticated JSON requests, normalizes error responses into a typed
// APIError, and exposes the authentication and task endpoints as
// methods. The client never retries; every failure is returned to the
// caller.
package api
