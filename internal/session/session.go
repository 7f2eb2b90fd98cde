// Package session is the single source of truth for authentication
// state. It owns the current session, persists it across process
// restarts, and expires it automatically through a one-shot watchdog
// timer.
package session

import "time"

// Session is a read-only snapshot of the authentication state.
// ExpiresAt is an absolute epoch millisecond timestamp; zero means the
// expiry could not be determined from the token. A session may be
// legitimately authenticated without a known expiry.
type Session struct {
	Token     string
	Identity  string
	ExpiresAt int64
}

// IsAuthenticated reports whether a bearer token is present. This is
// the one and only definition of "logged in".
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// HasExpiry reports whether the session carries a known expiry.
func (s Session) HasExpiry() bool {
	return s.ExpiresAt > 0
}

// ExpiresIn returns the remaining lifetime relative to now. Only
// meaningful when HasExpiry is true.
func (s Session) ExpiresIn(now time.Time) time.Duration {
	return time.UnixMilli(s.ExpiresAt).Sub(now)
}

// LogoutReason selects the default user-facing message when a session
// is cleared.
type LogoutReason string

// Known logout reasons.
const (
	// ReasonManual is a user-initiated logout.
	ReasonManual LogoutReason = "manual"

	// ReasonExpired is a logout forced by the expiry watchdog.
	ReasonExpired LogoutReason = "expired"

	// ReasonUnauthorized is a logout forced by a 401 response from a
	// protected endpoint.
	ReasonUnauthorized LogoutReason = "unauthorized"
)

// defaultMessage returns the user-facing message for a reason.
func (r LogoutReason) defaultMessage() string {
	switch r {
	case ReasonExpired:
		return "Session expired. Please log in again."
	case ReasonUnauthorized:
		return "Authentication required. Please sign in again."
	default:
		return "Logged out successfully."
	}
}

// LogoutOptions customizes a Logout call.
type LogoutOptions struct {
	// Silent suppresses the user-facing notification.
	Silent bool

	// Message overrides the reason's default notification text.
	Message string
}
