package dashboard

import "errors"

// Control-flow errors returned by the Controller.
var (
	// ErrNotAuthenticated is returned when an operation is attempted
	// without a current session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrLoggedOut is returned when an operation was aborted because
	// the server rejected the session and a forced logout ran. The
	// user-facing message has already been emitted by the session
	// store.
	ErrLoggedOut = errors.New("session invalidated by the server")

	// ErrDeleteCanceled is returned when the user declined the delete
	// confirmation. No network call was made.
	ErrDeleteCanceled = errors.New("deletion canceled")
)
