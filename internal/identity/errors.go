package identity

import "errors"

// Domain errors returned by the identity service and its collaborators.
// The messages are user-facing and surface verbatim in API responses.
var (
	ErrUserNotFound    = errors.New("User not found")
	ErrEmailExists     = errors.New("Email already exists")
	ErrInvalidPassword = errors.New("Invalid password")
	ErrInvalidToken    = errors.New("Invalid or expired token")
)

// ValidationError reports a rejected registration payload. It carries the
// single human-readable message of the first failing check.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
