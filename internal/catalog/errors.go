package catalog

import "errors"

// ErrProductNotFound is returned when no product matches the given id.
var ErrProductNotFound = errors.New("Product not found")

// ValidationError reports a rejected product payload. It carries the
// single human-readable message of the first failing check.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
