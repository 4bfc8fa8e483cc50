package media

import "errors"

// ErrNotFound is returned when a stored file does not exist.
var ErrNotFound = errors.New("file not found")

// ValidationError reports client input that failed validation. Code is a
// stable machine-readable identifier, Message the human-readable detail.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
