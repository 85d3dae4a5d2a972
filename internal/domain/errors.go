package domain

import "errors"

// ErrValidation is the sentinel all input validation failures wrap.
// Handlers map it to a 400 with the concrete reason as the message.
var ErrValidation = errors.New("validation failed")

// ValidationError carries a human-readable reason and matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validationError(reason string) error {
	return &ValidationError{Reason: reason}
}
