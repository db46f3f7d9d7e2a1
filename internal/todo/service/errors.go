package service

import (
	"errors"
	"strings"
)

var (
	ErrTodoNotFound       = errors.New("todo not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError carries every reason a request was rejected. Cause, when
// set, is matched by errors.Is.
type ValidationError struct {
	Reasons []string
	Cause   error
}

func (e *ValidationError) Error() string { return strings.Join(e.Reasons, " ") }

func (e *ValidationError) Unwrap() error { return e.Cause }

func invalid(cause error, reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons, Cause: cause}
}
