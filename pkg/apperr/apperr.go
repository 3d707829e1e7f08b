// Package apperr holds error types shared by the domain packages and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

// ErrValidation marks every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports bad input on one field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Validation builds a ValidationError. err, when non-nil, is the more
// specific sentinel the caller may test for.
func Validation(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap exposes both ErrValidation and the specific cause.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
