package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// ValidationError is a business-rule rejection carrying a human-readable
// message and, when the rule concerns a single field, that field's name.
// It unwraps to ErrInvalidInput so callers can match with errors.Is.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}

func fieldErr(field, message string) error {
	return &ValidationError{Message: message, Field: field}
}
