package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain errors
type ErrorKind int

const (
	// Input errors
	KindValidation ErrorKind = iota + 1 // malformed input to a constructor or setter

	// Resource errors
	KindConflict // unique key already exists
	KindNotFound // lookup by key yielded no match

	// State errors
	KindInvalidState // operation disallowed in the current aggregate state
)

// String returns the label used in rendered error messages.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not found"
	case KindInvalidState:
		return "invalid state"
	default:
		return "unknown"
	}
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the domain error type returned by every operation in the library
// core. Callers inspect Kind (via KindOf or IsKind) instead of matching
// message text.
type Error struct {
	Kind   ErrorKind    `json:"kind"`
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Common error constructors

func NewValidationError(fieldErrors []FieldError) *Error {
	// Build detailed message from field errors
	detail := "one or more fields failed validation"
	if len(fieldErrors) > 0 {
		detail = fmt.Sprintf("%s: %s", fieldErrors[0].Field, fieldErrors[0].Message)
		if len(fieldErrors) > 1 {
			detail = fmt.Sprintf("%s (and %d more errors)", detail, len(fieldErrors)-1)
		}
	}
	return &Error{
		Kind:   KindValidation,
		Detail: detail,
		Errors: fieldErrors,
	}
}

func NewConflictError(detail string) *Error {
	return &Error{
		Kind:   KindConflict,
		Detail: detail,
	}
}

func NewNotFoundError(resource string) *Error {
	return &Error{
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s not found", resource),
	}
}

func NewInvalidStateError(detail string) *Error {
	return &Error{
		Kind:   KindInvalidState,
		Detail: detail,
	}
}

// KindOf returns the kind of a domain error, or 0 when err is not a *Error.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return 0
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
