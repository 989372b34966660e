package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a Natal error code.
type ErrorCode string

const (
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"      // 400
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"    // 400
	ErrAmbiguousLocation ErrorCode = "AMBIGUOUS_LOCATION" // 400
	ErrNotFound          ErrorCode = "NOT_FOUND"          // 404
	ErrCancelled         ErrorCode = "CANCELLED"          // 499
	ErrLookupFailure     ErrorCode = "LOOKUP_FAILURE"     // 500
	ErrInternal          ErrorCode = "INTERNAL"           // 500
)

// NatalError represents a structured error with code, status, and details.
type NatalError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *NatalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidInput creates a 400 error for a physically impossible input value.
func NewInvalidInput(field string, value float64, msg string) *NatalError {
	return &NatalError{
		Code:    ErrInvalidInput,
		Status:  400,
		Message: fmt.Sprintf("%s %v: %s", field, value, msg),
		Details: map[string]any{"field": field, "value": value},
	}
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *NatalError {
	return &NatalError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewAmbiguousLocation creates a 400 error for when both a city and coordinates are provided.
func NewAmbiguousLocation() *NatalError {
	return &NatalError{
		Code:    ErrAmbiguousLocation,
		Status:  400,
		Message: "cannot specify both city and coordinates; use one location mode",
	}
}

// NewNotFound creates a 404 error for an unknown city or body.
func NewNotFound(kind, identifier string) *NatalError {
	return &NatalError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %s", kind, identifier),
		Details: map[string]any{"kind": kind, "identifier": identifier},
	}
}

// NewCancelled creates a 499 error for an operation whose context was cancelled.
func NewCancelled(operation string) *NatalError {
	return &NatalError{
		Code:    ErrCancelled,
		Status:  499,
		Message: operation + " cancelled",
	}
}

// NewLookupFailure creates a 500 error for a catalog entry that should always exist.
func NewLookupFailure(body string) *NatalError {
	return &NatalError{
		Code:    ErrLookupFailure,
		Status:  500,
		Message: fmt.Sprintf("catalog has no entry for %q", body),
		Details: map[string]any{"body": body},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message stays generic; the cause is kept in Details for logging.
func NewInternal(err error) *NatalError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &NatalError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
	}
}

// Is checks if an error (or anything it wraps) is a NatalError with the given code.
func Is(err error, code ErrorCode) bool {
	var nErr *NatalError
	if stderrors.As(err, &nErr) {
		return nErr.Code == code
	}
	return false
}
