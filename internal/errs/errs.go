// Package errs defines the error types returned to API clients.
//
// Every error that reaches the wire is an *HTTPError: a status code, a
// machine-readable code string, a human-readable message, and optionally a
// list of per-field validation errors. The global error handler middleware
// serializes it to JSON as-is, so clients always receive the same shape.
package errs

import (
	"net/http"
	"strings"
)

// FieldError describes a single validation failure on a named field.
//
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the field name the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type for API responses.
//
// It implements the error interface and is designed to be serialized
// directly to JSON by the global error handler.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors, when applicable.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so errors.Is can be
// used to detect the type regardless of the concrete status/code.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// NewValidationError creates a 422 Unprocessable Entity HTTPError carrying
// per-field diagnostics. Every rejected binding ends up here: a missing
// required value, a length or bound violation, an enum miss, a malformed
// email/URL/card number, or a type that could not be coerced.
func NewValidationError(message string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		// http.StatusText(422) => "Unprocessable Entity" => "UNPROCESSABLE_ENTITY"
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)),
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a generic 500 HTTPError.
//
// The message is the bare status text on purpose: internal details belong
// in the logs, not in the response body.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// MakeUpperCaseWithUnderscores converts a status text into a stable
// machine-readable code, e.g. "Unprocessable Entity" -> "UNPROCESSABLE_ENTITY".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
