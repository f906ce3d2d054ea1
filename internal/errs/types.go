package errs

import (
	"strings"
	"time"
)

// FieldError represents a single field-level validation failure.
//
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the application error type carried from the service and
// repository layers up to the global error handler.
//
// It satisfies the error interface. Fields:
//   - Code: machine-readable code (e.g. "STUDENT_ALREADY_EXISTS")
//   - Message: human-readable message
//   - Status: the HTTP status the global handler should write
//   - Override: lets the handler keep the message verbatim for clients
//   - Errors: optional field-level validation errors
type HTTPError struct {
	Code     string
	Message  string
	Status   int
	Override bool
	Errors   []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It makes
// errors.Is(err, &HTTPError{}) usable as a type check; it does not
// compare Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with only Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// ErrorResponse is the uniform error body written to clients:
// a timestamp, the failure message, and a request-context detail
// string (the request URI). Field errors are attached for validation
// failures only.
type ErrorResponse struct {
	Timestamp time.Time    `json:"timestamp"`
	Message   string       `json:"message"`
	Details   string       `json:"details"`
	Code      string       `json:"code,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES, used to derive stable error codes from
// HTTP status text ("Bad Request" -> "BAD_REQUEST").
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
