// Package apperr defines the domain error taxonomy. Services return these
// kinds; only the HTTP layer maps them to status codes.
package apperr

import "fmt"

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError.
func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup of a record that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError.
func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// DependencyUnavailableError reports a dependency that is not configured or
// not reachable. Hint carries a remediation suggestion for the caller.
type DependencyUnavailableError struct {
	Msg  string
	Hint string
	Err  error
}

func (e *DependencyUnavailableError) Error() string { return e.Msg }

func (e *DependencyUnavailableError) Unwrap() error { return e.Err }

// DependencyUnavailable builds a DependencyUnavailableError.
func DependencyUnavailable(msg, hint string, err error) *DependencyUnavailableError {
	return &DependencyUnavailableError{Msg: msg, Hint: hint, Err: err}
}

// UpstreamError preserves a non-2xx upstream response for diagnostic
// passthrough. Body holds the raw upstream payload.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// Upstream builds an UpstreamError.
func Upstream(status int, body []byte) *UpstreamError {
	return &UpstreamError{StatusCode: status, Body: body}
}
