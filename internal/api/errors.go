package api

import (
	"errors"
	"fmt"
)

// errMalformed marks a 2xx response whose body could not be used
var errMalformed = errors.New("malformed response")

// RequestFailure is the single failure category for backend calls.
// Status is 0 when no response was received.
type RequestFailure struct {
	Op     string
	Method string
	Path   string
	Status int
	Err    error
}

// Error implements the error interface
func (e *RequestFailure) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s %s: status %d: %v", e.Op, e.Method, e.Path, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// IsRequestFailure reports whether err is or wraps a *RequestFailure
func IsRequestFailure(err error) bool {
	var rf *RequestFailure
	return errors.As(err, &rf)
}
