// Package errs defines the application error catalogue: each business error
// code maps to a client-facing message and an HTTP status.
package errs

import (
	"fmt"
	"net/http"

	"worko/internal/pkg/logx"
)

// CustomError is the error type used throughout the service. It implements
// the standard error interface and carries the business code plus the HTTP
// status the response layer should emit.
type CustomError struct {
	// Code is the internal business error code (see error_codes.go).
	Code int

	// Message is the client-facing error description.
	Message string

	// Status is the HTTP status code for this error.
	Status int
}

// Error implements the error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("error code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError returns the *CustomError registered for code. An unregistered
// code falls back to ErrInternal. When cause is supplied it is logged, never
// sent to the client.
func NewError(code int, cause ...error) *CustomError {
	template, ok := errorMap[code]
	if !ok {
		logx.Error(fmt.Errorf("unregistered error code %d", code), "errs.NewError called with unknown code")
		template = errorMap[ErrInternal]
	}

	if template.Status == 0 {
		template.Status = http.StatusBadRequest
	}

	if len(cause) > 0 && cause[0] != nil {
		logx.Error(cause[0], "request failed", "error_code", template.Code)
	}

	return &template
}
