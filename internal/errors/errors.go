// Package errors defines custom error types for the recommendation client.
// RequestError classifies a failed backend call before the client folds it
// into its "no result" contract.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// RequestError represents a failed backend call
type RequestError struct {
	Type       string
	Op         string
	Message    string
	StatusCode int
	Cause      error
}

func (e *RequestError) Error() string {
	prefix := e.Type
	if e.Op != "" {
		prefix = fmt.Sprintf("%s: %s", e.Type, e.Op)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the same request may succeed if the user repeats it.
func (e *RequestError) Retryable() bool {
	switch e.Type {
	case ErrorTypeTransport, ErrorTypeRateLimited:
		return true
	case ErrorTypeHTTPStatus:
		return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}

// Error type constants
const (
	ErrorTypeTransport    = "TRANSPORT"
	ErrorTypeHTTPStatus   = "HTTP_STATUS"
	ErrorTypeDecode       = "DECODE"
	ErrorTypeMissingField = "MISSING_FIELD"
	ErrorTypeInvalidInput = "INVALID_INPUT"
	ErrorTypeRateLimited  = "RATE_LIMITED"
)

// NewRequestError creates a new RequestError
func NewRequestError(errorType, op, message string, cause error) *RequestError {
	return &RequestError{
		Type:    errorType,
		Op:      op,
		Message: message,
		Cause:   cause,
	}
}

// NewTransportError wraps a network level failure, timeouts included
func NewTransportError(op string, cause error) *RequestError {
	return NewRequestError(ErrorTypeTransport, op, "request failed", cause)
}

// NewStatusError creates an error for a non-success HTTP status
func NewStatusError(op string, statusCode int) *RequestError {
	err := NewRequestError(ErrorTypeHTTPStatus, op, fmt.Sprintf("backend returned status %d", statusCode), nil)
	err.StatusCode = statusCode
	return err
}

// NewDecodeError wraps a response body that could not be parsed
func NewDecodeError(op string, cause error) *RequestError {
	return NewRequestError(ErrorTypeDecode, op, "failed to decode response", cause)
}

// NewMissingFieldError creates an error for a decoded body lacking an expected key
func NewMissingFieldError(op, field string) *RequestError {
	return NewRequestError(ErrorTypeMissingField, op, fmt.Sprintf("response has no %q field", field), nil)
}

// NewInvalidInputError creates an error for a request rejected before sending
func NewInvalidInputError(op, message string) *RequestError {
	return NewRequestError(ErrorTypeInvalidInput, op, message, nil)
}

// NewRateLimitedError wraps a rate limiter wait that did not complete
func NewRateLimitedError(op string, cause error) *RequestError {
	return NewRequestError(ErrorTypeRateLimited, op, "rate limiter wait aborted", cause)
}

// TypeOf returns the RequestError type found in err's chain, or "UNKNOWN".
func TypeOf(err error) string {
	var reqErr *RequestError
	if stderrors.As(err, &reqErr) {
		return reqErr.Type
	}
	return "UNKNOWN"
}

// IsRetryable reports whether err carries a retryable RequestError.
func IsRetryable(err error) bool {
	var reqErr *RequestError
	if stderrors.As(err, &reqErr) {
		return reqErr.Retryable()
	}
	return false
}
