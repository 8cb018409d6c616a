package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestErrorMessage(t *testing.T) {
	err := NewTransportError("search", io.ErrUnexpectedEOF)
	assert.Equal(t, "TRANSPORT: search: request failed (caused by: unexpected EOF)", err.Error())
	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))

	status := NewStatusError("trending", 503)
	assert.Equal(t, "HTTP_STATUS: trending: backend returned status 503", status.Error())
	assert.Equal(t, 503, status.StatusCode)
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  *RequestError
		want bool
	}{
		{"transport", NewTransportError("op", io.EOF), true},
		{"rate limited", NewRateLimitedError("op", io.EOF), true},
		{"server error", NewStatusError("op", 500), true},
		{"too many requests", NewStatusError("op", 429), true},
		{"not found", NewStatusError("op", 404), false},
		{"decode", NewDecodeError("op", io.EOF), false},
		{"missing field", NewMissingFieldError("op", "results"), false},
		{"invalid input", NewInvalidInputError("op", "empty query"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Retryable())
		})
	}
}

func TestTypeOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewDecodeError("movie", io.EOF))
	assert.Equal(t, ErrorTypeDecode, TypeOf(wrapped))
	assert.False(t, IsRetryable(wrapped))

	assert.Equal(t, "UNKNOWN", TypeOf(io.EOF))
	assert.False(t, IsRetryable(io.EOF))
}
