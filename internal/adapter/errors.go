package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrUnavailable wraps transport failures: the server could not be
	// reached or the connection broke before a response arrived.
	ErrUnavailable = errors.New("server unavailable")

	// ErrStreamClosed is returned by [SnapshotStream.Next] once the stream
	// has ended, whether closed locally or by the server.
	ErrStreamClosed = errors.New("snapshot stream closed")

	ErrInvalidAddress = errors.New("invalid server address")
)

// ResponseError is a non-2xx server response.
type ResponseError struct {
	StatusCode int
	// Message is the server's error text, taken from the JSON error body
	// when present.
	Message string

	kind error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

// Unwrap returns the sentinel matching the status code.
func (e *ResponseError) Unwrap() error {
	return e.kind
}

// ServerMessage returns the server's error text carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message, true
	}
	return "", false
}
