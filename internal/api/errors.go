package api

import (
	"errors"
	"fmt"
)

// TransportError indicates the request never produced a server
// response: a timeout or a connectivity failure. The two are
// distinguished so callers can surface different messages.
type TransportError struct {
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Detail carries the server's
// human-readable message verbatim when present.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed (HTTP %d)", e.Status)
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Timeout
}

// UserMessage extracts the string to show the learner: the server's
// detail for server errors, the classified transport message
// otherwise, and a generic fallback for anything else.
func UserMessage(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Error()
	}
	var te *TransportError
	if errors.As(err, &te) {
		if te.Timeout {
			return "The request timed out. Please try again."
		}
		return "Could not reach the server. Check your network connection."
	}
	if err != nil {
		return err.Error()
	}
	return "Request failed."
}
