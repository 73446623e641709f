package client

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrSessionInvalidated marks a 401 rejection. The client has already
// cleared the session and triggered navigation by the time callers see it;
// any further UI update after this error is moot.
var ErrSessionInvalidated = errors.New("session invalidated")

// ErrMalformedResponse marks a success response whose body fails the minimal
// shape the caller expects
var ErrMalformedResponse = errors.New("malformed response")

// TransportError wraps a network failure: the call itself never completed.
// It carries no field detail.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to send request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FieldErrors maps a form field to its server-side validation message
type FieldErrors map[string]string

// Flatten joins all field messages into a single display string, sorted by
// field name so the output is stable.
func (f FieldErrors) Flatten() string {
	if len(f) == 0 {
		return ""
	}

	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, f[field]))
	}
	return strings.Join(parts, ", ")
}

// RequestError is a completed call with a non-success status. It carries the
// server's message and, when the server rejected a form, a field-level
// validation map.
type RequestError struct {
	Status  int
	Message string
	Fields  FieldErrors
}

func (e *RequestError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (%s)", e.Message, e.Fields.Flatten())
	}
	return e.Message
}

// Unwrap lets callers detect invalidation with
// errors.Is(err, ErrSessionInvalidated) while still reading the message.
func (e *RequestError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrSessionInvalidated
	}
	return nil
}
