package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent failures surfaced to callers of the core services.
// Transport failures are wrapped in TransportError and also match ErrTransport.
var (
	// ErrNotFound indicates a referenced entity does not exist.
	// Returned, for example, when labelling a message with an unknown label name.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPath indicates an empty or malformed hierarchical path.
	ErrInvalidPath = errors.New("invalid path")

	// ErrAmbiguousResource indicates more than one same-named resource
	// exists under a parent. Only returned by resolvers in strict mode.
	ErrAmbiguousResource = errors.New("ambiguous resource")

	// ErrStaleCursor indicates the remote service returned the cursor it was
	// just given, which would otherwise loop forever.
	ErrStaleCursor = errors.New("stale page cursor")

	// ErrTransport indicates a network or HTTP failure from the remote client.
	ErrTransport = errors.New("transport error")

	// Provider status classes. These are joined with ErrTransport by
	// TransportError so callers can match either.

	// ErrUnauthorized indicates invalid or expired credentials.
	ErrUnauthorized = errors.New("unauthorised (invalid credentials)")

	// ErrForbidden indicates insufficient permissions.
	ErrForbidden = errors.New("forbidden (insufficient permissions)")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// TransportError is a failure reported by the remote resource client.
// It is never retried by the core.
type TransportError struct {
	// Op names the remote call that failed, e.g. "files.list".
	Op string
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Kind is one of the status class sentinels above, or nil.
	Kind error
	// Err is the underlying client error.
	Err error
}

var _ error = (*TransportError)(nil)

func (e *TransportError) Error() string {
	if e == nil {
		return "(*TransportError)(nil)"
	}
	msg := ErrTransport.Error() + ": " + e.Op
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes ErrTransport, the status class and the cause to errors.Is/As.
func (e *TransportError) Unwrap() []error {
	errs := []error{ErrTransport}
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
