// Package bosherr defines the error taxonomy of the BOSH client binding.
package bosherr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrAlreadyStopped is returned by Stop when the session's control
// goroutine has already exited. It is a no-op indication, not a failure.
var ErrAlreadyStopped = errors.New("session already stopped")

// ErrUnsupported is returned for capabilities this binding never
// negotiates: TLS upgrade and zlib stream compression. The transported
// XML is plaintext and uncompressed; TLS at the HTTP layer is
// orthogonal and not negotiated here.
var ErrUnsupported = errors.New("capability not supported by the BOSH binding")

// StartupError indicates the session control goroutine could not be
// started.
type StartupError struct {
	Reason string
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("session startup failed: %s", e.Reason)
}

// TransportError indicates an HTTP request carrying a body document
// failed, either at the network layer (Err non-nil) or with a non-2xx
// status.
type TransportError struct {
	// RID is the request id of the failed request.
	RID int64
	// Status is the HTTP status received, or 0 if the request never
	// completed.
	Status int
	// Err is the underlying network error, if any.
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport failure for request %d: %v", e.RID, e.Err)
	}
	return fmt.Sprintf("transport failure for request %d: HTTP status %d", e.RID, e.Status)
}

// Unwrap returns the underlying network error, if any.
func (e *TransportError) Unwrap() error { return e.Err }

// SessionFailed indicates the session tore down because a server reply
// could not be decoded.
type SessionFailed struct {
	Err error
}

func (e *SessionFailed) Error() string {
	return fmt.Sprintf("session failed: %v", e.Err)
}

// Unwrap returns the decode error which failed the session.
func (e *SessionFailed) Unwrap() error { return e.Err }
