package errdefs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a command failure so callers can decide how to react
// without parsing message text.
type Kind string

const (
	// KindCredential is an identity-provider rejection (wrong password,
	// unknown user). The message is provider-supplied and shown verbatim.
	KindCredential Kind = "credential"
	// KindAuthorization is an expired or invalid bearer token.
	KindAuthorization Kind = "authorization"
	// KindValidation is a client-side input error, blocked before dispatch.
	KindValidation Kind = "validation"
	// KindUnavailable is a transport-level failure: the service could not
	// be reached or did not answer in time.
	KindUnavailable Kind = "unavailable"
	// KindServer is any other 4xx/5xx answer from a backend.
	KindServer Kind = "server"
)

var ErrInFlight = New(KindValidation, "command already in flight for this target")

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// From converts an arbitrary error into an *Error, leaving existing
// *Error values untouched. Unknown errors are treated as transport
// failures since everything a command does past validation is a
// network call.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(KindUnavailable, err.Error(), err)
}

// KindOf reports the Kind of err, or KindUnavailable for errors that
// did not originate here.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnavailable
}

// FromStatus maps a backend HTTP status to an error of the right Kind,
// keeping the message extracted from the response body.
func FromStatus(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return New(KindAuthorization, message)
	}
	return New(KindServer, message)
}
