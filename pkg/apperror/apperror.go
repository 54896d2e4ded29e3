package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the transport layer can pick a status
// code without string matching on error messages.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindAuthorization
	KindState
	KindServer
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func State(message string) *Error {
	return &Error{Kind: KindState, Message: message}
}

func Server(message string, err error) *Error {
	return &Error{Kind: KindServer, Message: message, Err: err}
}

// KindOf extracts the kind of err, defaulting to KindServer for
// anything that did not come out of this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindServer
}

// StatusCode maps the error taxonomy onto HTTP statuses.
// Validation and illegal state transitions are both client mistakes.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation, KindState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
