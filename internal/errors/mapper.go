// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Kind is the closed set of failure categories the API can surface.
// Every handler goes through Status/Message so the transport mapping
// lives in exactly one place.
type Kind uint8

const (
	KindInternal Kind = iota
	KindInvalid
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidMedia
	KindStorageUnavailable
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind with a caller-facing message.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from any error, translating well-known
// infra errors (gorm sentinels, context cancellation) along the way.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return KindConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return KindInternal
	default:
		return KindInternal
	}
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindInvalid, KindInvalidMedia:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the plain-text body for an error response. The
// caller-facing message is preferred; raw infra errors fall back to
// their own text like the rest of the API does.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}

	switch KindOf(err) {
	case KindNotFound:
		return "Not Found"
	default:
		return err.Error()
	}
}
