package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so transport handlers can map it to a status
// code without inspecting messages.
type Kind int

const (
	Unknown Kind = iota
	Validation
	Auth
	NotFound
	Conflict
	InsufficientStock
	Storage
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the Kind of err, or Unknown for errors that did not come
// out of this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the status code the API surface reports.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation, InsufficientStock:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Storage:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message. Storage and unclassified
// errors are masked so backend details never leak into responses.
func Message(err error) string {
	switch KindOf(err) {
	case Storage, Unknown:
		return "internal server error"
	default:
		return err.Error()
	}
}
