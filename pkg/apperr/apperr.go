// Package apperr defines the error taxonomy shared by the repository,
// service, and handler layers. Every failure a handler can observe wraps
// exactly one of the sentinel kinds below, so status mapping happens in
// one place instead of per endpoint.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrStore        = errors.New("store failure")
)

func wrap(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}

func InvalidInputf(format string, args ...interface{}) error {
	return wrap(ErrInvalidInput, fmt.Sprintf(format, args...))
}

func Forbiddenf(format string, args ...interface{}) error {
	return wrap(ErrForbidden, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) error {
	return wrap(ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...interface{}) error {
	return wrap(ErrConflict, fmt.Sprintf(format, args...))
}

func Storef(format string, args ...interface{}) error {
	return wrap(ErrStore, fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error to its response status. Anything outside the
// taxonomy is treated as a store failure (500); callers must not leak the
// underlying detail for that case.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
