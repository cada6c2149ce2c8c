package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors of the service layer. Handlers map them to HTTP
// status codes through StatusCode; services wrap them with context.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation failed")
	ErrInternal        = errors.New("internal error")
)

func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

func Conflict(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}

func Unauthenticated(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrUnauthenticated)
}

func Forbidden(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrForbidden)
}

func Internal(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
