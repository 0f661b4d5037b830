package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/piresc/dispatch/internal/pkg/constants"
)

// Boundary error kinds. Wrap them with fmt.Errorf("...: %w") to add context.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrAlreadyTerminal   = errors.New("ride already terminal")
	ErrRateLimited       = errors.New("updates too frequent")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("concurrent modification")
	ErrUnknownDriver     = errors.New("unknown driver")
)

// Validation wraps ErrValidation with a formatted detail
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound naming the missing resource
func NotFound(resource, id string) error {
	return fmt.Errorf("%s %s: %w", resource, id, ErrNotFound)
}

// HTTPStatus maps an error to the response status code
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownDriver):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrAlreadyTerminal), errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Code maps an error to the websocket error code
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return constants.ErrorValidationFailed
	case errors.Is(err, ErrRateLimited):
		return constants.ErrorRateLimitExceeded
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownDriver):
		return constants.ErrorNotFound
	case errors.Is(err, ErrForbidden):
		return constants.ErrorForbidden
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrAlreadyTerminal), errors.Is(err, ErrConflict):
		return constants.ErrorConflict
	default:
		return constants.ErrorInternalError
	}
}

// Message returns the text safe to show a client. Internal errors are not exposed.
func Message(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}
