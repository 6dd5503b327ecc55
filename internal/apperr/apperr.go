// Package apperr defines the error kinds shared by the store, service and API layers.
//
// Lower layers wrap a kind with context, e.g. fmt.Errorf("%w: name is required", apperr.ErrValidation),
// and the API layer maps it back to an HTTP status with HTTPStatus.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrNoFieldsProvided   = errors.New("no fields to update")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

var statusByKind = []struct {
	kind   error
	status int
}{
	{ErrValidation, http.StatusBadRequest},
	{ErrNotFound, http.StatusNotFound},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrInvalidStatus, http.StatusBadRequest},
	{ErrNoFieldsProvided, http.StatusBadRequest},
	{ErrBackendUnavailable, http.StatusServiceUnavailable},
}

// HTTPStatus maps err to the status code of its kind, 500 for anything unknown
func HTTPStatus(err error) int {
	for _, k := range statusByKind {
		if errors.Is(err, k.kind) {
			return k.status
		}
	}
	return http.StatusInternalServerError
}

// Kind returns the sentinel err wraps, or nil
func Kind(err error) error {
	for _, k := range statusByKind {
		if errors.Is(err, k.kind) {
			return k.kind
		}
	}
	return nil
}

// PublicMessage returns a message safe to show to API callers.
// Known kinds keep their wrapped context; unknown errors are hidden.
func PublicMessage(err error) string {
	kind := Kind(err)
	if kind == nil {
		return "internal server error"
	}
	msg := err.Error()
	if prefix := kind.Error() + ": "; strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	return msg
}
