package ledger

import (
	"errors"
	"net/http"
)

// Domain errors for ledger operations.
var (
	ErrInvalidAction = errors.New("action must be one of approve, flag, reject")
	ErrMissingAction = errors.New("action required")
	ErrMissingUser   = errors.New("acting user required")
	ErrNotFound      = errors.New("audit entry not found")
)

// MapHTTPStatus maps ledger domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidAction) || errors.Is(err, ErrMissingAction) || errors.Is(err, ErrMissingUser) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
