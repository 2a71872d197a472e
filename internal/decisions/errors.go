package decisions

import (
	"errors"
	"net/http"

	"github.com/drishti-labs/drishti/internal/accounts"
	"github.com/drishti-labs/drishti/internal/ledger"
)

// Domain errors for decision submission.
var (
	ErrMalformedPayload = errors.New("invalid decision payload")
	ErrInvalidComments  = errors.New("comments must be a string")
)

// MapHTTPStatus maps decision errors, including the ledger and session
// errors that surface through submission, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMalformedPayload), errors.Is(err, ErrInvalidComments):
		return http.StatusBadRequest
	case errors.Is(err, accounts.ErrInvalidSession):
		return http.StatusUnauthorized
	default:
		return ledger.MapHTTPStatus(err)
	}
}
