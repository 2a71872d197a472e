package analysis

import (
	"errors"
	"net/http"
)

// ErrNoAnalysis indicates that no analysis has been produced yet.
var ErrNoAnalysis = errors.New("no analysis available")

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoAnalysis) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
