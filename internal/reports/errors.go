package reports

import (
	"errors"
	"net/http"
)

// Domain errors for report operations.
var (
	ErrNotFound        = errors.New("report not found")
	ErrDuplicate       = errors.New("report already exists")
	ErrMissingFilename = errors.New("filename required")
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
	ErrNotPDF          = errors.New("only PDF reports are accepted")
)

// MapHTTPStatus maps report domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrMissingFilename), errors.Is(err, ErrEmptyFile), errors.Is(err, ErrNotPDF):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
