// Package reports manages uploaded DPR documents: PDF validation, blob
// storage, catalog rows in PostgreSQL, and handoff to the analysis pipeline.
package reports

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses.
const (
	StatusUploaded = "uploaded"
	StatusAnalyzed = "analyzed"
)

// Report is a catalog row for an uploaded document. StorageKey addresses the
// blob holding the original file.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count,omitempty"`
	StorageKey  string    `json:"storage_key"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries an uploaded file into the reports system.
type CreateCommand struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Validate checks the command preconditions before any storage writes.
func (c CreateCommand) Validate() error {
	if c.Filename == "" {
		return ErrMissingFilename
	}
	if len(c.Data) == 0 {
		return ErrEmptyFile
	}
	return nil
}

// BatchResult reports the outcome of one file within a batch upload.
type BatchResult struct {
	Filename string  `json:"filename"`
	Report   *Report `json:"report,omitempty"`
	Error    string  `json:"error,omitempty"`
}
