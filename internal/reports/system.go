package reports

import (
	"context"

	"github.com/google/uuid"

	"github.com/drishti-labs/drishti/pkg/pagination"
	"github.com/drishti-labs/drishti/pkg/storage"
)

// System defines the report catalog surface.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Report], error)
	Find(ctx context.Context, id uuid.UUID) (*Report, error)

	// Create validates and stores an uploaded PDF, then hands it to the
	// analysis pipeline. A report whose analysis fails stays in the catalog
	// with status "uploaded".
	Create(ctx context.Context, cmd CreateCommand) (*Report, error)

	// CreateBatch uploads several files concurrently, reporting per-file
	// outcomes. One file's failure never aborts the others.
	CreateBatch(ctx context.Context, cmds []CreateCommand) []BatchResult

	// Content returns the report row and a stream of the stored file.
	// The caller must close the stream body.
	Content(ctx context.Context, id uuid.UUID) (*Report, *storage.DownloadResult, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
