package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/drishti-labs/drishti/pkg/pagination"
)

// System defines the audit ledger surface. Implementations must serialize
// commits so concurrent appends never interleave id generation with
// timestamp assignment, and All must return a snapshot unaffected by
// appends that commit after the call begins.
type System interface {
	Handler() *Handler
	Append(ctx context.Context, cmd AppendCommand) (*Entry, error)
	Record(ctx context.Context, cmd RecordCommand) (*Entry, error)
	All(ctx context.Context) ([]Entry, error)
	Find(ctx context.Context, id uuid.UUID) (*Entry, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Entry], error)
}
