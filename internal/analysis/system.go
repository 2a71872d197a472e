package analysis

import "context"

// ReportMeta carries the uploaded report's metadata into Produce.
type ReportMeta struct {
	FileName  string
	PageCount *int
}

// System defines the analysis surface. Current returns the active analysis
// with its audit trail spliced in fresh on every call.
type System interface {
	Handler() *Handler
	Current(ctx context.Context) (*Analysis, error)
	Summary(ctx context.Context) (*Summary, error)
	Produce(ctx context.Context, meta ReportMeta) (*Analysis, error)
}
