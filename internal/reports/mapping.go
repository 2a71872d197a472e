package reports

import (
	"net/url"

	"github.com/drishti-labs/drishti/pkg/query"
	"github.com/drishti-labs/drishti/pkg/repository"
)

func newReportProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "reports", "r").
		Project("ID", "id").
		Project("Filename", "filename").
		Project("ContentType", "content_type").
		Project("SizeBytes", "size_bytes").
		Project("PageCount", "page_count").
		Project("StorageKey", "storage_key").
		Project("Status", "status").
		Project("UploadedAt", "uploaded_at").
		Project("UpdatedAt", "updated_at")
}

// Filters narrows report listings. Nil fields are ignored.
type Filters struct {
	Status   *string `json:"status,omitempty"`
	Filename *string `json:"filename,omitempty"`
}

// FiltersFromQuery extracts report filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if status := values.Get("status"); status != "" {
		f.Status = &status
	}

	if filename := values.Get("filename"); filename != "" {
		f.Filename = &filename
	}

	return f
}

func (f Filters) apply(b *query.Builder) {
	b.WhereEquals("Status", f.Status).
		WhereContains("Filename", f.Filename)
}

func scanReport(s repository.Scanner) (Report, error) {
	var r Report

	err := s.Scan(
		&r.ID,
		&r.Filename,
		&r.ContentType,
		&r.SizeBytes,
		&r.PageCount,
		&r.StorageKey,
		&r.Status,
		&r.UploadedAt,
		&r.UpdatedAt,
	)

	return r, err
}
