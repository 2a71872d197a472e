package ledger

import (
	"net/url"
	"strings"

	"github.com/drishti-labs/drishti/pkg/query"
	"github.com/drishti-labs/drishti/pkg/repository"
)

func newEntryProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "audit_entries", "a").
		Project("ID", "id").
		Project("Timestamp", "committed_at").
		Project("Action", "action").
		Project("User", "username").
		Project("Comments", "comments")
}

// Filters narrows audit listings. Nil fields are ignored.
type Filters struct {
	Action *string
	User   *string
	Search *string
}

// FiltersFromQuery extracts audit filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if action := values.Get("action"); action != "" {
		f.Action = &action
	}

	if user := values.Get("user"); user != "" {
		f.User = &user
	}

	if search := values.Get("search"); search != "" {
		f.Search = &search
	}

	return f
}

func (f Filters) apply(b *query.Builder) {
	b.WhereEquals("Action", f.Action).
		WhereEquals("User", f.User).
		WhereSearch(f.Search, "Action", "User", "Comments")
}

// matches evaluates the filters against an entry in memory, mirroring the
// SQL semantics used by the persistent backend.
func (f Filters) matches(e Entry) bool {
	if f.Action != nil && e.Action != *f.Action {
		return false
	}

	if f.User != nil && e.User != *f.User {
		return false
	}

	if f.Search != nil {
		needle := strings.ToLower(*f.Search)
		comments := ""
		if e.Comments != nil {
			comments = *e.Comments
		}

		if !strings.Contains(strings.ToLower(e.Action), needle) &&
			!strings.Contains(strings.ToLower(e.User), needle) &&
			!strings.Contains(strings.ToLower(comments), needle) {
			return false
		}
	}

	return true
}

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry

	err := s.Scan(
		&e.ID,
		&e.Timestamp,
		&e.Action,
		&e.User,
		&e.Comments,
	)

	return e, err
}
