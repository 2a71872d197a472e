package ledger

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drishti-labs/drishti/pkg/pagination"
	"github.com/drishti-labs/drishti/pkg/query"
	"github.com/drishti-labs/drishti/pkg/repository"
)

// repositorySystem is the PostgreSQL-backed ledger. A bigserial seq column
// preserves commit order; id and timestamp assignment are serialized in
// process through a mutex, mirroring the in-memory backend.
type repositorySystem struct {
	db         *sql.DB
	logger     *slog.Logger
	clock      Clock
	pagination pagination.Config
	projection *query.ProjectionMap

	mu   sync.Mutex
	last time.Time
}

// NewRepository creates a PostgreSQL-backed ledger System.
func NewRepository(db *sql.DB, logger *slog.Logger, clock Clock, pagination pagination.Config) System {
	return &repositorySystem{
		db:         db,
		logger:     logger,
		clock:      clock,
		pagination: pagination,
		projection: newEntryProjection(),
	}
}

func (s *repositorySystem) Handler() *Handler {
	return NewHandler(s, s.logger, s.pagination)
}

func (s *repositorySystem) Append(ctx context.Context, cmd AppendCommand) (*Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return s.commit(ctx, cmd.Action.Label(), cmd.User, cmd.Comments)
}

func (s *repositorySystem) Record(ctx context.Context, cmd RecordCommand) (*Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return s.commit(ctx, cmd.Action, cmd.User, cmd.Comments)
}

func (s *repositorySystem) commit(ctx context.Context, action, user string, comments *string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()
	if now.Before(s.last) {
		now = s.last
	}
	s.last = now

	const insert = `
		INSERT INTO audit_entries (id, committed_at, action, username, comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, committed_at, action, username, comments`

	entry, err := repository.QueryOne(ctx, s.db, insert,
		[]any{uuid.New(), now, action, user, comments},
		scanEntry,
	)
	if err != nil {
		return nil, err
	}

	s.logger.Info("audit entry committed",
		"id", entry.ID,
		"action", entry.Action,
		"user", entry.User,
	)

	return &entry, nil
}

// All returns every entry in commit order. A single statement runs under one
// snapshot, so concurrent commits never appear partially.
func (s *repositorySystem) All(ctx context.Context) ([]Entry, error) {
	const selectAll = `
		SELECT id, committed_at, action, username, comments
		FROM audit_entries
		ORDER BY seq ASC`

	return repository.QueryMany(ctx, s.db, selectAll, nil, scanEntry)
}

func (s *repositorySystem) Find(ctx context.Context, id uuid.UUID) (*Entry, error) {
	b := query.NewBuilder(s.projection)
	sqlStr, args := b.BuildSingle("ID", id)

	entry, err := repository.QueryOne(ctx, s.db, sqlStr, args, scanEntry)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, err)
	}

	return &entry, nil
}

func (s *repositorySystem) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Entry], error) {
	if page.Search != nil && filters.Search == nil {
		filters.Search = page.Search
	}

	b := query.NewBuilder(s.projection, query.SortField{Field: "Timestamp"})
	filters.apply(b)

	if len(page.Sort) > 0 {
		b.OrderByFields(page.Sort)
	}

	countSQL, countArgs := b.BuildCount()
	total, err := repository.QueryOne(ctx, s.db, countSQL, countArgs, scanCount)
	if err != nil {
		return nil, err
	}

	pageSQL, pageArgs := b.BuildPage(page.Page, page.PageSize)
	entries, err := repository.QueryMany(ctx, s.db, pageSQL, pageArgs, scanEntry)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(entries, total, page.Page, page.PageSize)
	return &result, nil
}

func scanCount(s repository.Scanner) (int, error) {
	var n int
	err := s.Scan(&n)
	return n, err
}
