package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drishti-labs/drishti/pkg/pagination"
)

// memorySystem is the in-process ledger backend. All commits flow through a
// single mutex so entry ids and timestamps are assigned atomically, and the
// observed timestamp sequence never decreases even if the wall clock does.
type memorySystem struct {
	mu         sync.RWMutex
	entries    []Entry
	last       time.Time
	clock      Clock
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an in-memory ledger System. The ledger starts empty; pass
// SystemClock() outside of tests.
func New(logger *slog.Logger, clock Clock, pagination pagination.Config) System {
	return &memorySystem{
		entries:    make([]Entry, 0),
		clock:      clock,
		logger:     logger,
		pagination: pagination,
	}
}

func (s *memorySystem) Handler() *Handler {
	return NewHandler(s, s.logger, s.pagination)
}

func (s *memorySystem) Append(ctx context.Context, cmd AppendCommand) (*Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return s.commit(cmd.Action.Label(), cmd.User, cmd.Comments), nil
}

func (s *memorySystem) Record(ctx context.Context, cmd RecordCommand) (*Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return s.commit(cmd.Action, cmd.User, cmd.Comments), nil
}

func (s *memorySystem) commit(action, user string, comments *string) *Entry {
	if comments != nil {
		c := *comments
		comments = &c
	}

	s.mu.Lock()

	now := s.clock.Now().UTC()
	if now.Before(s.last) {
		now = s.last
	}
	s.last = now

	entry := Entry{
		ID:        uuid.New(),
		Timestamp: now,
		Action:    action,
		User:      user,
		Comments:  comments,
	}

	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	s.logger.Info("audit entry committed",
		"id", entry.ID,
		"action", entry.Action,
		"user", entry.User,
	)

	return &entry
}

// All returns every entry in commit order. The returned slice is a snapshot:
// entries committed after the call begins do not appear in it.
func (s *memorySystem) All(ctx context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *memorySystem) Find(ctx context.Context, id uuid.UUID) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}

	return nil, ErrNotFound
}

// List pages over a filtered snapshot in commit order.
func (s *memorySystem) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Entry], error) {
	if page.Search != nil && filters.Search == nil {
		filters.Search = page.Search
	}

	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]Entry, 0, len(all))
	for _, e := range all {
		if filters.matches(e) {
			matched = append(matched, e)
		}
	}

	result := pagination.NewPageResult(
		pagination.Slice(matched, page),
		len(matched),
		page.Page,
		page.PageSize,
	)

	return &result, nil
}
