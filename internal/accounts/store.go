package accounts

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// store is the in-process account backend. Username lookups are
// case-sensitive: "Admin" and "admin" are distinct accounts.
type store struct {
	mu        sync.RWMutex
	accounts  map[uuid.UUID]Account
	usernames map[string]uuid.UUID
	sessions  map[string]uuid.UUID
	logger    *slog.Logger
}

// New creates an in-memory account System, registering each seed account.
// A seed that collides with an earlier one is logged and skipped.
func New(logger *slog.Logger, seeds ...CreateCommand) System {
	s := &store{
		accounts:  make(map[uuid.UUID]Account),
		usernames: make(map[string]uuid.UUID),
		sessions:  make(map[string]uuid.UUID),
		logger:    logger,
	}

	for _, seed := range seeds {
		if _, err := s.Create(context.Background(), seed); err != nil {
			logger.Warn("skipping seed account", "username", seed.Username, "error", err)
		}
	}

	return s
}

func (s *store) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *store) Find(ctx context.Context, id uuid.UUID) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &account, nil
}

func (s *store) FindByUsername(ctx context.Context, username string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, ErrNotFound
	}

	account := s.accounts[id]
	return &account, nil
}

func (s *store) Create(ctx context.Context, cmd CreateCommand) (*Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernames[cmd.Username]; exists {
		return nil, ErrDuplicateUsername
	}

	account := Account{
		ID:       uuid.New(),
		Username: cmd.Username,
		Password: cmd.Password,
	}

	s.accounts[account.ID] = account
	s.usernames[account.Username] = account.ID

	s.logger.Info("account created", "id", account.ID, "username", account.Username)
	return &account, nil
}

func (s *store) Login(ctx context.Context, username, password string) (*Account, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	account := s.accounts[id]
	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return nil, "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.sessions[token] = account.ID

	s.logger.Info("session issued", "username", account.Username)
	return &account, token, nil
}

func (s *store) ResolveSession(ctx context.Context, token string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sessions[token]
	if !ok {
		return nil, ErrInvalidSession
	}

	account := s.accounts[id]
	return &account, nil
}
