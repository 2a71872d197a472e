package accounts

import (
	"context"

	"github.com/google/uuid"
)

// System defines the account and session surface.
type System interface {
	Handler() *Handler
	Find(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	Create(ctx context.Context, cmd CreateCommand) (*Account, error)

	// Login verifies credentials and issues a session token. It fails with
	// ErrInvalidCredentials whether the username or the password was wrong;
	// callers must not be able to tell which.
	Login(ctx context.Context, username, password string) (*Account, string, error)

	// ResolveSession maps a session token back to its account, failing with
	// ErrInvalidSession for unknown tokens.
	ResolveSession(ctx context.Context, token string) (*Account, error)
}
