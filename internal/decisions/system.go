package decisions

import (
	"context"
	"log/slog"

	"github.com/drishti-labs/drishti/internal/accounts"
	"github.com/drishti-labs/drishti/internal/ledger"
)

// System defines the decision submission surface.
type System interface {
	Handler() *Handler
	Submit(ctx context.Context, raw []byte, actingUser string) (*ledger.Entry, error)
}

type service struct {
	ledger       ledger.System
	accounts     ActorResolver
	defaultActor string
	logger       *slog.Logger
}

// ActorResolver maps a session token to its account. Satisfied by
// accounts.System.
type ActorResolver interface {
	ResolveSession(ctx context.Context, token string) (*accounts.Account, error)
}

// New creates a decision System writing to the given ledger. defaultActor
// attributes submissions that arrive without a session.
func New(led ledger.System, accounts ActorResolver, defaultActor string, logger *slog.Logger) System {
	return &service{
		ledger:       led,
		accounts:     accounts,
		defaultActor: defaultActor,
		logger:       logger,
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.accounts, s.defaultActor, s.logger)
}

// Submit validates the raw payload and appends the decision to the ledger.
// Every accepted submission produces a new entry, even when identical to a
// previous one.
func (s *service) Submit(ctx context.Context, raw []byte, actingUser string) (*ledger.Entry, error) {
	sub, action, err := ParseSubmission(raw)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledger.Append(ctx, ledger.AppendCommand{
		Action:   action,
		User:     actingUser,
		Comments: sub.Comments,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("decision recorded",
		"action", action,
		"user", actingUser,
		"entry", entry.ID,
	)

	return entry, nil
}
