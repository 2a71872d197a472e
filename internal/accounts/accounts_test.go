package accounts_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/drishti-labs/drishti/internal/accounts"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seeded() accounts.System {
	return accounts.New(testLogger(), accounts.CreateCommand{Username: "admin", Password: "password123"})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("registers account", func(t *testing.T) {
		sys := accounts.New(testLogger())

		account, err := sys.Create(ctx, accounts.CreateCommand{Username: "priya", Password: "secret"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if account.Username != "priya" {
			t.Errorf("username = %q, want priya", account.Username)
		}

		found, err := sys.FindByUsername(ctx, "priya")
		if err != nil {
			t.Fatalf("FindByUsername: %v", err)
		}
		if found.ID != account.ID {
			t.Errorf("id = %v, want %v", found.ID, account.ID)
		}
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		sys := seeded()

		if _, err := sys.Create(ctx, accounts.CreateCommand{Username: "admin", Password: "other"}); !errors.Is(err, accounts.ErrDuplicateUsername) {
			t.Fatalf("err = %v, want ErrDuplicateUsername", err)
		}
	})

	t.Run("usernames are case-sensitive", func(t *testing.T) {
		sys := seeded()

		if _, err := sys.Create(ctx, accounts.CreateCommand{Username: "Admin", Password: "secret"}); err != nil {
			t.Fatalf("Create(Admin): %v", err)
		}

		if _, err := sys.FindByUsername(ctx, "ADMIN"); !errors.Is(err, accounts.ErrNotFound) {
			t.Errorf("FindByUsername(ADMIN) = %v, want ErrNotFound", err)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		sys := accounts.New(testLogger())

		if _, err := sys.Create(ctx, accounts.CreateCommand{Password: "x"}); !errors.Is(err, accounts.ErrMissingUsername) {
			t.Errorf("err = %v, want ErrMissingUsername", err)
		}
		if _, err := sys.Create(ctx, accounts.CreateCommand{Username: "x"}); !errors.Is(err, accounts.ErrMissingPassword) {
			t.Errorf("err = %v, want ErrMissingPassword", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues session for valid credentials", func(t *testing.T) {
		sys := seeded()

		account, token, err := sys.Login(ctx, "admin", "password123")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if token == "" {
			t.Fatal("empty session token")
		}

		resolved, err := sys.ResolveSession(ctx, token)
		if err != nil {
			t.Fatalf("ResolveSession: %v", err)
		}
		if resolved.ID != account.ID {
			t.Errorf("resolved id = %v, want %v", resolved.ID, account.ID)
		}
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		sys := seeded()

		_, _, badPassword := sys.Login(ctx, "admin", "wrong")
		_, _, unknownUser := sys.Login(ctx, "ghost", "password123")

		if !errors.Is(badPassword, accounts.ErrInvalidCredentials) {
			t.Errorf("bad password err = %v, want ErrInvalidCredentials", badPassword)
		}
		if !errors.Is(unknownUser, accounts.ErrInvalidCredentials) {
			t.Errorf("unknown user err = %v, want ErrInvalidCredentials", unknownUser)
		}
		if badPassword.Error() != unknownUser.Error() {
			t.Error("failure messages differ between wrong password and unknown user")
		}
	})

	t.Run("unknown token fails", func(t *testing.T) {
		sys := seeded()

		if _, err := sys.ResolveSession(ctx, "bogus"); !errors.Is(err, accounts.ErrInvalidSession) {
			t.Errorf("err = %v, want ErrInvalidSession", err)
		}
	})
}
