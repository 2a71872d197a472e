// Package accounts manages reviewer accounts and their login sessions.
// Accounts are held in process; the demo reviewer account is seeded at
// construction so the dashboard is usable out of the box.
package accounts

import "github.com/google/uuid"

// Account identifies a reviewer. The password is never serialized.
type Account struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"-"`
}

// CreateCommand carries the fields needed to register a new account.
type CreateCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both credential fields are present.
func (c CreateCommand) Validate() error {
	if c.Username == "" {
		return ErrMissingUsername
	}
	if c.Password == "" {
		return ErrMissingPassword
	}
	return nil
}
