// Package ledger implements the review-decision audit trail: an append-only,
// time-ordered log of decisions and system events recorded against the active
// DPR analysis. Entries are created exactly once at commit time and are never
// mutated, reordered, or truncated afterward.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one immutable record of a decision or system event.
// Comments is nil when the submitter provided none; an empty string is a
// distinct, deliberate value.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Comments  *string   `json:"comments,omitempty"`
}

// AppendCommand carries a validated reviewer decision into the ledger.
type AppendCommand struct {
	Action   Action
	User     string
	Comments *string
}

// Validate checks the command preconditions before any commit occurs.
func (c AppendCommand) Validate() error {
	if !c.Action.Valid() {
		return ErrInvalidAction
	}
	if c.User == "" {
		return ErrMissingUser
	}
	return nil
}

// RecordCommand carries a system event (e.g. analysis pipeline lifecycle)
// into the ledger. Action is the display label verbatim.
type RecordCommand struct {
	Action   string
	User     string
	Comments *string
}

// Validate checks the command preconditions before any commit occurs.
func (c RecordCommand) Validate() error {
	if c.Action == "" {
		return ErrMissingAction
	}
	if c.User == "" {
		return ErrMissingUser
	}
	return nil
}
