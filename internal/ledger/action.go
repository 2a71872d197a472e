package ledger

import "fmt"

// Action identifies a reviewer decision kind.
type Action string

// Recognized decision kinds.
const (
	ActionApprove Action = "approve"
	ActionFlag    Action = "flag"
	ActionReject  Action = "reject"
)

var labels = map[Action]string{
	ActionApprove: "Approved for Committee Review",
	ActionFlag:    "Flagged for Clarification",
	ActionReject:  "Rejected",
}

// Valid reports whether the action is a recognized decision kind.
func (a Action) Valid() bool {
	_, ok := labels[a]
	return ok
}

// Label returns the display label recorded in the audit trail for this action.
// Returns an empty string for unrecognized actions.
func (a Action) Label() string {
	return labels[a]
}

// ParseAction converts a raw string into an Action, failing with
// ErrInvalidAction for anything outside the recognized kinds.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
	return a, nil
}

// IsDecisionLabel reports whether the given display label was produced by a
// reviewer decision, as opposed to a system event.
func IsDecisionLabel(label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
