// Package decisions accepts reviewer decision submissions, validates them
// strictly, and commits them to the audit ledger. Submissions are not
// idempotent: the same decision submitted twice yields two ledger entries.
package decisions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drishti-labs/drishti/internal/ledger"
)

// Submission is the raw decision payload as received from the client.
// Comments stays nil when the field is absent; an explicit empty string is
// preserved as such.
type Submission struct {
	Action   string  `json:"action"`
	Comments *string `json:"comments,omitempty"`
}

// ParseSubmission decodes and validates a raw decision payload. Validation
// is strict: a payload that is not a JSON object, an action outside the
// recognized kinds (or of the wrong type), or a non-string comments value
// all fail without any side effects.
func ParseSubmission(raw []byte) (*Submission, ledger.Action, error) {
	var sub Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			switch typeErr.Field {
			case "comments":
				return nil, "", fmt.Errorf("%w: got %s", ErrInvalidComments, typeErr.Value)
			case "action":
				return nil, "", fmt.Errorf("%w: got %s", ledger.ErrInvalidAction, typeErr.Value)
			}
		}
		return nil, "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	action, err := ledger.ParseAction(sub.Action)
	if err != nil {
		return nil, "", err
	}

	return &sub, action, nil
}
