package ledger_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drishti-labs/drishti/internal/ledger"
	"github.com/drishti-labs/drishti/pkg/pagination"
)

// sequenceClock replays a fixed series of instants, repeating the last one
// once exhausted.
type sequenceClock struct {
	mu    sync.Mutex
	times []time.Time
	idx   int
}

func (c *sequenceClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.times[c.idx]
	if c.idx < len(c.times)-1 {
		c.idx++
	}
	return t
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPagination() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func newLedger() ledger.System {
	return ledger.New(testLogger(), ledger.SystemClock(), testPagination())
}

func ptr(s string) *string {
	return &s
}

func TestLedgerStartsEmpty(t *testing.T) {
	sys := newLedger()

	entries, err := sys.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}

func TestLedgerAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("records display labels in order", func(t *testing.T) {
		sys := newLedger()

		cmds := []ledger.AppendCommand{
			{Action: ledger.ActionApprove, User: "admin"},
			{Action: ledger.ActionFlag, User: "admin"},
			{Action: ledger.ActionReject, User: "admin"},
		}
		for _, cmd := range cmds {
			if _, err := sys.Append(ctx, cmd); err != nil {
				t.Fatalf("Append(%s): %v", cmd.Action, err)
			}
		}

		entries, err := sys.All(ctx)
		if err != nil {
			t.Fatalf("All: %v", err)
		}

		want := []string{
			"Approved for Committee Review",
			"Flagged for Clarification",
			"Rejected",
		}
		if len(entries) != len(want) {
			t.Fatalf("entries = %d, want %d", len(entries), len(want))
		}
		for i, label := range want {
			if entries[i].Action != label {
				t.Errorf("entries[%d].Action = %q, want %q", i, entries[i].Action, label)
			}
		}
	})

	t.Run("assigns unique ids", func(t *testing.T) {
		sys := newLedger()

		seen := make(map[uuid.UUID]bool)
		for range 50 {
			entry, err := sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionApprove, User: "admin"})
			if err != nil {
				t.Fatalf("Append: %v", err)
			}
			if seen[entry.ID] {
				t.Fatalf("duplicate id %v", entry.ID)
			}
			seen[entry.ID] = true
		}
	})

	t.Run("preserves absent comments as nil", func(t *testing.T) {
		sys := newLedger()

		entry, err := sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionApprove, User: "admin"})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
		if entry.Comments != nil {
			t.Errorf("comments = %q, want nil", *entry.Comments)
		}
	})

	t.Run("preserves empty-string comments", func(t *testing.T) {
		sys := newLedger()

		entry, err := sys.Append(ctx, ledger.AppendCommand{
			Action:   ledger.ActionFlag,
			User:     "admin",
			Comments: ptr(""),
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
		if entry.Comments == nil || *entry.Comments != "" {
			t.Errorf("comments = %v, want empty string", entry.Comments)
		}
	})

	t.Run("rejects invalid action without committing", func(t *testing.T) {
		sys := newLedger()

		if _, err := sys.Append(ctx, ledger.AppendCommand{Action: "escalate", User: "admin"}); err == nil {
			t.Fatal("expected error for unknown action")
		}

		entries, _ := sys.All(ctx)
		if len(entries) != 0 {
			t.Errorf("entries = %d, want 0 after rejected append", len(entries))
		}
	})

	t.Run("rejects missing user", func(t *testing.T) {
		sys := newLedger()

		if _, err := sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionApprove}); err == nil {
			t.Fatal("expected error for missing user")
		}
	})
}

func TestLedgerRecord(t *testing.T) {
	ctx := context.Background()
	sys := newLedger()

	entry, err := sys.Record(ctx, ledger.RecordCommand{
		Action:   "Analysis Completed",
		User:     "System",
		Comments: ptr("DPR Health Score: 88/100"),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if entry.Action != "Analysis Completed" {
		t.Errorf("action = %q, want Analysis Completed", entry.Action)
	}
	if entry.User != "System" {
		t.Errorf("user = %q, want System", entry.User)
	}

	if _, err := sys.Record(ctx, ledger.RecordCommand{User: "System"}); err == nil {
		t.Error("expected error for missing action")
	}
}

func TestLedgerTimestampsNeverDecrease(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// wall clock jumps backwards between the second and third commits
	clock := &sequenceClock{times: []time.Time{
		base,
		base.Add(2 * time.Second),
		base.Add(1 * time.Second),
		base.Add(3 * time.Second),
	}}

	sys := ledger.New(testLogger(), clock, testPagination())

	for range 4 {
		if _, err := sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionApprove, User: "admin"}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, _ := sys.All(ctx)
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
			t.Errorf("entries[%d] at %v precedes entries[%d] at %v",
				i, entries[i].Timestamp, i-1, entries[i-1].Timestamp)
		}
	}

	if got := entries[2].Timestamp; !got.Equal(base.Add(2 * time.Second)) {
		t.Errorf("clamped timestamp = %v, want %v", got, base.Add(2*time.Second))
	}
}

func TestLedgerConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	sys := newLedger()

	const writers = 20
	const perWriter = 10

	var wg sync.WaitGroup
	for range writers {
		wg.Go(func() {
			for range perWriter {
				sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionApprove, User: "admin"})
			}
		})
	}
	wg.Wait()

	entries, err := sys.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(entries) != writers*perWriter {
		t.Fatalf("entries = %d, want %d", len(entries), writers*perWriter)
	}

	seen := make(map[uuid.UUID]bool, len(entries))
	for i, e := range entries {
		if seen[e.ID] {
			t.Fatalf("duplicate id %v", e.ID)
		}
		seen[e.ID] = true

		if i > 0 && e.Timestamp.Before(entries[i-1].Timestamp) {
			t.Fatalf("timestamp order violated at index %d", i)
		}
	}
}

func TestLedgerAllSnapshot(t *testing.T) {
	ctx := context.Background()
	sys := newLedger()

	sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionApprove, User: "admin"})

	snapshot, err := sys.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}

	sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionReject, User: "admin"})

	if len(snapshot) != 1 {
		t.Errorf("snapshot length = %d, want 1 after later append", len(snapshot))
	}

	current, _ := sys.All(ctx)
	if len(current) != 2 {
		t.Errorf("entries = %d, want 2", len(current))
	}
}

func TestLedgerFind(t *testing.T) {
	ctx := context.Background()
	sys := newLedger()

	entry, err := sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionFlag, User: "admin"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	found, err := sys.Find(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found.Action != entry.Action {
		t.Errorf("action = %q, want %q", found.Action, entry.Action)
	}

	if _, err := sys.Find(ctx, uuid.New()); err != ledger.ErrNotFound {
		t.Errorf("Find(unknown) = %v, want ErrNotFound", err)
	}
}

func TestLedgerList(t *testing.T) {
	ctx := context.Background()
	sys := newLedger()

	sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionApprove, User: "admin", Comments: ptr("clear scope")})
	sys.Append(ctx, ledger.AppendCommand{Action: ledger.ActionFlag, User: "priya"})
	sys.Record(ctx, ledger.RecordCommand{Action: "Analysis Initiated", User: "System"})

	t.Run("filters by user", func(t *testing.T) {
		result, err := sys.List(ctx, pagination.PageRequest{Page: 1, PageSize: 20}, ledger.Filters{User: ptr("priya")})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("total = %d, want 1", result.Total)
		}
		if result.Data[0].Action != "Flagged for Clarification" {
			t.Errorf("action = %q, want Flagged for Clarification", result.Data[0].Action)
		}
	})

	t.Run("searches across comments", func(t *testing.T) {
		result, err := sys.List(ctx, pagination.PageRequest{Page: 1, PageSize: 20}, ledger.Filters{Search: ptr("scope")})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if result.Total != 1 {
			t.Errorf("total = %d, want 1", result.Total)
		}
	})

	t.Run("pages in commit order", func(t *testing.T) {
		result, err := sys.List(ctx, pagination.PageRequest{Page: 2, PageSize: 2}, ledger.Filters{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if result.Total != 3 {
			t.Errorf("total = %d, want 3", result.Total)
		}
		if len(result.Data) != 1 {
			t.Fatalf("page length = %d, want 1", len(result.Data))
		}
		if result.Data[0].Action != "Analysis Initiated" {
			t.Errorf("action = %q, want Analysis Initiated", result.Data[0].Action)
		}
	})
}

func TestParseAction(t *testing.T) {
	valid := map[string]string{
		"approve": "Approved for Committee Review",
		"flag":    "Flagged for Clarification",
		"reject":  "Rejected",
	}

	for raw, label := range valid {
		action, err := ledger.ParseAction(raw)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", raw, err)
		}
		if action.Label() != label {
			t.Errorf("label for %q = %q, want %q", raw, action.Label(), label)
		}
	}

	for _, raw := range []string{"", "Approve", "APPROVE", "escalate", "approved"} {
		if _, err := ledger.ParseAction(raw); err == nil {
			t.Errorf("ParseAction(%q) succeeded, want error", raw)
		}
	}
}
