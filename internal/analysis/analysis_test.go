package analysis_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/drishti-labs/drishti/internal/analysis"
	"github.com/drishti-labs/drishti/internal/ledger"
	"github.com/drishti-labs/drishti/pkg/pagination"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProvider() (analysis.System, ledger.System) {
	led := ledger.New(testLogger(), ledger.SystemClock(), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	return analysis.New(led, testLogger()), led
}

func TestCurrentBeforeProduce(t *testing.T) {
	sys, _ := newProvider()

	if _, err := sys.Current(context.Background()); !errors.Is(err, analysis.ErrNoAnalysis) {
		t.Fatalf("err = %v, want ErrNoAnalysis", err)
	}
	if _, err := sys.Summary(context.Background()); !errors.Is(err, analysis.ErrNoAnalysis) {
		t.Fatalf("Summary err = %v, want ErrNoAnalysis", err)
	}
}

func TestProduce(t *testing.T) {
	ctx := context.Background()

	t.Run("records pipeline events", func(t *testing.T) {
		sys, led := newProvider()

		result, err := sys.Produce(ctx, analysis.ReportMeta{})
		if err != nil {
			t.Fatalf("Produce: %v", err)
		}

		if result.FileName != "Vol-1 Revised DPR Moreh Bypass.pdf" {
			t.Errorf("fileName = %q", result.FileName)
		}
		if result.HealthScore != 88 {
			t.Errorf("healthScore = %d, want 88", result.HealthScore)
		}

		entries, _ := led.All(ctx)
		if len(entries) != 2 {
			t.Fatalf("ledger entries = %d, want 2", len(entries))
		}
		if entries[0].Action != "Analysis Initiated" || entries[0].User != "System" {
			t.Errorf("first event = %q by %q", entries[0].Action, entries[0].User)
		}
		if entries[1].Action != "Analysis Completed" {
			t.Errorf("second event = %q, want Analysis Completed", entries[1].Action)
		}
		if entries[1].Comments == nil || *entries[1].Comments != "DPR Health Score: 88/100" {
			t.Errorf("completion comments = %v, want DPR Health Score: 88/100", entries[1].Comments)
		}
	})

	t.Run("stamps report metadata", func(t *testing.T) {
		sys, _ := newProvider()

		result, err := sys.Produce(ctx, analysis.ReportMeta{FileName: "bypass-v2.pdf"})
		if err != nil {
			t.Fatalf("Produce: %v", err)
		}
		if result.FileName != "bypass-v2.pdf" {
			t.Errorf("fileName = %q, want bypass-v2.pdf", result.FileName)
		}
	})
}

func TestCurrentSplicesFreshAuditTrail(t *testing.T) {
	ctx := context.Background()
	sys, led := newProvider()

	if _, err := sys.Produce(ctx, analysis.ReportMeta{}); err != nil {
		t.Fatalf("Produce: %v", err)
	}

	first, err := sys.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if len(first.AuditLog) != 2 {
		t.Fatalf("auditLog = %d, want 2", len(first.AuditLog))
	}

	if _, err := led.Append(ctx, ledger.AppendCommand{Action: ledger.ActionApprove, User: "admin"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	second, err := sys.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if len(second.AuditLog) != 3 {
		t.Errorf("auditLog = %d, want 3 after decision", len(second.AuditLog))
	}

	// the earlier read is a snapshot and must not grow
	if len(first.AuditLog) != 2 {
		t.Errorf("earlier read grew to %d entries", len(first.AuditLog))
	}
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	sys, led := newProvider()

	if _, err := sys.Produce(ctx, analysis.ReportMeta{}); err != nil {
		t.Fatalf("Produce: %v", err)
	}
	led.Append(ctx, ledger.AppendCommand{Action: ledger.ActionApprove, User: "admin"})
	led.Append(ctx, ledger.AppendCommand{Action: ledger.ActionFlag, User: "admin"})

	summary, err := sys.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if summary.ItemsFound != 6 {
		t.Errorf("itemsFound = %d, want 6", summary.ItemsFound)
	}
	if summary.ItemsMissing != 2 {
		t.Errorf("itemsMissing = %d, want 2", summary.ItemsMissing)
	}
	if summary.ChecksMatched != 3 {
		t.Errorf("checksMatched = %d, want 3", summary.ChecksMatched)
	}
	if summary.ChecksMismatched != 0 {
		t.Errorf("checksMismatched = %d, want 0", summary.ChecksMismatched)
	}
	if summary.HighImpactRisks != 1 {
		t.Errorf("highImpactRisks = %d, want 1", summary.HighImpactRisks)
	}

	// system pipeline events are not decisions
	if summary.Decisions != 2 {
		t.Errorf("decisions = %d, want 2", summary.Decisions)
	}
}
