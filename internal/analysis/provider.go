package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/drishti-labs/drishti/internal/ledger"
)

// systemUser attributes pipeline lifecycle events in the audit trail.
const systemUser = "System"

// provider holds the active analysis and records pipeline events against the
// ledger. Extraction is simulated: Produce re-stamps the canned result with
// the report metadata it is given.
type provider struct {
	mu      sync.RWMutex
	current *Analysis
	ledger  ledger.System
	logger  *slog.Logger
}

// New creates an analysis System with no active analysis. Call Produce (or
// preload at startup) before the read endpoints can serve data.
func New(led ledger.System, logger *slog.Logger) System {
	return &provider{
		ledger: led,
		logger: logger,
	}
}

func (p *provider) Handler() *Handler {
	return NewHandler(p, p.logger)
}

// Produce runs the simulated extraction pipeline: it records the pipeline
// lifecycle in the audit trail and installs the result as the active
// analysis, replacing any previous one.
func (p *provider) Produce(ctx context.Context, meta ReportMeta) (*Analysis, error) {
	result := Fixture()
	if meta.FileName != "" {
		result.FileName = meta.FileName
	}

	if _, err := p.ledger.Record(ctx, ledger.RecordCommand{
		Action: "Analysis Initiated",
		User:   systemUser,
	}); err != nil {
		return nil, fmt.Errorf("recording analysis start: %w", err)
	}

	comments := fmt.Sprintf("DPR Health Score: %d/100", result.HealthScore)
	if _, err := p.ledger.Record(ctx, ledger.RecordCommand{
		Action:   "Analysis Completed",
		User:     systemUser,
		Comments: &comments,
	}); err != nil {
		return nil, fmt.Errorf("recording analysis completion: %w", err)
	}

	p.mu.Lock()
	p.current = result
	p.mu.Unlock()

	p.logger.Info("analysis produced",
		"file", result.FileName,
		"health_score", result.HealthScore,
	)

	return p.withAuditLog(ctx, result)
}

// Current returns the active analysis with the full audit trail as of this
// call. The trail is read fresh every time so decisions submitted since the
// last read are always visible.
func (p *provider) Current(ctx context.Context) (*Analysis, error) {
	p.mu.RLock()
	current := p.current
	p.mu.RUnlock()

	if current == nil {
		return nil, ErrNoAnalysis
	}

	return p.withAuditLog(ctx, current)
}

func (p *provider) Summary(ctx context.Context) (*Summary, error) {
	current, err := p.Current(ctx)
	if err != nil {
		return nil, err
	}

	summary := Summarize(current)
	return &summary, nil
}

func (p *provider) withAuditLog(ctx context.Context, a *Analysis) (*Analysis, error) {
	entries, err := p.ledger.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading audit trail: %w", err)
	}

	out := *a
	out.AuditLog = entries
	return &out, nil
}
