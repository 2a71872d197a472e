package api

import (
	"github.com/drishti-labs/drishti/internal/accounts"
	"github.com/drishti-labs/drishti/internal/analysis"
	"github.com/drishti-labs/drishti/internal/config"
	"github.com/drishti-labs/drishti/internal/decisions"
	"github.com/drishti-labs/drishti/internal/ledger"
	"github.com/drishti-labs/drishti/internal/reports"
)

// Domain holds all domain systems that comprise the API. Reports is nil when
// the service runs without persistence.
type Domain struct {
	Accounts  accounts.System
	Ledger    ledger.System
	Analysis  analysis.System
	Decisions decisions.System
	Reports   reports.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	accountsSystem := accounts.New(runtime.Logger, accounts.CreateCommand{
		Username: cfg.Accounts.SeedUsername,
		Password: cfg.Accounts.SeedPassword,
	})

	clock := ledger.SystemClock()

	var ledgerSystem ledger.System
	if cfg.Ledger.Persistent() {
		ledgerSystem = ledger.NewRepository(
			runtime.Database.Connection(),
			runtime.Logger,
			clock,
			runtime.Pagination,
		)
	} else {
		ledgerSystem = ledger.New(runtime.Logger, clock, runtime.Pagination)
	}

	analysisSystem := analysis.New(ledgerSystem, runtime.Logger)

	decisionsSystem := decisions.New(
		ledgerSystem,
		accountsSystem,
		cfg.API.DefaultActor,
		runtime.Logger,
	)

	domain := &Domain{
		Accounts:  accountsSystem,
		Ledger:    ledgerSystem,
		Analysis:  analysisSystem,
		Decisions: decisionsSystem,
	}

	if cfg.Ledger.Persistent() {
		domain.Reports = reports.NewRepository(
			runtime.Database.Connection(),
			runtime.Storage,
			analysisSystem,
			runtime.Logger,
			runtime.Pagination,
			cfg.API.MaxUploadSizeBytes(),
		)
	}

	return domain
}
