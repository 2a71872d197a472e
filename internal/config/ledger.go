package config

import (
	"fmt"
	"os"
)

// Ledger backends.
const (
	LedgerBackendMemory   = "memory"
	LedgerBackendPostgres = "postgres"
)

const EnvLedgerBackend = "DRISHTI_LEDGER_BACKEND"

// LedgerConfig selects the audit ledger backend. The memory backend runs the
// service standalone for demos and tests; the postgres backend also enables
// the report catalog and blob storage.
type LedgerConfig struct {
	Backend string `toml:"backend"`
}

// Persistent reports whether the service runs against PostgreSQL and blob
// storage.
func (c *LedgerConfig) Persistent() bool {
	return c.Backend == LedgerBackendPostgres
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *LedgerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *LedgerConfig) Merge(overlay *LedgerConfig) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
}

func (c *LedgerConfig) loadDefaults() {
	if c.Backend == "" {
		c.Backend = LedgerBackendMemory
	}
}

func (c *LedgerConfig) loadEnv() {
	if v := os.Getenv(EnvLedgerBackend); v != "" {
		c.Backend = v
	}
}

func (c *LedgerConfig) validate() error {
	switch c.Backend {
	case LedgerBackendMemory, LedgerBackendPostgres:
		return nil
	default:
		return fmt.Errorf("invalid ledger backend: %q", c.Backend)
	}
}
