package config_test

import (
	"strings"
	"testing"

	"github.com/drishti-labs/drishti/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("addr = %q, want 0.0.0.0:8080", got)
	}
	if cfg.Ledger.Backend != config.LedgerBackendMemory {
		t.Errorf("ledger backend = %q, want memory", cfg.Ledger.Backend)
	}
	if cfg.Ledger.Persistent() {
		t.Error("memory backend reported as persistent")
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("base path = %q, want /api", cfg.API.BasePath)
	}
	if cfg.API.DefaultActor != "admin" {
		t.Errorf("default actor = %q, want admin", cfg.API.DefaultActor)
	}
	if got := cfg.API.MaxUploadSizeBytes(); got != 50*1024*1024 {
		t.Errorf("max upload = %d, want 50MB", got)
	}
	if cfg.API.Pagination.DefaultPageSize != 20 || cfg.API.Pagination.MaxPageSize != 100 {
		t.Errorf("pagination = %+v, want 20/100", cfg.API.Pagination)
	}
	if got := cfg.ShutdownTimeoutDuration().String(); got != "30s" {
		t.Errorf("shutdown timeout = %s, want 30s", got)
	}
	if !cfg.Analysis.PreloadEnabled() {
		t.Error("analysis preload disabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServerPort, "9000")
	t.Setenv("DRISHTI_API_DEFAULT_ACTOR", "reviewer")
	t.Setenv(config.EnvDrishtiShutdownTimeout, "5s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.API.DefaultActor != "reviewer" {
		t.Errorf("default actor = %q, want reviewer", cfg.API.DefaultActor)
	}
	if cfg.ShutdownTimeout != "5s" {
		t.Errorf("shutdown timeout = %q, want 5s", cfg.ShutdownTimeout)
	}
}

func TestLedgerBackendValidation(t *testing.T) {
	t.Run("unknown backend fails", func(t *testing.T) {
		t.Setenv(config.EnvLedgerBackend, "redis")

		if _, err := config.Load(); err == nil || !strings.Contains(err.Error(), "invalid ledger backend") {
			t.Fatalf("err = %v, want invalid ledger backend", err)
		}
	})

	t.Run("postgres backend requires storage settings", func(t *testing.T) {
		t.Setenv(config.EnvLedgerBackend, "postgres")

		if _, err := config.Load(); err == nil || !strings.Contains(err.Error(), "storage") {
			t.Fatalf("err = %v, want storage config error", err)
		}
	})

	t.Run("postgres backend with storage settings", func(t *testing.T) {
		t.Setenv(config.EnvLedgerBackend, "postgres")
		t.Setenv("DRISHTI_STORAGE_CONNECTION_STRING", "UseDevelopmentStorage=true")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !cfg.Ledger.Persistent() {
			t.Error("postgres backend not reported as persistent")
		}
		if cfg.Storage.ContainerName != "reports" {
			t.Errorf("container = %q, want reports", cfg.Storage.ContainerName)
		}
		if cfg.Database.Host != "localhost" {
			t.Errorf("db host = %q, want localhost", cfg.Database.Host)
		}
	})
}
