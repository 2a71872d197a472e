// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/drishti-labs/drishti/internal/analysis"
	"github.com/drishti-labs/drishti/internal/config"
	"github.com/drishti-labs/drishti/internal/infrastructure"
	"github.com/drishti-labs/drishti/pkg/middleware"
	"github.com/drishti-labs/drishti/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// When preloading is enabled, the simulated analysis pipeline runs once
// during startup so the dashboard has data before any upload.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(cfg, runtime)

	if cfg.Analysis.PreloadEnabled() {
		lc := runtime.Lifecycle
		logger := runtime.Logger

		lc.OnStartup(func() {
			if _, err := domain.Analysis.Produce(lc.Context(), analysis.ReportMeta{}); err != nil {
				logger.Error("analysis preload failed", "error", err)
			}
		})
	}

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg, runtime); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
