package api

import (
	"net/http"

	"github.com/drishti-labs/drishti/internal/config"
	"github.com/drishti-labs/drishti/pkg/openapi"
	"github.com/drishti-labs/drishti/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	routes.Register(
		mux,
		domain.Accounts.Handler().Routes(),
		domain.Ledger.Handler().Routes(),
		domain.Analysis.Handler().Routes(),
		domain.Decisions.Handler().Routes(),
	)

	if domain.Reports != nil {
		storage := newStorageHandler(
			runtime.Storage,
			runtime.Logger,
			cfg.Storage.MaxListSize,
		)

		routes.Register(
			mux,
			domain.Reports.Handler().Routes(),
			storage.routes(),
		)
	}

	spec, err := buildSpec(cfg, domain.Reports != nil)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))

	return nil
}
