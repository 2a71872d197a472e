package analysis

import (
	"log/slog"
	"net/http"

	"github.com/drishti-labs/drishti/pkg/handlers"
	"github.com/drishti-labs/drishti/pkg/routes"
)

// Handler exposes the analysis read endpoints.
type Handler struct {
	system System
	logger *slog.Logger
}

func NewHandler(system System, logger *slog.Logger) *Handler {
	return &Handler{
		system: system,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/dpr",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "/analysis", Handler: h.Current},
			{Method: http.MethodGet, Pattern: "/summary", Handler: h.Summary},
		},
	}
}

// Current returns the active analysis with its audit trail.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	result, err := h.system.Current(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Summary returns the condensed dashboard metrics for the active analysis.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.system.Summary(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}
