package decisions

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/drishti-labs/drishti/internal/ledger"
	"github.com/drishti-labs/drishti/pkg/handlers"
	"github.com/drishti-labs/drishti/pkg/routes"
)

// maxPayloadBytes bounds the decision request body.
const maxPayloadBytes = 64 << 10

// Handler exposes the decision submission endpoint.
type Handler struct {
	system       System
	accounts     ActorResolver
	defaultActor string
	logger       *slog.Logger
}

func NewHandler(system System, accounts ActorResolver, defaultActor string, logger *slog.Logger) *Handler {
	return &Handler{
		system:       system,
		accounts:     accounts,
		defaultActor: defaultActor,
		logger:       logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/dpr",
		Routes: []routes.Route{
			{Method: http.MethodPost, Pattern: "/action", Handler: h.Submit},
		},
	}
}

type submitResponse struct {
	Success bool          `json:"success"`
	Entry   *ledger.Entry `json:"entry"`
}

// Submit accepts a decision payload, attributes it to the session's account
// (or the configured default actor when no session is presented), and
// returns the committed ledger entry.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, err := h.resolveActor(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("%w: %v", ErrMalformedPayload, err))
		return
	}

	entry, err := h.system.Submit(r.Context(), raw, actor)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Entry:   entry,
	})
}

func (h *Handler) resolveActor(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return h.defaultActor, nil
	}

	token := strings.TrimPrefix(header, "Bearer ")
	account, err := h.accounts.ResolveSession(r.Context(), token)
	if err != nil {
		return "", err
	}

	return account.Username, nil
}
