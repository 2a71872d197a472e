package accounts

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/drishti-labs/drishti/pkg/handlers"
	"github.com/drishti-labs/drishti/pkg/routes"
)

// Handler exposes authentication endpoints.
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
		Prefix: "/auth",
		Routes: []routes.Route{
			{Method: http.MethodPost, Pattern: "/login", Handler: h.Login},
			{Method: http.MethodPost, Pattern: "/register", Handler: h.Register},
		},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool     `json:"success"`
	User    *Account `json:"user"`
	Token   string   `json:"token"`
}

// Login verifies credentials and returns the account with a session token.
// Failures are reported uniformly as invalid credentials.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("invalid login payload: %w", err))
		return
	}

	if req.Username == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingUsername)
		return
	}

	if req.Password == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingPassword)
		return
	}

	account, token, err := h.system.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, loginResponse{
		Success: true,
		User:    account,
		Token:   token,
	})
}

// Register creates a new reviewer account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("invalid registration payload: %w", err))
		return
	}

	account, err := h.system.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, account)
}
