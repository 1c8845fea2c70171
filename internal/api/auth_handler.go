package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/metrics"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	gate     auth.Gate
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// The recorder is optional.
func NewAuthHandler(gate auth.Gate, recorder metrics.Recorder, logger *slog.Logger) *AuthHandler {
	if gate == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("gate cannot be nil for AuthHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		gate:     gate,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid login request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	token, err := h.gate.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.record(metrics.OutcomeDenied)
			HandleAPIError(w, r, err, "")
			return
		}
		h.record(metrics.OutcomeError)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	h.record(metrics.OutcomeOK)
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}

// Logout handles POST /api/auth/logout. It clears the session; the route is
// mounted behind the auth middleware, so only the session holder reaches it.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.gate.Logout(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to log out", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/auth/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	_, ok, err := h.gate.Token(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to read session", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SessionResponse{Authenticated: ok})
}

func (h *AuthHandler) record(outcome string) {
	if h.recorder != nil {
		h.recorder.RecordLogin(outcome)
	}
}
