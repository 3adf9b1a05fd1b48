package system

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/venturechess/portfolio/backend/internal/model/status"
	statusService "github.com/venturechess/portfolio/backend/internal/service/status"
	"github.com/venturechess/portfolio/backend/pkg/utils"
)

// RootMessage is returned by GET /api/.
const RootMessage = "Shriram's Portfolio API - Chess Coaching Platform"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the API root, health and legacy status routes.
type Handler struct {
	db       Pinger
	statuses *statusService.Service
	logger   *zap.Logger
}

func New(db Pinger, statuses *statusService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{db: db, statuses: statuses, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Post("/status", h.handleCreateStatus)
	r.Get("/status", h.handleListStatus)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": RootMessage})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		utils.RespondError(w, http.StatusServiceUnavailable, "Service unavailable - database connection failed")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"message":   "API is running successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "connected",
	})
}

func (h *Handler) handleCreateStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ClientName string `json:"client_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	check, err := h.statuses.Create(r.Context(), payload.ClientName)
	if errors.Is(err, status.ErrClientNameRequired) {
		utils.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("failed to store status check", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to store status check")
		return
	}
	utils.RespondJSON(w, http.StatusOK, check)
}

func (h *Handler) handleListStatus(w http.ResponseWriter, r *http.Request) {
	checks, err := h.statuses.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list status checks", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to load status checks")
		return
	}
	utils.RespondJSON(w, http.StatusOK, checks)
}
