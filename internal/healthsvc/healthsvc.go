// Package healthsvc exposes the liveness/readiness HTTP surface alongside
// the gRPC server, in the chi + JSON-helper shape the rest of the stack
// uses for its HTTP routes.
package healthsvc

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/go-chi/chi/v5"
)

// Handler serves /healthz (process liveness) and /readyz (dependency checks).
type Handler struct {
	repo store.Repository
}

// New returns a Handler backed by repo.
func New(repo store.Repository) *Handler {
	return &Handler{repo: repo}
}

// Register mounts the handler's routes onto r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.liveness)
	r.Get("/readyz", h.readiness)
}

func (h *Handler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.Ping(ctx); err != nil {
		slog.Error("healthsvc: readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}
