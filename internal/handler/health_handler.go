// internal/handler/health_handler.go
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-records/internal/controller"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	DB     Pinger
	Logger *zap.Logger
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/health/live", h.Live)
	r.Get("/health/ready", h.Ready)
}

// Live always answers 200 while the process is up.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	controller.WriteJSON(w, http.StatusOK, healthResponse{Status: "alive"})
}

// Ready answers 503 when the record store cannot be reached.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("readiness check failed", zap.Error(err))
		}
		controller.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	controller.WriteJSON(w, http.StatusOK, healthResponse{Status: "ready"})
}
