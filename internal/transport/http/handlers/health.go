package http_handlers

import (
	"context"
	"net/http"

	"github.com/baechuer/leads-api/internal/logger"
	"github.com/baechuer/leads-api/internal/transport/http/dto"
	"github.com/baechuer/leads-api/internal/transport/http/response"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, dto.HealthResponse{Status: "ok", Message: "Server is running"})
}

// Readyz handles GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			logger.WithCtx(r.Context()).Warn().Err(err).Msg("readiness check failed")
			response.JSON(w, r, http.StatusServiceUnavailable, dto.HealthResponse{
				Status:  "unavailable",
				Message: "database unavailable",
			})
			return
		}
	}
	response.JSON(w, r, http.StatusOK, dto.HealthResponse{Status: "ready"})
}
