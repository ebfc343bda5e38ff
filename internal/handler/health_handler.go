package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/priceapi"
)

// BackendChecker probes the price backend
type BackendChecker interface {
	Health(ctx context.Context) (*priceapi.HealthStatus, error)
}

// HealthHandler reports console and backend health
type HealthHandler struct {
	backend BackendChecker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(backend BackendChecker) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// Health handles the GET /health endpoint
// @Summary Health check
// @Description The console is up; backend reports the price backend status. A down backend does not fail the check.
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := model.HealthResponse{Status: "ok", Backend: "unknown"}

	status, err := h.backend.Health(c.Request.Context())
	switch {
	case err != nil:
		resp.Backend = "down"
		resp.Error = err.Error()
	case status != nil && status.Status != "":
		resp.Backend = status.Status
	default:
		resp.Backend = "up"
	}
	c.JSON(http.StatusOK, resp)
}
