package handlers

import (
	"net/http"
	"time"

	"expense-analyzer/internal/store"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	registry *store.Registry
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(registry *store.Registry) *HealthCheckHandler {
	return &HealthCheckHandler{registry: registry}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,sessions=int,time=string} "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"sessions": h.registry.Count(),
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
