package handlers

import (
	"net/http"

	"expense-analyzer/internal/dto"
	"expense-analyzer/internal/errors"
	"expense-analyzer/internal/services"
	"expense-analyzer/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionLedger parses the sid path parameter and returns the session's
// ledger, or a nil ledger after writing the error response.
func sessionLedger(c echo.Context, registry *store.Registry) *store.Ledger {
	sid, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		_ = SendError(c, errors.SessionInvalidID)
		return nil
	}

	ledger, err := registry.Get(sid)
	if err != nil {
		_ = SendError(c, errors.SessionNotFound)
		return nil
	}
	return ledger
}

// SessionHandler manages the lifecycle of analysis sessions
type SessionHandler struct {
	registry *store.Registry
	metrics  services.MetricsRecorderInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(registry *store.Registry, metrics services.MetricsRecorderInterface) *SessionHandler {
	return &SessionHandler{
		registry: registry,
		metrics:  metrics,
	}
}

// CreateSession opens a new empty analysis session
// @Summary Create analysis session
// @Tags Sessions
// @Produce json
// @Success 201 {object} dto.CreateSessionResponse "New session ID"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c echo.Context) error {
	sid := h.registry.Create()
	h.metrics.SetActiveSessions(h.registry.Count())

	return c.JSON(http.StatusCreated, dto.CreateSessionResponse{SessionID: sid})
}

// DeleteSession discards a session and all its in-memory state
// @Summary Delete analysis session
// @Tags Sessions
// @Param sid path string true "Session ID (UUID)"
// @Success 204 "Session deleted"
// @Failure 400 {object} errors.ErrorResponse "SESSION_002 - Invalid session ID"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid} [delete]
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	sid, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		return SendError(c, errors.SessionInvalidID)
	}

	if err := h.registry.Delete(sid); err != nil {
		return SendError(c, errors.SessionNotFound)
	}
	h.metrics.SetActiveSessions(h.registry.Count())

	return c.NoContent(http.StatusNoContent)
}
