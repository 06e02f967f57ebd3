package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-analyzer/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	registry := store.NewRegistry()
	registry.Create()
	registry.Create()
	handler := NewHealthCheckHandler(registry)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HealthCheck(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(2), body["sessions"])
	assert.NotEmpty(t, body["time"])
}
