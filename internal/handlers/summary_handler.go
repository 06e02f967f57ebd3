package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"expense-analyzer/internal/dto"
	"expense-analyzer/internal/errors"
	"expense-analyzer/internal/models"
	"expense-analyzer/internal/services"
	"expense-analyzer/internal/store"

	"github.com/labstack/echo/v4"
)

const maxTopN = 100

// SummaryHandler serves the aggregation endpoints
type SummaryHandler struct {
	registry *store.Registry
	summary  services.SummaryServiceInterface
	topN     int
}

// NewSummaryHandler creates a new summary handler. topN is the list size used
// when the limit query parameter is absent.
func NewSummaryHandler(registry *store.Registry, summary services.SummaryServiceInterface, topN int) *SummaryHandler {
	return &SummaryHandler{
		registry: registry,
		summary:  summary,
		topN:     topN,
	}
}

// rows fetches the session table. An empty table is a normal state and
// aggregates to zero-valued payloads, not an error.
func (h *SummaryHandler) rows(c echo.Context) ([]models.Transaction, bool) {
	ledger := sessionLedger(c, h.registry)
	if ledger == nil {
		return nil, false
	}
	return ledger.All(), true
}

// Overview returns the headline totals for the session
// @Summary Session overview
// @Tags Summary
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Success 200 {object} models.Overview "Headline totals"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/summary/overview [get]
func (h *SummaryHandler) Overview(c echo.Context) error {
	rows, ok := h.rows(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, h.summary.Overview(rows))
}

// Categories returns per-category expense totals, largest first
// @Summary Category summary
// @Tags Summary
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Success 200 {object} dto.CategorySummaryResponse "Per-category totals"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/summary/categories [get]
func (h *SummaryHandler) Categories(c echo.Context) error {
	rows, ok := h.rows(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, dto.CategorySummaryResponse{
		Categories: h.summary.CategorySummary(rows),
	})
}

// Daily returns the daily expense series, oldest first
// @Summary Daily expense series
// @Tags Summary
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Param category query string false "Restrict to one display label"
// @Success 200 {object} dto.DailySeriesResponse "Daily totals"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/summary/daily [get]
func (h *SummaryHandler) Daily(c echo.Context) error {
	rows, ok := h.rows(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, dto.DailySeriesResponse{
		Days: h.summary.DailyExpenses(rows, c.QueryParam("category")),
	})
}

// Monthly returns the monthly expense series in chronological order
// @Summary Monthly expense series
// @Tags Summary
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Success 200 {object} dto.MonthlySeriesResponse "Monthly totals"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/summary/monthly [get]
func (h *SummaryHandler) Monthly(c echo.Context) error {
	rows, ok := h.rows(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, dto.MonthlySeriesResponse{
		Months: h.summary.MonthlyExpenses(rows),
	})
}

// MonthOverMonth returns the biggest category changes between the last two months
// @Summary Month-over-month category changes
// @Tags Summary
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Success 200 {object} dto.MonthOverMonthResponse "Top 3 category deltas"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/summary/month-over-month [get]
func (h *SummaryHandler) MonthOverMonth(c echo.Context) error {
	rows, ok := h.rows(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, dto.MonthOverMonthResponse{
		Changes: h.summary.MonthOverMonth(rows),
	})
}

// TopCategories returns the largest categories by spend
// @Summary Top categories
// @Tags Summary
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Param limit query int false "Number of categories" default(5)
// @Success 200 {object} dto.CategorySummaryResponse "Largest categories"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/summary/top-categories [get]
func (h *SummaryHandler) TopCategories(c echo.Context) error {
	rows, ok := h.rows(c)
	if !ok {
		return nil
	}

	limit, err := parseLimit(c, h.topN)
	if err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.CategorySummaryResponse{
		Categories: h.summary.TopCategories(rows, limit),
	})
}

// TopMerchants returns the largest extracted merchants by spend
// @Summary Top merchants
// @Tags Summary
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Param limit query int false "Number of merchants" default(5)
// @Success 200 {object} dto.TopMerchantsResponse "Largest merchants"
// @Failure 404 {object} errors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/summary/top-merchants [get]
func (h *SummaryHandler) TopMerchants(c echo.Context) error {
	rows, ok := h.rows(c)
	if !ok {
		return nil
	}

	limit, err := parseLimit(c, h.topN)
	if err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.TopMerchantsResponse{
		Merchants: h.summary.TopMerchants(rows, limit),
	})
}

func parseLimit(c echo.Context, fallback int) (int, error) {
	limitStr := c.QueryParam("limit")
	if limitStr == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	if limit > maxTopN {
		limit = maxTopN
	}
	return limit, nil
}
