package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"expense-analyzer/internal/dto"
	apierrors "expense-analyzer/internal/errors"
	"expense-analyzer/internal/models"
	"expense-analyzer/internal/services"
	"expense-analyzer/internal/store"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction listing and category corrections
type TransactionHandler struct {
	registry *store.Registry
	metrics  services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(registry *store.Registry, metrics services.MetricsRecorderInterface) *TransactionHandler {
	return &TransactionHandler{
		registry: registry,
		metrics:  metrics,
	}
}

// ListTransactions returns the session's working table with optional filters
// @Summary List transactions
// @Description Return the categorized working table, optionally filtered by display label and description substring
// @Tags Transactions
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Param category query string false "Filter by display label"
// @Param description query string false "Case-insensitive description substring"
// @Success 200 {object} dto.ListTransactionsResponse "Transactions in id order"
// @Failure 404 {object} apierrors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ledger := sessionLedger(c, h.registry)
	if ledger == nil {
		return nil
	}

	rows := ledger.All()

	var filters dto.TransactionFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	rows = applyFilters(rows, filters)

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: rows,
		Total:        len(rows),
	})
}

// ListUncategorized returns only rows still labeled Other
// @Summary List uncategorized transactions
// @Tags Transactions
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Success 200 {object} dto.ListTransactionsResponse "Rows labeled Other"
// @Failure 404 {object} apierrors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/transactions/other [get]
func (h *TransactionHandler) ListUncategorized(c echo.Context) error {
	ledger := sessionLedger(c, h.registry)
	if ledger == nil {
		return nil
	}

	rows := ledger.Other()
	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: rows,
		Total:        len(rows),
	})
}

// ListIncome returns only deposit rows
// @Summary List income transactions
// @Tags Transactions
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Success 200 {object} dto.ListTransactionsResponse "Deposit rows"
// @Failure 404 {object} apierrors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/transactions/income [get]
func (h *TransactionHandler) ListIncome(c echo.Context) error {
	ledger := sessionLedger(c, h.registry)
	if ledger == nil {
		return nil
	}

	all := ledger.All()
	rows := make([]models.Transaction, 0, len(all))
	for i := range all {
		if all[i].IsIncome() {
			rows = append(rows, all[i])
		}
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: rows,
		Total:        len(rows),
	})
}

// UpdateCategory applies a manual category correction to one row
// @Summary Correct a transaction's category
// @Tags Transactions
// @Accept json
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Param id path int true "Transaction ID"
// @Param request body dto.UpdateCategoryRequest true "New category and optional note"
// @Success 200 {object} models.Transaction "Updated row"
// @Failure 400 {object} apierrors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 404 {object} apierrors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 422 {object} apierrors.ErrorResponse "SESSION_003 - No ingested statement"
// @Router /sessions/{sid}/transactions/{id}/category [put]
func (h *TransactionHandler) UpdateCategory(c echo.Context) error {
	ledger := sessionLedger(c, h.registry)
	if ledger == nil {
		return nil
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	if err := ledger.SetCategory(id, req.Category, req.Note); err != nil {
		return h.sendLedgerError(c, err)
	}
	h.metrics.RecordCorrection("set_category")

	row, err := ledger.Get(id)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// AddCustomCategory defines a user category and relabels keyword matches
// @Summary Add a custom category
// @Description Label one transaction with a new user-defined category and relabel every row whose description contains one of the keywords
// @Tags Transactions
// @Accept json
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Param request body dto.AddCustomCategoryRequest true "Seed transaction, label, and keywords"
// @Success 200 {object} dto.AddCustomCategoryResponse "Count of relabeled rows"
// @Failure 400 {object} apierrors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 404 {object} apierrors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 422 {object} apierrors.ErrorResponse "SESSION_003 - No ingested statement"
// @Router /sessions/{sid}/categories [post]
func (h *TransactionHandler) AddCustomCategory(c echo.Context) error {
	ledger := sessionLedger(c, h.registry)
	if ledger == nil {
		return nil
	}

	var req dto.AddCustomCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	count, err := ledger.AddCustomCategory(req.TransactionID, req.Label, req.Keywords)
	if err != nil {
		return h.sendLedgerError(c, err)
	}
	h.metrics.RecordCorrection("custom_category")

	return c.JSON(http.StatusOK, dto.AddCustomCategoryResponse{
		Label:         req.Label,
		RowsRelabeled: count,
	})
}

// sendLedgerError maps correction failures to client errors. A correction
// before any upload is a caller mistake, not a server fault.
func (h *TransactionHandler) sendLedgerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNoData):
		return SendError(c, apierrors.SessionNoData)
	case errors.Is(err, store.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	default:
		return SendSystemError(c, err)
	}
}

// applyFilters narrows rows by display label and description substring
func applyFilters(rows []models.Transaction, filters dto.TransactionFilters) []models.Transaction {
	if filters.Category == "" && filters.Description == "" {
		return rows
	}

	needle := strings.ToUpper(filters.Description)
	out := make([]models.Transaction, 0, len(rows))
	for i := range rows {
		t := &rows[i]
		if filters.Category != "" && t.DisplayLabel() != filters.Category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToUpper(t.Description), needle) {
			continue
		}
		out = append(out, *t)
	}
	return out
}
