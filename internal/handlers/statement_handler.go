package handlers

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"errors"

	"expense-analyzer/internal/dto"
	apierrors "expense-analyzer/internal/errors"
	"expense-analyzer/internal/ingest"
	"expense-analyzer/internal/services"
	"expense-analyzer/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	maxUploadBytes = 10 << 20
	maxSampleRows  = 5000
)

// StatementHandler handles statement uploads and demo data generation
type StatementHandler struct {
	registry    *store.Registry
	ingestion   services.IngestionServiceInterface
	sampler     services.SampleDataServiceInterface
	defaultRows int
}

// NewStatementHandler creates a new statement handler. defaultRows is the
// sample size used when the rows query parameter is absent.
func NewStatementHandler(
	registry *store.Registry,
	ingestion services.IngestionServiceInterface,
	sampler services.SampleDataServiceInterface,
	defaultRows int,
) *StatementHandler {
	return &StatementHandler{
		registry:    registry,
		ingestion:   ingestion,
		sampler:     sampler,
		defaultRows: defaultRows,
	}
}

// Upload ingests a CSV statement into the session, replacing prior data
// @Summary Upload bank statement
// @Description Parse a CSV statement, categorize every row, and replace the session's working table
// @Tags Statements
// @Accept mpfd
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Param file formData file true "CSV statement"
// @Success 200 {object} dto.IngestResponse "Row count after ingestion"
// @Failure 400 {object} apierrors.ErrorResponse "INGEST_002 - Missing required columns"
// @Failure 404 {object} apierrors.ErrorResponse "SESSION_001 - Session not found"
// @Failure 422 {object} apierrors.ErrorResponse "INGEST_001 - No data rows"
// @Router /sessions/{sid}/statements [post]
func (h *StatementHandler) Upload(c echo.Context) error {
	ledger := sessionLedger(c, h.registry)
	if ledger == nil {
		return nil
	}

	body, err := h.statementBody(c)
	if err != nil {
		return SendError(c, apierrors.IngestNoFile)
	}
	if len(body) > maxUploadBytes {
		return SendError(c, apierrors.IngestFileTooLarge)
	}

	result, err := h.ingestion.Ingest(ledger, bytes.NewReader(body))
	if err != nil {
		return sendIngestError(c, err)
	}

	sid, _ := uuid.Parse(c.Param("sid"))
	return c.JSON(http.StatusOK, dto.IngestResponse{
		SessionID:         sid,
		TotalTransactions: result.RowCount,
	})
}

// GenerateSample fills the session with a generated demo statement
// @Summary Generate demo statement
// @Tags Statements
// @Produce json
// @Param sid path string true "Session ID (UUID)"
// @Param rows query int false "Number of expense rows" default(120)
// @Success 200 {object} dto.IngestResponse "Row count after ingestion"
// @Failure 404 {object} apierrors.ErrorResponse "SESSION_001 - Session not found"
// @Router /sessions/{sid}/sample [post]
func (h *StatementHandler) GenerateSample(c echo.Context) error {
	ledger := sessionLedger(c, h.registry)
	if ledger == nil {
		return nil
	}

	rows := h.defaultRows
	if rowsStr := c.QueryParam("rows"); rowsStr != "" {
		n, err := strconv.Atoi(rowsStr)
		if err != nil || n < 1 || n > maxSampleRows {
			return SendError(c, apierrors.ValidationOutOfRange,
				apierrors.WithDetails("rows must be between 1 and 5000"))
		}
		rows = n
	}

	statement := h.sampler.GenerateStatement(rows)
	result, err := h.ingestion.Ingest(ledger, bytes.NewReader(statement))
	if err != nil {
		return SendSystemError(c, err)
	}

	sid, _ := uuid.Parse(c.Param("sid"))
	return c.JSON(http.StatusOK, dto.IngestResponse{
		SessionID:         sid,
		TotalTransactions: result.RowCount,
	})
}

// statementBody reads the uploaded statement from the multipart "file" field
// when present, falling back to the raw request body.
func (h *StatementHandler) statementBody(c echo.Context) ([]byte, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	}

	return io.ReadAll(io.LimitReader(c.Request().Body, maxUploadBytes+1))
}

func sendIngestError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ingest.ErrEmptyInput):
		return SendError(c, apierrors.IngestEmptyFile)
	case errors.Is(err, ingest.ErrMissingDateColumn), errors.Is(err, ingest.ErrMissingAmountColumns):
		return SendError(c, apierrors.IngestMissingColumns, apierrors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
