package services

import (
	"io"
	"time"

	"expense-analyzer/internal/ingest"
	"expense-analyzer/internal/models"
	"expense-analyzer/internal/store"
)

// CategoryServiceInterface defines the contract for transaction categorization.
type CategoryServiceInterface interface {
	// Categorize returns the first matching category for a description, or
	// the Other sentinel. Pure and deterministic.
	Categorize(description string) string
	// ExtractMerchant returns a short counterparty token for a description,
	// or the N/A sentinel. Advisory only; never feeds back into the category.
	ExtractMerchant(description string) string
	// Apply categorizes a transaction in place, setting Category and Merchant.
	Apply(t *models.Transaction)
}

// IngestionServiceInterface defines the contract for statement ingestion.
type IngestionServiceInterface interface {
	// Ingest parses a statement, categorizes every row, and replaces the
	// ledger's table wholesale.
	Ingest(ledger *store.Ledger, r io.Reader) (*ingest.Result, error)
}

// SummaryServiceInterface defines the aggregate views derived from a table.
// Every method recomputes from the rows it is given; an empty input yields
// empty results, never an error.
type SummaryServiceInterface interface {
	Overview(rows []models.Transaction) models.Overview
	CategorySummary(rows []models.Transaction) []models.CategorySummary
	DailyExpenses(rows []models.Transaction, category string) []models.DailyTotal
	MonthlyExpenses(rows []models.Transaction) []models.MonthlyTotal
	MonthOverMonth(rows []models.Transaction) []models.CategoryDelta
	TopCategories(rows []models.Transaction, n int) []models.CategorySummary
	TopMerchants(rows []models.Transaction, n int) []models.MerchantTotal
}

// SampleDataServiceInterface fabricates a realistic statement for the demo
// flow, so the API can be exercised without a real bank export.
type SampleDataServiceInterface interface {
	GenerateStatement(rows int) []byte
}

// MetricsRecorderInterface abstracts the service metrics so tests can use a
// no-op recorder.
type MetricsRecorderInterface interface {
	RecordIngest(rows int, duration time.Duration)
	RecordIngestFailure()
	RecordCategorized(category string)
	RecordCorrection(kind string)
	SetActiveSessions(n int)
}
