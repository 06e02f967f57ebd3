package services

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"expense-analyzer/internal/ingest"
	"expense-analyzer/internal/store"
)

type ingestionService struct {
	categorizer CategoryServiceInterface
	metrics     MetricsRecorderInterface
}

// NewIngestionService wires the statement parser to the categorizer. Each
// successful ingest replaces the session's table wholesale.
func NewIngestionService(categorizer CategoryServiceInterface, metrics MetricsRecorderInterface) IngestionServiceInterface {
	return &ingestionService{
		categorizer: categorizer,
		metrics:     metrics,
	}
}

func (s *ingestionService) Ingest(ledger *store.Ledger, r io.Reader) (*ingest.Result, error) {
	start := time.Now()

	rows, err := ingest.Parse(r)
	if err != nil {
		s.metrics.RecordIngestFailure()
		return nil, fmt.Errorf("parsing statement: %w", err)
	}

	for i := range rows {
		s.categorizer.Apply(&rows[i])
		s.metrics.RecordCategorized(rows[i].Category)
	}

	ledger.Replace(rows)
	s.metrics.RecordIngest(len(rows), time.Since(start))

	slog.Info("statement ingested",
		"rows", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &ingest.Result{RowCount: len(rows)}, nil
}
