package dto

import "github.com/google/uuid"

// CreateSessionResponse represents the response after opening an analysis session
type CreateSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// IngestResponse represents the response after a statement upload
type IngestResponse struct {
	SessionID         uuid.UUID `json:"session_id"`
	TotalTransactions int       `json:"total_transactions"`
}
