package dto

import "expense-analyzer/internal/models"

// TransactionFilters contains filtering options for transaction listings
type TransactionFilters struct {
	Category    string `query:"category"`
	Description string `query:"description"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

// UpdateCategoryRequest represents a manual category correction for one row
type UpdateCategoryRequest struct {
	Category string `json:"category" validate:"required,category_label"`
	Note     string `json:"note" validate:"omitempty,max=100"`
}

// AddCustomCategoryRequest represents a new user-defined category seeded from
// one transaction and relabeled across keyword matches
type AddCustomCategoryRequest struct {
	TransactionID int      `json:"transaction_id" validate:"required,min=1"`
	Label         string   `json:"label" validate:"required,min=1,max=50"`
	Keywords      []string `json:"keywords" validate:"omitempty,dive,max=50"`
}

// AddCustomCategoryResponse reports how many rows the new label was applied to
type AddCustomCategoryResponse struct {
	Label        string `json:"label"`
	RowsRelabeled int   `json:"rows_relabeled"`
}
