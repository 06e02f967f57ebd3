package dto

import "expense-analyzer/internal/models"

// CategorySummaryResponse represents per-category expense totals
type CategorySummaryResponse struct {
	Categories []models.CategorySummary `json:"categories"`
}

// DailySeriesResponse represents the daily expense time series
type DailySeriesResponse struct {
	Days []models.DailyTotal `json:"days"`
}

// MonthlySeriesResponse represents the monthly expense time series
type MonthlySeriesResponse struct {
	Months []models.MonthlyTotal `json:"months"`
}

// MonthOverMonthResponse represents the biggest per-category month deltas
type MonthOverMonthResponse struct {
	Changes []models.CategoryDelta `json:"changes"`
}

// TopMerchantsResponse represents the largest merchants by spend
type TopMerchantsResponse struct {
	Merchants []models.MerchantTotal `json:"merchants"`
}
