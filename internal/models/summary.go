package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySummary is one aggregated row of the per-label expense summary.
type CategorySummary struct {
	Label            string          `json:"label"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"txn_count"`
}

// DailyTotal is the summed expense amount for one calendar date.
type DailyTotal struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyTotal is the summed expense amount for one calendar month. Month is
// the first day of the month and drives chronological ordering; Label is the
// human form ("Jan 2024"), which does not sort correctly as a string.
type MonthlyTotal struct {
	Month time.Time       `json:"-"`
	Label string          `json:"month_label"`
	Total decimal.Decimal `json:"total"`
}

// CategoryDelta compares one category's expense totals across the two most
// recent months.
type CategoryDelta struct {
	Category  string          `json:"category"`
	Previous  decimal.Decimal `json:"previous"`
	Latest    decimal.Decimal `json:"latest"`
	ChangePct float64         `json:"change_pct"`
}

// MerchantTotal is one row of the top-merchants view.
type MerchantTotal struct {
	Merchant         string          `json:"merchant"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"txn_count"`
}

// Overview is the headline snapshot of the current table: counts and the
// income/spend/invested/savings totals.
type Overview struct {
	TotalTransactions int             `json:"total_transactions"`
	NetAmount         decimal.Decimal `json:"net_amount"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	TotalInvested     decimal.Decimal `json:"total_invested"`
	NetSavings        decimal.Decimal `json:"net_savings"`
}
