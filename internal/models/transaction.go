package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoDescription is the placeholder used when a source row carries no narration.
const NoDescription = "No description"

// MerchantUnknown is the sentinel returned when no merchant can be extracted.
const MerchantUnknown = "N/A"

// Transaction is one normalized row of an ingested bank statement.
//
// ID is assigned sequentially at ingestion time (1..N in file order) and is
// the only key used by the correction operations. Amount is signed: positive
// means money received, negative means money spent. Withdrawal and Deposit
// always carry the non-negative split representation; when the source file
// uses a single signed amount column they are synthesized from its sign so
// downstream aggregates can rely on both representations being present.
type Transaction struct {
	ID          int             `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Withdrawal  decimal.Decimal `json:"withdrawal"`
	Deposit     decimal.Decimal `json:"deposit"`
	Category    string          `json:"category"`
	CustomName  string          `json:"custom_name,omitempty"`
	Merchant    string          `json:"merchant,omitempty"`
}

// DisplayLabel returns the label summaries group by: the user-supplied custom
// name when present, otherwise the assigned category.
func (t *Transaction) DisplayLabel() string {
	if t.CustomName != "" {
		return t.CustomName
	}
	return t.Category
}

// IsExpense reports whether the transaction counts as spend.
//
// A transaction is an expense when its amount is negative, when its
// withdrawal field is positive, or when its amount is positive but its
// category is outside the configured income-like exclusion set. The exclusion
// set is a configuration point (SUMMARY_INCOME_CATEGORIES), not a constant.
func (t *Transaction) IsExpense(incomeCategories map[string]bool) bool {
	if t.Amount.IsNegative() || t.Withdrawal.IsPositive() {
		return true
	}
	return t.Amount.IsPositive() && !incomeCategories[t.Category]
}

// ExpenseAmount returns the magnitude of the transaction for spend totals.
func (t *Transaction) ExpenseAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// IsIncome reports whether the transaction received money.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}
