// Package store holds the in-memory transaction table and the per-session
// registry that owns one table per logical session. Nothing here is durable:
// a table lives until it is replaced by the next ingestion or its session is
// dropped.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"expense-analyzer/internal/models"
)

var (
	// ErrTransactionNotFound is returned by correction operations when the
	// referenced id is not in the current table.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrNoData is returned by correction operations on an empty table.
	ErrNoData = errors.New("no data available")
)

// Ledger is one session's transaction table. All core operations are methods
// on it, so there is no hidden global state; concurrent handler access is
// guarded by the embedded mutex.
type Ledger struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Replace swaps in a freshly ingested table, discarding any prior rows.
func (l *Ledger) Replace(rows []models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions = make([]models.Transaction, len(rows))
	copy(l.transactions, rows)
}

// Len returns the current row count.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.transactions)
}

// All returns a copy of the full table in id order.
func (l *Ledger) All() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Other returns the rows still carrying the Other sentinel category. The view
// is recomputed from the live table, so a correction shrinks it on the next
// read.
func (l *Ledger) Other() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []models.Transaction
	for _, t := range l.transactions {
		if t.Category == models.CategoryOther {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the row with the given id.
func (l *Ledger) Get(id int) (models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, t := range l.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Transaction{}, fmt.Errorf("id %d: %w", id, ErrTransactionNotFound)
}

// SetCategory overwrites the category and custom name of one row. The table
// is untouched when the id does not exist.
func (l *Ledger) SetCategory(id int, category, note string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.transactions) == 0 {
		return ErrNoData
	}
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			l.transactions[i].Category = category
			l.transactions[i].CustomName = note
			return nil
		}
	}
	return fmt.Errorf("id %d: %w", id, ErrTransactionNotFound)
}

// AddCustomCategory labels the target row with a custom category and, for
// every non-empty keyword, relabels all rows whose description contains the
// keyword case-insensitively. The match set is computed in full before any
// row is changed, so the relabel is atomic with respect to the table, and the
// operation is idempotent: repeating it with the same keywords yields the
// same end state. Returns the number of rows updated.
func (l *Ledger) AddCustomCategory(id int, label string, keywords []string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.transactions) == 0 {
		return 0, ErrNoData
	}

	target := -1
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			target = i
			break
		}
	}
	if target == -1 {
		return 0, fmt.Errorf("id %d: %w", id, ErrTransactionNotFound)
	}

	matched := map[int]bool{target: true}
	for _, kw := range keywords {
		kw = strings.ToUpper(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for i := range l.transactions {
			if strings.Contains(strings.ToUpper(l.transactions[i].Description), kw) {
				matched[i] = true
			}
		}
	}

	for i := range matched {
		l.transactions[i].Category = label
		l.transactions[i].CustomName = label
	}
	return len(matched), nil
}
