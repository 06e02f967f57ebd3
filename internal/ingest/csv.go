// Package ingest parses uploaded bank-statement CSVs into the normalized
// transaction schema. Two layouts are recognized: a split layout with
// separate withdrawal/deposit columns, and a unified layout with a single
// signed amount column. Structurally missing columns fail hard; malformed
// individual rows are dropped, not repaired.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"expense-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyInput is returned when the parsed table has zero data rows.
	ErrEmptyInput = errors.New("uploaded file has no data rows")
	// ErrMissingDateColumn is returned when no date column exists.
	ErrMissingDateColumn = errors.New("statement must contain a 'Date' column")
	// ErrMissingAmountColumns is returned when neither amount layout is present.
	ErrMissingAmountColumns = errors.New("statement must contain 'Amount' or ('Withdrawal Amt.' and 'Deposit Amt.') columns")
)

const (
	ColumnDate        = "Date"
	ColumnAmount      = "Amount"
	ColumnWithdrawal  = "Withdrawal Amt."
	ColumnDeposit     = "Deposit Amt."
	ColumnNarration   = "Narration"
	ColumnDescription = "Description"
)

// dateFormats are tried in order when parsing the date column. Statements in
// the wild mix ISO dates with the day-first forms Indian banks export.
var dateFormats = []string{
	"2006-01-02",
	"02/01/06",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
	"02 Jan 2006",
	"2 Jan 2006",
}

// Result describes a successful ingestion.
type Result struct {
	RowCount int `json:"total_transactions"`
}

// Parse reads delimited tabular text with a header row and returns normalized
// transactions in file order, each assigned a sequential 1-based id. Rows
// whose date or amount cannot be parsed are dropped.
func Parse(r io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, record)
	}
	if len(rows) > 0 && duplicatesHeader(header, rows[0]) {
		// Re-exported files sometimes repeat the column names as data.
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	col := indexColumns(header)
	if _, ok := col[ColumnDate]; !ok {
		return nil, ErrMissingDateColumn
	}

	_, hasWithdrawal := col[ColumnWithdrawal]
	_, hasDeposit := col[ColumnDeposit]
	_, hasAmount := col[ColumnAmount]

	switch {
	case hasWithdrawal && hasDeposit:
		return parseSplit(col, rows), nil
	case hasAmount:
		return parseUnified(col, rows), nil
	default:
		return nil, ErrMissingAmountColumns
	}
}

// parseSplit handles the withdrawal/deposit layout. Missing or unparseable
// amounts default to zero; amount = deposit - withdrawal.
func parseSplit(col map[string]int, rows [][]string) []models.Transaction {
	out := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		date, ok := parseDate(field(row, col, ColumnDate))
		if !ok {
			continue
		}
		withdrawal := parseAmountOrZero(field(row, col, ColumnWithdrawal))
		deposit := parseAmountOrZero(field(row, col, ColumnDeposit))

		out = append(out, models.Transaction{
			ID:          len(out) + 1,
			Date:        date,
			Description: description(row, col),
			Amount:      deposit.Sub(withdrawal),
			Withdrawal:  withdrawal,
			Deposit:     deposit,
		})
	}
	return out
}

// parseUnified handles the single-amount layout. Unparseable amounts drop the
// row; withdrawal/deposit are synthesized from the sign of the amount.
func parseUnified(col map[string]int, rows [][]string) []models.Transaction {
	out := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		date, ok := parseDate(field(row, col, ColumnDate))
		if !ok {
			continue
		}
		amount, ok := parseAmount(field(row, col, ColumnAmount))
		if !ok {
			continue
		}

		withdrawal := decimal.Zero
		deposit := decimal.Zero
		if amount.IsNegative() {
			withdrawal = amount.Neg()
		} else {
			deposit = amount
		}

		out = append(out, models.Transaction{
			ID:          len(out) + 1,
			Date:        date,
			Description: description(row, col),
			Amount:      amount,
			Withdrawal:  withdrawal,
			Deposit:     deposit,
		})
	}
	return out
}

func indexColumns(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return idx
}

func duplicatesHeader(header, row []string) bool {
	if len(row) != len(header) {
		return false
	}
	for i := range row {
		if strings.TrimSpace(row[i]) != header[i] {
			return false
		}
	}
	return true
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func description(row []string, col map[string]int) string {
	if v := field(row, col, ColumnNarration); v != "" {
		return v
	}
	if v := field(row, col, ColumnDescription); v != "" {
		return v
	}
	return models.NoDescription
}

// parseAmount parses a decimal string, tolerating thousands separators and
// surrounding quotes or currency spacing.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.Trim(s, "\" ")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func parseAmountOrZero(s string) decimal.Decimal {
	d, ok := parseAmount(s)
	if !ok {
		return decimal.Zero
	}
	return d
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
