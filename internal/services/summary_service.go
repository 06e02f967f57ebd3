package services

import (
	"math"
	"sort"
	"time"

	"expense-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

const monthLabelFormat = "Jan 2006"

type summaryService struct {
	// incomeCategories is the income-like exclusion set used by the expense
	// rule. Configurable because its historical contents varied and it
	// directly changes spend totals.
	incomeCategories map[string]bool
}

// NewSummaryService creates the aggregation service. excludedCategories lists
// the categories whose positive amounts do not count as spend.
func NewSummaryService(excludedCategories []string) SummaryServiceInterface {
	excluded := make(map[string]bool, len(excludedCategories))
	for _, c := range excludedCategories {
		excluded[c] = true
	}
	return &summaryService{incomeCategories: excluded}
}

// Overview computes the headline totals for the full table.
func (s *summaryService) Overview(rows []models.Transaction) models.Overview {
	o := models.Overview{
		TotalTransactions: len(rows),
		NetAmount:         decimal.Zero,
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		TotalInvested:     decimal.Zero,
		NetSavings:        decimal.Zero,
	}

	for i := range rows {
		t := &rows[i]
		o.NetAmount = o.NetAmount.Add(t.Amount)
		if t.IsIncome() {
			o.TotalIncome = o.TotalIncome.Add(t.Amount)
		}
		if t.Amount.IsNegative() {
			o.TotalExpenses = o.TotalExpenses.Add(t.Amount.Abs())
			if t.Category == models.CategoryInvestment {
				o.TotalInvested = o.TotalInvested.Add(t.Amount.Abs())
			}
		}
	}

	o.NetSavings = o.TotalIncome.Sub(o.TotalExpenses)
	return o
}

// CategorySummary groups expense rows by display label, summing absolute
// amounts and counting rows, sorted by total descending. Ties break on label
// so repeated calls on unchanged data return the same order.
func (s *summaryService) CategorySummary(rows []models.Transaction) []models.CategorySummary {
	totals := make(map[string]*models.CategorySummary)
	for i := range rows {
		t := &rows[i]
		if !t.IsExpense(s.incomeCategories) {
			continue
		}
		label := t.DisplayLabel()
		entry, ok := totals[label]
		if !ok {
			entry = &models.CategorySummary{Label: label, TotalAmount: decimal.Zero}
			totals[label] = entry
		}
		entry.TotalAmount = entry.TotalAmount.Add(t.ExpenseAmount())
		entry.TransactionCount++
	}

	out := make([]models.CategorySummary, 0, len(totals))
	for _, entry := range totals {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalAmount.Equal(out[j].TotalAmount) {
			return out[i].TotalAmount.GreaterThan(out[j].TotalAmount)
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// DailyExpenses sums expense amounts by calendar date, ascending. A non-empty
// category restricts the series to rows whose display label matches it.
func (s *summaryService) DailyExpenses(rows []models.Transaction, category string) []models.DailyTotal {
	totals := make(map[time.Time]decimal.Decimal)
	for i := range rows {
		t := &rows[i]
		if !t.IsExpense(s.incomeCategories) {
			continue
		}
		if category != "" && t.DisplayLabel() != category {
			continue
		}
		day := t.Date
		totals[day] = totals[day].Add(t.ExpenseAmount())
	}

	out := make([]models.DailyTotal, 0, len(totals))
	for day, total := range totals {
		out = append(out, models.DailyTotal{Date: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// MonthlyExpenses sums expense amounts by calendar month in chronological
// order. Labels like "Jan 2024" do not sort as strings, so ordering uses the
// month itself.
func (s *summaryService) MonthlyExpenses(rows []models.Transaction) []models.MonthlyTotal {
	totals := make(map[time.Time]decimal.Decimal)
	for i := range rows {
		t := &rows[i]
		if !t.IsExpense(s.incomeCategories) {
			continue
		}
		m := monthOf(t.Date)
		totals[m] = totals[m].Add(t.ExpenseAmount())
	}

	out := make([]models.MonthlyTotal, 0, len(totals))
	for m, total := range totals {
		out = append(out, models.MonthlyTotal{Month: m, Label: m.Format(monthLabelFormat), Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// MonthOverMonth compares the two most recent months' per-category expense
// totals and returns the top 3 deltas ranked by signed percent change
// descending. A category absent in the prior month reports +100.0; absent in
// both reports 0.
func (s *summaryService) MonthOverMonth(rows []models.Transaction) []models.CategoryDelta {
	perMonth := make(map[time.Time]map[string]decimal.Decimal)
	for i := range rows {
		t := &rows[i]
		if !t.IsExpense(s.incomeCategories) {
			continue
		}
		m := monthOf(t.Date)
		if perMonth[m] == nil {
			perMonth[m] = make(map[string]decimal.Decimal)
		}
		label := t.DisplayLabel()
		perMonth[m][label] = perMonth[m][label].Add(t.ExpenseAmount())
	}
	if len(perMonth) < 2 {
		return nil
	}

	months := make([]time.Time, 0, len(perMonth))
	for m := range perMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	previous := perMonth[months[len(months)-2]]
	latest := perMonth[months[len(months)-1]]

	labels := make(map[string]bool, len(previous)+len(latest))
	for label := range previous {
		labels[label] = true
	}
	for label := range latest {
		labels[label] = true
	}

	deltas := make([]models.CategoryDelta, 0, len(labels))
	for label := range labels {
		prev := previous[label]
		cur := latest[label]
		deltas = append(deltas, models.CategoryDelta{
			Category:  label,
			Previous:  prev,
			Latest:    cur,
			ChangePct: percentChange(prev, cur),
		})
	}
	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].ChangePct != deltas[j].ChangePct {
			return deltas[i].ChangePct > deltas[j].ChangePct
		}
		return deltas[i].Category < deltas[j].Category
	})
	if len(deltas) > 3 {
		deltas = deltas[:3]
	}
	return deltas
}

// TopCategories returns the n largest categories by summed absolute expense
// amount.
func (s *summaryService) TopCategories(rows []models.Transaction, n int) []models.CategorySummary {
	summary := s.CategorySummary(rows)
	if n > 0 && len(summary) > n {
		summary = summary[:n]
	}
	return summary
}

// TopMerchants returns the n largest extracted merchants by summed absolute
// expense amount. Rows without a recognized merchant are skipped.
func (s *summaryService) TopMerchants(rows []models.Transaction, n int) []models.MerchantTotal {
	totals := make(map[string]*models.MerchantTotal)
	for i := range rows {
		t := &rows[i]
		if !t.IsExpense(s.incomeCategories) {
			continue
		}
		if t.Merchant == "" || t.Merchant == models.MerchantUnknown {
			continue
		}
		entry, ok := totals[t.Merchant]
		if !ok {
			entry = &models.MerchantTotal{Merchant: t.Merchant, TotalAmount: decimal.Zero}
			totals[t.Merchant] = entry
		}
		entry.TotalAmount = entry.TotalAmount.Add(t.ExpenseAmount())
		entry.TransactionCount++
	}

	out := make([]models.MerchantTotal, 0, len(totals))
	for _, entry := range totals {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalAmount.Equal(out[j].TotalAmount) {
			return out[i].TotalAmount.GreaterThan(out[j].TotalAmount)
		}
		return out[i].Merchant < out[j].Merchant
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// percentChange implements the month-over-month delta rule: +100 for a
// category appearing this month from nothing, 0 when absent in both months,
// otherwise the rounded relative change.
func percentChange(previous, latest decimal.Decimal) float64 {
	if previous.IsZero() {
		if latest.IsZero() {
			return 0
		}
		return 100.0
	}
	change, _ := latest.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return math.Round(change*10) / 10
}
