package services

import (
	"testing"
	"time"

	"expense-analyzer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	service SummaryServiceInterface
}

func TestSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func (s *SummaryServiceTestSuite) SetupTest() {
	s.service = NewSummaryService([]string{models.CategoryInvestment})
}

func expense(id int, date time.Time, category string, amount int64) models.Transaction {
	return models.Transaction{
		ID:         id,
		Date:       date,
		Category:   category,
		Amount:     decimal.NewFromInt(-amount),
		Withdrawal: decimal.NewFromInt(amount),
	}
}

func deposit(id int, date time.Time, category string, amount int64) models.Transaction {
	return models.Transaction{
		ID:       id,
		Date:     date,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Deposit:  decimal.NewFromInt(amount),
	}
}

func on(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *SummaryServiceTestSuite) TestOverview() {
	rows := []models.Transaction{
		deposit(1, on(2024, 1, 1), models.CategoryOther, 50000),
		expense(2, on(2024, 1, 5), models.CategoryDining, 1200),
		expense(3, on(2024, 1, 8), models.CategoryInvestment, 10000),
	}

	o := s.service.Overview(rows)

	s.Equal(3, o.TotalTransactions)
	s.True(o.NetAmount.Equal(decimal.NewFromInt(38800)))
	s.True(o.TotalIncome.Equal(decimal.NewFromInt(50000)))
	s.True(o.TotalExpenses.Equal(decimal.NewFromInt(11200)))
	s.True(o.TotalInvested.Equal(decimal.NewFromInt(10000)))
	s.True(o.NetSavings.Equal(decimal.NewFromInt(38800)))
}

func (s *SummaryServiceTestSuite) TestCategorySummary_SortedDescending() {
	rows := []models.Transaction{
		expense(1, on(2024, 1, 5), models.CategoryDining, 300),
		expense(2, on(2024, 1, 6), models.CategoryDining, 200),
		expense(3, on(2024, 1, 7), models.CategoryGroceries, 900),
	}

	summary := s.service.CategorySummary(rows)

	s.Require().Len(summary, 2)
	s.Equal(models.CategoryGroceries, summary[0].Label)
	s.True(summary[0].TotalAmount.Equal(decimal.NewFromInt(900)))
	s.Equal(1, summary[0].TransactionCount)
	s.Equal(models.CategoryDining, summary[1].Label)
	s.True(summary[1].TotalAmount.Equal(decimal.NewFromInt(500)))
	s.Equal(2, summary[1].TransactionCount)
}

func (s *SummaryServiceTestSuite) TestCategorySummary_UsesDisplayLabel() {
	row := expense(1, on(2024, 1, 5), models.CategoryOther, 100)
	row.CustomName = "Hobby"

	summary := s.service.CategorySummary([]models.Transaction{row})

	s.Require().Len(summary, 1)
	s.Equal("Hobby", summary[0].Label)
}

func (s *SummaryServiceTestSuite) TestCategorySummary_ExpenseRule() {
	rows := []models.Transaction{
		// Positive amount in a non-income category counts as spend.
		{ID: 1, Date: on(2024, 1, 5), Category: models.CategoryDining, Amount: decimal.NewFromInt(250)},
		// Positive amount in an income-like category does not.
		{ID: 2, Date: on(2024, 1, 6), Category: models.CategoryInvestment, Amount: decimal.NewFromInt(5000)},
	}

	summary := s.service.CategorySummary(rows)

	s.Require().Len(summary, 1)
	s.Equal(models.CategoryDining, summary[0].Label)
	s.True(summary[0].TotalAmount.Equal(decimal.NewFromInt(250)))
}

func (s *SummaryServiceTestSuite) TestCategorySummary_EmptyInput() {
	s.Empty(s.service.CategorySummary(nil))
}

func (s *SummaryServiceTestSuite) TestDailyExpenses_ChronologicalWithFilter() {
	rows := []models.Transaction{
		expense(1, on(2024, 1, 7), models.CategoryDining, 100),
		expense(2, on(2024, 1, 5), models.CategoryDining, 200),
		expense(3, on(2024, 1, 5), models.CategoryGroceries, 50),
		// Positive amount in an income-like category stays out of the series.
		deposit(4, on(2024, 1, 5), models.CategoryInvestment, 9999),
	}

	days := s.service.DailyExpenses(rows, "")
	s.Require().Len(days, 2)
	s.Equal(on(2024, 1, 5), days[0].Date)
	s.True(days[0].Total.Equal(decimal.NewFromInt(250)))
	s.Equal(on(2024, 1, 7), days[1].Date)

	filtered := s.service.DailyExpenses(rows, models.CategoryDining)
	s.Require().Len(filtered, 2)
	s.True(filtered[0].Total.Equal(decimal.NewFromInt(200)))
}

func (s *SummaryServiceTestSuite) TestMonthlyExpenses_ChronologicalLabels() {
	rows := []models.Transaction{
		expense(1, on(2024, 2, 10), models.CategoryDining, 100),
		expense(2, on(2023, 12, 20), models.CategoryDining, 300),
		expense(3, on(2024, 1, 15), models.CategoryDining, 200),
	}

	months := s.service.MonthlyExpenses(rows)

	s.Require().Len(months, 3)
	s.Equal("Dec 2023", months[0].Label)
	s.Equal("Jan 2024", months[1].Label)
	s.Equal("Feb 2024", months[2].Label)
	s.True(months[0].Total.Equal(decimal.NewFromInt(300)))
}

func (s *SummaryServiceTestSuite) TestMonthOverMonth_DeltaRules() {
	rows := []models.Transaction{
		// Previous month
		expense(1, on(2024, 1, 10), models.CategoryDining, 100),
		expense(2, on(2024, 1, 12), models.CategoryGroceries, 400),
		// Latest month
		expense(3, on(2024, 2, 10), models.CategoryDining, 150),
		expense(4, on(2024, 2, 12), models.CategoryTravel, 900),
	}

	changes := s.service.MonthOverMonth(rows)

	s.Require().Len(changes, 3)

	byCategory := make(map[string]models.CategoryDelta)
	for _, c := range changes {
		byCategory[c.Category] = c
	}

	// New category this month reports +100.
	s.Equal(100.0, byCategory[models.CategoryTravel].ChangePct)
	// 100 -> 150 is +50%.
	s.Equal(50.0, byCategory[models.CategoryDining].ChangePct)
	// 400 -> 0 is -100%.
	s.Equal(-100.0, byCategory[models.CategoryGroceries].ChangePct)

	// Ranked by signed percent change descending.
	s.Equal(models.CategoryTravel, changes[0].Category)
	s.Equal(models.CategoryDining, changes[1].Category)
	s.Equal(models.CategoryGroceries, changes[2].Category)
}

func (s *SummaryServiceTestSuite) TestMonthOverMonth_TopThreeOnly() {
	rows := []models.Transaction{
		expense(1, on(2024, 1, 10), models.CategoryDining, 100),
		expense(2, on(2024, 2, 10), models.CategoryDining, 110),
		expense(3, on(2024, 2, 11), models.CategoryGroceries, 50),
		expense(4, on(2024, 2, 12), models.CategoryTravel, 60),
		expense(5, on(2024, 2, 13), models.CategoryShopping, 70),
	}

	changes := s.service.MonthOverMonth(rows)
	s.Len(changes, 3)
}

func (s *SummaryServiceTestSuite) TestMonthOverMonth_SingleMonth() {
	rows := []models.Transaction{
		expense(1, on(2024, 1, 10), models.CategoryDining, 100),
	}
	s.Empty(s.service.MonthOverMonth(rows))
}

func (s *SummaryServiceTestSuite) TestTopCategories_Limit() {
	rows := []models.Transaction{
		expense(1, on(2024, 1, 1), models.CategoryDining, 100),
		expense(2, on(2024, 1, 2), models.CategoryGroceries, 200),
		expense(3, on(2024, 1, 3), models.CategoryTravel, 300),
	}

	top := s.service.TopCategories(rows, 2)

	s.Require().Len(top, 2)
	s.Equal(models.CategoryTravel, top[0].Label)
	s.Equal(models.CategoryGroceries, top[1].Label)
}

func (s *SummaryServiceTestSuite) TestTopMerchants_SkipsUnknown() {
	withMerchant := func(t models.Transaction, m string) models.Transaction {
		t.Merchant = m
		return t
	}

	rows := []models.Transaction{
		withMerchant(expense(1, on(2024, 1, 1), models.CategoryDining, 500), "SWIGGY"),
		withMerchant(expense(2, on(2024, 1, 2), models.CategoryDining, 300), "SWIGGY"),
		withMerchant(expense(3, on(2024, 1, 3), models.CategoryShopping, 900), "AMAZON"),
		withMerchant(expense(4, on(2024, 1, 4), models.CategoryOther, 9999), models.MerchantUnknown),
	}

	merchants := s.service.TopMerchants(rows, 5)

	s.Require().Len(merchants, 2)
	s.Equal("AMAZON", merchants[0].Merchant)
	s.True(merchants[0].TotalAmount.Equal(decimal.NewFromInt(900)))
	s.Equal("SWIGGY", merchants[1].Merchant)
	s.True(merchants[1].TotalAmount.Equal(decimal.NewFromInt(800)))
	s.Equal(2, merchants[1].TransactionCount)
}
