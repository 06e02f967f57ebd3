package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expense-analyzer/internal/dto"
	"expense-analyzer/internal/models"
	"expense-analyzer/internal/services"
	"expense-analyzer/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// SummaryHandlerSuite defines the test suite for SummaryHandler
type SummaryHandlerSuite struct {
	suite.Suite
	registry *store.Registry
	handler  *SummaryHandler
	echo     *echo.Echo
	sid      uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *SummaryHandlerSuite) SetupTest() {
	s.registry = store.NewRegistry()
	summary := services.NewSummaryService([]string{models.CategoryInvestment})
	s.handler = NewSummaryHandler(s.registry, summary, 5)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.sid = s.registry.Create()

	ingestion := services.NewIngestionService(services.NewCategoryService(), services.NewNoopMetrics())
	ledger, err := s.registry.Get(s.sid)
	s.Require().NoError(err)

	statement := "Date,Narration,Withdrawal Amt.,Deposit Amt.\n" +
		"2024-01-05,UPI-SWIGGY-4521/ORDER,350.00,\n" +
		"2024-01-15,NETFLIX SUBSCRIPTION,649.00,\n" +
		"2024-02-05,UPI-ZOMATO-8810/ORDER,500.00,\n" +
		"2024-02-10,IRCTC RAIL TICKET,2400.00,\n" +
		"2024-02-01,SALARY CREDIT FEB,,50000.00\n"
	_, err = ingestion.Ingest(ledger, strings.NewReader(statement))
	s.Require().NoError(err)
}

// TestSummaryHandlerSuite runs the test suite
func TestSummaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(SummaryHandlerSuite))
}

func (s *SummaryHandlerSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("sid")
	c.SetParamValues(s.sid.String())
	return c, rec
}

func (s *SummaryHandlerSuite) TestOverview() {
	c, rec := s.newContext("/api/v1/sessions/sid/summary/overview")

	err := s.handler.Overview(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var o models.Overview
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &o))
	s.Equal(5, o.TotalTransactions)
	s.True(o.TotalIncome.IsPositive())
	s.True(o.TotalExpenses.IsPositive())
}

func (s *SummaryHandlerSuite) TestCategories() {
	c, rec := s.newContext("/api/v1/sessions/sid/summary/categories")

	err := s.handler.Categories(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CategorySummaryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	// The salary deposit lands in Other, which is outside the income-like
	// exclusion set and therefore counts as spend.
	s.Require().NotEmpty(resp.Categories)
	s.Equal(models.CategoryOther, resp.Categories[0].Label)
	s.Equal(models.CategoryTravel, resp.Categories[1].Label)
}

func (s *SummaryHandlerSuite) TestDaily_WithCategoryFilter() {
	c, rec := s.newContext("/api/v1/sessions/sid/summary/daily?category=Dining")

	err := s.handler.Daily(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.DailySeriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Days, 2)
	s.True(resp.Days[0].Date.Before(resp.Days[1].Date))
}

func (s *SummaryHandlerSuite) TestMonthly() {
	c, rec := s.newContext("/api/v1/sessions/sid/summary/monthly")

	err := s.handler.Monthly(c)
	s.NoError(err)

	var resp dto.MonthlySeriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Months, 2)
	s.Equal("Jan 2024", resp.Months[0].Label)
	s.Equal("Feb 2024", resp.Months[1].Label)
}

func (s *SummaryHandlerSuite) TestMonthOverMonth() {
	c, rec := s.newContext("/api/v1/sessions/sid/summary/month-over-month")

	err := s.handler.MonthOverMonth(c)
	s.NoError(err)

	var resp dto.MonthOverMonthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Changes)
	s.LessOrEqual(len(resp.Changes), 3)
}

func (s *SummaryHandlerSuite) TestTopCategories_Limit() {
	c, rec := s.newContext("/api/v1/sessions/sid/summary/top-categories?limit=1")

	err := s.handler.TopCategories(c)
	s.NoError(err)

	var resp dto.CategorySummaryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Categories, 1)
}

func (s *SummaryHandlerSuite) TestTopCategories_ConfiguredDefault() {
	handler := NewSummaryHandler(s.registry, services.NewSummaryService([]string{models.CategoryInvestment}), 1)
	c, rec := s.newContext("/api/v1/sessions/sid/summary/top-categories")

	err := handler.TopCategories(c)
	s.NoError(err)

	var resp dto.CategorySummaryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Categories, 1)
}

func (s *SummaryHandlerSuite) TestTopCategories_InvalidLimit() {
	c, rec := s.newContext("/api/v1/sessions/sid/summary/top-categories?limit=zero")

	err := s.handler.TopCategories(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_004")
}

func (s *SummaryHandlerSuite) TestTopMerchants() {
	c, rec := s.newContext("/api/v1/sessions/sid/summary/top-merchants")

	err := s.handler.TopMerchants(c)
	s.NoError(err)

	var resp dto.TopMerchantsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Merchants)
	for _, m := range resp.Merchants {
		s.NotEqual(models.MerchantUnknown, m.Merchant)
	}
}

// An empty table is a renderable state, so summary endpoints return
// zero-valued payloads instead of an error.
func (s *SummaryHandlerSuite) TestEmptySession_OverviewIsZero() {
	empty := s.registry.Create()
	c, rec := s.newContext("/api/v1/sessions/sid/summary/overview")
	c.SetParamNames("sid")
	c.SetParamValues(empty.String())

	err := s.handler.Overview(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var o models.Overview
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &o))
	s.Equal(0, o.TotalTransactions)
	s.True(o.NetAmount.IsZero())
	s.True(o.TotalExpenses.IsZero())
}

func (s *SummaryHandlerSuite) TestEmptySession_CategoriesEmpty() {
	empty := s.registry.Create()
	c, rec := s.newContext("/api/v1/sessions/sid/summary/categories")
	c.SetParamNames("sid")
	c.SetParamValues(empty.String())

	err := s.handler.Categories(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CategorySummaryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Empty(resp.Categories)
}

func (s *SummaryHandlerSuite) TestEmptySession_SeriesEmpty() {
	empty := s.registry.Create()

	c, rec := s.newContext("/api/v1/sessions/sid/summary/daily")
	c.SetParamNames("sid")
	c.SetParamValues(empty.String())
	s.NoError(s.handler.Daily(c))
	s.Equal(http.StatusOK, rec.Code)
	var daily dto.DailySeriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &daily))
	s.Empty(daily.Days)

	c, rec = s.newContext("/api/v1/sessions/sid/summary/monthly")
	c.SetParamNames("sid")
	c.SetParamValues(empty.String())
	s.NoError(s.handler.Monthly(c))
	s.Equal(http.StatusOK, rec.Code)
	var monthly dto.MonthlySeriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &monthly))
	s.Empty(monthly.Months)

	c, rec = s.newContext("/api/v1/sessions/sid/summary/month-over-month")
	c.SetParamNames("sid")
	c.SetParamValues(empty.String())
	s.NoError(s.handler.MonthOverMonth(c))
	s.Equal(http.StatusOK, rec.Code)
	var mom dto.MonthOverMonthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &mom))
	s.Empty(mom.Changes)
}
