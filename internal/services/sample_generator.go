package services

import (
	"bytes"
	"encoding/csv"
	"math/rand"
	"sort"
	"time"

	"expense-analyzer/internal/ingest"
	"expense-analyzer/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type sampleMerchant struct {
	Narration string
	Category  string
}

type sampleDataService struct {
	merchantPool []sampleMerchant
	rng          *rand.Rand
}

const (
	sampleMonths  = 6
	salaryDay     = 1
	minSalary     = 40000
	maxSalary     = 90000
	sampleDateFmt = "2006-01-02"
)

// NewSampleDataService creates the demo statement generator. Output is a
// split-layout CSV that round-trips through the statement parser.
func NewSampleDataService() SampleDataServiceInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleDataService{
		merchantPool: initializeSamplePool(),
		rng:          rand.New(source),
	}
}

func initializeSamplePool() []sampleMerchant {
	return []sampleMerchant{
		{"UPI-SWIGGY-4521/ORDER", models.CategoryDining},
		{"UPI-ZOMATO-8810/ORDER", models.CategoryDining},
		{"STARBUCKS CAFE BANGALORE", models.CategoryDining},
		{"UPI-BIGBASKET/GROCERY", models.CategoryGroceries},
		{"DMART SUPERMARKET PURCHASE", models.CategoryGroceries},
		{"UPI-ZEPTO-112/GROCERY", models.CategoryGroceries},
		{"AMAZON RETAIL ORDER", models.CategoryShopping},
		{"FLIPKART ONLINE ORDER", models.CategoryShopping},
		{"MYNTRA DESIGNS PURCHASE", models.CategoryShopping},
		{"NETFLIX SUBSCRIPTION", models.CategoryEntertainment},
		{"SPOTIFY PREMIUM RENEWAL", models.CategoryEntertainment},
		{"UPI-UBER RIDES/TRIP", models.CategoryTransportation},
		{"OLA CABS RIDE", models.CategoryTransportation},
		{"PETROL PUMP HP FUEL", models.CategoryTransportation},
		{"IRCTC RAIL TICKET", models.CategoryTravel},
		{"MAKEMYTRIP HOTEL STAY", models.CategoryTravel},
		{"AIRTEL RECHARGE PREPAID", models.CategoryUtilities},
		{"JIO MOBILE RECHARGE", models.CategoryUtilities},
		{"ELECTRICITY BOARD BESCOM", models.CategoryUtilities},
		{"APOLLO PHARMACY MEDICINES", models.CategoryHealthcare},
		{"PRACTO CLINIC CONSULT", models.CategoryHealthcare},
		{"HOUSE RENT TRANSFER", models.CategoryRent},
		{"LIC PREMIUM INSURANCE", models.CategoryInsurance},
		{"ZERODHA BROKING LTD", models.CategoryInvestment},
		{"GROWW MUTUAL FUND SIP", models.CategoryInvestment},
		{"UDEMY COURSE FEE", models.CategoryEducation},
		{"GYM MEMBERSHIP FITNESS", models.CategoryPersonalCare},
		{"URBAN COMPANY SALON AT HOME", models.CategoryPersonalCare},
		{"PAINT AND HARDWARE STORE", models.CategoryHomeGarden},
		{"UPI-JOHNDOE-9917/TRANSFER", models.CategoryOther},
	}
}

// GenerateStatement produces a CSV statement with the requested number of
// expense rows plus one salary deposit per covered month.
func (s *sampleDataService) GenerateStatement(rows int) []byte {
	if rows < 1 {
		rows = 1
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, -sampleMonths, 0)

	type record struct {
		date       time.Time
		narration  string
		withdrawal decimal.Decimal
		deposit    decimal.Decimal
	}

	records := make([]record, 0, rows+sampleMonths)

	salary := decimal.NewFromFloat(gofakeit.Price(minSalary, maxSalary)).Round(0)
	for m := 0; m < sampleMonths; m++ {
		payday := time.Date(start.Year(), start.Month()+time.Month(m)+1, salaryDay, 0, 0, 0, 0, time.UTC)
		if payday.After(end) {
			break
		}
		records = append(records, record{
			date:      payday,
			narration: "SALARY CREDIT " + gofakeit.Company(),
			deposit:   salary,
		})
	}

	span := int(end.Sub(start).Hours() / 24)
	for i := 0; i < rows; i++ {
		merchant := s.merchantPool[s.rng.Intn(len(s.merchantPool))]
		day := start.AddDate(0, 0, s.rng.Intn(span+1))
		amount := decimal.NewFromFloat(gofakeit.Price(s.amountRange(merchant.Category))).Round(2)
		records = append(records, record{
			date:       day,
			narration:  merchant.Narration,
			withdrawal: amount,
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].date.Before(records[j].date) })

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{ingest.ColumnDate, ingest.ColumnNarration, ingest.ColumnWithdrawal, ingest.ColumnDeposit})
	for _, r := range records {
		row := []string{r.date.Format(sampleDateFmt), r.narration, "", ""}
		if r.withdrawal.IsPositive() {
			row[2] = r.withdrawal.StringFixed(2)
		}
		if r.deposit.IsPositive() {
			row[3] = r.deposit.StringFixed(2)
		}
		_ = w.Write(row)
	}
	w.Flush()
	return buf.Bytes()
}

func (s *sampleDataService) amountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryGroceries:      {150, 3500},
		models.CategoryDining:         {120, 1800},
		models.CategoryTransportation: {60, 900},
		models.CategoryShopping:       {300, 8000},
		models.CategoryEntertainment:  {99, 799},
		models.CategoryUtilities:      {199, 2500},
		models.CategoryHealthcare:     {150, 4000},
		models.CategoryTravel:         {500, 15000},
		models.CategoryEducation:      {400, 5000},
		models.CategoryRent:           {8000, 30000},
		models.CategoryInsurance:      {1000, 8000},
		models.CategoryInvestment:     {1000, 20000},
		models.CategoryPersonalCare:   {200, 2000},
		models.CategoryHomeGarden:     {400, 10000},
	}
	if r, ok := ranges[category]; ok {
		return r[0], r[1]
	}
	return 100, 2000
}
