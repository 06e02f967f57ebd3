package services

import (
	"strings"

	"expense-analyzer/internal/models"
)

// wellKnownMerchants are matched as substrings of the uppercased description
// before any UPI token extraction is attempted.
var wellKnownMerchants = []string{
	"SWIGGY", "ZOMATO", "AMAZON", "FLIPKART", "MYNTRA", "NETFLIX", "SPOTIFY",
	"UBER", "OLA", "IRCTC", "BIGBASKET", "DMART", "PAYTM", "ZERODHA", "AIRTEL",
	"JIO",
}

type categoryService struct {
	rules     []models.CategoryRule
	merchants []string
}

// NewCategoryService creates a categorizer over the canonical ordered rule
// list. The rule order is fixed and significant: a description matching
// keywords from two categories is assigned to whichever is checked first.
func NewCategoryService() CategoryServiceInterface {
	return &categoryService{
		rules:     models.DefaultCategoryRules(),
		merchants: wellKnownMerchants,
	}
}

// Categorize walks the ordered rule list and returns the first category with
// a keyword appearing as a literal substring of the uppercased description.
func (s *categoryService) Categorize(description string) string {
	normalized := strings.ToUpper(description)
	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return rule.Name
			}
		}
	}
	return models.CategoryOther
}

// ExtractMerchant pulls a counterparty token out of a description. Well-known
// merchant names win; otherwise a UPI-prefixed token is cut at the next '/'
// or '-' delimiter.
func (s *categoryService) ExtractMerchant(description string) string {
	normalized := strings.ToUpper(description)

	for _, m := range s.merchants {
		if strings.Contains(normalized, m) {
			return m
		}
	}

	if strings.Contains(normalized, "UPI") {
		if token := upiToken(normalized); token != "" {
			return token
		}
	}

	return models.MerchantUnknown
}

// Apply assigns Category and Merchant on the transaction.
func (s *categoryService) Apply(t *models.Transaction) {
	t.Category = s.Categorize(t.Description)
	t.Merchant = s.ExtractMerchant(t.Description)
}

// upiToken extracts the token immediately following a "UPI-" prefix, up to
// the next '/' or '-' delimiter.
func upiToken(normalized string) string {
	idx := strings.Index(normalized, "UPI-")
	if idx < 0 {
		return ""
	}
	rest := normalized[idx+len("UPI-"):]
	if cut := strings.IndexAny(rest, "/-"); cut >= 0 {
		rest = rest[:cut]
	}
	return strings.TrimSpace(rest)
}
