package models

// Predefined spending categories, in the canonical matching order.
const (
	CategoryGroceries      = "Groceries"
	CategoryUtilities      = "Utilities"
	CategoryRent           = "Rent"
	CategoryEntertainment  = "Entertainment"
	CategoryTransportation = "Transportation"
	CategoryDining         = "Dining"
	CategoryShopping       = "Shopping"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryInsurance      = "Insurance"
	CategoryInvestment     = "Investment"
	CategoryTravel         = "Travel"
	CategoryPersonalCare   = "Personal Care"
	CategoryHomeGarden     = "Home & Garden"
	CategoryOther          = "Other"
)

// CategoryRule pairs a category with the keywords that select it. Rules are
// matched as an ordered list: the first rule with any keyword appearing as a
// substring of the uppercased description wins. Order is significant and
// tested; more discriminating categories are checked before broader ones.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// DefaultCategoryRules returns the built-in rule list in canonical order.
// Keywords are uppercase; matching normalizes descriptions to uppercase first.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{CategoryGroceries, []string{
			"GROCERY", "SUPERMARKET", "FOOD", "VEGETABLE", "FRUIT", "MILK", "BREAD",
			"RICE", "DAL", "OIL", "SPICE", "KIRANA", "GENERAL STORE", "BIG BAZAAR",
			"RELIANCE FRESH", "DMART", "GROFERS", "BIGBASKET",
		}},
		{CategoryUtilities, []string{
			"ELECTRICITY", "POWER", "GAS", "WATER", "INTERNET", "PHONE", "MOBILE",
			"BROADBAND", "WIFI", "UTILITY", "BSNL", "AIRTEL", "JIO", "VODAFONE",
			"IDEA", "MTNL",
		}},
		{CategoryRent, []string{
			"RENT", "HOUSE RENT", "ACCOMMODATION", "LEASE", "RENTAL",
		}},
		{CategoryEntertainment, []string{
			"MOVIE", "CINEMA", "NETFLIX", "AMAZON PRIME", "HOTSTAR", "ENTERTAINMENT",
			"GAME", "GAMING", "PLAYSTATION", "XBOX", "NINTENDO", "BOOK", "MAGAZINE",
			"NEWSPAPER", "MUSIC", "SPOTIFY", "YOUTUBE", "STREAMING",
		}},
		{CategoryTransportation, []string{
			"PETROL", "DIESEL", "FUEL", "UBER", "OLA", "TAXI", "BUS", "TRAIN",
			"METRO", "PARKING", "TOLL", "TRANSPORT", "CAB", "AUTO", "PETROL PUMP",
			"SHELL", "INDIAN OIL",
		}},
		{CategoryDining, []string{
			"RESTAURANT", "CAFE", "MEAL", "LUNCH", "DINNER", "BREAKFAST", "SWIGGY",
			"ZOMATO", "FOODPANDA", "DOMINOS", "PIZZA HUT", "KFC", "MCDONALDS",
			"SUBWAY", "CAFETERIA", "CANTEEN", "BAR", "PUB", "HOTEL",
		}},
		{CategoryShopping, []string{
			"AMAZON", "FLIPKART", "MYNTRA", "SHOPPING", "PURCHASE", "MALL", "SHOP",
			"RETAIL", "CLOTHING", "FASHION", "SHOES", "ELECTRONICS", "APPLIANCES",
			"FURNITURE", "DECOR", "LIFESTYLE", "JABONG", "SNAPDEAL", "PAYTM MALL",
			"TATA CLIQ", "NYKAA", "LENSKART",
		}},
		{CategoryHealthcare, []string{
			"HOSPITAL", "DOCTOR", "MEDICAL", "PHARMACY", "MEDICINE", "HEALTH",
			"CLINIC", "DENTAL", "SURGERY", "AMBULANCE", "APOLLO", "FORTIS",
			"MAX HOSPITAL", "MEDPLUS", "NETMEDS", "PRACTO", "HEALTHKART",
		}},
		{CategoryEducation, []string{
			"SCHOOL", "COLLEGE", "UNIVERSITY", "EDUCATION", "TUITION", "FEES",
			"COURSE", "TRAINING", "BOOKS", "LIBRARY", "EXAM", "BYJU", "UNACADEMY",
			"VEDANTU", "STUDENT", "ACADEMIC",
		}},
		{CategoryInsurance, []string{
			"INSURANCE", "POLICY", "PREMIUM", "LIC", "HDFC LIFE", "ICICI PRU",
			"SBI LIFE", "BAJAJ ALLIANZ", "TATA AIG", "RELIANCE GENERAL",
		}},
		{CategoryInvestment, []string{
			"MUTUAL FUND", "SIP", "INVESTMENT", "TRADING", "ZERODHA", "GROWW",
			"ANGEL BROKING", "UPSTOX", "PAYTM MONEY", "KUVERA", "STOCK", "EQUITY",
			"BOND", "PPF", "ELSS", "NSE", "BSE",
		}},
		{CategoryTravel, []string{
			"IRCTC", "MAKEMYTRIP", "GOIBIBO", "CLEARTRIP", "YATRA", "TRAVEL",
			"BOOKING", "HOTEL", "FLIGHT", "TICKET", "VACATION", "HOLIDAY",
			"TOURISM", "AIRBNB", "OYO", "TREEBO", "REDBUS",
		}},
		{CategoryPersonalCare, []string{
			"SALON", "PARLOUR", "BEAUTY", "COSMETICS", "SKINCARE", "HAIRCUT",
			"MASSAGE", "SPA", "WELLNESS", "FITNESS", "GYM", "YOGA",
			"PERSONAL CARE", "GROOMING", "URBAN COMPANY", "LAKME",
		}},
		{CategoryHomeGarden, []string{
			"HOME DEPOT", "GARDEN", "PLANTS", "NURSERY", "HARDWARE", "TOOLS",
			"REPAIR", "MAINTENANCE", "PLUMBER", "ELECTRICIAN", "CARPENTER",
			"PAINT", "TILES", "CEMENT", "CONSTRUCTION", "RENOVATION",
		}},
	}
}

// AllCategories returns every predefined category name, matching order first,
// with the Other sentinel last.
func AllCategories() []string {
	rules := DefaultCategoryRules()
	names := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return append(names, CategoryOther)
}

// IsPredefinedCategory reports whether name is one of the fixed categories.
// Correction operations also accept free-text custom labels, so this is a
// helper for presentation code rather than a validation gate.
func IsPredefinedCategory(name string) bool {
	for _, c := range AllCategories() {
		if c == name {
			return true
		}
	}
	return false
}
