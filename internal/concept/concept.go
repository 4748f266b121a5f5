// Package concept classifies XBRL concept names into financial statement
// categories and unit semantics. Two interchangeable strategies exist: a
// strict allow-list that drops anything it does not recognize, and a
// keyword-scoring fallback that buckets everything best-effort.
package concept

// Category is a financial statement bucket.
type Category string

const (
	IncomeStatement Category = "income_statement"
	BalanceSheet    Category = "balance_sheet"
	CashFlow        Category = "cash_flow"
	// Other holds concepts the keyword strategy could not place. The
	// allow-list strategy never produces it.
	Other Category = "other"
)

// Categories lists the statement buckets in presentation order.
var Categories = []Category{IncomeStatement, BalanceSheet, CashFlow, Other}

// UnitSemantics describes how a concept's values are denominated.
type UnitSemantics string

const (
	Currency         UnitSemantics = "currency"
	CurrencyPerShare UnitSemantics = "currency_per_share"
	ShareCount       UnitSemantics = "share_count"
)

// Classification pairs a statement category with unit semantics.
type Classification struct {
	Category  Category
	Semantics UnitSemantics
}

// Strategy assigns a classification to a concept. ok=false means the concept
// is excluded from extraction entirely (not merely unclassified).
type Strategy interface {
	Classify(name, label string) (Classification, bool)
}

// skipConcepts are document/entity metadata tags so generic or dimensional
// they add noise rather than value. Both strategies exclude them.
var skipConcepts = map[string]struct{}{
	"EntityCommonStockSharesOutstanding": {},
	"EntityPublicFloat":                  {},
	"EntityNumberOfEmployees":            {},
	"DocumentFiscalYearFocus":            {},
	"DocumentFiscalPeriodFocus":          {},
	"DocumentPeriodEndDate":              {},
	"EntityRegistrantName":               {},
	"EntityCentralIndexKey":              {},
	"TradingSymbol":                      {},
	"CommonStockSharesAuthorized":        {},
	"CommonStockParOrStatedValuePerShare": {},
	"CommonStockSharesIssued":             {},
	"PreferredStockSharesAuthorized":      {},
	"PreferredStockSharesIssued":          {},
	"PreferredStockSharesOutstanding":     {},
}

// shareConcepts report a number of shares rather than dollars.
var shareConcepts = map[string]struct{}{
	"WeightedAverageNumberOfSharesOutstandingBasic":  {},
	"WeightedAverageNumberOfDilutedSharesOutstanding": {},
	"CommonStockSharesOutstanding":                    {},
	"CommonStockSharesIssued":                         {},
}

// perShareConcepts report dollars per share.
var perShareConcepts = map[string]struct{}{
	"EarningsPerShareBasic":     {},
	"EarningsPerShareDiluted":   {},
	"BookValuePerShareBasic":    {},
	"DividendsCommonStockCash":  {},
}

// SemanticsFor returns the unit semantics implied by the concept name alone.
func SemanticsFor(name string) UnitSemantics {
	if _, ok := perShareConcepts[name]; ok {
		return CurrencyPerShare
	}
	if _, ok := shareConcepts[name]; ok {
		return ShareCount
	}
	return Currency
}

// IsShareConcept reports whether the concept counts shares.
func IsShareConcept(name string) bool {
	_, ok := shareConcepts[name]
	return ok
}

// IsPerShareConcept reports whether the concept is denominated per share.
func IsPerShareConcept(name string) bool {
	_, ok := perShareConcepts[name]
	return ok
}

// IsSkipConcept reports whether the concept is excluded as metadata noise.
func IsSkipConcept(name string) bool {
	_, ok := skipConcepts[name]
	return ok
}
