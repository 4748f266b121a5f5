package concept

import "strings"

// Keyword fragment sets per statement category. Matched against lower-cased
// human labels; the category with the most fragment hits wins.
var (
	incomeKeywords = []string{
		"revenue", "revenues", "sales", "royalt", "income", "loss", "expense", "cost",
		"profit", "gross", "operating", "ebitda", "interest", "tax", "earning", "margin",
		"amortization", "depreciation", "impairment", "restructur", "dividend",
	}
	balanceKeywords = []string{
		"asset", "liabilit", "equity", "cash", "receivable", "inventory", "payable",
		"debt", "borrowing", "goodwill", "intangible", "investment", "deferred",
		"stockholder", "retained", "treasury", "accumulated", "capital", "prepaid",
		"property", "plant", "equipment", "lease", "right.of.use",
	}
	cashFlowKeywords = []string{
		"cash provided", "cash used", "operating activit", "investing activit",
		"financing activit", "proceeds from", "payment", "repayment", "purchase of",
		"acquisition", "repurchase", "issuance", "capital expenditure", "capex",
		"free cash",
	}
)

// keywordPriority fixes the tie-break order between categories. The order is
// load-bearing: a label matching cash-flow and balance-sheet fragments equally
// lands on the cash flow statement.
var keywordPriority = []struct {
	category Category
	keywords []string
}{
	{CashFlow, cashFlowKeywords},
	{BalanceSheet, balanceKeywords},
	{IncomeStatement, incomeKeywords},
}

// KeywordScore classifies concepts by counting keyword fragments in the human
// label. Unmatched concepts are retained under Other rather than dropped.
type KeywordScore struct{}

// NewKeywordScore returns the keyword-scoring strategy.
func NewKeywordScore() *KeywordScore {
	return &KeywordScore{}
}

// Classify scores the label against each category's fragments. Metadata noise
// concepts are excluded; everything else is retained.
func (s *KeywordScore) Classify(name, label string) (Classification, bool) {
	if IsSkipConcept(name) {
		return Classification{}, false
	}

	lower := strings.ToLower(label)

	best := Other
	bestScore := 0
	for _, entry := range keywordPriority {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.category
			bestScore = score
		}
	}

	return Classification{Category: best, Semantics: SemanticsFor(name)}, true
}
