package statement

import "github.com/sells-group/edgar-extract/internal/concept"

// Derived metric labels.
const (
	LabelGrossProfit  = "Gross Profit"
	LabelEBITDA       = "EBITDA"
	LabelFreeCashFlow = "Free Cash Flow"
)

// Alias label lists for derived-metric inputs, tried in order.
var (
	revenueAliases = []string{
		"Revenues",
		"Revenue From Contract With Customer Excluding Assessed Tax",
		"Revenue From Contract With Customer Including Assessed Tax",
		"Sales Revenue Net",
	}
	costOfRevenueAliases = []string{
		"Cost Of Revenue",
		"Cost Of Goods And Services Sold",
		"Cost Of Goods Sold",
		"Cost Of Services",
	}
	operatingIncomeAliases = []string{"Operating Income Loss"}
	depreciationAliases    = []string{
		"Depreciation Depletion And Amortization",
		"Depreciation Amortization And Accretion Net",
		"Depreciation And Amortization",
		"Depreciation",
	}
	intangibleAmortAliases = []string{"Amortization Of Intangible Assets"}
	cashFromOpsAliases     = []string{
		"Net Cash Provided By Used In Operating Activities",
		"Net Cash Provided By Used In Operating Activities Continuing Operations",
	}
	capexAliases = []string{
		"Payments To Acquire Property Plant And Equipment",
		"Payments To Acquire Productive Assets",
	}
)

// findSeries returns the first alias found, searching the given categories in
// order. Derived-metric inputs may live on a different statement than the
// metric itself (D&A is usually a cash-flow add-back).
func findSeries(b Bundle, aliases []string, cats ...concept.Category) (Series, bool) {
	for _, cat := range cats {
		for _, alias := range aliases {
			if s, ok := b.Get(cat, alias); ok {
				return s, true
			}
		}
	}
	return nil, false
}

// Derive computes the fallback and derived metrics in place. A derived period
// exists only when its required inputs exist for that period; optional
// add-ons default to zero.
func Derive(b Bundle) {
	deriveGrossProfit(b)
	deriveEBITDA(b)
	deriveFreeCashFlow(b)
}

// deriveGrossProfit fills in Revenue - Cost of Revenue when the filer did not
// report gross profit directly.
func deriveGrossProfit(b Bundle) {
	if _, ok := b.Get(concept.IncomeStatement, LabelGrossProfit); ok {
		return
	}
	revenue, ok := findSeries(b, revenueAliases, concept.IncomeStatement)
	if !ok {
		return
	}
	cost, ok := findSeries(b, costOfRevenueAliases, concept.IncomeStatement)
	if !ok {
		return
	}

	derived := make(Series)
	for period, rev := range revenue {
		if c, ok := cost[period]; ok {
			derived[period] = rev - c
		}
	}
	if len(derived) > 0 {
		b.Put(concept.IncomeStatement, LabelGrossProfit, derived)
	}
}

// deriveEBITDA computes Operating Income + D&A + intangible amortization.
// Operating income is required per period; the add-backs default to zero.
func deriveEBITDA(b Bundle) {
	opInc, ok := findSeries(b, operatingIncomeAliases, concept.IncomeStatement)
	if !ok {
		return
	}
	da, _ := findSeries(b, depreciationAliases, concept.CashFlow, concept.IncomeStatement)
	amort, _ := findSeries(b, intangibleAmortAliases, concept.IncomeStatement, concept.CashFlow)

	derived := make(Series)
	for period, oi := range opInc {
		derived[period] = oi + da[period] + amort[period]
	}
	if len(derived) > 0 {
		b.Put(concept.IncomeStatement, LabelEBITDA, derived)
	}
}

// deriveFreeCashFlow computes cash from operations minus the magnitude of
// capital expenditure. Capex sign varies across filers; the magnitude is
// always subtracted.
func deriveFreeCashFlow(b Bundle) {
	cfo, ok := findSeries(b, cashFromOpsAliases, concept.CashFlow)
	if !ok {
		return
	}
	capex, ok := findSeries(b, capexAliases, concept.CashFlow)
	if !ok {
		return
	}

	derived := make(Series)
	for period, ops := range cfo {
		if cx, ok := capex[period]; ok {
			if cx < 0 {
				cx = -cx
			}
			derived[period] = ops - cx
		}
	}
	if len(derived) > 0 {
		b.Put(concept.CashFlow, LabelFreeCashFlow, derived)
	}
}
