package statement

import "github.com/sells-group/edgar-extract/internal/concept"

// Static subsection membership lists. Lines not in any list are dropped from
// the grouped view; the ungrouped "as reported" statement keeps them.
var sectionMembers = map[concept.Category][]struct {
	name   string
	labels []string
}{
	concept.BalanceSheet: {
		{"Assets", []string{
			"Cash And Cash Equivalents At Carrying Value",
			"Short Term Investments",
			"Marketable Securities Current",
			"Accounts Receivable Net Current",
			"Inventory Net",
			"Prepaid Expense And Other Assets Current",
			"Other Assets Current",
			"Assets Current",
			"Property Plant And Equipment Net",
			"Operating Lease Right Of Use Asset",
			"Goodwill",
			"Intangible Assets Net Excluding Goodwill",
			"Marketable Securities Noncurrent",
			"Long Term Investments",
			"Other Assets Noncurrent",
			"Assets",
		}},
		{"Liabilities", []string{
			"Accounts Payable Current",
			"Accrued Liabilities Current",
			"Deferred Revenue Current",
			"Contract With Customer Liability Current",
			"Operating Lease Liability Current",
			"Long Term Debt Current",
			"Short Term Borrowings",
			"Commercial Paper",
			"Other Liabilities Current",
			"Liabilities Current",
			"Long Term Debt Noncurrent",
			"Long Term Debt",
			"Operating Lease Liability Noncurrent",
			"Deferred Revenue Noncurrent",
			"Deferred Income Tax Liabilities Net",
			"Other Liabilities Noncurrent",
			"Liabilities",
		}},
		{"Equity", []string{
			"Common Stock Value",
			"Additional Paid In Capital",
			"Additional Paid In Capital Common Stock",
			"Retained Earnings Accumulated Deficit",
			"Accumulated Other Comprehensive Income Loss Net Of Tax",
			"Treasury Stock Value",
			"Treasury Stock Common Value",
			"Stockholders Equity",
			"Minority Interest",
			"Liabilities And Stockholders Equity",
		}},
	},
	concept.CashFlow: {
		{"Operating", []string{
			"Net Income Loss",
			"Depreciation Depletion And Amortization",
			"Depreciation Amortization And Accretion Net",
			"Share Based Compensation",
			"Deferred Income Tax Expense Benefit",
			"Other Noncash Income Expense",
			"Increase Decrease In Accounts Receivable",
			"Increase Decrease In Inventories",
			"Increase Decrease In Prepaid Deferred Expense And Other Assets",
			"Increase Decrease In Accounts Payable",
			"Increase Decrease In Accrued Liabilities",
			"Increase Decrease In Deferred Revenue",
			"Net Cash Provided By Used In Operating Activities",
		}},
		{"Investing", []string{
			"Payments To Acquire Property Plant And Equipment",
			"Payments To Acquire Intangible Assets",
			"Payments To Acquire Businesses Net Of Cash Acquired",
			"Payments To Acquire Investments",
			"Payments To Acquire Marketable Securities",
			"Proceeds From Sale And Maturity Of Marketable Securities",
			"Proceeds From Sale Of Property Plant And Equipment",
			"Proceeds From Divestiture Of Businesses",
			"Net Cash Provided By Used In Investing Activities",
		}},
		{"Financing", []string{
			"Proceeds From Issuance Of Long Term Debt",
			"Proceeds From Issuance Of Common Stock",
			"Proceeds From Stock Options Exercised",
			"Proceeds From Repayments Of Commercial Paper",
			"Repayments Of Long Term Debt",
			"Repayments Of Debt",
			"Payments Of Dividends",
			"Payments Of Dividends Common Stock",
			"Payments For Repurchase Of Common Stock",
			"Net Cash Provided By Used In Financing Activities",
		}},
		{"Summary", []string{
			"Effect Of Exchange Rate On Cash And Cash Equivalents",
			"Cash And Cash Equivalents Period Increase Decrease",
			"Cash Cash Equivalents Restricted Cash And Restricted Cash Equivalents Period Increase Decrease Including Exchange Rate Effect",
			"Interest Paid",
			"Interest Paid Net",
			"Income Taxes Paid",
			"Income Taxes Paid Net",
			"Free Cash Flow",
		}},
	},
}

// Sectioned groups a statement's lines into named subsections, preserving the
// statement's line order within each section.
func Sectioned(st Statement) []Section {
	groups, ok := sectionMembers[st.Category]
	if !ok {
		return nil
	}

	var sections []Section
	for _, g := range groups {
		members := make(map[string]struct{}, len(g.labels))
		for _, l := range g.labels {
			members[l] = struct{}{}
		}

		var lines []Line
		for _, ln := range st.Lines {
			if _, ok := members[ln.Label]; ok {
				lines = append(lines, ln)
			}
		}
		if len(lines) > 0 {
			sections = append(sections, Section{Name: g.name, Lines: lines})
		}
	}
	return sections
}
