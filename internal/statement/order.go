package statement

import (
	"sort"

	"github.com/sells-group/edgar-extract/internal/concept"
)

// Preferred line-item order per statement, reflecting conventional statement
// presentation. Items matching a preferred label are emitted first in this
// order; everything else follows alphabetically.
var preferredOrder = map[concept.Category][]string{
	concept.IncomeStatement: {
		"Revenues",
		"Revenue From Contract With Customer Excluding Assessed Tax",
		"Sales Revenue Net",
		"Cost Of Revenue",
		"Cost Of Goods And Services Sold",
		"Cost Of Goods Sold",
		"Gross Profit",
		"Research And Development Expense",
		"Selling General And Administrative Expense",
		"Selling And Marketing Expense",
		"General And Administrative Expense",
		"Operating Expenses",
		"Costs And Expenses",
		"Operating Income Loss",
		"EBITDA",
		"Interest Expense",
		"Nonoperating Income Expense",
		"Other Nonoperating Income Expense",
		"Income Loss From Continuing Operations Before Income Taxes Extraordinary Items Noncontrolling Interest",
		"Income Tax Expense Benefit",
		"Net Income Loss",
		"Earnings Per Share Basic",
		"Earnings Per Share Diluted",
		"Weighted Average Number Of Shares Outstanding Basic",
		"Weighted Average Number Of Diluted Shares Outstanding",
	},
	concept.BalanceSheet: {
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
		"Other Assets Noncurrent",
		"Assets",
		"Accounts Payable Current",
		"Accrued Liabilities Current",
		"Deferred Revenue Current",
		"Operating Lease Liability Current",
		"Long Term Debt Current",
		"Other Liabilities Current",
		"Liabilities Current",
		"Long Term Debt Noncurrent",
		"Long Term Debt",
		"Operating Lease Liability Noncurrent",
		"Other Liabilities Noncurrent",
		"Liabilities",
		"Common Stock Value",
		"Additional Paid In Capital",
		"Retained Earnings Accumulated Deficit",
		"Accumulated Other Comprehensive Income Loss Net Of Tax",
		"Treasury Stock Value",
		"Stockholders Equity",
		"Liabilities And Stockholders Equity",
	},
	concept.CashFlow: {
		"Net Income Loss",
		"Depreciation Depletion And Amortization",
		"Share Based Compensation",
		"Deferred Income Tax Expense Benefit",
		"Increase Decrease In Accounts Receivable",
		"Increase Decrease In Inventories",
		"Increase Decrease In Accounts Payable",
		"Net Cash Provided By Used In Operating Activities",
		"Payments To Acquire Property Plant And Equipment",
		"Payments To Acquire Businesses Net Of Cash Acquired",
		"Payments To Acquire Investments",
		"Net Cash Provided By Used In Investing Activities",
		"Proceeds From Issuance Of Common Stock",
		"Proceeds From Issuance Of Long Term Debt",
		"Repayments Of Long Term Debt",
		"Payments Of Dividends",
		"Payments For Repurchase Of Common Stock",
		"Net Cash Provided By Used In Financing Activities",
		"Effect Of Exchange Rate On Cash And Cash Equivalents",
		"Free Cash Flow",
	},
}

// OrderLabels sorts labels with the two-tier rule: preferred-order matches in
// their fixed positions first, then the remainder alphabetically. Stable and
// deterministic for a given input set.
func OrderLabels(cat concept.Category, labels []string) []string {
	preferred := preferredOrder[cat]
	rank := make(map[string]int, len(preferred))
	for i, label := range preferred {
		rank[label] = i
	}

	var ranked, rest []string
	for _, label := range labels {
		if _, ok := rank[label]; ok {
			ranked = append(ranked, label)
		} else {
			rest = append(rest, label)
		}
	}

	sort.Slice(ranked, func(i, j int) bool { return rank[ranked[i]] < rank[ranked[j]] })
	sort.Strings(rest)

	return append(ranked, rest...)
}
