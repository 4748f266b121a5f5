package statement

import "strings"

// totalFragments flag subtotal/total rows by label content.
var totalFragments = []string{
	"total",
	"gross profit",
	"net income",
	"ebitda",
	"free cash flow",
	"net cash provided by used in operating activities",
	"net cash provided by used in investing activities",
	"net cash provided by used in financing activities",
}

// explicitTotals is the fixed total-label set used by the allow-list variant.
var explicitTotals = map[string]struct{}{
	"Revenues":          {},
	"Gross Profit":      {},
	"Operating Income Loss": {},
	"Net Income Loss":   {},
	"EBITDA":            {},
	"Assets Current":    {},
	"Assets":            {},
	"Liabilities Current": {},
	"Liabilities":       {},
	"Stockholders Equity": {},
	"Liabilities And Stockholders Equity": {},
	"Net Cash Provided By Used In Operating Activities": {},
	"Net Cash Provided By Used In Investing Activities": {},
	"Net Cash Provided By Used In Financing Activities": {},
	"Free Cash Flow": {},
}

// IsTotalLabel reports whether a label should be emphasized as a total row,
// matched by substring.
func IsTotalLabel(label string) bool {
	lower := strings.ToLower(label)
	for _, frag := range totalFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// IsExplicitTotal reports membership in the fixed total-label set.
func IsExplicitTotal(label string) bool {
	_, ok := explicitTotals[label]
	return ok
}
