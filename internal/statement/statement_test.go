package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/edgar-extract/internal/concept"
)

func TestOrderLabels_TwoTier(t *testing.T) {
	labels := []string{
		"Zebra Metric",
		"Net Income Loss",
		"Alpha Metric",
		"Revenues",
		"Operating Income Loss",
	}

	got := OrderLabels(concept.IncomeStatement, labels)
	want := []string{
		"Revenues",
		"Operating Income Loss",
		"Net Income Loss",
		"Alpha Metric",
		"Zebra Metric",
	}
	assert.Equal(t, want, got)
}

func TestOrderLabels_Deterministic(t *testing.T) {
	a := []string{"C Item", "Revenues", "A Item", "B Item", "Net Income Loss"}
	b := []string{"Net Income Loss", "B Item", "A Item", "Revenues", "C Item"}

	assert.Equal(t, OrderLabels(concept.IncomeStatement, a), OrderLabels(concept.IncomeStatement, b),
		"ordering must not depend on input order")
}

func TestIsTotalLabel(t *testing.T) {
	assert.True(t, IsTotalLabel("Total Assets"))
	assert.True(t, IsTotalLabel("Gross Profit"))
	assert.True(t, IsTotalLabel("Net Income Loss"))
	assert.True(t, IsTotalLabel("EBITDA"))
	assert.True(t, IsTotalLabel("Free Cash Flow"))
	assert.True(t, IsTotalLabel("Net Cash Provided By Used In Financing Activities"))
	assert.False(t, IsTotalLabel("Accounts Receivable Net Current"))
}

func TestIsExplicitTotal(t *testing.T) {
	assert.True(t, IsExplicitTotal("Assets"))
	assert.True(t, IsExplicitTotal("Stockholders Equity"))
	assert.False(t, IsExplicitTotal("Goodwill"))
}

func TestDeriveGrossProfit_Fallback(t *testing.T) {
	b := Bundle{
		concept.IncomeStatement: {
			"Revenues":        Series{"2022": 1000, "2021": 900},
			"Cost Of Revenue": Series{"2022": 400},
		},
	}

	Derive(b)

	gp, ok := b.Get(concept.IncomeStatement, LabelGrossProfit)
	require.True(t, ok)
	assert.Equal(t, 600.0, gp["2022"])
	_, ok = gp["2021"]
	assert.False(t, ok, "period missing cost of revenue must be omitted, not zeroed")
}

func TestDeriveGrossProfit_AsFiledWins(t *testing.T) {
	b := Bundle{
		concept.IncomeStatement: {
			"Revenues":        Series{"2022": 1000},
			"Cost Of Revenue": Series{"2022": 400},
			"Gross Profit":    Series{"2022": 650},
		},
	}

	Derive(b)

	gp, _ := b.Get(concept.IncomeStatement, LabelGrossProfit)
	assert.Equal(t, 650.0, gp["2022"], "directly filed gross profit is never overwritten")
}

func TestDeriveEBITDA_MissingAddOnsTreatedAsZero(t *testing.T) {
	b := Bundle{
		concept.IncomeStatement: {
			"Operating Income Loss": Series{"2022": 500, "2021": 450},
		},
		concept.CashFlow: {
			"Depreciation Depletion And Amortization": Series{"2022": 100},
		},
	}

	Derive(b)

	ebitda, ok := b.Get(concept.IncomeStatement, LabelEBITDA)
	require.True(t, ok)
	assert.Equal(t, 600.0, ebitda["2022"])
	assert.Equal(t, 450.0, ebitda["2021"], "missing D&A contributes zero once operating income is present")
}

func TestDeriveEBITDA_AbsentOperatingIncomeAbsentPeriod(t *testing.T) {
	b := Bundle{
		concept.IncomeStatement: {
			"Operating Income Loss": Series{"2022": 500},
		},
		concept.CashFlow: {
			"Depreciation Depletion And Amortization": Series{"2022": 100, "2021": 90},
		},
	}

	Derive(b)

	ebitda, ok := b.Get(concept.IncomeStatement, LabelEBITDA)
	require.True(t, ok)
	_, ok = ebitda["2021"]
	assert.False(t, ok, "EBITDA must be absent when operating income is absent, never zero")
}

func TestDeriveFreeCashFlow_CapexMagnitude(t *testing.T) {
	b := Bundle{
		concept.CashFlow: {
			"Net Cash Provided By Used In Operating Activities": Series{"2022": 800, "2021": 700},
			// Capex reported as a negative outflow.
			"Payments To Acquire Property Plant And Equipment": Series{"2022": -150, "2021": 120},
		},
	}

	Derive(b)

	fcf, ok := b.Get(concept.CashFlow, LabelFreeCashFlow)
	require.True(t, ok)
	assert.Equal(t, 650.0, fcf["2022"])
	assert.Equal(t, 580.0, fcf["2021"], "capex magnitude is subtracted regardless of reported sign")
}

func TestAssemble_PeriodsReverseChronological(t *testing.T) {
	b := Bundle{
		concept.IncomeStatement: {
			"Revenues":        Series{"2020": 1, "2022": 3},
			"Net Income Loss": Series{"2021": 2},
		},
	}

	out := Assemble(b, Options{})
	st := out[concept.IncomeStatement]
	assert.Equal(t, []string{"2022", "2021", "2020"}, st.Periods)
}

func TestAssemble_SparseByDesign(t *testing.T) {
	b := Bundle{
		concept.IncomeStatement: {
			"Revenues": Series{"2022": 1},
		},
	}

	out := Assemble(b, Options{})
	require.Contains(t, out, concept.IncomeStatement)
	assert.NotContains(t, out, concept.BalanceSheet, "empty categories are absent, not padded")
	assert.NotContains(t, out, concept.CashFlow)
}

func TestAssemble_ExplicitTotalsMode(t *testing.T) {
	b := Bundle{
		concept.BalanceSheet: {
			"Assets":   Series{"2022": 10},
			"Goodwill": Series{"2022": 4},
		},
	}

	out := Assemble(b, Options{ExplicitTotals: true})
	st := out[concept.BalanceSheet]

	byLabel := make(map[string]Line)
	for _, ln := range st.Lines {
		byLabel[ln.Label] = ln
	}
	assert.True(t, byLabel["Assets"].Total)
	assert.False(t, byLabel["Goodwill"].Total)
}

func TestSectioned_BalanceSheet(t *testing.T) {
	b := Bundle{
		concept.BalanceSheet: {
			"Cash And Cash Equivalents At Carrying Value": Series{"2022": 100},
			"Accounts Payable Current":                    Series{"2022": 30},
			"Stockholders Equity":                         Series{"2022": 70},
			"Some Unsectioned Item":                       Series{"2022": 5},
		},
	}

	out := Assemble(b, Options{})
	sections := Sectioned(out[concept.BalanceSheet])

	require.Len(t, sections, 3)
	assert.Equal(t, "Assets", sections[0].Name)
	assert.Equal(t, "Liabilities", sections[1].Name)
	assert.Equal(t, "Equity", sections[2].Name)

	for _, sec := range sections {
		for _, ln := range sec.Lines {
			assert.NotEqual(t, "Some Unsectioned Item", ln.Label,
				"items outside the membership lists are dropped from the grouped view")
		}
	}
}

func TestSectioned_CashFlow(t *testing.T) {
	b := Bundle{
		concept.CashFlow: {
			"Net Cash Provided By Used In Operating Activities": Series{"2022": 800},
			"Payments To Acquire Property Plant And Equipment":  Series{"2022": -150},
			"Payments Of Dividends":                             Series{"2022": -50},
		},
	}

	out := Assemble(b, Options{})
	sections := Sectioned(out[concept.CashFlow])

	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Operating", "Investing", "Financing", "Summary"}, names)
}

func TestSectioned_IncomeStatementUngrouped(t *testing.T) {
	st := Statement{Category: concept.IncomeStatement}
	assert.Nil(t, Sectioned(st))
}
