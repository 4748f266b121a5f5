package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/edgar-extract/internal/edgar"
)

func obs(start, end, filed, form string, val float64) edgar.FactValue {
	return edgar.FactValue{Start: start, End: end, Filed: filed, Form: form, Val: val}
}

func TestCollapse_AnnualBasic(t *testing.T) {
	values := []edgar.FactValue{
		obs("2022-01-01", "2022-12-31", "2023-02-01", "10-K", 1_000_000_000),
	}

	got := Collapse(values, Annual, "2015-01-01")
	require.Len(t, got, 1)
	assert.Equal(t, 1_000_000_000.0, got["2022"])
}

func TestCollapse_OnePeriodOneValue(t *testing.T) {
	// Three filings of the same fiscal year must collapse to one entry.
	values := []edgar.FactValue{
		obs("2022-01-01", "2022-12-31", "2023-02-01", "10-K", 100),
		obs("2022-01-01", "2022-12-31", "2024-02-01", "10-K", 101),
		obs("2022-01-01", "2022-12-31", "2025-02-01", "10-K", 102),
	}

	got := Collapse(values, Annual, "2015-01-01")
	assert.Len(t, got, 1)
}

func TestCollapse_LastFiledWins(t *testing.T) {
	amended := []edgar.FactValue{
		obs("2022-01-01", "2022-12-31", "2023-02-01", "10-K", 100),
		obs("2022-01-01", "2022-12-31", "2023-05-01", "10-K", 110),
	}
	got := Collapse(amended, Annual, "2015-01-01")
	assert.Equal(t, 110.0, got["2022"])

	// Result must not depend on input ordering.
	reversed := []edgar.FactValue{amended[1], amended[0]}
	got = Collapse(reversed, Annual, "2015-01-01")
	assert.Equal(t, 110.0, got["2022"])
}

func TestCollapse_WrongFormDiscarded(t *testing.T) {
	values := []edgar.FactValue{
		obs("2022-10-01", "2022-12-31", "2023-02-01", "10-Q", 50),
	}

	got := Collapse(values, Annual, "2015-01-01")
	assert.Empty(t, got)

	got = Collapse(values, Quarterly, "2015-01-01")
	assert.Len(t, got, 1)
	assert.Equal(t, 50.0, got["2022-12-31"])
}

func TestCollapse_CutoffDiscardsOldPeriods(t *testing.T) {
	values := []edgar.FactValue{
		obs("2010-01-01", "2010-12-31", "2011-02-01", "10-K", 1),
		obs("2022-01-01", "2022-12-31", "2023-02-01", "10-K", 2),
	}

	got := Collapse(values, Annual, "2015-01-01")
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got["2022"])
}

func TestCollapse_SpanFilter(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		freq  Frequency
		kept  bool
	}{
		{"full year", "2022-01-01", "2022-12-31", Annual, true},
		{"ytd nine months rejected annually", "2022-01-01", "2022-09-30", Annual, false},
		{"quarter", "2022-10-01", "2022-12-31", Quarterly, true},
		{"half year rejected quarterly", "2022-07-01", "2022-12-31", Quarterly, false},
		{"stub period rejected quarterly", "2022-12-01", "2022-12-31", Quarterly, false},
		{"instantaneous exempt annual", "", "2022-12-31", Annual, true},
		{"instantaneous exempt quarterly", "", "2022-12-31", Quarterly, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := "10-K"
			if tt.freq == Quarterly {
				form = "10-Q"
			}
			got := Collapse([]edgar.FactValue{obs(tt.start, tt.end, "2023-01-01", form, 1)}, tt.freq, "2015-01-01")
			if tt.kept {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestCollapse_MalformedStartDateRetained(t *testing.T) {
	// A date that cannot be parsed must not reject the observation and must
	// not abort the run: the span filter is skipped for that record.
	values := []edgar.FactValue{
		obs("not-a-date", "2022-12-31", "2023-02-01", "10-K", 77),
	}

	got := Collapse(values, Annual, "2015-01-01")
	require.Len(t, got, 1)
	assert.Equal(t, 77.0, got["2022"])
}

func TestCollapse_NonNumericValueSkipped(t *testing.T) {
	values := []edgar.FactValue{
		{Start: "2022-01-01", End: "2022-12-31", Filed: "2023-02-01", Form: "10-K", Val: "n/a"},
	}

	got := Collapse(values, Annual, "2015-01-01")
	assert.Empty(t, got)
}

func TestCollapse_ForeignForms(t *testing.T) {
	values := []edgar.FactValue{
		obs("2022-01-01", "2022-12-31", "2023-03-01", "20-F", 9),
	}
	got := Collapse(values, Annual, "2015-01-01")
	assert.Equal(t, 9.0, got["2022"])

	values = []edgar.FactValue{
		obs("2022-10-01", "2022-12-31", "2023-01-15", "6-K", 3)}
	got = Collapse(values, Quarterly, "2015-01-01")
	assert.Equal(t, 3.0, got["2022-12-31"])
}

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2022", PeriodKey("2022-12-31", Annual))
	assert.Equal(t, "2022-12-31", PeriodKey("2022-12-31", Quarterly))
}
