// Package normalize converts raw XBRL values into display units: millions of
// dollars, millions of shares, or unscaled per-share dollars.
package normalize

import (
	"math"

	"github.com/sells-group/edgar-extract/internal/concept"
	"github.com/sells-group/edgar-extract/internal/edgar"
)

// EDGAR unit bucket names.
const (
	UnitUSD         = "USD"
	UnitUSDPerShare = "USD/shares"
	UnitShares      = "shares"
)

// unitPreference orders the unit buckets tried for each semantics class. The
// trailing entries are fallbacks for concepts misfiled under the wrong unit
// tag: a per-share concept reported as plain USD still surfaces.
var unitPreference = map[concept.UnitSemantics][]string{
	concept.Currency:         {UnitUSD, UnitUSDPerShare, UnitShares},
	concept.CurrencyPerShare: {UnitUSDPerShare, UnitUSD},
	concept.ShareCount:       {UnitShares, UnitUSD},
}

// SelectUnit picks the observation list for a concept from its unit buckets,
// preferring the bucket matching the declared semantics and falling back to
// alternates before giving up.
func SelectUnit(units map[string][]edgar.FactValue, sem concept.UnitSemantics) ([]edgar.FactValue, bool) {
	for _, unit := range unitPreference[sem] {
		if values, ok := units[unit]; ok && len(values) > 0 {
			return values, true
		}
	}
	return nil, false
}

// Value scales a raw value into display units: currency and share counts in
// millions at 3 decimals, per-share values unscaled at 4 decimals.
func Value(v float64, sem concept.UnitSemantics) float64 {
	if sem == concept.CurrencyPerShare {
		return round(v, 4)
	}
	return round(v/1_000_000, 3)
}

// Series scales every period value in a reconciled series.
func Series(periods map[string]float64, sem concept.UnitSemantics) map[string]float64 {
	if len(periods) == 0 {
		return nil
	}
	out := make(map[string]float64, len(periods))
	for key, v := range periods {
		out[key] = Value(v, sem)
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
