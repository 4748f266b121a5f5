// Package reconcile collapses raw XBRL observations into one canonical value
// per reporting period.
package reconcile

import (
	"time"

	"github.com/sells-group/edgar-extract/internal/edgar"
)

// Frequency selects annual or quarterly reporting periods.
type Frequency string

const (
	Annual    Frequency = "annual"
	Quarterly Frequency = "quarterly"
)

// Span tolerances in days. Empirical windows, not calendar arithmetic: they
// admit 52/53-week fiscal years and off-cycle quarter ends while rejecting
// cumulative year-to-date and stub-period re-filings.
const (
	annualSpanMin    = 300
	annualSpanMax    = 400
	quarterlySpanMin = 60
	quarterlySpanMax = 110
)

var (
	annualForms    = map[string]struct{}{"10-K": {}, "20-F": {}}
	quarterlyForms = map[string]struct{}{"10-Q": {}, "6-K": {}}
)

// ValidForm reports whether the filing form belongs to the target frequency.
func ValidForm(form string, freq Frequency) bool {
	if freq == Annual {
		_, ok := annualForms[form]
		return ok
	}
	_, ok := quarterlyForms[form]
	return ok
}

// PeriodKey returns the canonical period identifier for an observation end
// date: the four-digit fiscal year for annual series, the ISO end date for
// quarterly series.
func PeriodKey(end string, freq Frequency) string {
	if freq == Annual && len(end) >= 4 {
		return end[:4]
	}
	return end
}

// spanOK checks the period duration against the frequency's tolerance window.
// Observations without a start date are instantaneous and exempt; unparseable
// dates are retained rather than rejected.
func spanOK(start, end string, freq Frequency) bool {
	if start == "" {
		return true
	}

	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return true
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return true
	}

	days := int(e.Sub(s).Hours() / 24)
	if freq == Annual {
		return days >= annualSpanMin && days <= annualSpanMax
	}
	return days >= quarterlySpanMin && days <= quarterlySpanMax
}

type candidate struct {
	val   float64
	filed string
}

// Collapse filters the raw observations for one concept down to at most one
// value per period: wrong-form and pre-cutoff observations are discarded,
// duration spans outside the frequency's window are rejected, and within a
// period the latest-filed value wins.
func Collapse(values []edgar.FactValue, freq Frequency, cutoff string) map[string]float64 {
	byPeriod := make(map[string]candidate)

	for _, v := range values {
		if !ValidForm(v.Form, freq) {
			continue
		}
		if v.End < cutoff {
			continue
		}
		val, ok := v.Float()
		if !ok {
			continue
		}
		if !spanOK(v.Start, v.End, freq) {
			continue
		}

		key := PeriodKey(v.End, freq)
		if prev, exists := byPeriod[key]; !exists || v.Filed > prev.filed {
			byPeriod[key] = candidate{val: val, filed: v.Filed}
		}
	}

	if len(byPeriod) == 0 {
		return nil
	}

	out := make(map[string]float64, len(byPeriod))
	for key, c := range byPeriod {
		out[key] = c.val
	}
	return out
}
