// Package statement assembles normalized per-concept series into ordered,
// display-ready financial statements.
package statement

import (
	"sort"

	"github.com/sells-group/edgar-extract/internal/concept"
)

// Series maps a period key to a display-scaled value. Absent periods are
// absent keys, never zeros.
type Series map[string]float64

// Line is one statement row: a human label, its period values, and whether it
// is a subtotal/total row for display emphasis.
type Line struct {
	Label  string  `json:"label"`
	Values Series  `json:"values"`
	Total  bool    `json:"total,omitempty"`
}

// Statement is one ordered financial statement for one frequency.
type Statement struct {
	Category concept.Category `json:"category"`
	Lines    []Line           `json:"lines"`
	// Periods observed across all lines, reverse-chronological.
	Periods []string `json:"periods"`
}

// Section is a named group of lines within a statement (e.g. "Assets").
type Section struct {
	Name  string `json:"name"`
	Lines []Line `json:"lines"`
}

// Bundle holds the label -> series maps per statement category for one
// frequency, before ordering.
type Bundle map[concept.Category]map[string]Series

// Get returns the series for a label in a category, if present.
func (b Bundle) Get(cat concept.Category, label string) (Series, bool) {
	m, ok := b[cat]
	if !ok {
		return nil, false
	}
	s, ok := m[label]
	return s, ok
}

// Put stores a series, allocating the category map if needed.
func (b Bundle) Put(cat concept.Category, label string, s Series) {
	if b[cat] == nil {
		b[cat] = make(map[string]Series)
	}
	b[cat][label] = s
}

// sortedPeriods returns every period appearing in the lines, newest first.
func sortedPeriods(lines []Line) []string {
	seen := make(map[string]struct{})
	for _, ln := range lines {
		for p := range ln.Values {
			seen[p] = struct{}{}
		}
	}
	periods := make([]string, 0, len(seen))
	for p := range seen {
		periods = append(periods, p)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(periods)))
	return periods
}
