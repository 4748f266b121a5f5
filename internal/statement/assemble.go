package statement

import "github.com/sells-group/edgar-extract/internal/concept"

// Options configures assembly.
type Options struct {
	// ExplicitTotals switches total detection from substring matching to the
	// fixed label set used by the allow-list classification strategy.
	ExplicitTotals bool
}

// Assemble computes derived metrics and produces one ordered statement per
// category. Concepts absent from the raw source do not appear in the output;
// no line or period is ever padded in.
func Assemble(b Bundle, opts Options) map[concept.Category]Statement {
	Derive(b)

	out := make(map[concept.Category]Statement, len(b))
	for _, cat := range concept.Categories {
		series, ok := b[cat]
		if !ok || len(series) == 0 {
			continue
		}

		labels := make([]string, 0, len(series))
		for label := range series {
			labels = append(labels, label)
		}

		lines := make([]Line, 0, len(labels))
		for _, label := range OrderLabels(cat, labels) {
			total := IsTotalLabel(label)
			if opts.ExplicitTotals {
				total = IsExplicitTotal(label)
			}
			lines = append(lines, Line{
				Label:  label,
				Values: series[label],
				Total:  total,
			})
		}

		out[cat] = Statement{
			Category: cat,
			Lines:    lines,
			Periods:  sortedPeriods(lines),
		}
	}
	return out
}
