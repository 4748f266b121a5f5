// Package edgar talks to the SEC EDGAR JSON and archive endpoints and parses
// their payloads: company facts (XBRL JSON-LD), the submissions index, and the
// ticker lookup table.
package edgar

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
)

// Namespaces lists the fact namespaces scanned during extraction, in priority
// order. When two namespaces file a concept under the same label, the earlier
// namespace wins.
var Namespaces = []string{"us-gaap", "dei", "invest"}

// CompanyFacts represents the EDGAR company facts JSON-LD structure.
type CompanyFacts struct {
	CIK        int               `json:"cik"`
	EntityName string            `json:"entityName"`
	Facts      map[string]FactNS `json:"facts"`
}

// FactNS groups facts by namespace (e.g., "us-gaap", "dei").
type FactNS map[string]Fact

// Fact is a single XBRL concept with its units and values.
type Fact struct {
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
	Units       map[string][]FactValue `json:"units"`
}

// FactValue is a single reported data point for a concept. Val is `any`
// because a handful of dei facts report non-numeric values; Float resolves it.
type FactValue struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end"`
	Val   any    `json:"val"`
	Accn  string `json:"accn"`
	FY    int    `json:"fy"`
	FP    string `json:"fp"`
	Form  string `json:"form"`
	Filed string `json:"filed"`
	Frame string `json:"frame,omitempty"`
}

// Float returns the numeric value of the data point, if it has one.
func (v FactValue) Float() (float64, bool) {
	switch n := v.Val.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// ParseCompanyFacts parses EDGAR Company Facts JSON-LD from a reader.
func ParseCompanyFacts(r io.Reader) (*CompanyFacts, error) {
	var facts CompanyFacts
	if err := json.NewDecoder(r).Decode(&facts); err != nil {
		return nil, eris.Wrap(err, "edgar: parse company facts")
	}
	return &facts, nil
}
