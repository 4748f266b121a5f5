package edgar

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// FilingRef identifies one filing in the submissions index. Accession has the
// dashes stripped, ready for archive URLs.
type FilingRef struct {
	Date       string
	Accession  string
	PrimaryDoc string
}

// submissionJSON is the subset of the submissions index we read. The recent
// filings come as parallel arrays keyed by position.
type submissionJSON struct {
	CIK     string        `json:"cik"`
	Name    string        `json:"name"`
	Filings recentFilings `json:"filings"`
}

type recentFilings struct {
	Recent filingList `json:"recent"`
}

type filingList struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
	PrimaryDoc      []string `json:"primaryDocument"`
}

// ParseSubmissions decodes a submissions index document.
func ParseSubmissions(r io.Reader) (*Submissions, error) {
	var sub submissionJSON
	if err := json.NewDecoder(r).Decode(&sub); err != nil {
		return nil, eris.Wrap(err, "edgar: parse submissions")
	}
	return &Submissions{raw: sub}, nil
}

// Submissions wraps a parsed submissions index document.
type Submissions struct {
	raw submissionJSON
}

// Name returns the registrant name, or "Unknown" when absent.
func (s *Submissions) Name() string {
	if s.raw.Name == "" {
		return "Unknown"
	}
	return s.raw.Name
}

// FilingsOfType returns the recent filings matching the given form type, in
// index order. Rows with a missing accession number are skipped.
func (s *Submissions) FilingsOfType(formType string) []FilingRef {
	recent := s.raw.Filings.Recent

	var refs []FilingRef
	for i, form := range recent.Form {
		if form != formType {
			continue
		}
		accession := safeIndex(recent.AccessionNumber, i)
		if accession == "" {
			continue
		}
		refs = append(refs, FilingRef{
			Date:       safeIndex(recent.FilingDate, i),
			Accession:  strings.ReplaceAll(accession, "-", ""),
			PrimaryDoc: safeIndex(recent.PrimaryDoc, i),
		})
	}
	return refs
}

// safeIndex returns the string at index i, or empty string if out of bounds.
func safeIndex(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
