package edgar

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/sells-group/edgar-extract/internal/fetcher"
)

const (
	tickerTableURL = "https://www.sec.gov/files/company_tickers.json"
	submissionsURL = "https://data.sec.gov/submissions/CIK%s.json"
	factsURL       = "https://data.sec.gov/api/xbrl/companyfacts/CIK%s.json"
	archiveURL     = "https://www.sec.gov/Archives/edgar/data/%d/%s/%s"
)

// Client fetches EDGAR data through a rate-limited fetcher.
type Client struct {
	f fetcher.Fetcher
}

// NewClient creates an EDGAR client on top of the given fetcher.
func NewClient(f fetcher.Fetcher) *Client {
	return &Client{f: f}
}

// LookupCIK resolves a ticker to its zero-padded 10-digit CIK.
func (c *Client) LookupCIK(ctx context.Context, ticker string) (string, error) {
	body, err := c.f.Download(ctx, tickerTableURL)
	if err != nil {
		return "", eris.Wrap(err, "edgar: fetch ticker table")
	}
	defer body.Close() //nolint:errcheck

	return ParseTickerTable(body, ticker)
}

// Submissions fetches and parses the submissions index for a CIK.
func (c *Client) Submissions(ctx context.Context, cik string) (*Submissions, error) {
	body, err := c.f.Download(ctx, fmt.Sprintf(submissionsURL, cik))
	if err != nil {
		return nil, eris.Wrap(err, "edgar: fetch submissions")
	}
	defer body.Close() //nolint:errcheck

	return ParseSubmissions(body)
}

// CompanyFacts fetches and parses the XBRL company facts for a CIK.
func (c *Client) CompanyFacts(ctx context.Context, cik string) (*CompanyFacts, error) {
	body, err := c.f.Download(ctx, fmt.Sprintf(factsURL, cik))
	if err != nil {
		return nil, eris.Wrap(err, "edgar: fetch company facts")
	}
	defer body.Close() //nolint:errcheck

	return ParseCompanyFacts(body)
}

// FilingsIndex returns recent filings of the given form types, newest first.
func (c *Client) FilingsIndex(ctx context.Context, cik string, formTypes ...string) ([]FilingRef, error) {
	sub, err := c.Submissions(ctx, cik)
	if err != nil {
		return nil, err
	}

	var refs []FilingRef
	for _, ft := range formTypes {
		refs = append(refs, sub.FilingsOfType(ft)...)
	}
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Date > refs[j].Date })
	return refs, nil
}

// FilingDocument fetches the primary document HTML for a filing. A fetch
// failure is not an error: it returns ok=false and the caller skips the
// filing.
func (c *Client) FilingDocument(ctx context.Context, cik string, ref FilingRef) (string, bool) {
	n, err := strconv.Atoi(cik)
	if err != nil {
		return "", false
	}

	body, err := c.f.Download(ctx, fmt.Sprintf(archiveURL, n, ref.Accession, ref.PrimaryDoc))
	if err != nil {
		zap.L().Debug("skip filing document",
			zap.String("accession", ref.Accession),
			zap.Error(err),
		)
		return "", false
	}
	defer body.Close() //nolint:errcheck

	// Older filings are not always UTF-8; sniff the charset before decoding.
	decoded, err := charset.NewReader(body, "text/html")
	if err != nil {
		decoded = body
	}
	html, err := io.ReadAll(decoded)
	if err != nil {
		zap.L().Debug("skip filing document: read body",
			zap.String("accession", ref.Accession),
			zap.Error(err),
		)
		return "", false
	}
	return string(html), true
}
