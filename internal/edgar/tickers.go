package edgar

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// tickerEntry is one row of the SEC company_tickers.json table.
type tickerEntry struct {
	CIK    int    `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// ErrTickerNotFound is returned when a ticker has no CIK in the lookup table.
type ErrTickerNotFound struct {
	Ticker string
}

func (e *ErrTickerNotFound) Error() string {
	return fmt.Sprintf("edgar: no CIK found for ticker %q", e.Ticker)
}

// ParseTickerTable parses company_tickers.json and resolves a ticker to its
// zero-padded 10-digit CIK. The match is case-insensitive.
func ParseTickerTable(r io.Reader, ticker string) (string, error) {
	var table map[string]tickerEntry
	if err := json.NewDecoder(r).Decode(&table); err != nil {
		return "", eris.Wrap(err, "edgar: parse ticker table")
	}

	want := strings.ToUpper(strings.TrimSpace(ticker))
	for _, entry := range table {
		if strings.ToUpper(entry.Ticker) == want {
			return fmt.Sprintf("%010d", entry.CIK), nil
		}
	}

	return "", &ErrTickerNotFound{Ticker: ticker}
}
