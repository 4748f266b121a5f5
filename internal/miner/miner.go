package miner

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/edgar-extract/internal/edgar"
)

// MinedTable pairs a discovered table with the filing it came from.
type MinedTable struct {
	FilingDate string     `json:"filing_date"`
	Rows       [][]string `json:"rows"`
}

// Miner pulls filing documents and extracts keyword-adjacent tables.
type Miner struct {
	client *edgar.Client
	topics []string
	pacer  *rate.Limiter
}

// New builds a Miner. pacing is the delay enforced between document fetches.
func New(client *edgar.Client, topics []string, pacing time.Duration) *Miner {
	if len(topics) == 0 {
		topics = DefaultTopics
	}
	if pacing <= 0 {
		pacing = 300 * time.Millisecond
	}
	return &Miner{
		client: client,
		topics: topics,
		pacer:  rate.NewLimiter(rate.Every(pacing), 1),
	}
}

// Mine scans up to maxFilings documents, newest first, and returns the unique
// useful tables found near topic keywords. Documents that fail to fetch are
// skipped. Duplicate tables across documents are returned once, from the
// newest filing that contains them.
func (m *Miner) Mine(ctx context.Context, cik string, filings []edgar.FilingRef, maxFilings int) ([]MinedTable, error) {
	if maxFilings > 0 && len(filings) > maxFilings {
		filings = filings[:maxFilings]
	}

	var mined []MinedTable
	seen := make(map[string]struct{})
	for _, ref := range filings {
		if err := m.pacer.Wait(ctx); err != nil {
			return mined, err
		}
		htmlText, ok := m.client.FilingDocument(ctx, cik, ref)
		if !ok {
			continue
		}
		tables := ExtractTables(htmlText, m.topics, seen)
		for _, rows := range tables {
			mined = append(mined, MinedTable{FilingDate: ref.Date, Rows: rows})
		}
		zap.L().Debug("mined filing",
			zap.String("cik", cik),
			zap.String("date", ref.Date),
			zap.Int("tables", len(tables)))
	}
	return mined, nil
}
