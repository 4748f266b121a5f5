// Package extract drives a full extraction run: company facts are pulled
// once, then classified, reconciled, normalized, and assembled into annual
// and quarterly statement bundles, with disclosure tables mined separately.
package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/edgar-extract/internal/concept"
	"github.com/sells-group/edgar-extract/internal/edgar"
	"github.com/sells-group/edgar-extract/internal/miner"
	"github.com/sells-group/edgar-extract/internal/normalize"
	"github.com/sells-group/edgar-extract/internal/reconcile"
	"github.com/sells-group/edgar-extract/internal/statement"
)

// Engine runs the extraction pipeline for one entity at a time.
type Engine struct {
	client   *edgar.Client
	strategy concept.Strategy
	opts     Options
}

// Options control the scope of a run.
type Options struct {
	// Years is the history horizon. Annual periods ending before
	// January 1 of (currentYear - Years) are discarded; quarterly
	// periods ending more than Years calendar years ago are discarded.
	Years int
	// ExplicitTotals switches total-row detection from substring
	// heuristics to the fixed label set used with allow-list
	// classification.
	ExplicitTotals bool
	// MineTables enables the disclosure table miner pass.
	MineTables bool
	// MaxFilings bounds how many filings the miner scans.
	MaxFilings int
	// Topics overrides the miner's keyword phrases when non-empty.
	Topics []string
	// Pacing is the delay between miner document fetches.
	Pacing time.Duration
}

// Result is the complete output of one extraction run.
type Result struct {
	Ticker    string                                   `json:"ticker"`
	CIK       string                                   `json:"cik"`
	Entity    string                                   `json:"entity"`
	Annual    map[concept.Category]statement.Statement `json:"annual"`
	Quarterly map[concept.Category]statement.Statement `json:"quarterly"`
	Tables    []miner.MinedTable                       `json:"tables,omitempty"`
}

func New(client *edgar.Client, strategy concept.Strategy, opts Options) *Engine {
	if opts.Years <= 0 {
		opts.Years = 15
	}
	return &Engine{client: client, strategy: strategy, opts: opts}
}

// Run extracts statements for the given ticker.
func (e *Engine) Run(ctx context.Context, ticker string) (*Result, error) {
	cik, err := e.client.LookupCIK(ctx, ticker)
	if err != nil {
		return nil, eris.Wrapf(err, "extract: resolve ticker %s", ticker)
	}

	subs, err := e.client.Submissions(ctx, cik)
	if err != nil {
		return nil, eris.Wrap(err, "extract: fetch submissions")
	}

	facts, err := e.client.CompanyFacts(ctx, cik)
	if err != nil {
		return nil, eris.Wrap(err, "extract: fetch company facts")
	}

	zap.L().Info("extracting company facts",
		zap.String("ticker", ticker),
		zap.String("cik", cik),
		zap.String("entity", subs.Name()))

	res := &Result{Ticker: ticker, CIK: cik, Entity: subs.Name()}
	now := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle := e.buildBundle(facts, reconcile.Annual, annualCutoff(now, e.opts.Years))
		res.Annual = statement.Assemble(bundle, statement.Options{ExplicitTotals: e.opts.ExplicitTotals})
		return gctx.Err()
	})
	g.Go(func() error {
		bundle := e.buildBundle(facts, reconcile.Quarterly, quarterlyCutoff(now, e.opts.Years))
		res.Quarterly = statement.Assemble(bundle, statement.Options{ExplicitTotals: e.opts.ExplicitTotals})
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if e.opts.MineTables {
		tables, err := e.mineTables(ctx, cik)
		if err != nil {
			return nil, err
		}
		res.Tables = tables
	}
	return res, nil
}

// buildBundle walks every concept in every namespace and produces the
// classified, reconciled, normalized series for one frequency. Namespace
// order gives us-gaap priority when two namespaces share a label.
func (e *Engine) buildBundle(facts *edgar.CompanyFacts, freq reconcile.Frequency, cutoff string) statement.Bundle {
	bundle := make(statement.Bundle)

	for _, ns := range edgar.Namespaces {
		for name, fact := range facts.Facts[ns] {
			label := concept.HumanLabel(name)
			cls, ok := e.strategy.Classify(name, label)
			if !ok {
				continue
			}

			values, ok := normalize.SelectUnit(fact.Units, cls.Semantics)
			if !ok {
				continue
			}

			periods := reconcile.Collapse(values, freq, cutoff)
			if len(periods) == 0 {
				continue
			}

			if _, exists := bundle.Get(cls.Category, label); exists {
				continue
			}
			bundle.Put(cls.Category, label, normalize.Series(periods, cls.Semantics))
		}
	}
	return bundle
}

func (e *Engine) mineTables(ctx context.Context, cik string) ([]miner.MinedTable, error) {
	filings, err := e.client.FilingsIndex(ctx, cik, "10-K", "10-Q", "20-F", "6-K")
	if err != nil {
		return nil, eris.Wrap(err, "extract: fetch filings index")
	}
	m := miner.New(e.client, e.opts.Topics, e.opts.Pacing)
	return m.Mine(ctx, cik, filings, e.opts.MaxFilings)
}

// annualCutoff is January 1 of the first in-scope fiscal year.
func annualCutoff(now time.Time, years int) string {
	return fmt.Sprintf("%d-01-01", now.Year()-years)
}

// quarterlyCutoff is the same calendar date years ago.
func quarterlyCutoff(now time.Time, years int) string {
	return now.AddDate(-years, 0, 0).Format("2006-01-02")
}
