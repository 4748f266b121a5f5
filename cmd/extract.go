package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/edgar-extract/internal/concept"
	"github.com/sells-group/edgar-extract/internal/edgar"
	"github.com/sells-group/edgar-extract/internal/extract"
	"github.com/sells-group/edgar-extract/internal/fetcher"
	"github.com/sells-group/edgar-extract/internal/miner"
	"github.com/sells-group/edgar-extract/internal/report"
	"github.com/sells-group/edgar-extract/internal/statement"
)

var (
	extractYears    int
	extractStrategy string
	extractOut      string
	extractNoMine   bool
	extractFilings  int
)

var extractCmd = &cobra.Command{
	Use:   "extract TICKER",
	Short: "Extract annual and quarterly statements for a ticker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := args[0]
		runID := uuid.New().String()
		zap.L().Info("starting extraction run",
			zap.String("run_id", runID),
			zap.String("ticker", ticker),
		)

		eng, err := newEngine()
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := eng.Run(cmd.Context(), ticker)
		if err != nil {
			return err
		}

		outDir := extractOut
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		if cfg.Miner.MaxTables > 0 && len(res.Tables) > cfg.Miner.MaxTables {
			res.Tables = res.Tables[:cfg.Miner.MaxTables]
		}
		fname := fmt.Sprintf("%s_financials_%s.xlsx", res.Ticker, time.Now().Format("20060102"))
		path := filepath.Join(outDir, fname)
		if err := report.WriteWorkbook(path, res); err != nil {
			return err
		}

		p := message.NewPrinter(language.English)
		p.Printf("%s (CIK %s)\n", res.Entity, res.CIK)
		p.Printf("  annual statements:    %d categories, %d line items\n", len(res.Annual), lineCount(res.Annual))
		p.Printf("  quarterly statements: %d categories, %d line items\n", len(res.Quarterly), lineCount(res.Quarterly))
		p.Printf("  mined tables:         %d\n", len(res.Tables))
		p.Printf("  workbook:             %s (%.1fs)\n", path, time.Since(start).Seconds())
		return nil
	},
}

// newEngine wires the fetcher, client, and classification strategy from
// config plus command flags.
func newEngine() (*extract.Engine, error) {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: cfg.EDGAR.UserAgent,
		Timeout:   time.Duration(cfg.EDGAR.TimeoutSecs) * time.Second,
	})
	client := edgar.NewClient(f)

	strategyName := extractStrategy
	if strategyName == "" {
		strategyName = cfg.Extract.Strategy
	}
	strategy, explicitTotals, err := buildStrategy(strategyName)
	if err != nil {
		return nil, err
	}

	years := extractYears
	if years == 0 {
		years = cfg.Extract.Years
	}

	topics, err := miner.LoadTopics(cfg.Miner.TopicsFile)
	if err != nil {
		return nil, err
	}

	maxFilings := extractFilings
	if maxFilings == 0 {
		maxFilings = cfg.Miner.MaxFilings
	}

	return extract.New(client, strategy, extract.Options{
		Years:          years,
		ExplicitTotals: explicitTotals,
		MineTables:     cfg.Miner.Enabled && !extractNoMine,
		MaxFilings:     maxFilings,
		Topics:         topics,
		Pacing:         time.Duration(cfg.Miner.PacingMS) * time.Millisecond,
	}), nil
}

func buildStrategy(name string) (concept.Strategy, bool, error) {
	switch name {
	case "keyword":
		return concept.NewKeywordScore(), false, nil
	case "allowlist":
		return concept.NewAllowList(), true, nil
	default:
		return nil, false, eris.Errorf("unknown classification strategy %q", name)
	}
}

func lineCount(stmts map[concept.Category]statement.Statement) int {
	n := 0
	for _, st := range stmts {
		n += len(st.Lines)
	}
	return n
}

func init() {
	extractCmd.Flags().IntVar(&extractYears, "years", 0, "years of history (default from config)")
	extractCmd.Flags().StringVar(&extractStrategy, "strategy", "", "classification strategy: keyword or allowlist (default from config)")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "output directory (default from config)")
	extractCmd.Flags().BoolVar(&extractNoMine, "no-tables", false, "skip segment/KPI table mining")
	extractCmd.Flags().IntVar(&extractFilings, "max-filings", 0, "filings to scan for tables (default from config)")
	rootCmd.AddCommand(extractCmd)
}
