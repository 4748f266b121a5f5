package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/edgar-extract/internal/edgar"
	"github.com/sells-group/edgar-extract/internal/fetcher"
	"github.com/sells-group/edgar-extract/internal/miner"
)

var mineFilings int

var mineCmd = &cobra.Command{
	Use:   "mine TICKER",
	Short: "Mine recent filings for segment/KPI tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent: cfg.EDGAR.UserAgent,
			Timeout:   time.Duration(cfg.EDGAR.TimeoutSecs) * time.Second,
		})
		client := edgar.NewClient(f)

		cik, err := client.LookupCIK(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		filings, err := client.FilingsIndex(cmd.Context(), cik, "10-K", "10-Q", "20-F", "6-K")
		if err != nil {
			return err
		}

		topics, err := miner.LoadTopics(cfg.Miner.TopicsFile)
		if err != nil {
			return err
		}

		maxFilings := mineFilings
		if maxFilings == 0 {
			maxFilings = cfg.Miner.MaxFilings
		}

		m := miner.New(client, topics, time.Duration(cfg.Miner.PacingMS)*time.Millisecond)
		tables, err := m.Mine(cmd.Context(), cik, filings, maxFilings)
		if err != nil {
			return err
		}

		for _, t := range tables {
			fmt.Printf("%s  %d rows x %d cols\n", t.FilingDate, len(t.Rows), maxWidth(t.Rows))
		}
		fmt.Printf("%d tables from %d filings scanned\n", len(tables), min(maxFilings, len(filings)))
		return nil
	},
}

func maxWidth(rows [][]string) int {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

func init() {
	mineCmd.Flags().IntVar(&mineFilings, "max-filings", 0, "filings to scan (default from config)")
	rootCmd.AddCommand(mineCmd)
}
