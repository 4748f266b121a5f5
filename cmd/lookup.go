package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/edgar-extract/internal/edgar"
	"github.com/sells-group/edgar-extract/internal/fetcher"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup TICKER",
	Short: "Resolve a ticker to its CIK and registrant name",
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
		subs, err := client.Submissions(cmd.Context(), cik)
		if err != nil {
			return err
		}

		fmt.Printf("%s  CIK %s  %s\n", args[0], cik, subs.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
