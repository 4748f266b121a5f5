package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/edgar-extract/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "edgar-extract",
	Short: "SEC EDGAR financial statement extractor",
	Long:  "Pulls XBRL company facts from SEC EDGAR, reconciles them into annual and quarterly statements, mines filings for segment/KPI tables, and writes Excel workbooks.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
