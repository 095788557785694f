package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storage-ops/ordertool/config"
	"github.com/storage-ops/ordertool/models"
)

// runsCmd lists recent enrichment runs from the ledger
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent enrichment runs from the ledger",
	RunE:  runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.ConnectDatabase(cfg); err != nil {
		logger.Error("Failed to connect to run ledger", zap.Error(err))
		return err
	}

	db := config.GetDB()
	if err := db.AutoMigrate(&models.Run{}); err != nil {
		logger.Error("Failed to migrate run ledger", zap.Error(err))
		return err
	}

	var runs []models.Run
	if err := db.Order("id desc").Limit(20).Find(&runs).Error; err != nil {
		logger.Error("Failed to query run ledger", zap.Error(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("#%d  %s -> %s  rows=%d enriched=%d skipped=%d  took=%s\n",
			run.ID,
			run.InputFile,
			run.OutputFile,
			run.TotalRows,
			run.EnrichedRows,
			run.SkippedRows,
			run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond),
		)
	}
	return nil
}
