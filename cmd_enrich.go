package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storage-ops/ordertool/config"
	"github.com/storage-ops/ordertool/models"
	"github.com/storage-ops/ordertool/services"
	"github.com/storage-ops/ordertool/utils"
)

// enrichCmd runs the batch enrichment pipeline over an input CSV
var enrichCmd = &cobra.Command{
	Use:   "enrich <input.csv>",
	Short: "Enrich a CSV of orders and write <input>_output.csv",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateEnrich(); err != nil {
		logger.Error("Missing required configuration", zap.Error(err))
		return err
	}

	// The ledger must be reachable before any row is processed
	if err := config.ConnectDatabase(cfg); err != nil {
		logger.Error("Failed to connect to run ledger", zap.Error(err))
		return err
	}
	db := config.GetDB()
	if err := db.AutoMigrate(&models.Run{}); err != nil {
		logger.Error("Failed to migrate run ledger", zap.Error(err))
		return err
	}

	ctx := cmd.Context()

	pronouncer, err := services.NewGenAIPronouncer(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize pronunciation service", zap.Error(err))
		return err
	}

	var archive services.S3Interface
	if cfg.ArchiveEnabled() {
		s3Service, err := services.NewS3Service(cfg)
		if err != nil {
			logger.Error("Failed to initialize S3 archival", zap.Error(err))
			return err
		}
		archive = s3Service
	}

	client := services.NewScholarsClient(cfg)
	images := services.NewImageService(client, cfg.ImageDir, archive, logger)
	enricher := services.NewEnrichmentService(client, images, pronouncer, cfg, logger)

	inputFile := args[0]
	table, err := utils.ReadRows(inputFile)
	if err != nil {
		logger.Error("Failed to read input CSV", zap.Error(err))
		return err
	}
	logger.Info("Getting details for orders", zap.Int("orders", len(table.Rows)))

	started := time.Now()
	rows := enricher.EnrichAll(ctx, table)

	records := make([]map[string]string, len(rows))
	for i := range rows {
		records[i] = rows[i].ToRecord()
	}

	outputFile := utils.AddSuffixToFileName(inputFile, "_output")
	written, err := utils.WriteRows(outputFile, models.OutputColumns, records, logger)
	if err != nil {
		logger.Error("Failed to write output CSV", zap.Error(err))
		return err
	}
	logger.Info("Order details written", zap.String("file", written))

	run := models.Run{
		InputFile:    inputFile,
		OutputFile:   written,
		TotalRows:    len(table.Rows),
		EnrichedRows: len(rows),
		SkippedRows:  len(table.Rows) - len(rows),
		StartedAt:    started,
		FinishedAt:   time.Now(),
	}
	if err := db.Create(&run).Error; err != nil {
		logger.Warn("Failed to record run in ledger", zap.Error(err))
	}

	return nil
}
