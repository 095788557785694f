package main

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storage-ops/ordertool/config"
	"github.com/storage-ops/ordertool/controllers"
	"github.com/storage-ops/ordertool/middleware"
	"github.com/storage-ops/ordertool/services"
)

// serveCmd runs the single-order review API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the single-order review API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateOrderAPI(); err != nil {
		logger.Error("Missing required configuration", zap.Error(err))
		return err
	}

	// The review API never renders pronunciations, so a Gemini credential is
	// not required here
	pronouncer := services.PronouncerFunc(func(ctx context.Context, firstName string) (string, error) {
		return "", fmt.Errorf("pronunciation not available in serve mode")
	})

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
	ctrl := controllers.NewOrderController(enricher)

	router := gin.Default()
	router.Use(cors.Default())

	v1 := router.Group("/api/v1")
	v1.GET("/health", ctrl.HealthCheck)

	orders := v1.Group("/orders")
	if cfg.AuthEnabled() {
		orders.Use(middleware.EnsureValidToken(cfg))
	}
	orders.GET("/:id/enriched", ctrl.GetEnrichedOrder)

	logger.Info("Review API listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return err
	}
	return nil
}
