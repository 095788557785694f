package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/storage-ops/ordertool/config"
	"github.com/storage-ops/ordertool/models"
	"github.com/storage-ops/ordertool/utils"
)

// EnrichmentService runs the per-row enrichment pipeline. Rows are processed
// strictly in input order, one at a time.
//
// Failure policy: only a missing or invalid order identifier skips a row.
// Every fetch (items, dropoff, images, notes, pronunciation) degrades its own
// field to empty on failure and logs a warning, so one flaky upstream call
// never discards an otherwise usable row.
type EnrichmentService struct {
	api        OrderAPI
	images     *ImageService
	pronouncer Pronouncer
	logger     *zap.Logger

	delay        time.Duration
	delayMinRows int
}

// OrderSummary is the fetch-side enrichment of a single order, used by the
// review API where no CSV row is available.
type OrderSummary struct {
	OrderID     int      `json:"order_id"`
	Items       string   `json:"items"`
	StorageUnit string   `json:"storage_unit"`
	ImageCount  int      `json:"image_count"`
	Notes       []string `json:"notes"`
}

// NewEnrichmentService creates the pipeline with its injected collaborators
func NewEnrichmentService(api OrderAPI, images *ImageService, pronouncer Pronouncer, cfg *config.Config, logger *zap.Logger) *EnrichmentService {
	return &EnrichmentService{
		api:          api,
		images:       images,
		pronouncer:   pronouncer,
		logger:       logger,
		delay:        cfg.RequestDelay,
		delayMinRows: cfg.DelayMinRows,
	}
}

// OrderIDFromRow extracts and validates the order identifier from a row.
// The OrderID column is preferred; the first column is the fallback. A
// non-numeric identifier makes the row unprocessable.
func OrderIDFromRow(row map[string]string, headers []string) (int, error) {
	raw := row["OrderID"]
	if raw == "" && len(headers) > 0 {
		raw = row[headers[0]]
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("row does not have a valid order ID: %q", raw)
	}
	return id, nil
}

// BuildRow enriches one input row into an output row. The only error it
// returns is an unusable order identifier; everything else degrades per
// field.
func (s *EnrichmentService) BuildRow(ctx context.Context, row map[string]string, headers []string) (*models.EnrichedRow, error) {
	orderID, err := OrderIDFromRow(row, headers)
	if err != nil {
		return nil, err
	}

	pronunciation := ""
	if fields := strings.Fields(row["FullName"]); len(fields) > 0 {
		pronunciation, err = s.pronouncer.Pronounce(ctx, fields[0])
		if err != nil {
			s.logger.Warn("Failed to fetch pronunciation",
				zap.Int("order_id", orderID),
				zap.Error(err))
			pronunciation = ""
		}
	}

	itemsText := ""
	if items, err := s.api.FetchItems(orderID); err != nil {
		s.logger.Warn("Failed to fetch items",
			zap.Int("order_id", orderID),
			zap.Error(err))
	} else {
		itemsText = formatItems(items)
	}

	storageUnit := ""
	if info, err := s.api.FetchDropoffInfo(orderID); err != nil {
		s.logger.Warn("Failed to fetch dropoff info",
			zap.Int("order_id", orderID),
			zap.Error(err))
	} else {
		storageUnit = info.Label()
	}

	imageCount := 0
	if paths, err := s.images.FetchAndStore(orderID); err != nil {
		s.logger.Warn("Failed to fetch images",
			zap.Int("order_id", orderID),
			zap.Error(err))
	} else {
		imageCount = len(paths)
	}

	return &models.EnrichedRow{
		ID:            strconv.Itoa(orderID),
		Name:          row["FullName"],
		Pronunciation: pronunciation,
		Phone:         utils.ParsePhone(row["StudentPhone"]),
		Location:      utils.ParseFullLocation(row),
		ItemCount:     row["ItemCount"],
		Items:         itemsText,
		StorageUnit:   storageUnit,
		ParentPhone:   utils.ParsePhone(row["ParentPhone"]),
		ImageCount:    imageCount,
		Comments:      GenerateComments(s.api, orderID, row, s.logger),
	}, nil
}

// EnrichAll processes every row of the input table. Rows with unusable order
// identifiers are skipped with a warning; everything else produces exactly
// one output row. A fixed inter-row delay respects the upstream rate limits,
// skipped entirely for small batches.
func (s *EnrichmentService) EnrichAll(ctx context.Context, table *utils.Table) []models.EnrichedRow {
	total := len(table.Rows)
	applyDelay := total >= s.delayMinRows

	enriched := make([]models.EnrichedRow, 0, total)
	for idx, row := range table.Rows {
		newRow, err := s.BuildRow(ctx, row, table.Headers)
		if err != nil {
			s.logger.Warn("Failed to fetch details for row",
				zap.Int("row", idx+1),
				zap.Error(err))
		} else {
			enriched = append(enriched, *newRow)
		}

		s.logger.Info("Processed row",
			zap.Int("row", idx+1),
			zap.Int("total", total))

		if applyDelay {
			time.Sleep(s.delay)
		}
	}

	s.logger.Info("Updated order details",
		zap.Int("enriched", len(enriched)),
		zap.Int("skipped", total-len(enriched)))
	return enriched
}

// Summarize performs the fetch-side enrichment of one order for the review
// API, with the same per-field degradation as the batch pipeline.
func (s *EnrichmentService) Summarize(orderID int) *OrderSummary {
	summary := &OrderSummary{OrderID: orderID, Notes: []string{}}

	if items, err := s.api.FetchItems(orderID); err != nil {
		s.logger.Warn("Failed to fetch items",
			zap.Int("order_id", orderID),
			zap.Error(err))
	} else {
		summary.Items = formatItems(items)
	}

	if info, err := s.api.FetchDropoffInfo(orderID); err != nil {
		s.logger.Warn("Failed to fetch dropoff info",
			zap.Int("order_id", orderID),
			zap.Error(err))
	} else {
		summary.StorageUnit = info.Label()
	}

	if paths, err := s.images.FetchAndStore(orderID); err != nil {
		s.logger.Warn("Failed to fetch images",
			zap.Int("order_id", orderID),
			zap.Error(err))
	} else {
		summary.ImageCount = len(paths)
	}

	if notes, err := s.api.FetchInternalNotes(orderID); err != nil {
		s.logger.Warn("Failed to fetch internal notes",
			zap.Int("order_id", orderID),
			zap.Error(err))
	} else {
		for _, note := range notes {
			summary.Notes = append(summary.Notes, note.Render())
		}
	}

	return summary
}

// formatItems renders aggregated items as "2x Box, 1x Bin"
func formatItems(items []models.Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.ItemTitle))
	}
	return strings.Join(parts, ", ")
}
