package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storage-ops/ordertool/config"
	"github.com/storage-ops/ordertool/services"
)

// itemsCmd fetches and prints the aggregated items for a single order
var itemsCmd = &cobra.Command{
	Use:   "items <order-id>",
	Short: "Fetch and print the aggregated items for one order",
	Args:  cobra.ExactArgs(1),
	RunE:  runItems,
}

func runItems(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	orderID, err := strconv.Atoi(args[0])
	if err != nil || orderID <= 0 {
		return fmt.Errorf("order id must be a positive integer, got %q", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateOrderAPI(); err != nil {
		logger.Error("Missing required configuration", zap.Error(err))
		return err
	}

	client := services.NewScholarsClient(cfg)
	items, err := client.FetchItems(orderID)
	if err != nil {
		logger.Error("Failed to fetch items", zap.Int("order_id", orderID), zap.Error(err))
		return err
	}

	for _, item := range items {
		fmt.Printf("%dx %s\n", item.Quantity, item.ItemTitle)
	}
	return nil
}
