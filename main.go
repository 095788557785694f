package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var verbose bool

// rootCmd is the ordertool entry point
var rootCmd = &cobra.Command{
	Use:   "ordertool",
	Short: "Enrich storage-order CSV exports with order API data",
	Long: `ordertool enriches storage-order CSV exports with details fetched from
the order-management API and a text-generation API.

Available commands:
  enrich - Enrich a CSV of orders and write the result next to the input
  items  - Fetch and print the aggregated items for one order
  serve  - Run the single-order review API
  runs   - List recent enrichment runs from the ledger`,
}

// newLogger builds the structured logger shared by all commands
func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
