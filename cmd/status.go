package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"order-status/core/config"
	"order-status/core/logger"
	"order-status/core/reconcile"
	"order-status/feature/orders"
	"order-status/feature/orders/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the status command
	exportFormat   string
	exportDir      string
	includePending bool
)

// statusCmd prints the shipment status of one order.
var statusCmd = &cobra.Command{
	Use:   "status <docNumber>",
	Short: "Show the shipment status of a sales order",
	Long: `Fetch the order and its waybills from Holded and print one line per product
with the shipped quantity and status.

Examples:
  # Print the status table
  status SO1001

  # Also write an Excel file to ./exports
  status SO1001 --export xlsx --out ./exports

  # Include the Units Pending column
  status SO1001 --pending --export csv`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&exportFormat, "export", "", "Also write the report to a file (csv or xlsx)")
	statusCmd.Flags().StringVar(&exportDir, "out", ".", "Directory for the exported file")
	statusCmd.Flags().BoolVar(&includePending, "pending", false, "Include the Units Pending column")

	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	docNumber := args[0]

	var format report.Format
	if exportFormat != "" {
		f, err := report.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		format = f
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	engine, err := newEngine(cfg, l)
	if err != nil {
		return err
	}
	svc := orders.NewService(engine, l)
	opts := report.Options{IncludePending: includePending}

	r, err := svc.GetStatus(cmd.Context(), docNumber)
	if errors.Is(err, reconcile.ErrOrderNotFound) {
		l.Warn("Order docNumber not found. Please check your input.", zap.String("doc_number", docNumber))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to reconcile order: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), report.RenderTable(r, opts))

	if format == "" {
		return nil
	}

	export, err := svc.ExportReport(r, format, opts)
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(exportDir, export.FileName)
	if err := os.WriteFile(path, export.Body, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	l.Info("Report exported", zap.String("path", path), zap.Int("bytes", len(export.Body)))
	return nil
}
