// Package reconcile implements the reconcile command.
package reconcile

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IqbalNugrahaa/HappiestStore/cmd/common"
	"github.com/IqbalNugrahaa/HappiestStore/cmd/root"
	"github.com/IqbalNugrahaa/HappiestStore/internal/container"
	"github.com/IqbalNugrahaa/HappiestStore/internal/export"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
)

// Cmd represents the reconcile command
var Cmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Build the bulk transaction payload from a CSV and the catalog",
	Long: `Parse a transaction CSV, match every purchase description against the
product catalog and write the bulk transaction payload. Rows without a
catalog match keep a null product_id and are flagged needs_review.

Example:
  happiest-ingest reconcile -i transactions.csv -c catalog.yaml -o payload.json`,
	Run: reconcileFunc,
}

func reconcileFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	c := root.GetContainer()
	if c == nil {
		logger.Fatal("Container not initialized")
	}

	summary, err := Run(cmd.Context(), c, root.SharedFlags.Input, root.SharedFlags.Catalog, root.SharedFlags.Output, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		logger.Fatalf("Error reconciling file: %v", err)
	}
	logger.Info(common.FormatSummary(summary))
}

// Run reconciles input against the catalog and writes the payload to output,
// or to stdout.
func Run(ctx context.Context, c *container.Container, input, catalogPath, output string, stdin io.Reader, stdout io.Writer) (models.ReconcileSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts, err := common.ExportOptions(c.GetConfig())
	if err != nil {
		return models.ReconcileSummary{}, err
	}
	loaded, err := c.LoadCatalog(catalogPath)
	if err != nil {
		return models.ReconcileSummary{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	got, err := common.ReconcileFile(ctx, c, input, stdin, loaded.Catalog)
	if err != nil {
		return models.ReconcileSummary{}, err
	}

	logger := c.GetLogger()
	common.ReportRowErrors(logger, input, got.Ingest.Errors)
	for _, p := range got.Payloads {
		if p.NeedsReview {
			logger.Debug("Needs review", logging.F(logging.FieldQuery, p.ItemPurchased))
		}
	}

	if err := common.WriteOutput(output, stdout, func(w io.Writer) error {
		return export.WritePayloads(w, got.Payloads, opts)
	}); err != nil {
		return models.ReconcileSummary{}, fmt.Errorf("failed to write payload: %w", err)
	}
	return got.Summary, nil
}
