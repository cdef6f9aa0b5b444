// Package batch handles batch processing of files
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/IqbalNugrahaa/HappiestStore/cmd/common"
	"github.com/IqbalNugrahaa/HappiestStore/cmd/root"
	"github.com/IqbalNugrahaa/HappiestStore/internal/container"
	"github.com/IqbalNugrahaa/HappiestStore/internal/export"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process files from a directory",
	Long: `Batch process transaction CSV files from an input directory and write one
bulk payload per file to another directory.

Every .csv file in the input directory is parsed and reconciled against the
same catalog. Files are processed in parallel, bounded by the workers setting.

Example:
  happiest-ingest batch -i input_dir/ -c catalog.yaml -o output_dir/`,
	Run: batchFunc,
}

func init() {
	// Override the usage text for the input/output flags in batch context
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`)
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Input   string
	Output  string
	Summary models.ReconcileSummary
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}

	c := root.GetContainer()
	if c == nil {
		logger.Fatal("Container not initialized")
	}

	results, err := Run(cmd.Context(), c, inputDir, outputDir, root.SharedFlags.Catalog)
	if err != nil {
		logger.Fatalf("Error during batch processing: %v", err)
	}

	var total models.ReconcileSummary
	for _, r := range results {
		logger.Info(fmt.Sprintf("%s: %s", filepath.Base(r.Input), common.FormatSummary(r.Summary)))
		total.Rows += r.Summary.Rows
		total.Matched += r.Summary.Matched
		total.NeedsReview += r.Summary.NeedsReview
		total.RowErrors += r.Summary.RowErrors
		total.TotalRevenue += r.Summary.TotalRevenue
	}
	logger.Info(fmt.Sprintf("Batch processing completed. %d files, %s", len(results), common.FormatSummary(total)))
}

// Run reconciles every .csv file in inputDir and writes the payloads to
// outputDir. Results are returned in file name order.
func Run(ctx context.Context, c *container.Container, inputDir, outputDir, catalogPath string) ([]FileResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := c.GetLogger()

	opts, err := common.ExportOptions(c.GetConfig())
	if err != nil {
		return nil, err
	}

	inputFiles, err := listCSVFiles(inputDir)
	if err != nil {
		return nil, err
	}
	if len(inputFiles) == 0 {
		logger.Warn("No supported files found in input directory", logging.F(logging.FieldFile, inputDir))
		return nil, nil
	}
	logger.Info("Found files for processing", logging.F(logging.FieldCount, len(inputFiles)))

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	loaded, err := c.LoadCatalog(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	results := make([]FileResult, len(inputFiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.GetConfig().Workers)

	for i, input := range inputFiles {
		g.Go(func() error {
			name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			output := filepath.Join(outputDir, name+opts.Format.Extension())

			got, err := common.ReconcileFile(gctx, c, input, nil, loaded.Catalog)
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(input), err)
			}
			common.ReportRowErrors(logger, input, got.Ingest.Errors)

			if err := export.WriteFile(output, func(w io.Writer) error {
				return export.WritePayloads(w, got.Payloads, opts)
			}); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(input), err)
			}

			logger.Debug("File processed",
				logging.F(logging.FieldFile, input),
				logging.F(logging.FieldOutputFile, output),
				logging.F(logging.FieldCount, len(got.Payloads)))
			results[i] = FileResult{Input: input, Output: output, Summary: got.Summary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func listCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
