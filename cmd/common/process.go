// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/IqbalNugrahaa/HappiestStore/internal/config"
	"github.com/IqbalNugrahaa/HappiestStore/internal/container"
	"github.com/IqbalNugrahaa/HappiestStore/internal/export"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
	"github.com/IqbalNugrahaa/HappiestStore/internal/reconcile"
)

// ReadInput returns the contents of path, or of stdin when path is "-".
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", fmt.Errorf("input file must be specified (use --input)")
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- CLI tool requires user-provided file paths
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// WriteOutput hands write either the file at path or stdout when path is
// empty.
func WriteOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	return export.WriteFile(path, write)
}

// ExportOptions turns the output settings into export options.
func ExportOptions(cfg *config.Config) (export.Options, error) {
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return export.Options{}, err
	}
	return export.Options{Format: format, Delimiter: cfg.OutputDelimiter()}, nil
}

// ParseFile reads and parses one transaction CSV.
func ParseFile(c *container.Container, path string, stdin io.Reader) (models.IngestResult, error) {
	content, err := ReadInput(path, stdin)
	if err != nil {
		return models.IngestResult{}, err
	}
	return c.GetParser().Parse(content), nil
}

// Reconciled is the outcome of reconciling one transaction file.
type Reconciled struct {
	Ingest   models.IngestResult
	Payloads []models.TransactionPayload
	Summary  models.ReconcileSummary
}

// ReconcileFile parses the file at path and matches its rows against catalog.
func ReconcileFile(ctx context.Context, c *container.Container, path string, stdin io.Reader, catalog models.Catalog) (Reconciled, error) {
	result, err := ParseFile(c, path, stdin)
	if err != nil {
		return Reconciled{}, err
	}
	payloads, err := c.GetReconciler().Reconcile(ctx, result.Rows, catalog)
	if err != nil {
		return Reconciled{}, err
	}
	return Reconciled{
		Ingest:   result,
		Payloads: payloads,
		Summary:  reconcile.Summarize(payloads, len(result.Errors)),
	}, nil
}

// ReportRowErrors logs every rejected row at Warn.
func ReportRowErrors(logger logging.Logger, path string, errs []string) {
	for _, msg := range errs {
		logger.Warn(msg, logging.F(logging.FieldFile, path))
	}
}

// FormatSummary renders a reconciliation summary for people.
func FormatSummary(s models.ReconcileSummary) string {
	return fmt.Sprintf("%s rows, %s matched, %s need review, %s rejected, revenue Rp%s",
		humanize.Comma(int64(s.Rows)),
		humanize.Comma(int64(s.Matched)),
		humanize.Comma(int64(s.NeedsReview)),
		humanize.Comma(int64(s.RowErrors)),
		humanize.Comma(s.TotalRevenue))
}
