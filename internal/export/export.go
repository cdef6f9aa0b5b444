// Package export writes ingestion and reconciliation results as JSON or
// delimited CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "json" or "csv" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected json or csv)", s)
	}
}

// Options controls how results are written.
type Options struct {
	Format    Format
	Delimiter rune
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}

// WriteCSV writes rows with a header taken from their csv struct tags.
func WriteCSV[T any](out io.Writer, rows []T, delim rune) error {
	w := csv.NewWriter(out)
	if delim != 0 {
		w.Comma = delim
	}
	if rows == nil {
		rows = []T{}
	}
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WritePayloads writes reconciled payloads. JSON output is the bulk endpoint
// body, {"transactions": [...]}.
func WritePayloads(out io.Writer, payloads []models.TransactionPayload, opts Options) error {
	if opts.Format == FormatCSV {
		return WriteCSV(out, payloads, opts.delimiter())
	}
	if payloads == nil {
		payloads = []models.TransactionPayload{}
	}
	return WriteJSON(out, models.BulkRequest{Transactions: payloads})
}

// WriteIngestResult writes parsed rows. JSON output keeps the error list;
// CSV output carries the rows only.
func WriteIngestResult(out io.Writer, result models.IngestResult, opts Options) error {
	if opts.Format == FormatCSV {
		return WriteCSV(out, result.Rows, opts.delimiter())
	}
	return WriteJSON(out, result)
}

// WriteFile creates path, including missing parent directories, and hands
// it to write.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing output file: %w", cerr)
		}
	}()
	return write(f)
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	if f == FormatCSV {
		return ".csv"
	}
	return ".json"
}
