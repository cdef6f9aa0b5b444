// Package ingest is the public entry point for embedding the transaction
// import pipeline: tolerant CSV parsing, fuzzy catalog matching and the
// bulk payload builder.
package ingest

import (
	"context"

	"github.com/IqbalNugrahaa/HappiestStore/internal/catalog"
	internalingest "github.com/IqbalNugrahaa/HappiestStore/internal/ingest"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/matcher"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
	"github.com/IqbalNugrahaa/HappiestStore/internal/reconcile"
)

type (
	ParsedRow          = models.ParsedRow
	IngestResult       = models.IngestResult
	CatalogEntry       = models.CatalogEntry
	Catalog            = models.Catalog
	MatchResult        = models.MatchResult
	TransactionPayload = models.TransactionPayload
	BulkRequest        = models.BulkRequest
)

// DefaultThreshold is the minimum similarity FindBestMatch accepts.
const DefaultThreshold = matcher.DefaultThreshold

// Parse parses CSV text into validated rows and per-row error messages. It
// never fails; unusable input is reported in the result's Errors.
func Parse(content string) IngestResult {
	return internalingest.Parse(content)
}

// FindBestMatch returns the catalog entry most similar to query when its
// similarity reaches DefaultThreshold.
func FindBestMatch(query string, c Catalog) (MatchResult, bool) {
	return matcher.FindBestMatch(query, c)
}

// LoadCatalog reads a catalog from a .yaml, .yml or product .csv file.
// Invalid product rows are skipped.
func LoadCatalog(path string) (Catalog, error) {
	result, err := catalog.NewLoader(nil).LoadFile(path)
	if err != nil {
		return nil, err
	}
	return result.Catalog, nil
}

// Reconcile matches every row against c with the default matcher and returns
// the bulk endpoint body. workers bounds the concurrent matching of large
// inputs; zero uses every CPU.
func Reconcile(ctx context.Context, rows []ParsedRow, c Catalog, workers int) (BulkRequest, error) {
	m := matcher.New(nil, DefaultThreshold, logging.NewDiscardLogger())
	payloads, err := reconcile.New(m, workers, nil).Reconcile(ctx, rows, c)
	if err != nil {
		return BulkRequest{}, err
	}
	return reconcile.Request(payloads), nil
}
