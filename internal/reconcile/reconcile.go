// Package reconcile merges parsed rows with their catalog matches into the
// payloads the bulk transaction endpoint accepts.
package reconcile

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/IqbalNugrahaa/HappiestStore/internal/dateutils"
	"github.com/IqbalNugrahaa/HappiestStore/internal/ingest"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
)

// sequentialLimit is the row count below which matching runs on the calling
// goroutine.
const sequentialLimit = 100

// Matcher finds the catalog entry for a purchase description.
type Matcher interface {
	FindBestMatch(query string, catalog models.Catalog) (models.MatchResult, bool)
}

// Reconciler builds transaction payloads. It is safe for concurrent use.
type Reconciler struct {
	matcher Matcher
	workers int
	logger  logging.Logger
}

// New creates a Reconciler. workers <= 0 uses one worker per CPU.
func New(matcher Matcher, workers int, logger logging.Logger) *Reconciler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Reconciler{matcher: matcher, workers: workers, logger: logging.OrDiscard(logger)}
}

// Reconcile matches every row against catalog and returns one payload per
// row in input order. Matching fans out across workers for large inputs.
func (r *Reconciler) Reconcile(ctx context.Context, rows []models.ParsedRow, catalog models.Catalog) ([]models.TransactionPayload, error) {
	payloads := make([]models.TransactionPayload, len(rows))

	if len(rows) < sequentialLimit {
		for i := range rows {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			p, err := r.reconcileRow(rows[i], catalog)
			if err != nil {
				return nil, err
			}
			payloads[i] = p
		}
		return payloads, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := r.reconcileRow(rows[i], catalog)
			if err != nil {
				return err
			}
			payloads[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Debug("Concurrent reconciliation completed",
		logging.F(logging.FieldCount, len(rows)),
		logging.F(logging.FieldWorkers, r.workers))
	return payloads, nil
}

func (r *Reconciler) reconcileRow(row models.ParsedRow, catalog models.Catalog) (models.TransactionPayload, error) {
	match, ok := r.matcher.FindBestMatch(row.ItemPurchase, catalog)
	if !ok {
		r.logger.Debug("Row needs review",
			logging.F(logging.FieldRow, row.Line),
			logging.F(logging.FieldQuery, row.ItemPurchase))
	}
	return BuildPayload(row, match, ok)
}

// BuildPayload merges row with its match. An unmatched row sells for zero,
// has no product id and needs review. Month and year come from the row's
// ISO date.
func BuildPayload(row models.ParsedRow, match models.MatchResult, matched bool) (models.TransactionPayload, error) {
	date, err := time.Parse(dateutils.DateLayoutISO, row.Date)
	if err != nil {
		return models.TransactionPayload{}, fmt.Errorf("row %d: invalid date %q: %w", row.Line, row.Date, err)
	}

	p := models.TransactionPayload{
		Date:          row.Date,
		ItemPurchased: row.ItemPurchase,
		CustomerName:  row.CustomerName,
		StoreName:     row.StoreName,
		PaymentMethod: row.PaymentMethod,
		PurchasePrice: row.PurchasePrice,
		Notes:         row.Notes,
		Month:         int(date.Month()),
		Year:          date.Year(),
		NeedsReview:   !matched,
	}
	if matched {
		id := match.ID
		p.ProductID = &id
		p.SellingPrice = ingest.WholeRupiah(match.Price)
		p.MatchedName = match.Name
		p.MatchSimilarity = match.Similarity
	}
	p.Revenue = p.SellingPrice - p.PurchasePrice
	return p, nil
}

// Summarize counts matched and unmatched payloads and totals their revenue.
// rowErrors is the number of rows the ingestor rejected.
func Summarize(payloads []models.TransactionPayload, rowErrors int) models.ReconcileSummary {
	s := models.ReconcileSummary{Rows: len(payloads), RowErrors: rowErrors}
	for _, p := range payloads {
		if p.NeedsReview {
			s.NeedsReview++
		} else {
			s.Matched++
		}
		s.TotalRevenue += p.Revenue
	}
	return s
}

// Request wraps payloads in the bulk endpoint body.
func Request(payloads []models.TransactionPayload) models.BulkRequest {
	if payloads == nil {
		payloads = []models.TransactionPayload{}
	}
	return models.BulkRequest{Transactions: payloads}
}
