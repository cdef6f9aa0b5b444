// Package ingest parses transaction spreadsheets exported as CSV. It copes
// with inconsistent delimiters, quoted cells spanning several lines, and
// prices whose thousands separators were mistaken for column breaks, and it
// reports unusable rows instead of failing the whole file.
package ingest

import (
	"time"

	"github.com/IqbalNugrahaa/HappiestStore/internal/dateutils"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
	"github.com/IqbalNugrahaa/HappiestStore/internal/parsererror"
)

// ErrTooFewLines is the structural message for files without a data row.
const ErrTooFewLines = "CSV file must contain at least a header row and one data row"

// Config tunes delimiter detection.
type Config struct {
	// Delimiters are the candidate delimiters in tie-break order.
	Delimiters []rune
	// SampleSize is how many leading records delimiter detection reads.
	SampleSize int
}

// DefaultConfig returns the standard candidates and sample size.
func DefaultConfig() Config {
	return Config{
		Delimiters: append([]rune(nil), DefaultDelimiters...),
		SampleSize: DefaultSampleSize,
	}
}

// Parser turns CSV text into validated transaction rows. It holds no
// per-call state and is safe for concurrent use.
type Parser struct {
	cfg    Config
	logger logging.Logger
}

// NewParser creates a Parser. Zero config fields fall back to the defaults
// and a nil logger discards output.
func NewParser(cfg Config, logger logging.Logger) *Parser {
	if len(cfg.Delimiters) == 0 {
		cfg.Delimiters = append([]rune(nil), DefaultDelimiters...)
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = DefaultSampleSize
	}
	return &Parser{cfg: cfg, logger: logging.OrDiscard(logger)}
}

// Parse never fails on malformed data: it returns every row that validated
// plus one message per rejected row. A structural problem (no data row,
// required columns missing) yields no rows and a single error message.
func Parse(content string) models.IngestResult {
	return NewParser(DefaultConfig(), nil).Parse(content)
}

// Parse implements the package-level Parse with this parser's settings.
func (p *Parser) Parse(content string) models.IngestResult {
	result, _ := p.ParseStrict(content)
	return result
}

// ParseStrict is Parse that additionally returns a *parsererror.StructuralError
// when the file could not be ingested at all. Per-row problems are never
// returned as an error.
func (p *Parser) ParseStrict(content string) (models.IngestResult, error) {
	started := time.Now()
	result := models.IngestResult{Rows: []models.ParsedRow{}, Errors: []string{}}

	records := CoalesceRecords(content)
	if len(records) < 2 {
		err := &parsererror.StructuralError{Msg: ErrTooFewLines}
		result.Errors = append(result.Errors, err.Error())
		p.logger.Warn("CSV rejected", logging.F(logging.FieldErrors, err.Error()))
		return result, err
	}

	texts := recordTexts(records)
	delim := DetectDelimiter(texts, p.cfg.Delimiters, p.cfg.SampleSize)
	result.Delimiter = string(delim)
	log := p.logger.WithField(logging.FieldDelimiter, DelimiterName(delim))
	log.Debug("Delimiter detected")

	headerCells := SplitLine(texts[0], delim)
	index, missing := ResolveHeader(headerCells)
	if len(missing) > 0 {
		err := &parsererror.StructuralError{MissingColumns: missing}
		result.Errors = append(result.Errors, err.Error())
		log.Warn("CSV rejected", logging.F(logging.FieldErrors, err.Error()))
		return result, err
	}

	headerLen := len(headerCells)
	for r := 1; r < len(records); r++ {
		rowNum := r + 1
		cells, strategy := RepairRow(texts[r], delim, p.cfg.Delimiters, headerLen)
		switch strategy {
		case models.RepairPrimary:
		case models.RepairForceFit:
			log.Warn("Row force-fitted to header width",
				logging.F(logging.FieldRow, rowNum),
				logging.F(logging.FieldStrategy, string(strategy)),
				logging.F(logging.FieldHeaderLen, headerLen))
		default:
			log.Debug("Row repaired",
				logging.F(logging.FieldRow, rowNum),
				logging.F(logging.FieldStrategy, string(strategy)))
		}

		row, rowErr := extractRow(index, cells, rowNum)
		if rowErr != nil {
			result.Errors = append(result.Errors, rowErr.Error())
			log.Debug("Row rejected", logging.F(logging.FieldRow, rowNum), logging.F(logging.FieldErrors, rowErr.Error()))
			continue
		}
		row.Line = rowNum
		row.Repair = strategy
		row.LowConfidence = strategy == models.RepairForceFit
		result.Rows = append(result.Rows, row)
	}

	log.Info("CSV parsed",
		logging.F(logging.FieldCount, len(result.Rows)),
		logging.F(logging.FieldErrors, len(result.Errors)),
		logging.F(logging.FieldDuration, time.Since(started).Milliseconds()))
	return result, nil
}

// extractRow validates one repaired record.
func extractRow(index HeaderIndex, cells []string, rowNum int) (models.ParsedRow, *parsererror.RowError) {
	rawDate := index.Get(cells, ColDate)
	date, err := dateutils.NormalizeDate(rawDate)
	if err != nil {
		return models.ParsedRow{}, parsererror.NewInvalidDateError(rowNum, rawDate)
	}

	storeName := index.Get(cells, ColStoreName)
	if storeName == "" {
		return models.ParsedRow{}, parsererror.NewRequiredFieldError(rowNum, "storeName", "Store name")
	}
	paymentMethod := index.Get(cells, ColPaymentMethod)
	if paymentMethod == "" {
		return models.ParsedRow{}, parsererror.NewRequiredFieldError(rowNum, "paymentMethod", "Payment method")
	}

	rawPrice := index.Get(cells, ColPurchase)
	price := CleanNumber(rawPrice)
	if price.IsNegative() {
		return models.ParsedRow{}, &parsererror.RowError{
			Row:    rowNum,
			Field:  "purchasePrice",
			Value:  rawPrice,
			Reason: "Purchase price must not be negative",
		}
	}

	return models.ParsedRow{
		Date:          date,
		ItemPurchase:  index.Get(cells, ColItemPurchase),
		CustomerName:  index.Get(cells, ColCustomerName),
		StoreName:     storeName,
		PaymentMethod: paymentMethod,
		PurchasePrice: WholeRupiah(price),
		Notes:         index.Get(cells, ColNotes),
	}, nil
}
