// Package catalog loads product catalog snapshots for the matcher from YAML
// files or product CSV exports, and caches them between runs of a
// long-lived caller.
package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/IqbalNugrahaa/HappiestStore/internal/ingest"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
	"github.com/IqbalNugrahaa/HappiestStore/internal/parsererror"
	"github.com/IqbalNugrahaa/HappiestStore/internal/textnorm"
)

// idNamespace seeds the deterministic ids given to products without one.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/IqbalNugrahaa/HappiestStore/catalog"))

// Rejection messages for invalid catalog rows.
const (
	reasonNameRequired  = "Product name is required"
	reasonPricePositive = "Price must be a positive number"
	reasonPriceNegative = "Price must not be negative"
	reasonBadShape      = "Invalid CSV format. Expected: name,type,price"
)

// LoadResult is a loaded catalog plus the rows that failed validation.
type LoadResult struct {
	Source   string
	Catalog  models.Catalog
	Rejected []*parsererror.CatalogError
}

// Loader reads catalog files.
type Loader struct {
	logger logging.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger logging.Logger) *Loader {
	return &Loader{logger: logging.OrDiscard(logger)}
}

// LoadFile reads a catalog, choosing the format from the file extension:
// .yaml and .yml for YAML catalogs, .csv for product exports.
func (l *Loader) LoadFile(path string) (LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("error reading catalog file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return l.ReadYAML(data, path)
	case ".csv":
		return l.ReadCSV(bytes.NewReader(data), path)
	default:
		return LoadResult{}, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: ".yaml, .yml or .csv",
			Msg:            "unsupported catalog extension",
		}
	}
}

// ReadYAML decodes a catalog document. Both the `products:` layout and a
// bare list of products are accepted.
func (l *Loader) ReadYAML(data []byte, source string) (LoadResult, error) {
	var entries []models.CatalogEntry

	var file models.CatalogFile
	if err := yaml.Unmarshal(data, &file); err == nil && len(file.Products) > 0 {
		entries = file.Products
	} else if err := yaml.Unmarshal(data, &entries); err != nil {
		return LoadResult{}, fmt.Errorf("error parsing catalog file %s: %w", source, err)
	}

	result := LoadResult{Source: source, Catalog: make(models.Catalog, 0, len(entries))}
	for i, e := range entries {
		entry, reasons := normalizeEntry(e, false)
		if len(reasons) > 0 {
			result.Rejected = append(result.Rejected, &parsererror.CatalogError{Source: source, Row: i + 1, Name: e.Name, Reasons: reasons})
			continue
		}
		result.Catalog = append(result.Catalog, entry)
	}

	l.logResult(result)
	return result, nil
}

// productRow is one line of a product CSV export.
type productRow struct {
	ID    string `csv:"id"`
	Name  string `csv:"name"`
	Type  string `csv:"type"`
	Price string `csv:"price"`
}

// ReadCSV decodes a product export with Name, Type and Price columns (ID is
// optional). Header names are case-insensitive; a file without a header is
// read positionally as name, type, price.
func (l *Loader) ReadCSV(r io.Reader, source string) (LoadResult, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return LoadResult{}, fmt.Errorf("error reading catalog file %s: %w", source, err)
	}

	text := textnorm.NormalizeLines(string(content))
	if strings.TrimSpace(text) == "" {
		return LoadResult{Source: source, Catalog: models.Catalog{}}, nil
	}

	reader := newProductReader(strings.NewReader(text))
	var rows []*productRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return LoadResult{}, fmt.Errorf("error parsing catalog file %s: %w", source, err)
	}

	result := LoadResult{Source: source, Catalog: make(models.Catalog, 0, len(rows))}
	for i, row := range rows {
		line := reader.line(i)
		if reader.width(i) < 3 {
			result.Rejected = append(result.Rejected, &parsererror.CatalogError{Source: source, Row: line, Name: row.Name, Reasons: []string{reasonBadShape}})
			continue
		}

		var reasons []string
		price, ok := ParsePrice(row.Price)
		if !ok || !price.IsPositive() {
			reasons = append(reasons, reasonPricePositive)
		}
		entry, entryReasons := normalizeEntry(models.CatalogEntry{
			ID:    strings.TrimSpace(row.ID),
			Name:  row.Name,
			Type:  row.Type,
			Price: price,
		}, true)
		reasons = append(entryReasons, reasons...)
		if len(reasons) > 0 {
			result.Rejected = append(result.Rejected, &parsererror.CatalogError{Source: source, Row: line, Name: strings.TrimSpace(row.Name), Reasons: reasons})
			continue
		}
		result.Catalog = append(result.Catalog, entry)
	}

	l.logResult(result)
	return result, nil
}

func (l *Loader) logResult(result LoadResult) {
	log := l.logger.WithField(logging.FieldCatalog, result.Source)
	for _, rej := range result.Rejected {
		log.Warn("Catalog row rejected", logging.F(logging.FieldRow, rej.Row), logging.F(logging.FieldErrors, strings.Join(rej.Reasons, "; ")))
	}
	log.Info("Catalog loaded", logging.F(logging.FieldCount, len(result.Catalog)), logging.F(logging.FieldErrors, len(result.Rejected)))
}

// normalizeEntry trims the entry, canonicalizes its type and fills a missing
// id. Price positivity is checked by the caller when priceChecked is true.
func normalizeEntry(e models.CatalogEntry, priceChecked bool) (models.CatalogEntry, []string) {
	var reasons []string

	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		reasons = append(reasons, reasonNameRequired)
	}

	if raw := strings.TrimSpace(e.Type); raw != "" {
		canon, ok := CanonicalType(raw)
		if !ok {
			reasons = append(reasons, fmt.Sprintf("Invalid product type: %s", raw))
		}
		e.Type = canon
	} else {
		e.Type = ""
	}

	if !priceChecked && e.Price.IsNegative() {
		reasons = append(reasons, reasonPriceNegative)
	}

	if e.ID == "" {
		e.ID = ProductID(e.Name, e.Type)
	}
	return e, reasons
}

// ProductID derives a stable id from a product's name and type.
func ProductID(name, productType string) string {
	key := strings.ToUpper(strings.TrimSpace(name)) + "|" + productType
	return uuid.NewSHA1(idNamespace, []byte(key)).String()
}

// productReader feeds gocsv. It lowercases header names, inserts the
// positional header when the file has none and remembers each data row's
// width and line number.
type productReader struct {
	r      *csv.Reader
	widths []int
	lines  []int
}

func newProductReader(in io.Reader) *productReader {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	return &productReader{r: r}
}

func (p *productReader) Read() ([]string, error) {
	return p.r.Read()
}

func (p *productReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		rec, err := p.r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := p.r.FieldPos(0)

		if len(records) == 0 {
			header := make([]string, len(rec))
			for i, h := range rec {
				header[i] = ingest.NormalizeHeader(h)
			}
			if !isProductHeader(header) {
				records = append(records, []string{"name", "type", "price"})
				p.addRow(rec, line)
				records = append(records, rec)
				continue
			}
			records = append(records, header)
			continue
		}

		p.addRow(rec, line)
		records = append(records, rec)
	}
	return records, nil
}

func (p *productReader) addRow(rec []string, line int) {
	p.widths = append(p.widths, len(rec))
	p.lines = append(p.lines, line)
}

func (p *productReader) width(i int) int {
	if i < len(p.widths) {
		return p.widths[i]
	}
	return 0
}

func (p *productReader) line(i int) int {
	if i < len(p.lines) {
		return p.lines[i]
	}
	return i + 1
}

func isProductHeader(header []string) bool {
	var name, price bool
	for _, h := range header {
		switch h {
		case "name":
			name = true
		case "price":
			price = true
		}
	}
	return name && price
}

var _ gocsv.CSVReader = (*productReader)(nil)
