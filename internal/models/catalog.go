package models

import (
	"github.com/shopspring/decimal"
)

// CatalogEntry is a product the matcher may link a purchase description to.
type CatalogEntry struct {
	ID    string          `json:"id" yaml:"id"`
	Name  string          `json:"name" yaml:"name"`
	Price decimal.Decimal `json:"price" yaml:"price"`
	Type  string          `json:"type,omitempty" yaml:"type,omitempty"`
}

// Catalog is the snapshot of products used for one matching pass.
type Catalog []CatalogEntry

// CatalogFile is the on-disk YAML layout of a catalog.
type CatalogFile struct {
	Products []CatalogEntry `yaml:"products"`
}

// MatchResult is the catalog entry chosen for a free-text description.
type MatchResult struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Similarity float64         `json:"similarity"`
}

// NewMatchResult builds a MatchResult from the entry it refers to.
func NewMatchResult(entry CatalogEntry, similarity float64) MatchResult {
	return MatchResult{
		ID:         entry.ID,
		Name:       entry.Name,
		Price:      entry.Price,
		Similarity: similarity,
	}
}
