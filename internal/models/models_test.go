package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestResult_HasErrors(t *testing.T) {
	assert.False(t, IngestResult{}.HasErrors())
	assert.True(t, IngestResult{Errors: []string{"Row 2: Store name is required"}}.HasErrors())
}

func TestNewMatchResult(t *testing.T) {
	entry := CatalogEntry{ID: "p1", Name: "NETFLIX PRIVATE", Price: decimal.NewFromInt(30000), Type: "PRIVATE"}
	got := NewMatchResult(entry, 0.9)

	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "NETFLIX PRIVATE", got.Name)
	assert.True(t, got.Price.Equal(entry.Price))
	assert.Equal(t, 0.9, got.Similarity)
}

func TestTransactionPayload_NullProductID(t *testing.T) {
	data, err := json.Marshal(TransactionPayload{Date: "2025-01-15"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "product_id")
	assert.Nil(t, raw["product_id"])
	assert.NotContains(t, raw, "matched_name")
}
