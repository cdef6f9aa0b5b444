package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "itempurchase", NormalizeHeader(" Item Purchase "))
	assert.Equal(t, "itempurchase", NormalizeHeader("item_purchase"))
	assert.Equal(t, "itempurchase", NormalizeHeader("ITEM  _ PURCHASE"))
	assert.Equal(t, "date", NormalizeHeader("Date"))
}

func TestResolveHeader(t *testing.T) {
	t.Run("standard header", func(t *testing.T) {
		idx, missing := ResolveHeader([]string{"Date", "Item Purchase", "Customer Name", "Store Name", "Payment Method", "Purchase", "Notes"})
		assert.Empty(t, missing)
		assert.Equal(t, HeaderIndex{0, 1, 2, 3, 4, 5, 6}, idx)
	})

	t.Run("order and aliases are irrelevant", func(t *testing.T) {
		idx, missing := ResolveHeader([]string{"purchase_price", "NOTE", "payment_method", "storename", "item_purchase", "DATE"})
		assert.Empty(t, missing)
		assert.Equal(t, 5, idx[ColDate])
		assert.Equal(t, 4, idx[ColItemPurchase])
		assert.Equal(t, -1, idx[ColCustomerName])
		assert.Equal(t, 3, idx[ColStoreName])
		assert.Equal(t, 2, idx[ColPaymentMethod])
		assert.Equal(t, 0, idx[ColPurchase])
		assert.Equal(t, 1, idx[ColNotes])
	})

	t.Run("optional columns may be absent", func(t *testing.T) {
		_, missing := ResolveHeader([]string{"Date", "Item Purchase", "Store Name", "Payment Method", "Purchase"})
		assert.Empty(t, missing)
	})

	t.Run("missing required columns are named", func(t *testing.T) {
		_, missing := ResolveHeader([]string{"Date", "Customer Name", "Purchase"})
		assert.Equal(t, []string{"item purchase", "store name", "payment method"}, missing)
	})

	t.Run("first matching cell wins", func(t *testing.T) {
		idx, _ := ResolveHeader([]string{"Date", "date", "Item Purchase", "Store Name", "Payment Method", "Purchase"})
		assert.Equal(t, 0, idx[ColDate])
	})
}

func TestHeaderIndex_Get(t *testing.T) {
	idx, _ := ResolveHeader([]string{"Date", "Item Purchase", "Store Name", "Payment Method", "Purchase", "Notes"})
	cells := []string{"2025-01-01", "Kopi", "Toko A"}

	assert.Equal(t, "Kopi", idx.Get(cells, ColItemPurchase))
	assert.Equal(t, "", idx.Get(cells, ColNotes))
	assert.Equal(t, "", idx.Get(cells, ColCustomerName))
}
