package ingest

import (
	"regexp"
	"strings"
)

// Column identifies a logical column of the transaction sheet.
type Column int

const (
	ColDate Column = iota
	ColItemPurchase
	ColCustomerName
	ColStoreName
	ColPaymentMethod
	ColPurchase
	ColNotes
	columnCount
)

type columnSpec struct {
	label    string
	required bool
	aliases  []string
}

// columnSpecs is indexed by Column. Labels are what a missing-column error
// names.
var columnSpecs = [columnCount]columnSpec{
	ColDate:          {label: "date", required: true, aliases: []string{"date"}},
	ColItemPurchase:  {label: "item purchase", required: true, aliases: []string{"itempurchase", "item purchase", "item_purchase"}},
	ColCustomerName:  {label: "customer name", aliases: []string{"customername", "customer name", "customer_name"}},
	ColStoreName:     {label: "store name", required: true, aliases: []string{"storename", "store name", "store_name"}},
	ColPaymentMethod: {label: "payment method", required: true, aliases: []string{"paymentmethod", "payment method", "payment_method"}},
	ColPurchase:      {label: "purchase", required: true, aliases: []string{"purchase", "purchaseprice", "purchase_price"}},
	ColNotes:         {label: "notes", aliases: []string{"notes", "note"}},
}

var headerSeparators = regexp.MustCompile(`[_\s]+`)

// NormalizeHeader trims, lowercases and removes whitespace and underscores,
// so "Item Purchase", "item_purchase" and "ITEMPURCHASE" compare equal.
func NormalizeHeader(h string) string {
	return headerSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(h)), "")
}

// HeaderIndex maps each logical column to its cell position, or -1.
type HeaderIndex [columnCount]int

// ResolveHeader locates every logical column in the header cells. Order in
// the file is irrelevant; the first matching cell wins. It returns the labels
// of required columns that are absent.
func ResolveHeader(cells []string) (HeaderIndex, []string) {
	normalized := make([]string, len(cells))
	for i, c := range cells {
		normalized[i] = NormalizeHeader(c)
	}

	var idx HeaderIndex
	var missing []string
	for col, spec := range columnSpecs {
		idx[col] = findColumn(normalized, spec.aliases)
		if idx[col] < 0 && spec.required {
			missing = append(missing, spec.label)
		}
	}
	return idx, missing
}

func findColumn(normalized []string, aliases []string) int {
	want := make(map[string]struct{}, len(aliases))
	for _, a := range aliases {
		want[NormalizeHeader(a)] = struct{}{}
	}
	for i, h := range normalized {
		if _, ok := want[h]; ok {
			return i
		}
	}
	return -1
}

// Get returns the cell for col, or "" when the column is absent or the row is
// short.
func (h HeaderIndex) Get(cells []string, col Column) string {
	i := h[col]
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
