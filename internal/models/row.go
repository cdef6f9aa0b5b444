// Package models contains the data types exchanged between the ingestion,
// matching and reconciliation stages.
package models

// RepairStrategy names the step of the per-row repair chain that produced a
// row's cells.
type RepairStrategy string

const (
	RepairPrimary            RepairStrategy = "primary"
	RepairAlternateDelimiter RepairStrategy = "alternate-delimiter"
	RepairThousandsMerge     RepairStrategy = "thousands-merge"
	RepairForceFit           RepairStrategy = "force-fit"
)

// ParsedRow is one validated transaction line read from an uploaded CSV file.
type ParsedRow struct {
	// Date is the calendar date in YYYY-MM-DD form, anchored at UTC.
	Date          string `json:"date" yaml:"date" csv:"Date"`
	ItemPurchase  string `json:"itemPurchase" yaml:"item_purchase" csv:"Item Purchase"`
	CustomerName  string `json:"customerName" yaml:"customer_name" csv:"Customer Name"`
	StoreName     string `json:"storeName" yaml:"store_name" csv:"Store Name"`
	PaymentMethod string `json:"paymentMethod" yaml:"payment_method" csv:"Payment Method"`
	// PurchasePrice is a whole Rupiah amount.
	PurchasePrice int64  `json:"purchasePrice" yaml:"purchase_price" csv:"Purchase"`
	Notes         string `json:"notes" yaml:"notes" csv:"Notes"`

	// Line is the 1-based record number in the file (the header is record 1).
	Line int `json:"line" yaml:"line" csv:"-"`
	// Repair records which repair strategy fitted the row to the header.
	Repair RepairStrategy `json:"repair" yaml:"repair" csv:"-"`
	// LowConfidence is set when the row needed the last-resort force fit and
	// may have cells attributed to the wrong column.
	LowConfidence bool `json:"lowConfidence,omitempty" yaml:"low_confidence,omitempty" csv:"-"`
}

// IngestResult is the outcome of parsing one file: every row that survived
// validation plus one human-readable message per rejected row.
type IngestResult struct {
	Rows      []ParsedRow `json:"rows"`
	Errors    []string    `json:"errors"`
	Delimiter string      `json:"delimiter,omitempty"`
}

// HasErrors reports whether any row, or the file itself, was rejected.
func (r IngestResult) HasErrors() bool {
	return len(r.Errors) > 0
}
