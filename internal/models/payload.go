package models

// TransactionPayload is one transaction in the body accepted by the bulk
// transaction endpoint: a ParsedRow merged with its catalog match.
type TransactionPayload struct {
	Date            string  `json:"date" csv:"date"`
	ItemPurchased   string  `json:"item_purchased" csv:"item_purchased"`
	CustomerName    string  `json:"customer_name" csv:"customer_name"`
	StoreName       string  `json:"store_name" csv:"store_name"`
	PaymentMethod   string  `json:"payment_method" csv:"payment_method"`
	PurchasePrice   int64   `json:"purchase_price" csv:"purchase_price"`
	SellingPrice    int64   `json:"selling_price" csv:"selling_price"`
	ProductID       *string `json:"product_id" csv:"product_id"`
	Revenue         int64   `json:"revenue" csv:"revenue"`
	Notes           string  `json:"notes" csv:"notes"`
	Month           int     `json:"month" csv:"month"`
	Year            int     `json:"year" csv:"year"`
	MatchedName     string  `json:"matched_name,omitempty" csv:"matched_name"`
	MatchSimilarity float64 `json:"match_similarity,omitempty" csv:"match_similarity"`
	NeedsReview     bool    `json:"needs_review" csv:"needs_review"`
}

// BulkRequest is the JSON body posted to the bulk transaction endpoint.
type BulkRequest struct {
	Transactions []TransactionPayload `json:"transactions"`
}

// ReconcileSummary counts the outcome of a reconciliation pass.
type ReconcileSummary struct {
	Rows         int   `json:"rows"`
	Matched      int   `json:"matched"`
	NeedsReview  int   `json:"needs_review"`
	RowErrors    int   `json:"row_errors"`
	TotalRevenue int64 `json:"total_revenue"`
}
