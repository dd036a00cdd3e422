package domain

// ReceiptItem is a single line item extracted from a receipt. Duplicates on
// the receipt are retained as separate entries, in appearance order.
type ReceiptItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ReceiptSummary is the structured record extracted from a receipt image.
// Read-only after construction; missing numeric fields are zero and missing
// text fields are empty, except PaymentMethod which is never defaulted.
type ReceiptSummary struct {
	StoreName     string        `json:"store_name"`
	StoreAddress  string        `json:"store_address"`
	Items         []ReceiptItem `json:"items"`
	Tax           float64       `json:"tax"`
	Tips          float64       `json:"tips"`
	Total         float64       `json:"total"`
	PaymentTotal  float64       `json:"payment_total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// ParsedReceiptItem is a receipt line item with its pipeline-assigned
// sequential identifier (1-based, appearance order).
type ParsedReceiptItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ParsedReceipt is the receipt record returned to clients, augmented with
// item identifiers and an empty collaborator list for downstream UI state.
type ParsedReceipt struct {
	StoreName       string              `json:"store_name"`
	Items           []ParsedReceiptItem `json:"items"`
	Tax             float64             `json:"tax"`
	Tips            float64             `json:"tips"`
	Total           float64             `json:"total"`
	PaymentTotal    float64             `json:"payment_total"`
	PaymentMethod   PaymentMethod       `json:"payment_method"`
	AssignedFriends []int64             `json:"assigned_friends"`
}

// ResolvedPair holds the canonical names a noisy (restaurant, item) pair
// resolved to. A nil field means no acceptable match was found; the item is
// never resolved when the restaurant is not.
type ResolvedPair struct {
	Restaurant *string `json:"restaurant"`
	Item       *string `json:"item"`
}
