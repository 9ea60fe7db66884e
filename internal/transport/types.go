// =============================================================================
// Receipt Generator - HTTP Transport Types
// =============================================================================
//
// Request and response bodies for the generation API. The wire shape mirrors
// the generation result one to one so consuming UI prototypes can render
// per-receipt tables and the aggregate quantity chart without extra lookups.
//
// =============================================================================

package transport

import (
	"github.com/ginjaninja78/receipt-generator/internal/catalog"
	"github.com/ginjaninja78/receipt-generator/internal/money"
)

// CatalogRequest carries the item/price table for one generation call.
type CatalogRequest struct {
	Items []catalog.Item `json:"items"`
}

// GenerateRequest is the request body for POST /receipts/generate.
type GenerateRequest struct {
	Catalog      CatalogRequest `json:"catalog"`
	TargetAmount int64          `json:"target_amount"`
	ReceiptCount int            `json:"receipt_count"`

	// Seed optionally seeds the random stream so a demo can replay the
	// exact same receipts. Omitted or zero means time-based seeding.
	Seed *int64 `json:"seed,omitempty"`
}

// LineItemResponse is a single aggregated item within a receipt.
type LineItemResponse struct {
	Item      string       `json:"item"`
	Quantity  int          `json:"quantity"`
	UnitPrice money.Amount `json:"unit_price"`
	LineTotal money.Amount `json:"line_total"`
}

// ReceiptResponse is one generated receipt.
type ReceiptResponse struct {
	ID        int                `json:"id"`
	LineItems []LineItemResponse `json:"line_items"`
	Total     money.Amount       `json:"total"`
}

// GenerateResponse is the response body for POST /receipts/generate.
type GenerateResponse struct {
	RunID         string            `json:"run_id"`
	Currency      string            `json:"currency"`
	ReceiptCount  int               `json:"receipt_count"`
	RealizedTotal money.Amount      `json:"realized_total"`
	Receipts      []ReceiptResponse `json:"receipts"`
}
