// =============================================================================
// Receipt Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - generator
//   - report
//   - transport
//
// =============================================================================

package types

// =============================================================================
// PURCHASE EVENT
// =============================================================================

// PurchaseEvent represents one simulated unit purchase of a single item.
// Events exist only as intermediate values during generation and are
// collapsed into line items before results are returned to callers.
type PurchaseEvent struct {
	// Item is the catalog name of the purchased item.
	Item string

	// Price is the catalog unit price at generation time, in whole
	// currency units.
	Price int64
}

// =============================================================================
// RECEIPT TYPES
// =============================================================================

// Receipt represents a single generated receipt.
// A receipt contains zero or more line items; an empty receipt has an
// empty line-item list, never a nil result slot.
type Receipt struct {
	// ID is the receipt number within one generation run (1-indexed).
	ID int

	// LineItems contains the aggregated purchases assigned to this receipt,
	// in insertion order of first occurrence.
	LineItems []LineItem
}

// Total returns the receipt grand total: the sum of quantity * unit price
// over all line items.
func (r Receipt) Total() int64 {
	var total int64
	for _, li := range r.LineItems {
		total += li.LineTotal()
	}
	return total
}

// LineItem represents a single aggregated item within a receipt.
type LineItem struct {
	// Item is the catalog name of the item.
	Item string

	// Quantity is the number of purchase events for this item assigned to
	// the receipt. Always >= 1; items with zero occurrences are omitted.
	Quantity int

	// UnitPrice is the catalog price of the item at generation time, in
	// whole currency units.
	UnitPrice int64
}

// LineTotal returns quantity * unit price for this line item.
func (li LineItem) LineTotal() int64 {
	return int64(li.Quantity) * li.UnitPrice
}
