// =============================================================================
// Receipt Generator - Allocation Errors
// =============================================================================
//
// Precondition errors for the allocator. All are detected before the
// generation loop starts; no partial results are ever returned alongside
// an error.
//
// =============================================================================

package generator

import "fmt"

// InvalidCatalogError indicates the catalog has no items to draw from.
type InvalidCatalogError struct{}

// Error implements the error interface.
func (e *InvalidCatalogError) Error() string {
	return "catalog is empty: nothing to draw from"
}

// NewInvalidCatalogError creates an InvalidCatalogError.
func NewInvalidCatalogError() *InvalidCatalogError {
	return &InvalidCatalogError{}
}

// InvalidTargetError indicates a non-positive target amount.
type InvalidTargetError struct {
	Target int64 `json:"target"`
}

// Error implements the error interface.
func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target amount: %d (must be positive)", e.Target)
}

// NewInvalidTargetError creates an InvalidTargetError.
func NewInvalidTargetError(target int64) *InvalidTargetError {
	return &InvalidTargetError{Target: target}
}

// InvalidReceiptCountError indicates a non-positive receipt count.
type InvalidReceiptCountError struct {
	Count int `json:"count"`
}

// Error implements the error interface.
func (e *InvalidReceiptCountError) Error() string {
	return fmt.Sprintf("invalid receipt count: %d (must be positive)", e.Count)
}

// NewInvalidReceiptCountError creates an InvalidReceiptCountError.
func NewInvalidReceiptCountError(count int) *InvalidReceiptCountError {
	return &InvalidReceiptCountError{Count: count}
}
