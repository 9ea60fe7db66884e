// =============================================================================
// Receipt Generator - Catalog Validation
// =============================================================================
//
// This module validates catalog entries against the collaborator contract:
//   - Item names: alphanumerics and spaces only, 1..200 characters, unique
//   - Prices: whole currency units between 1 and 1000 inclusive
//
// ERROR HANDLING:
//   - Errors are collected, not thrown immediately
//   - Each error includes detailed context (row, field, value)
//   - Error output is designed for easy troubleshooting
//
// =============================================================================

package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// =============================================================================
// VALIDATION CONSTANTS
// =============================================================================

// MaxNameLength is the maximum allowed item name length.
const MaxNameLength = 200

// MinPriceLimit and MaxPriceLimit bound the allowed unit price range.
const (
	MinPriceLimit int64 = 1
	MaxPriceLimit int64 = 1000
)

// namePattern matches valid item names: alphanumerics and spaces.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)

// =============================================================================
// VALIDATION ERROR TYPE
// =============================================================================

// ValidationError represents a single catalog validation error.
type ValidationError struct {
	// Row is the 1-indexed position of the offending item within the
	// catalog source (file row or request array index + 1).
	Row int

	// Field is the name of the field that failed validation ("name" or
	// "price").
	Field string

	// Value is the actual value that failed validation.
	Value string

	// Rule is the validation rule that was violated.
	Rule string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[ERROR] Item %d, Field '%s': %s (value: '%s')",
		e.Row, e.Field, e.Message, e.Value)
}

// =============================================================================
// VALIDATION FUNCTIONS
// =============================================================================

// ValidateItems validates a raw item list and returns all violations.
// An empty slice means the list is valid. Duplicate detection runs across
// the whole list so a repeated name is reported at each repetition.
func ValidateItems(items []Item) []*ValidationError {
	var errs []*ValidationError

	seen := make(map[string]bool, len(items))
	for i, item := range items {
		row := i + 1

		switch {
		case item.Name == "":
			errs = append(errs, &ValidationError{
				Row:     row,
				Field:   "name",
				Value:   item.Name,
				Rule:    "required",
				Message: "item name must not be empty",
			})
		case len(item.Name) > MaxNameLength:
			errs = append(errs, &ValidationError{
				Row:     row,
				Field:   "name",
				Value:   item.Name,
				Rule:    "max_length",
				Message: fmt.Sprintf("item name exceeds %d characters", MaxNameLength),
			})
		case !namePattern.MatchString(item.Name):
			errs = append(errs, &ValidationError{
				Row:     row,
				Field:   "name",
				Value:   item.Name,
				Rule:    "charset",
				Message: "item name may only contain letters, digits and spaces",
			})
		}

		if item.Name != "" {
			if seen[item.Name] {
				errs = append(errs, &ValidationError{
					Row:     row,
					Field:   "name",
					Value:   item.Name,
					Rule:    "unique",
					Message: "item name is duplicated",
				})
			}
			seen[item.Name] = true
		}

		if item.Price < MinPriceLimit || item.Price > MaxPriceLimit {
			errs = append(errs, &ValidationError{
				Row:     row,
				Field:   "price",
				Value:   fmt.Sprintf("%d", item.Price),
				Rule:    "range",
				Message: fmt.Sprintf("price must be between %d and %d", MinPriceLimit, MaxPriceLimit),
			})
		}
	}

	return errs
}

// Validate validates the catalog's items.
func (c *Catalog) Validate() []*ValidationError {
	return ValidateItems(c.items)
}

// FormatErrors formats a list of validation errors for display.
func FormatErrors(errs []*ValidationError) string {
	if len(errs) == 0 {
		return "No validation errors."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d validation error(s):\n", len(errs)))
	for _, e := range errs {
		sb.WriteString("  ")
		sb.WriteString(e.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}
