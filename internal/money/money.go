// =============================================================================
// Receipt Generator - Money Formatting
// =============================================================================
//
// Currency-aware amount formatting for JSON responses and report cells.
// Catalog prices and totals are whole currency units internally; this
// package only controls how they are presented.
//
// =============================================================================

package money

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// DefaultCurrency is used when no currency code is configured.
// The generated amounts are rupee-denominated by default.
const DefaultCurrency = "INR"

// Amount represents a monetary value with currency-aware decimal precision
// for JSON marshaling. Uses go-money for ISO 4217 currency support
// (e.g. INR=2, KWD=3, JPY=0 decimal places).
type Amount struct {
	Value    int64
	Currency string
}

// NewAmount creates an Amount for JSON marshaling with currency-aware
// precision.
func NewAmount(value int64, currency string) Amount {
	return Amount{Value: value, Currency: currency}
}

// MarshalJSON implements json.Marshaler to output clean decimal format
// (e.g. 40.00 for two-fraction currencies, 40 for zero-fraction ones).
func (a Amount) MarshalJSON() ([]byte, error) {
	decimals := DecimalPlaces(a.Currency)
	format := fmt.Sprintf("%%.%df", decimals)
	return []byte(fmt.Sprintf(format, float64(a.Value))), nil
}

// DecimalPlaces returns the number of decimal places for the currency per
// ISO 4217. Defaults to 2 for empty or unknown currency codes.
func DecimalPlaces(currency string) int {
	c := money.GetCurrency(normalize(currency))
	if c == nil {
		return 2
	}
	return c.Fraction
}

// Display formats a whole-unit amount with the currency's symbol and
// grouping, e.g. Display(1250, "INR") -> "₹1,250.00".
func Display(value int64, currency string) string {
	return money.NewFromFloat(float64(value), normalize(currency)).Display()
}

// normalize maps an arbitrary code to an upper-cased ISO code, falling back
// to the default currency.
func normalize(currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		return DefaultCurrency
	}
	return code
}
