// =============================================================================
// Receipt Generator - Catalog Model
// =============================================================================
//
// This module defines the Catalog value object: the set of purchasable items
// and their fixed prices for one generation run.
//
// OWNERSHIP:
//   The catalog is created and edited by the caller (CLI flags, catalog
//   files, or HTTP request bodies) before each generation run. The allocator
//   treats it as read-only for the duration of a run and never retains it
//   between calls.
//
// ORDERING:
//   Item order is preserved from the source (file order or request order).
//   The generator draws by index over this ordered list, which keeps results
//   reproducible for a fixed random seed.
//
// =============================================================================

package catalog

import (
	"fmt"
)

// =============================================================================
// CATALOG TYPES
// =============================================================================

// Item is a single catalog entry: an item name and its unit price.
type Item struct {
	// Name is the item name. Constrained to alphanumerics and spaces,
	// maximum 200 characters, unique within a catalog.
	Name string `yaml:"name" json:"name"`

	// Price is the unit price in whole currency units (1..1000).
	Price int64 `yaml:"price" json:"price"`
}

// Catalog holds the ordered item list plus a name -> price index.
type Catalog struct {
	items  []Item
	prices map[string]int64
}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// New builds a Catalog from a list of items, preserving order.
// Duplicate names are rejected here; all other constraints are reported by
// Validate so that callers can collect every violation at once.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items:  make([]Item, 0, len(items)),
		prices: make(map[string]int64, len(items)),
	}
	for _, item := range items {
		if _, exists := c.prices[item.Name]; exists {
			return nil, fmt.Errorf("duplicate item name: %q", item.Name)
		}
		c.items = append(c.items, item)
		c.prices[item.Name] = item.Price
	}
	return c, nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the ordered item list.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Names returns the ordered item names.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.items))
	for i, item := range c.items {
		names[i] = item.Name
	}
	return names
}

// Price returns the unit price for an item name.
func (c *Catalog) Price(name string) (int64, bool) {
	price, ok := c.prices[name]
	return price, ok
}

// At returns the item at the given index.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// MaxPrice returns the highest unit price in the catalog, or 0 for an
// empty catalog. Used for the overshoot bound: the realized total can
// exceed the target by at most one item's price.
func (c *Catalog) MaxPrice() int64 {
	var max int64
	for _, item := range c.items {
		if item.Price > max {
			max = item.Price
		}
	}
	return max
}

// MinPrice returns the lowest unit price in the catalog, or 0 for an
// empty catalog.
func (c *Catalog) MinPrice() int64 {
	if len(c.items) == 0 {
		return 0
	}
	min := c.items[0].Price
	for _, item := range c.items[1:] {
		if item.Price < min {
			min = item.Price
		}
	}
	return min
}
