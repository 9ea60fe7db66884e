// =============================================================================
// Receipt Generator - Catalog Loaders
// =============================================================================
//
// This module loads catalog files from disk. Two formats are supported:
//
//   YAML (catalog.yaml):
//     items:
//       - name: Bread
//         price: 40
//       - name: Milk
//         price: 60
//
//   CSV (catalog.csv):
//     name,price
//     Bread,40
//     Milk,60
//
// Loading is split from validation: loaders only fail on unreadable or
// structurally broken files, while domain constraints (name charset, price
// range, uniqueness) are reported by ValidateItems so callers can collect
// every violation at once.
//
// =============================================================================

package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// YAML CATALOG FILE
// =============================================================================

// yamlCatalogFile mirrors the on-disk YAML catalog structure.
type yamlCatalogFile struct {
	Items []Item `yaml:"items"`
}

// LoadYAML loads a catalog from a YAML file.
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file yamlCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if len(file.Items) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no items", path)
	}

	return New(file.Items)
}

// =============================================================================
// CSV CATALOG FILE
// =============================================================================

// LoadCSV loads a catalog from a CSV file with a "name,price" header row.
// Header matching is case-insensitive and column order is not fixed.
func LoadCSV(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("catalog file %s contains no items", path)
	}

	nameCol, priceCol, err := locateColumns(rows[0])
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		if len(row) <= nameCol || len(row) <= priceCol {
			return nil, fmt.Errorf("row %d: expected at least %d columns, got %d",
				i+2, max(nameCol, priceCol)+1, len(row))
		}

		price, err := strconv.ParseInt(strings.TrimSpace(row[priceCol]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: price %q is not a whole number", i+2, row[priceCol])
		}

		items = append(items, Item{
			Name:  strings.TrimSpace(row[nameCol]),
			Price: price,
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no items", path)
	}

	return New(items)
}

// =============================================================================
// FORMAT DISPATCH
// =============================================================================

// Load loads a catalog file, dispatching on the file extension.
// Supported extensions: .yaml, .yml, .csv.
func Load(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", filepath.Ext(path))
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// locateColumns finds the "name" and "price" columns in the header row.
func locateColumns(header []string) (nameCol, priceCol int, err error) {
	nameCol, priceCol = -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "item", "item name":
			nameCol = i
		case "price", "unit price":
			priceCol = i
		}
	}
	if nameCol == -1 || priceCol == -1 {
		return 0, 0, fmt.Errorf("catalog CSV must have 'name' and 'price' header columns")
	}
	return nameCol, priceCol, nil
}

// isRowEmpty checks if all cells in a row are empty or whitespace.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
