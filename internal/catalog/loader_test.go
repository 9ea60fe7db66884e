package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
items:
  - name: Bread
    price: 40
  - name: Milk
    price: 60
`)

	cat, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	if price, _ := cat.Price("Bread"); price != 40 {
		t.Errorf("Price(Bread) = %d, want 40", price)
	}
	if cat.At(1).Name != "Milk" {
		t.Errorf("item order not preserved: %+v", cat.Items())
	}
}

func TestLoadYAMLEmpty(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "items: []\n")
	if _, err := LoadYAML(path); err == nil {
		t.Fatal("LoadYAML accepted an empty catalog")
	}
}

func TestLoadYAMLMalformed(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "items: [broken\n")
	if _, err := LoadYAML(path); err == nil {
		t.Fatal("LoadYAML accepted malformed YAML")
	}
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "catalog.csv", "name,price\nBread,40\nMilk,60\n\n")

	cat, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	if price, _ := cat.Price("Milk"); price != 60 {
		t.Errorf("Price(Milk) = %d, want 60", price)
	}
}

func TestLoadCSVColumnOrder(t *testing.T) {
	path := writeFile(t, "catalog.csv", "Price,Name\n40,Bread\n")

	cat, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if price, ok := cat.Price("Bread"); !ok || price != 40 {
		t.Errorf("Price(Bread) = %d, %v", price, ok)
	}
}

func TestLoadCSVRejectsNonIntegerPrice(t *testing.T) {
	path := writeFile(t, "catalog.csv", "name,price\nBread,39.99\n")
	if _, err := LoadCSV(path); err == nil {
		t.Fatal("LoadCSV accepted a fractional price")
	}
}

func TestLoadCSVMissingHeader(t *testing.T) {
	path := writeFile(t, "catalog.csv", "item,cost\nBread,40\n")
	if _, err := LoadCSV(path); err == nil {
		t.Fatal("LoadCSV accepted a file without a price header")
	}
}

func TestLoadDispatch(t *testing.T) {
	yamlPath := writeFile(t, "catalog.yml", "items:\n  - name: Bread\n    price: 40\n")
	if _, err := Load(yamlPath); err != nil {
		t.Errorf("Load(.yml): %v", err)
	}

	csvPath := writeFile(t, "catalog.csv", "name,price\nBread,40\n")
	if _, err := Load(csvPath); err != nil {
		t.Errorf("Load(.csv): %v", err)
	}

	if _, err := Load("catalog.json"); err == nil {
		t.Error("Load accepted an unsupported format")
	}
}
