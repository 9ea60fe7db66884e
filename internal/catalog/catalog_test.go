package catalog

import (
	"strings"
	"testing"
)

func TestNewPreservesOrder(t *testing.T) {
	cat, err := New([]Item{
		{Name: "Bread", Price: 40},
		{Name: "Milk", Price: 60},
		{Name: "Eggs", Price: 90},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{"Bread", "Milk", "Eggs"}
	got := cat.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if price, ok := cat.Price("Milk"); !ok || price != 60 {
		t.Errorf("Price(Milk) = %d, %v", price, ok)
	}
	if _, ok := cat.Price("Butter"); ok {
		t.Error("Price(Butter) reported an unknown item as present")
	}
	if cat.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cat.Len())
	}
	if cat.At(2).Name != "Eggs" {
		t.Errorf("At(2) = %+v, want Eggs", cat.At(2))
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]Item{
		{Name: "Bread", Price: 40},
		{Name: "Bread", Price: 45},
	})
	if err == nil {
		t.Fatal("New accepted duplicate item names")
	}
}

func TestPriceBounds(t *testing.T) {
	cat, err := New([]Item{
		{Name: "Salt", Price: 15},
		{Name: "Rice", Price: 120},
		{Name: "Milk", Price: 60},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := cat.MaxPrice(); got != 120 {
		t.Errorf("MaxPrice() = %d, want 120", got)
	}
	if got := cat.MinPrice(); got != 15 {
		t.Errorf("MinPrice() = %d, want 15", got)
	}

	empty, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if empty.MaxPrice() != 0 || empty.MinPrice() != 0 {
		t.Error("empty catalog price bounds should be 0")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	cat, err := New([]Item{{Name: "Bread", Price: 40}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	items := cat.Items()
	items[0].Price = 999

	if price, _ := cat.Price("Bread"); price != 40 {
		t.Errorf("mutating Items() result changed the catalog: price = %d", price)
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidateItems(t *testing.T) {
	tests := []struct {
		name      string
		items     []Item
		wantRules []string
	}{
		{
			name:      "valid items",
			items:     []Item{{Name: "Bread", Price: 40}, {Name: "Milk 2L", Price: 60}},
			wantRules: nil,
		},
		{
			name:      "empty name",
			items:     []Item{{Name: "", Price: 40}},
			wantRules: []string{"required"},
		},
		{
			name:      "name too long",
			items:     []Item{{Name: strings.Repeat("a", MaxNameLength+1), Price: 40}},
			wantRules: []string{"max_length"},
		},
		{
			name:      "invalid characters",
			items:     []Item{{Name: "Café", Price: 40}},
			wantRules: []string{"charset"},
		},
		{
			name:      "punctuation rejected",
			items:     []Item{{Name: "Milk, 2L", Price: 40}},
			wantRules: []string{"charset"},
		},
		{
			name:      "duplicate name",
			items:     []Item{{Name: "Bread", Price: 40}, {Name: "Bread", Price: 45}},
			wantRules: []string{"unique"},
		},
		{
			name:      "price too low",
			items:     []Item{{Name: "Bread", Price: 0}},
			wantRules: []string{"range"},
		},
		{
			name:      "price too high",
			items:     []Item{{Name: "Bread", Price: 1001}},
			wantRules: []string{"range"},
		},
		{
			name:      "multiple violations collected",
			items:     []Item{{Name: "", Price: 0}, {Name: "Café", Price: 2000}},
			wantRules: []string{"required", "range", "charset", "range"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateItems(tt.items)
			if len(errs) != len(tt.wantRules) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tt.wantRules))
			}
			for i, rule := range tt.wantRules {
				if errs[i].Rule != rule {
					t.Errorf("error %d rule = %q, want %q", i, errs[i].Rule, rule)
				}
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	errs := ValidateItems([]Item{{Name: "Bad!", Price: 40}})
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}

	msg := errs[0].Error()
	for _, want := range []string{"Item 1", "name", "Bad!"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	if got := FormatErrors(nil); got != "No validation errors." {
		t.Errorf("FormatErrors(nil) = %q", got)
	}

	errs := ValidateItems([]Item{{Name: "", Price: 0}})
	out := FormatErrors(errs)
	if !strings.Contains(out, "2 validation error(s)") {
		t.Errorf("FormatErrors output %q missing count", out)
	}
}
