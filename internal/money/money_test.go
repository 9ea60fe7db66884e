package money

import (
	"encoding/json"
	"testing"
)

func TestAmountMarshalJSON(t *testing.T) {
	tests := []struct {
		value    int64
		currency string
		want     string
	}{
		{40, "INR", "40.00"},
		{1250, "INR", "1250.00"},
		{40, "JPY", "40"},
		{40, "KWD", "40.000"},
		{40, "", "40.00"},
		{40, "NOPE", "40.00"},
	}

	for _, tt := range tests {
		a := NewAmount(tt.value, tt.currency)
		b, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if got := string(b); got != tt.want {
			t.Errorf("Marshal(%d, %q) = %q, want %q", tt.value, tt.currency, got, tt.want)
		}
	}
}

func TestDecimalPlaces(t *testing.T) {
	tests := []struct {
		currency string
		want     int
	}{
		{"INR", 2},
		{"inr", 2},
		{"JPY", 0},
		{"KWD", 3},
		{"", 2},
		{"UNKNOWN", 2},
	}

	for _, tt := range tests {
		if got := DecimalPlaces(tt.currency); got != tt.want {
			t.Errorf("DecimalPlaces(%q) = %d, want %d", tt.currency, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	if got := Display(1250, "INR"); got != "₹1,250.00" {
		t.Errorf("Display(1250, INR) = %q", got)
	}
	// Empty codes fall back to the default currency.
	if got, want := Display(40, ""), Display(40, DefaultCurrency); got != want {
		t.Errorf("Display(40, \"\") = %q, want %q", got, want)
	}
}
