package format

import "testing"

func TestYen(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "¥0"},
		{850, "¥850"},
		{67150, "¥67,150"},
		{1368235, "¥1,368,235"},
		{-2500, "-¥2,500"},
	}
	for _, tt := range tests {
		if got := Yen(tt.input); got != tt.expected {
			t.Errorf("Yen(%d) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestAmount(t *testing.T) {
	if got := Amount(495000); got != "495,000" {
		t.Fatalf("expected 495,000, got %q", got)
	}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1, "1"},
		{7.92, "7.92"},
		{1.5, "1.5"},
		{1234, "1,234"},
	}
	for _, tt := range tests {
		if got := Quantity(tt.input); got != tt.expected {
			t.Errorf("Quantity(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
