package cafe

import "testing"

func TestFormatPHP(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₱0.00"},
		{270, "₱270.00"},
		{1234.5, "₱1,234.50"},
		{1000000, "₱1,000,000.00"},
		{99.999, "₱100.00"},
	}

	for _, tt := range tests {
		if got := FormatPHP(tt.amount); got != tt.want {
			t.Errorf("FormatPHP(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
