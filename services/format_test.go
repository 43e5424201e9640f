package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"whole", "15", "15.00"},
		{"zero", "0", "0.00"},
		{"one decimal", "0.9", "0.90"},
		{"two decimals", "46.75", "46.75"},
		{"rounds half up", "1.755", "1.76"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmount(decimal.RequireFromString(tt.input))
			if got != tt.expect {
				t.Errorf("FormatAmount(%s) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatGBP_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"zero", "0", "£0.00"},
		{"small integer", "5", "£5.00"},
		{"with decimals", "42.50", "£42.50"},
		{"hundreds", "999.99", "£999.99"},
		{"thousands", "1234.56", "£1234.56"},
		{"ten thousands", "12345", "£12345.00"},
		{"millions", "1234567.89", "£1234567.89"},
		{"negative", "-100", "-£100.00"},
		{"exact thousand", "1020", "£1020.00"},
		{"rounds to pence", "0.905", "£0.91"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatGBP(decimal.RequireFromString(tt.input))
			if got != tt.expect {
				t.Errorf("FormatGBP(%s) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatPence(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"0.5", "50p"},
		{"0.75", "75p"},
		{"0.90", "90p"},
		{"15", "£15"},
		{"1.75", "£1.75"},
		{"80", "£80"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := FormatPence(decimal.RequireFromString(tt.input))
			if got != tt.expect {
				t.Errorf("FormatPence(%s) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
