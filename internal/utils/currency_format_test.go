package utils

import (
	"testing"

	"github.com/SscSPs/moneyparse/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	tests := []struct {
		amount    string
		precision int
		want      string
	}{
		{"12.3456", 2, "12.35"},
		{"12.3456", 0, "12"},
		{"1.5", 2, "1.50"},
		{"1.23", 2, "1.23"},
		{"0.1235", 3, "0.124"},
		{"100", 2, "100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := FormatWithCurrencyPrecision(decimal.RequireFromString(tt.amount), domain.Currency{Precision: tt.precision})
			assert.Equal(t, tt.want, got)
		})
	}
}
