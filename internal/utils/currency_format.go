package utils

import (
	"github.com/SscSPs/moneyparse/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the minor unit digits of a currency.
// Example: 12.3456 with USD (precision 2) returns "12.35"
// Example: 12.3456 with JPY (precision 0) returns "12"
// Example: 1.5 with USD returns "1.50"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.Precision)
}

// FormatWithPrecision formats an amount with exactly precision fraction digits.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
