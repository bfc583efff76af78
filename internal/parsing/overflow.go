package parsing

import (
	"strings"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxSafeInteger is the largest integer a double can hold exactly (2^53-1).
// It bounds every recognized amount.
const MaxSafeInteger int64 = 1<<53 - 1

var maxSafe = decimal.NewFromInt(MaxSafeInteger)

// CheckOverflow returns v unchanged, or an *apperrors.OverflowError when v is
// above MaxSafeInteger. The bound itself is accepted. Decimal values are
// compared exactly, so no precision is lost near the bound.
func CheckOverflow(v decimal.Decimal) (decimal.Decimal, error) {
	if v.GreaterThan(maxSafe) {
		return decimal.Zero, &apperrors.OverflowError{Value: v, Limit: maxSafe}
	}
	return v, nil
}

// parseAmount converts a grammar-checked numeral, commas allowed, into a
// bounded decimal.
func parseAmount(input, numeral string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.ReplaceAll(numeral, ",", ""))
	if err != nil {
		return decimal.Zero, apperrors.NewParseError(apperrors.ErrFormat, input, "Invalid number: %s", numeral)
	}
	return CheckOverflow(v)
}
