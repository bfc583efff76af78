package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseError_UnwrapsToKind(t *testing.T) {
	err := apperrors.NewParseError(apperrors.ErrUnknownCurrency, "100 XYZ", "Unknown currency code: %s", "XYZ")

	assert.EqualError(t, err, "Unknown currency code: XYZ")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
	assert.NotErrorIs(t, err, apperrors.ErrFormat)

	wrapped := fmt.Errorf("symbol recognizer: %w", err)
	var pe *apperrors.ParseError
	assert.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, "100 XYZ", pe.Input)
}

func TestOverflowError(t *testing.T) {
	err := &apperrors.OverflowError{
		Value: decimal.RequireFromString("9007199254740992"),
		Limit: decimal.NewFromInt(9007199254740991),
	}

	assert.ErrorIs(t, err, apperrors.ErrOverflow)
	assert.Contains(t, err.Error(), "9007199254740992")
	assert.Contains(t, err.Error(), "maximum safe integer")
}

func TestAppError(t *testing.T) {
	inner := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to begin transaction", inner)

	assert.EqualError(t, err, "failed to begin transaction: connection reset")
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, 500, err.Code)
}
