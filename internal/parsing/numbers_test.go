package parsing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/parsing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestCheckOverflow_Boundary(t *testing.T) {
	bound := decimal.NewFromInt(parsing.MaxSafeInteger)

	v, err := parsing.CheckOverflow(bound)
	require.NoError(t, err)
	assert.True(t, bound.Equal(v))

	_, err = parsing.CheckOverflow(bound.Add(decimal.NewFromInt(1)))
	require.Error(t, err)
	var oe *apperrors.OverflowError
	require.True(t, errors.As(err, &oe))
	assertDecimal(t, "9007199254740992", oe.Value)

	_, err = parsing.CheckOverflow(decimal.RequireFromString("9007199254740991.5"))
	assert.ErrorIs(t, err, apperrors.ErrOverflow, "fractions above the bound are compared exactly")
}

func TestParsePlainNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
		raw   string
	}{
		{"123", "123", "123"},
		{"  42  ", "42", "42"},
		{"007", "7", "007"},
		{"0", "0", "0"},
		{"9007199254740991", "9007199254740991", "9007199254740991"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsing.ParsePlainNumber(tt.input)
			require.NoError(t, err)
			assertDecimal(t, tt.want, got.Value)
			assert.Equal(t, tt.raw, got.Raw)
		})
	}
}

func TestParsePlainNumber_Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
	}{
		{"", apperrors.ErrInput},
		{"   ", apperrors.ErrInput},
		{"12.5", apperrors.ErrFormat},
		{"-5", apperrors.ErrFormat},
		{"1,000", apperrors.ErrFormat},
		{"abc", apperrors.ErrFormat},
		{"12a", apperrors.ErrFormat},
		{"9007199254740992", apperrors.ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parsing.ParsePlainNumber(tt.input)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestParsePlainNumber_TrimAndLeadingZeros(t *testing.T) {
	for _, s := range []string{"1", "42", "1000", "123456789"} {
		base, err := parsing.ParsePlainNumber(s)
		require.NoError(t, err)

		padded, err := parsing.ParsePlainNumber("  " + s + "\t")
		require.NoError(t, err)
		assert.True(t, base.Value.Equal(padded.Value))

		zeros, err := parsing.ParsePlainNumber("000" + s)
		require.NoError(t, err)
		assert.True(t, base.Value.Equal(zeros.Value))
	}
}

func TestMatchPlainNumber(t *testing.T) {
	m, ok := parsing.MatchPlainNumber("I have 42 apples")
	require.True(t, ok)
	assertDecimal(t, "42", m.Value)
	assert.Equal(t, "42", m.Raw)

	m, ok = parsing.MatchPlainNumber("$12.50")
	require.True(t, ok)
	assertDecimal(t, "12", m.Value)

	_, ok = parsing.MatchPlainNumber("abc123def")
	assert.False(t, ok)
	_, ok = parsing.MatchPlainNumber("no digits here")
	assert.False(t, ok)
	_, ok = parsing.MatchPlainNumber("Value: 9007199254740992")
	assert.False(t, ok, "overflow is reported as not found")

	m, ok = parsing.MatchPlainNumber("Value: 9007199254740991")
	require.True(t, ok)
	assertDecimal(t, "9007199254740991", m.Value)
}

func TestParseSeparatedNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1,234", "1234"},
		{"1,234.56", "1234.56"},
		{"999,999,999.99", "999999999.99"},
		{"12,345,678", "12345678"},
		{"1234.5", "1234.5"},
		{"1234", "1234"},
		{"0.5", "0.5"},
		{" 100 ", "100"},
		{"9,007,199,254,740,991", "9007199254740991"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsing.ParseSeparatedNumber(tt.input)
			require.NoError(t, err)
			assertDecimal(t, tt.want, got.Value)

			stripped := decimal.RequireFromString(strings.ReplaceAll(strings.TrimSpace(tt.input), ",", ""))
			assert.True(t, stripped.Equal(got.Value), "comma stripping yields the same value")
		})
	}
}

func TestParseSeparatedNumber_Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
	}{
		{"", apperrors.ErrInput},
		{"1,23", apperrors.ErrFormat},
		{"12,3456", apperrors.ErrFormat},
		{"1234,567", apperrors.ErrFormat},
		{",123", apperrors.ErrFormat},
		{"123,", apperrors.ErrFormat},
		{"1.2.3", apperrors.ErrFormat},
		{"-1,000", apperrors.ErrFormat},
		{"$1,000", apperrors.ErrFormat},
		{"1 000", apperrors.ErrFormat},
		{"1.", apperrors.ErrFormat},
		{"9,007,199,254,740,992", apperrors.ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parsing.ParseSeparatedNumber(tt.input)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestMatchSeparatedNumber(t *testing.T) {
	m, ok := parsing.MatchSeparatedNumber("Total: 1,234.56 due")
	require.True(t, ok)
	assertDecimal(t, "1234.56", m.Value)
	assert.Equal(t, "1,234.56", m.Raw)

	m, ok = parsing.MatchSeparatedNumber("costs 12.5 today")
	require.True(t, ok)
	assertDecimal(t, "12.5", m.Value)

	for _, text := range []string{"abc1,234def", "Value: 1,23", "Price: ,123", "plain 1234", ""} {
		_, ok := parsing.MatchSeparatedNumber(text)
		assert.False(t, ok, text)
	}
}
