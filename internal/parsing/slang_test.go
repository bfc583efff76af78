package parsing_test

import (
	"testing"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlangTerm(t *testing.T) {
	tests := []struct {
		input    string
		value    string
		quantity string
		currency string
		term     string
		raw      string
	}{
		{"three fivers", "15", "3", "GBP", "fivers", "three fivers"},
		{"a buck", "1", "1", "USD", "buck", "a buck"},
		{"buck", "1", "1", "USD", "buck", "buck"},
		{"Two Tenners", "20", "2", "GBP", "Tenners", "Two Tenners"},
		{"2.5 bucks", "2.5", "2.5", "USD", "bucks", "2.5 bucks"},
		{"twenty five quid", "25", "25", "GBP", "quid", "twenty five quid"},
		{"one hundred bucks", "100", "100", "USD", "bucks", "one hundred bucks"},
		{"an tenner", "10", "1", "GBP", "tenner", "an tenner"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsing.ParseSlangTerm(tt.input)
			require.NoError(t, err)
			assertDecimal(t, tt.value, got.Value)
			assertDecimal(t, tt.quantity, got.Quantity)
			assert.Equal(t, tt.currency, got.Currency)
			assert.Equal(t, tt.term, got.Term)
			assert.Equal(t, tt.raw, got.Raw)
		})
	}
}

func TestParseSlangTerm_Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
		msg   string
	}{
		{"", apperrors.ErrInput, ""},
		{"five dollars", apperrors.ErrFormat, "No slang currency term found"},
		{"abc bucks", apperrors.ErrFormat, "Invalid quantity"},
		{"I paid 5 bucks", apperrors.ErrFormat, "Invalid quantity"},
		{"10000000000000000 bucks", apperrors.ErrOverflow, ""},
		{"900719925474100 tenners", apperrors.ErrOverflow, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parsing.ParseSlangTerm(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestMatchSlangTerm(t *testing.T) {
	got, ok := parsing.MatchSlangTerm("I paid 5 bucks for lunch")
	require.True(t, ok)
	assertDecimal(t, "5", got.Value)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "5 bucks", got.Raw)

	got, ok = parsing.MatchSlangTerm("grab me a tenner")
	require.True(t, ok)
	assertDecimal(t, "10", got.Value)
	assert.Equal(t, "a tenner", got.Raw)

	got, ok = parsing.MatchSlangTerm("Lent him three fivers yesterday")
	require.True(t, ok)
	assertDecimal(t, "15", got.Value)

	got, ok = parsing.MatchSlangTerm("I need twenty-five bucks")
	require.True(t, ok)
	assertDecimal(t, "25", got.Value)
	assert.Equal(t, "twenty-five bucks", got.Raw)

	got, ok = parsing.MatchSlangTerm("owed her Ninety-Nine quid")
	require.True(t, ok)
	assertDecimal(t, "99", got.Value)
	assert.Equal(t, "GBP", got.Currency)

	for _, text := range []string{"no slang here", "buckshot", "10000000000000000 bucks"} {
		_, ok := parsing.MatchSlangTerm(text)
		assert.False(t, ok, text)
	}
}

func TestLookupSlang(t *testing.T) {
	u, ok := parsing.LookupSlang("QUID")
	require.True(t, ok)
	assert.Equal(t, "GBP", u.Currency)
	assertDecimal(t, "1", u.Value)

	_, ok = parsing.LookupSlang("loonie")
	assert.False(t, ok)
}
