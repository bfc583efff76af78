package parsing_test

import (
	"testing"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMagnitudeCombo(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		suffix string
	}{
		{"10k", "10000", "k"},
		{"2.5m", "2500000", "m"},
		{"2bn", "2000000000", "bn"},
		{"3b", "3000000000", "b"},
		{"1.5K", "1500", "k"},
		{"  7M ", "7000000", "m"},
		{"0.001k", "1", "k"},
		{"9007199254740.991k", "9007199254740991", "k"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsing.ParseMagnitudeCombo(tt.input)
			require.NoError(t, err)
			assertDecimal(t, tt.want, got.Value)
			assert.Equal(t, tt.suffix, got.Suffix)
		})
	}
}

func TestParseMagnitudeCombo_Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
		msg   string
	}{
		{"", apperrors.ErrInput, ""},
		{"10x", apperrors.ErrFormat, "Unsupported magnitude suffix"},
		{"10kb", apperrors.ErrFormat, "Unsupported magnitude suffix"},
		{"10", apperrors.ErrFormat, "Invalid numeric-word combo format"},
		{"10 k", apperrors.ErrFormat, "Invalid numeric-word combo format"},
		{"1,000k", apperrors.ErrFormat, "Invalid numeric-word combo format"},
		{"k10", apperrors.ErrFormat, "Invalid numeric-word combo format"},
		{"9007199254740.992k", apperrors.ErrOverflow, ""},
		{"10000000b", apperrors.ErrOverflow, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parsing.ParseMagnitudeCombo(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestMatchMagnitudeCombo(t *testing.T) {
	got, ok := parsing.MatchMagnitudeCombo("I paid 10k for it")
	require.True(t, ok)
	assertDecimal(t, "10000", got.Value)
	assert.Equal(t, "10k", got.Raw)

	got, ok = parsing.MatchMagnitudeCombo("raised 1.2BN last year")
	require.True(t, ok)
	assertDecimal(t, "1200000000", got.Value)
	assert.Equal(t, "bn", got.Suffix)

	for _, text := range []string{"10kg of rice", "no numbers", "k10", "9007199254741k"} {
		_, ok := parsing.MatchMagnitudeCombo(text)
		assert.False(t, ok, text)
	}
}
