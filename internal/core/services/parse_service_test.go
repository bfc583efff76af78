package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/catalog"
	"github.com/SscSPs/moneyparse/internal/core/domain"
	"github.com/SscSPs/moneyparse/internal/core/services"
	"github.com/SscSPs/moneyparse/internal/parsing"
	"github.com/SscSPs/moneyparse/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseService_Extract(t *testing.T) {
	svc := services.NewParseService(parsing.New(catalog.Default()))
	ctx := context.Background()

	got, err := svc.Extract(ctx, "Paid $10", "", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.PatternSymbol, got.Pattern)
	assert.Equal(t, "USD", got.CurrencyCode)
	assert.True(t, decimal.NewFromInt(10).Equal(got.Amount))

	got, err = svc.Extract(ctx, "Paid $10", "cad", nil)
	require.NoError(t, err)
	assert.Equal(t, "CAD", got.CurrencyCode, "hints are case insensitive")

	got, err = svc.Extract(ctx, "Paid $10", "", []domain.PatternKind{domain.PatternPlainNumber})
	require.NoError(t, err)
	assert.Equal(t, domain.PatternPlainNumber, got.Pattern)

	_, err = svc.Extract(ctx, "hello world", "", nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Extract(ctx, "Paid $10", "", []domain.PatternKind{"bogus"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseService_DefaultCurrency(t *testing.T) {
	svc := services.NewParseService(parsing.New(catalog.Default()), services.WithDefaultCurrency(" aud "))

	got, err := svc.Extract(context.Background(), "Paid $10", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "AUD", got.CurrencyCode)

	got, err = svc.Extract(context.Background(), "Paid $10", "NZD", nil)
	require.NoError(t, err)
	assert.Equal(t, "NZD", got.CurrencyCode, "an explicit hint wins over the default")
}

func TestParseService_MaxInputLength(t *testing.T) {
	svc := services.NewParseService(parsing.New(catalog.Default()), services.WithMaxInputLength(10))
	ctx := context.Background()
	long := strings.Repeat("€", 11)

	_, err := svc.Extract(ctx, long, "", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ParsePattern(ctx, domain.PatternPlainNumber, long, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.RunPipeline(ctx, long)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Extract(ctx, strings.Repeat("€", 9)+"1", "", nil)
	assert.NotErrorIs(t, err, apperrors.ErrValidation, "the limit counts characters, not bytes")
}

func TestParseService_ParsePattern(t *testing.T) {
	svc := services.NewParseService(parsing.New(catalog.Default()))
	ctx := context.Background()

	got, err := svc.ParsePattern(ctx, domain.PatternSeparatedNumber, "1,000", "")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(got.Amount))

	_, err = svc.ParsePattern(ctx, domain.PatternPlainNumber, "1,000", "")
	assert.ErrorIs(t, err, apperrors.ErrFormat)

	_, err = svc.ParsePattern(ctx, domain.PatternPlainNumber, "9007199254740992", "")
	var oe *apperrors.OverflowError
	assert.ErrorAs(t, err, &oe)

	_, err = svc.ParsePattern(ctx, domain.PatternKind("bogus"), "10", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseService_RunPipeline(t *testing.T) {
	svc := services.NewParseService(parsing.New(catalog.Default()))

	got, err := svc.RunPipeline(context.Background(), "I paid $1,200.50 today")
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Currency)
	assert.Contains(t, got.Matches, string(domain.PatternSymbol))
	assert.Contains(t, got.Matches, string(domain.PatternSeparatedNumber))
}

func TestParseService_Metrics(t *testing.T) {
	m := metrics.NewMetrics()
	svc := services.NewParseService(parsing.New(catalog.Default()), services.WithParseMetrics(m))
	ctx := context.Background()

	matched := m.RecognizerCallsTotal.WithLabelValues(string(domain.PatternSymbol), "tolerant", metrics.OutcomeMatched)
	strictErrors := m.RecognizerCallsTotal.WithLabelValues(string(domain.PatternPlainNumber), "strict", metrics.OutcomeError)
	beforeMatched := testutil.ToFloat64(matched)
	beforeErrors := testutil.ToFloat64(strictErrors)
	beforeRuns := testutil.ToFloat64(m.PipelineRunsTotal)

	_, err := svc.Extract(ctx, "Paid $10", "", []domain.PatternKind{domain.PatternSymbol})
	require.NoError(t, err)
	_, err = svc.ParsePattern(ctx, domain.PatternPlainNumber, "abc", "")
	require.Error(t, err)
	_, err = svc.RunPipeline(ctx, "Paid $10")
	require.NoError(t, err)

	assert.Equal(t, beforeMatched+1, testutil.ToFloat64(matched))
	assert.Equal(t, beforeErrors+1, testutil.ToFloat64(strictErrors))
	assert.Equal(t, beforeRuns+1, testutil.ToFloat64(m.PipelineRunsTotal))
}
