package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/core/domain"
	"github.com/SscSPs/moneyparse/internal/parsing"
	"github.com/SscSPs/moneyparse/internal/pipeline"
	"github.com/SscSPs/moneyparse/internal/platform/metrics"
)

const (
	modeStrict   = "strict"
	modeTolerant = "tolerant"
)

type parseService struct {
	BaseService
	parser          *parsing.Parser
	pipeline        *pipeline.Pipeline
	metrics         *metrics.Metrics
	maxInputLength  int
	defaultCurrency string
}

// ParseServiceOption configures the parse service.
type ParseServiceOption func(*parseService)

// WithParseMetrics records recognizer and pipeline metrics.
func WithParseMetrics(m *metrics.Metrics) ParseServiceOption {
	return func(s *parseService) {
		s.metrics = m
	}
}

// WithMaxInputLength rejects inputs longer than n runes. Zero means unbounded.
func WithMaxInputLength(n int) ParseServiceOption {
	return func(s *parseService) {
		s.maxInputLength = n
	}
}

// WithDefaultCurrency sets the hint used when a request carries none.
func WithDefaultCurrency(code string) ParseServiceOption {
	return func(s *parseService) {
		s.defaultCurrency = strings.ToUpper(strings.TrimSpace(code))
	}
}

// WithPipeline replaces the default detection pipeline.
func WithPipeline(p *pipeline.Pipeline) ParseServiceOption {
	return func(s *parseService) {
		s.pipeline = p
	}
}

// NewParseService creates the extraction service. The default pipeline runs
// the currency, numeric and matches steps followed by every recognizer.
func NewParseService(parser *parsing.Parser, opts ...ParseServiceOption) *parseService {
	s := &parseService{parser: parser}
	for _, opt := range opts {
		opt(s)
	}
	if s.pipeline == nil {
		s.pipeline = pipeline.Default(parser.Catalog()).AddStep(pipeline.PatternStep(parser))
	}
	return s
}

func (s *parseService) validateInput(text string) error {
	if s.maxInputLength > 0 && utf8.RuneCountInString(text) > s.maxInputLength {
		return fmt.Errorf("%w: input longer than %d characters", apperrors.ErrValidation, s.maxInputLength)
	}
	return nil
}

func (s *parseService) hint(hint string) string {
	if hint == "" {
		return s.defaultCurrency
	}
	return strings.ToUpper(hint)
}

func (s *parseService) record(kind domain.PatternKind, mode, outcome string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordRecognizer(string(kind), mode, outcome, time.Since(start))
	}
}

func (s *parseService) Extract(ctx context.Context, text, hint string, kinds []domain.PatternKind) (*domain.Extraction, error) {
	if err := s.validateInput(text); err != nil {
		return nil, err
	}
	for _, kind := range kinds {
		if !kind.IsValid() {
			return nil, fmt.Errorf("%w: unknown pattern %q", apperrors.ErrValidation, kind)
		}
	}
	if len(kinds) == 0 {
		kinds = domain.PatternKinds
	}
	hint = s.hint(hint)

	for _, kind := range kinds {
		start := time.Now()
		e, ok := s.parser.Match(kind, text, hint)
		if !ok {
			s.record(kind, modeTolerant, metrics.OutcomeNotFound, start)
			continue
		}
		s.record(kind, modeTolerant, metrics.OutcomeMatched, start)
		s.LogDebug(ctx, "Amount extracted",
			slog.String("pattern", string(kind)),
			slog.String("amount", e.Amount.String()),
			slog.String("currency_code", e.CurrencyCode))
		return &e, nil
	}

	return nil, fmt.Errorf("no monetary amount found: %w", apperrors.ErrNotFound)
}

func (s *parseService) ParsePattern(ctx context.Context, kind domain.PatternKind, text, hint string) (*domain.Extraction, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown pattern %q", apperrors.ErrValidation, kind)
	}
	if err := s.validateInput(text); err != nil {
		return nil, err
	}

	start := time.Now()
	e, err := s.parser.Parse(kind, text, s.hint(hint))
	if err != nil {
		s.record(kind, modeStrict, metrics.OutcomeError, start)
		var overflow *apperrors.OverflowError
		if errors.As(err, &overflow) {
			s.LogInfo(ctx, "Parsed value exceeds the safe integer range", slog.String("pattern", string(kind)))
		} else {
			s.LogDebug(ctx, "Strict parse rejected input", slog.String("pattern", string(kind)), slog.String("error", err.Error()))
		}
		return nil, err
	}
	s.record(kind, modeStrict, metrics.OutcomeMatched, start)
	return &e, nil
}

func (s *parseService) RunPipeline(ctx context.Context, text string) (pipeline.Context, error) {
	if err := s.validateInput(text); err != nil {
		return pipeline.Context{}, err
	}
	result := s.pipeline.Run(text)
	if s.metrics != nil {
		s.metrics.RecordPipelineRun()
	}
	s.LogDebug(ctx, "Pipeline finished", slog.String("currency", result.Currency), slog.Int("matches", len(result.Matches)))
	return result, nil
}
