package services

import (
	"context"

	"github.com/SscSPs/moneyparse/internal/core/domain"
	"github.com/SscSPs/moneyparse/internal/pipeline"
)

// ExtractorSvc finds amounts in free-form text.
type ExtractorSvc interface {
	// Extract runs the tolerant recognizers in order and returns the first hit.
	// An empty kinds list means every recognizer in default precedence.
	Extract(ctx context.Context, text, hint string, kinds []domain.PatternKind) (*domain.Extraction, error)

	// ParsePattern runs the strict form of a single recognizer.
	ParsePattern(ctx context.Context, kind domain.PatternKind, text, hint string) (*domain.Extraction, error)
}

// PipelineSvc runs the detection pipeline.
type PipelineSvc interface {
	// RunPipeline runs every pipeline step over text and returns the final context.
	RunPipeline(ctx context.Context, text string) (pipeline.Context, error)
}

// ParseSvcFacade combines all parsing service interfaces
type ParseSvcFacade interface {
	ExtractorSvc
	PipelineSvc
}
