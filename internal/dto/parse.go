package dto

import (
	"github.com/SscSPs/moneyparse/internal/core/domain"
	"github.com/SscSPs/moneyparse/internal/pipeline"
	"github.com/SscSPs/moneyparse/internal/utils"
)

// ParseRequest is the body of the extraction endpoints.
type ParseRequest struct {
	Text string `json:"text" binding:"required"`
	// DefaultCurrency picks among the candidates of an ambiguous symbol or name.
	DefaultCurrency string `json:"defaultCurrency" binding:"omitempty,known_currency"`
	// Patterns restricts and orders the recognizers tried by /parse.
	Patterns []domain.PatternKind `json:"patterns" binding:"omitempty,dive,pattern_kind"`
}

// PipelineRequest is the body of the pipeline endpoint.
type PipelineRequest struct {
	Text string `json:"text" binding:"required"`
}

// ExtractionResponse is a single recognized amount.
type ExtractionResponse struct {
	Pattern      domain.PatternKind `json:"pattern"`
	Amount       string             `json:"amount"`
	CurrencyCode string             `json:"currencyCode,omitempty"`
	// Formatted is the amount rounded to the currency's minor unit digits.
	Formatted string `json:"formatted,omitempty"`
	Token     string `json:"token,omitempty"`
	Raw       string `json:"raw"`
}

// PipelineResponse is the context produced by a pipeline run.
type PipelineResponse struct {
	Original string                        `json:"original"`
	Currency string                        `json:"currency,omitempty"`
	Amount   *string                       `json:"amount"`
	Matches  map[string]ExtractionResponse `json:"matches"`
}

// ToExtractionResponse converts an extraction; currency formats the amount when known.
func ToExtractionResponse(e domain.Extraction, currency *domain.Currency) ExtractionResponse {
	res := ExtractionResponse{
		Pattern:      e.Pattern,
		Amount:       e.Amount.String(),
		CurrencyCode: e.CurrencyCode,
		Token:        e.Token,
		Raw:          e.Raw,
	}
	if currency != nil {
		res.Formatted = utils.FormatWithCurrencyPrecision(e.Amount, *currency)
	}
	return res
}

// ToPipelineResponse converts a pipeline context. Matches that are not
// extractions are dropped.
func ToPipelineResponse(ctx pipeline.Context) PipelineResponse {
	res := PipelineResponse{
		Original: ctx.Original,
		Currency: ctx.Currency,
		Matches:  make(map[string]ExtractionResponse, len(ctx.Matches)),
	}
	if ctx.Amount.Valid {
		s := ctx.Amount.Decimal.String()
		res.Amount = &s
	}
	for k, v := range ctx.Matches {
		if e, ok := v.(domain.Extraction); ok {
			res.Matches[k] = ToExtractionResponse(e, nil)
		}
	}
	return res
}
