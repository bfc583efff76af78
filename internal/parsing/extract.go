package parsing

import (
	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/core/domain"
)

// Parse runs the strict form of one recognizer.
func (p *Parser) Parse(kind domain.PatternKind, input string, hints ...string) (domain.Extraction, error) {
	switch kind {
	case domain.PatternContextualPhrase:
		m, err := p.ParseContextualPhrase(input, hints...)
		return m.Extraction(), err
	case domain.PatternSlangTerm:
		m, err := ParseSlangTerm(input)
		return m.Extraction(), err
	case domain.PatternSymbol:
		m, err := p.ParseSymbol(input, hints...)
		return m.Extraction(), err
	case domain.PatternAbbreviation:
		m, err := p.ParseAbbreviation(input)
		return m.Extraction(), err
	case domain.PatternMagnitudeCombo:
		m, err := ParseMagnitudeCombo(input)
		return m.Extraction(), err
	case domain.PatternSeparatedNumber:
		m, err := ParseSeparatedNumber(input)
		return m.extraction(kind), err
	case domain.PatternPlainNumber:
		m, err := ParsePlainNumber(input)
		return m.extraction(kind), err
	default:
		return domain.Extraction{}, apperrors.NewParseError(apperrors.ErrInput, input, "Unknown pattern: %q", kind)
	}
}

// Match runs the tolerant form of one recognizer.
func (p *Parser) Match(kind domain.PatternKind, text string, hints ...string) (domain.Extraction, bool) {
	switch kind {
	case domain.PatternContextualPhrase:
		m, ok := p.MatchContextualPhrase(text, hints...)
		return m.Extraction(), ok
	case domain.PatternSlangTerm:
		m, ok := MatchSlangTerm(text)
		return m.Extraction(), ok
	case domain.PatternSymbol:
		m, ok := p.MatchSymbol(text, hints...)
		return m.Extraction(), ok
	case domain.PatternAbbreviation:
		m, ok := p.MatchAbbreviation(text)
		return m.Extraction(), ok
	case domain.PatternMagnitudeCombo:
		m, ok := MatchMagnitudeCombo(text)
		return m.Extraction(), ok
	case domain.PatternSeparatedNumber:
		m, ok := MatchSeparatedNumber(text)
		return m.extraction(kind), ok
	case domain.PatternPlainNumber:
		m, ok := MatchPlainNumber(text)
		return m.extraction(kind), ok
	default:
		return domain.Extraction{}, false
	}
}

// Extract tries the tolerant recognizers in order and returns the first hit.
// With no kinds given it uses domain.PatternKinds.
func (p *Parser) Extract(text, hint string, kinds ...domain.PatternKind) (domain.Extraction, bool) {
	if len(kinds) == 0 {
		kinds = domain.PatternKinds
	}
	for _, kind := range kinds {
		if e, ok := p.Match(kind, text, hint); ok {
			return e, true
		}
	}
	return domain.Extraction{}, false
}

// MatchAll runs every tolerant recognizer and returns the hits by pattern.
func (p *Parser) MatchAll(text, hint string) map[domain.PatternKind]domain.Extraction {
	hits := make(map[domain.PatternKind]domain.Extraction)
	for _, kind := range domain.PatternKinds {
		if e, ok := p.Match(kind, text, hint); ok {
			hits[kind] = e
		}
	}
	return hits
}
