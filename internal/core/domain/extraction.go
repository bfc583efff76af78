package domain

import "github.com/shopspring/decimal"

// PatternKind names the recognizer that produced an Extraction.
type PatternKind string

const (
	PatternContextualPhrase PatternKind = "contextual_phrase"
	PatternSlangTerm        PatternKind = "slang_term"
	PatternSymbol           PatternKind = "symbol"
	PatternAbbreviation     PatternKind = "abbreviation"
	PatternMagnitudeCombo   PatternKind = "magnitude_combo"
	PatternSeparatedNumber  PatternKind = "separated_number"
	PatternPlainNumber      PatternKind = "plain_number"
)

// PatternKinds lists every recognizer in extraction precedence order.
// Magnitude shorthand comes before symbols so "10k" is not read as 10 MMK.
var PatternKinds = []PatternKind{
	PatternContextualPhrase,
	PatternSlangTerm,
	PatternMagnitudeCombo,
	PatternSymbol,
	PatternAbbreviation,
	PatternSeparatedNumber,
	PatternPlainNumber,
}

// IsValid reports whether k names a known recognizer.
func (k PatternKind) IsValid() bool {
	for _, known := range PatternKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Extraction is the recognizer-independent view of a monetary match.
type Extraction struct {
	Pattern      PatternKind     `json:"pattern"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode,omitempty"` // empty for bare numbers
	Token        string          `json:"token,omitempty"`        // symbol, code, slang term or currency name as written
	Raw          string          `json:"raw"`
}
