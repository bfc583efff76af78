package parsing

import (
	"github.com/SscSPs/moneyparse/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Raw is always the literal substring of the input that was consumed.

// NumberMatch is a bare number from the PlainNumber or SeparatedNumber recognizer.
type NumberMatch struct {
	Value decimal.Decimal
	Raw   string
}

// SymbolMatch is an amount written next to a currency symbol.
type SymbolMatch struct {
	Amount       decimal.Decimal
	CurrencyCode string
	Symbol       string
	Raw          string
}

// AbbreviationMatch is an amount written next to an ISO code.
type AbbreviationMatch struct {
	Amount       decimal.Decimal
	CurrencyCode string
	Abbreviation string
	Raw          string
}

// MagnitudeMatch is a number with a k/m/b/bn suffix.
type MagnitudeMatch struct {
	Value  decimal.Decimal
	Suffix string
	Raw    string
}

// SlangMatch is a quantity of a slang money term such as "three fivers".
type SlangMatch struct {
	Value    decimal.Decimal
	Quantity decimal.Decimal
	Currency string
	Term     string
	Raw      string
}

// PhraseMatch is a worded money phrase such as "a dollar and 23 cents".
type PhraseMatch struct {
	Value      decimal.Decimal
	Currency   string
	Designator string
	Raw        string
}

func (m NumberMatch) extraction(kind domain.PatternKind) domain.Extraction {
	return domain.Extraction{Pattern: kind, Amount: m.Value, Raw: m.Raw}
}

// Extraction converts the match into the recognizer-independent form.
func (m SymbolMatch) Extraction() domain.Extraction {
	return domain.Extraction{
		Pattern:      domain.PatternSymbol,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Token:        m.Symbol,
		Raw:          m.Raw,
	}
}

// Extraction converts the match into the recognizer-independent form.
func (m AbbreviationMatch) Extraction() domain.Extraction {
	return domain.Extraction{
		Pattern:      domain.PatternAbbreviation,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Token:        m.Abbreviation,
		Raw:          m.Raw,
	}
}

// Extraction converts the match into the recognizer-independent form.
func (m MagnitudeMatch) Extraction() domain.Extraction {
	return domain.Extraction{
		Pattern: domain.PatternMagnitudeCombo,
		Amount:  m.Value,
		Token:   m.Suffix,
		Raw:     m.Raw,
	}
}

// Extraction converts the match into the recognizer-independent form.
func (m SlangMatch) Extraction() domain.Extraction {
	return domain.Extraction{
		Pattern:      domain.PatternSlangTerm,
		Amount:       m.Value,
		CurrencyCode: m.Currency,
		Token:        m.Term,
		Raw:          m.Raw,
	}
}

// Extraction converts the match into the recognizer-independent form.
func (m PhraseMatch) Extraction() domain.Extraction {
	return domain.Extraction{
		Pattern:      domain.PatternContextualPhrase,
		Amount:       m.Value,
		CurrencyCode: m.Currency,
		Token:        m.Designator,
		Raw:          m.Raw,
	}
}
