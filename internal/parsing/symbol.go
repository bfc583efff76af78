package parsing

import (
	"strings"

	"github.com/SscSPs/moneyparse/internal/apperrors"
)

// ParseSymbol extracts the first "<symbol><amount>" or "<amount><symbol>" pair
// from input. When the symbol is shared by several currencies, the optional
// hint picks one of them; otherwise the table's first candidate is used.
func (p *Parser) ParseSymbol(input string, hints ...string) (SymbolMatch, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return SymbolMatch{}, apperrors.NewParseError(apperrors.ErrInput, input, "Input must be a non-empty string")
	}

	re := p.symbolRe
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return SymbolMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "No currency symbol pattern found")
	}

	symbol := submatch(s, loc, re.SubexpIndex("before"))
	amount := submatch(s, loc, re.SubexpIndex("amountAfter"))
	if symbol == "" {
		symbol = submatch(s, loc, re.SubexpIndex("after"))
		amount = submatch(s, loc, re.SubexpIndex("amountBefore"))
	}

	candidates, ok := p.symbols.Lookup(symbol)
	if !ok {
		return SymbolMatch{}, apperrors.NewParseError(apperrors.ErrUnknownCurrency, input, "Unknown currency symbol: %s", symbol)
	}
	code := resolveCandidates(candidates, firstHint(hints))
	if _, ok := p.catalog.ByCode(code); !ok {
		return SymbolMatch{}, apperrors.NewParseError(apperrors.ErrUnknownCurrency, input, "Unknown currency code: %s", code)
	}

	value, err := parseAmount(input, amount)
	if err != nil {
		return SymbolMatch{}, err
	}

	return SymbolMatch{
		Amount:       value,
		CurrencyCode: code,
		Symbol:       symbol,
		Raw:          s[loc[0]:loc[1]],
	}, nil
}

// MatchSymbol is the tolerant form of ParseSymbol.
func (p *Parser) MatchSymbol(text string, hints ...string) (SymbolMatch, bool) {
	m, err := p.ParseSymbol(text, hints...)
	if err != nil {
		return SymbolMatch{}, false
	}
	return m, true
}

// submatch returns the text of group i, or "" when the group did not take part.
func submatch(s string, loc []int, i int) string {
	if i < 0 || 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return ""
	}
	return s[loc[2*i]:loc[2*i+1]]
}
