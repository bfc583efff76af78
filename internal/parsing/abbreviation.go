package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/SscSPs/moneyparse/internal/apperrors"
)

// codePattern is the catalog-generated code alternation, tagged with the
// catalog version it was built from.
type codePattern struct {
	version uint64
	re      *regexp.Regexp
}

// codeRe returns the code alternation for the current catalog, rebuilding it
// on first use after the catalog version changes. It is nil for an empty catalog.
func (p *Parser) codeRe() *regexp.Regexp {
	v := p.catalog.Version()
	if cp := p.codes.Load(); cp != nil && cp.version == v {
		return cp.re
	}
	cp := &codePattern{version: v, re: compileCodePattern(p.catalog)}
	p.codes.Store(cp)
	return cp.re
}

func compileCodePattern(c Catalog) *regexp.Regexp {
	all := c.All()
	codes := make([]string, 0, len(all))
	for _, cur := range all {
		if cur.CurrencyCode != "" {
			codes = append(codes, cur.CurrencyCode)
		}
	}
	if len(codes) == 0 {
		return nil
	}
	sort.SliceStable(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	alt := alternation(codes)
	return regexp.MustCompile(`(?i)(?:(?P<before>` + alt + `)\s+(?P<amountAfter>` + amountPattern + `)` +
		`|(?P<amountBefore>` + amountPattern + `)\s+(?P<after>` + alt + `))`)
}

// ParseAbbreviation extracts the first "<code> <amount>" or "<amount> <code>"
// pair, where code is any ISO code in the catalog.
func (p *Parser) ParseAbbreviation(input string) (AbbreviationMatch, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return AbbreviationMatch{}, apperrors.NewParseError(apperrors.ErrInput, input, "Input must be a non-empty string")
	}

	re := p.codeRe()
	if re == nil {
		return AbbreviationMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "No currency abbreviation pattern found")
	}
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return AbbreviationMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "No currency abbreviation pattern found")
	}

	abbr := submatch(s, loc, re.SubexpIndex("before"))
	amount := submatch(s, loc, re.SubexpIndex("amountAfter"))
	if abbr == "" {
		abbr = submatch(s, loc, re.SubexpIndex("after"))
		amount = submatch(s, loc, re.SubexpIndex("amountBefore"))
	}

	code := strings.ToUpper(abbr)
	if _, ok := p.catalog.ByCode(code); !ok {
		return AbbreviationMatch{}, apperrors.NewParseError(apperrors.ErrUnknownCurrency, input, "Unknown currency code: %s", code)
	}

	value, err := parseAmount(input, amount)
	if err != nil {
		return AbbreviationMatch{}, err
	}

	return AbbreviationMatch{
		Amount:       value,
		CurrencyCode: code,
		Abbreviation: abbr,
		Raw:          s[loc[0]:loc[1]],
	}, nil
}

// MatchAbbreviation is the tolerant form of ParseAbbreviation.
func (p *Parser) MatchAbbreviation(text string) (AbbreviationMatch, bool) {
	m, err := p.ParseAbbreviation(text)
	if err != nil {
		return AbbreviationMatch{}, false
	}
	return m, true
}
