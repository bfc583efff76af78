package parsing

import (
	"regexp"
	"strings"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/wordnum"
	"github.com/shopspring/decimal"
)

const (
	// maxPhraseQuantityWords bounds the quantity scanned before a currency
	// designator, enough for "one hundred and twenty five".
	maxPhraseQuantityWords = 5
	maxMinorQuantityWords  = 3
)

var (
	// phraseWordRe tokenizes running text; punctuation ends a word unless
	// it sits inside a number or joins words like "twenty-five".
	phraseWordRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:-\p{L}+)*(?:[.,]\d+)*`)

	groupedNumeralRe = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)
	isoCodeRe        = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

func isPhraseArticle(tok string) bool {
	tok = strings.ToLower(tok)
	return tok == "a" || tok == "an" || tok == "the"
}

func isNumeralToken(tok string) bool {
	return wordnum.IsNumeral(tok) || groupedNumeralRe.MatchString(tok)
}

func stripArticle(toks []string) []string {
	if len(toks) > 0 && isPhraseArticle(toks[0]) {
		return toks[1:]
	}
	return toks
}

// resolvePhraseQuantity is wordnum.ResolveQuantity that also accepts a
// single comma-grouped numeral.
func resolvePhraseQuantity(input string, toks []string) (decimal.Decimal, error) {
	if len(toks) == 1 && groupedNumeralRe.MatchString(toks[0]) {
		toks = []string{strings.ReplaceAll(toks[0], ",", "")}
	}
	qty, err := wordnum.ResolveQuantity(toks)
	if err != nil {
		return decimal.Zero, apperrors.NewParseError(apperrors.ErrFormat, input, "Invalid quantity: %s", strings.Join(toks, " "))
	}
	return qty, nil
}

// designatorCode resolves a currency name or ISO code to a catalog code.
func (p *Parser) designatorCode(tok, hint string) (string, bool) {
	if name, ok := lookupCurrencyName(tok); ok {
		code := resolveCandidates(name.codes, hint)
		if _, ok := p.catalog.ByCode(code); ok {
			return code, true
		}
		return "", false
	}
	if isoCodeRe.MatchString(tok) {
		if cur, ok := p.catalog.ByCode(tok); ok {
			return cur.CurrencyCode, true
		}
	}
	return "", false
}

// ParseContextualPhrase values phrases such as "a hundred dollars",
// "one thousand JPY" or "five euros and fifty cents". The whole input must be
// one phrase: [article] [quantity] designator [and quantity minor-unit].
func (p *Parser) ParseContextualPhrase(input string, hints ...string) (PhraseMatch, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return PhraseMatch{}, apperrors.NewParseError(apperrors.ErrInput, input, "Input must be a non-empty string")
	}
	hint := firstHint(hints)

	spans := tokenRe.FindAllStringIndex(s, -1)
	toks := make([]string, len(spans))
	for i, sp := range spans {
		toks[i] = s[sp[0]:sp[1]]
	}

	d, code := -1, ""
	for i, tok := range toks {
		if c, ok := p.designatorCode(tok, hint); ok {
			d, code = i, c
			break
		}
	}
	if d < 0 {
		return PhraseMatch{}, apperrors.NewParseError(apperrors.ErrUnknownCurrency, input, "Unrecognized currency in %q", s)
	}

	value, err := resolvePhraseQuantity(input, stripArticle(toks[:d]))
	if err != nil {
		return PhraseMatch{}, err
	}

	if rest := toks[d+1:]; len(rest) > 0 {
		if len(rest) < 2 || !strings.EqualFold(rest[0], "and") {
			return PhraseMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "Unexpected text after currency: %q", strings.Join(rest, " "))
		}
		unit := rest[len(rest)-1]
		if !isMinorUnitOf(code, unit) {
			return PhraseMatch{}, apperrors.NewParseError(apperrors.ErrMinorUnitMismatch, input, "Minor unit not supported for %s: %s", code, unit)
		}
		minor, err := resolvePhraseQuantity(input, stripArticle(rest[1:len(rest)-1]))
		if err != nil {
			return PhraseMatch{}, err
		}
		value = value.Add(minor.Div(decimal.NewFromInt(minorUnitFactor)))
	}

	value, err = CheckOverflow(value)
	if err != nil {
		return PhraseMatch{}, err
	}

	return PhraseMatch{
		Value:      value,
		Currency:   code,
		Designator: toks[d],
		Raw:        s,
	}, nil
}

// MatchContextualPhrase finds the first money phrase in running text. A
// designator only counts when a quantity or "a"/"an" precedes it, and ISO
// codes must be written in capitals, so prose like "all the dollars" is skipped.
func (p *Parser) MatchContextualPhrase(text string, hints ...string) (PhraseMatch, bool) {
	hint := firstHint(hints)
	spans := phraseWordRe.FindAllStringIndex(text, -1)
	word := func(i int) string { return text[spans[i][0]:spans[i][1]] }
	adjacent := func(i, j int) bool { return strings.TrimSpace(text[spans[i][1]:spans[j][0]]) == "" }

	for i := range spans {
		tok := word(i)
		name, isName := lookupCurrencyName(tok)
		if !isName && !(isoCodeRe.MatchString(tok) && tok == strings.ToUpper(tok)) {
			continue
		}

		start := i
		for j := i - 1; j >= 0 && i-j <= maxPhraseQuantityWords && adjacent(j, j+1); j-- {
			w := word(j)
			if !isNumeralToken(w) && !wordnum.IsNumberWord(w) && !strings.EqualFold(w, "and") {
				break
			}
			start = j
		}
		for start < i && strings.EqualFold(word(start), "and") {
			start++
		}
		hasQty := start < i
		hasArticle := false
		if start > 0 && adjacent(start-1, start) && isPhraseArticle(word(start-1)) {
			// "the" needs a quantity after it; "a"/"an" stand for one
			if hasQty || wordnum.IsArticle(word(start-1)) {
				start--
				hasArticle = true
			}
		}
		if !hasQty && (!hasArticle || (isName && name.needsQuantity)) {
			continue
		}

		end := i
		if i+2 < len(spans) && adjacent(i, i+1) && strings.EqualFold(word(i+1), "and") {
			k := i + 2
			for k < len(spans) && k-(i+2) < maxMinorQuantityWords && adjacent(k-1, k) {
				w := word(k)
				if !isNumeralToken(w) && !wordnum.IsNumberWord(w) && !wordnum.IsArticle(w) {
					break
				}
				k++
			}
			if k < len(spans) && adjacent(k-1, k) && isMinorUnitName(word(k)) {
				end = k
			}
		}

		m, err := p.ParseContextualPhrase(text[spans[start][0]:spans[end][1]], hint)
		if err == nil {
			return m, true
		}
	}
	return PhraseMatch{}, false
}
