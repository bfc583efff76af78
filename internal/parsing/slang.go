package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/wordnum"
	"github.com/shopspring/decimal"
)

// SlangUnit is the currency and face value behind a slang money term.
type SlangUnit struct {
	Currency string
	Value    decimal.Decimal
}

var slangUnits = map[string]SlangUnit{
	"buck":    {"USD", decimal.NewFromInt(1)},
	"bucks":   {"USD", decimal.NewFromInt(1)},
	"quid":    {"GBP", decimal.NewFromInt(1)},
	"quids":   {"GBP", decimal.NewFromInt(1)},
	"fiver":   {"GBP", decimal.NewFromInt(5)},
	"fivers":  {"GBP", decimal.NewFromInt(5)},
	"tenner":  {"GBP", decimal.NewFromInt(10)},
	"tenners": {"GBP", decimal.NewFromInt(10)},
}

// slangWindow is how many tokens before a slang term may hold its quantity.
const slangWindow = 3

// slangQuantityWords is the closed vocabulary the tolerant scan accepts
// before a slang term, besides numerals.
var slangQuantityWords = []string{
	"a", "an",
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
	"thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	"hundred", "thousand",
}

var (
	slangTensWords = []string{"twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	slangOnesWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
)

var (
	tokenRe       = regexp.MustCompile(`\S+`)
	slangSearchRe = compileSlangPattern()
)

func compileSlangPattern() *regexp.Regexp {
	terms := make([]string, 0, len(slangUnits))
	for term := range slangUnits {
		terms = append(terms, term)
	}
	byLengthDesc(terms)

	qty := append([]string(nil), slangQuantityWords...)
	byLengthDesc(qty)

	// hyphenated tens go first so "twenty-five" is not cut at the hyphen
	hyphenated := `(?:` + alternation(slangTensWords) + `)-(?:` + alternation(slangOnesWords) + `)`

	return regexp.MustCompile(`(?i)\b(?:(?:\d+(?:\.\d+)?|` + hyphenated + `|` + alternation(qty) + `)\s+){0,3}(?:` + alternation(terms) + `)\b`)
}

func byLengthDesc(words []string) {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
}

// LookupSlang returns the unit behind a slang term, ignoring case.
func LookupSlang(term string) (SlangUnit, bool) {
	u, ok := slangUnits[strings.ToLower(term)]
	return u, ok
}

// ParseSlangTerm values the first slang term in input using up to three
// preceding tokens as its quantity: "three fivers" is 15 GBP.
func ParseSlangTerm(input string) (SlangMatch, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return SlangMatch{}, apperrors.NewParseError(apperrors.ErrInput, input, "Input must be a non-empty string")
	}

	spans := tokenRe.FindAllStringIndex(s, -1)
	idx := -1
	var unit SlangUnit
	for i, sp := range spans {
		if u, ok := LookupSlang(s[sp[0]:sp[1]]); ok {
			idx, unit = i, u
			break
		}
	}
	if idx < 0 {
		return SlangMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "No slang currency term found")
	}

	start := max(0, idx-slangWindow)
	window := make([]string, 0, idx-start)
	for _, sp := range spans[start:idx] {
		window = append(window, s[sp[0]:sp[1]])
	}

	qty, err := wordnum.ResolveQuantity(window)
	if err != nil {
		return SlangMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "Invalid quantity: %s", strings.Join(window, " "))
	}

	value, err := CheckOverflow(qty.Mul(unit.Value))
	if err != nil {
		return SlangMatch{}, err
	}

	termSpan := spans[idx]
	return SlangMatch{
		Value:    value,
		Quantity: qty,
		Currency: unit.Currency,
		Term:     s[termSpan[0]:termSpan[1]],
		Raw:      s[spans[start][0]:termSpan[1]],
	}, nil
}

// MatchSlangTerm returns the first slang phrase in text.
func MatchSlangTerm(text string) (SlangMatch, bool) {
	m := slangSearchRe.FindString(text)
	if m == "" {
		return SlangMatch{}, false
	}
	res, err := ParseSlangTerm(m)
	if err != nil {
		return SlangMatch{}, false
	}
	return res, true
}
