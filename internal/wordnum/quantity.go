package wordnum

import (
	"regexp"
	"strings"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/shopspring/decimal"
)

var numeralRe = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// IsArticle reports whether tok is the indefinite article "a" or "an".
func IsArticle(tok string) bool {
	tok = strings.ToLower(tok)
	return tok == "a" || tok == "an"
}

// IsNumeral reports whether tok is a plain digit run with an optional fraction.
func IsNumeral(tok string) bool {
	return numeralRe.MatchString(tok)
}

// ResolveQuantity turns the tokens that precede a currency term into a
// quantity. An empty window or a lone article means one; otherwise the window
// must be a numeral or a worded number.
func ResolveQuantity(tokens []string) (decimal.Decimal, error) {
	if len(tokens) == 0 {
		return decimal.NewFromInt(1), nil
	}

	joined := strings.ToLower(strings.Join(tokens, " "))
	if IsArticle(joined) {
		return decimal.NewFromInt(1), nil
	}

	if numeralRe.MatchString(joined) {
		qty, err := decimal.NewFromString(joined)
		if err != nil {
			return decimal.Zero, apperrors.NewParseError(apperrors.ErrFormat, joined, "Invalid quantity: %s", joined)
		}
		return qty, nil
	}

	n, err := Parse(joined)
	if err != nil {
		return decimal.Zero, apperrors.NewParseError(apperrors.ErrFormat, joined, "Invalid quantity: %s", joined)
	}
	return decimal.NewFromInt(n), nil
}
