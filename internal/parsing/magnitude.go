package parsing

import (
	"regexp"
	"strings"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/shopspring/decimal"
)

// magnitudes is the closed suffix table. Keys are lowercase.
var magnitudes = map[string]decimal.Decimal{
	"k":  decimal.NewFromInt(1_000),
	"m":  decimal.NewFromInt(1_000_000),
	"b":  decimal.NewFromInt(1_000_000_000),
	"bn": decimal.NewFromInt(1_000_000_000),
}

var (
	magnitudeStrictRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([a-z]+)$`)
	magnitudeSearchRe = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?(?:bn|[kmb])\b`)
)

// ParseMagnitudeCombo parses shorthand such as "10k", "2.5m" or "2bn".
func ParseMagnitudeCombo(input string) (MagnitudeMatch, error) {
	raw := strings.TrimSpace(input)
	s := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if s == "" {
		return MagnitudeMatch{}, apperrors.NewParseError(apperrors.ErrInput, input, "Input must be a non-empty string")
	}

	m := magnitudeStrictRe.FindStringSubmatch(s)
	if m == nil {
		return MagnitudeMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "Invalid numeric-word combo format: %q", raw)
	}
	mult, ok := magnitudes[m[2]]
	if !ok {
		return MagnitudeMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "Unsupported magnitude suffix: %q", m[2])
	}

	num, err := decimal.NewFromString(m[1])
	if err != nil {
		return MagnitudeMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "Invalid number: %s", m[1])
	}
	value, err := CheckOverflow(num.Mul(mult))
	if err != nil {
		return MagnitudeMatch{}, err
	}

	return MagnitudeMatch{Value: value, Suffix: m[2], Raw: raw}, nil
}

// MatchMagnitudeCombo returns the first magnitude shorthand in text.
func MatchMagnitudeCombo(text string) (MagnitudeMatch, bool) {
	m := magnitudeSearchRe.FindString(text)
	if m == "" {
		return MagnitudeMatch{}, false
	}
	res, err := ParseMagnitudeCombo(m)
	if err != nil {
		return MagnitudeMatch{}, false
	}
	return res, true
}
