package parsing

import (
	"regexp"
	"strings"

	"github.com/SscSPs/moneyparse/internal/apperrors"
)

var (
	// plainStrictRe accepts digits only: no sign, separator or fraction.
	plainStrictRe = regexp.MustCompile(`^\d+$`)

	// plainSearchRe finds the first whole-word digit run. "12.50" yields "12".
	plainSearchRe = regexp.MustCompile(`\b\d+\b`)

	// separatedStrictRe accepts comma-grouped thousands with an optional
	// fraction, or an ungrouped integer or decimal.
	separatedStrictRe = regexp.MustCompile(`^(?:\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+\.\d+|\d+)$`)

	// separatedSearchRe requires at least one comma group or a fraction.
	separatedSearchRe = regexp.MustCompile(`\b(?:\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+\.\d+)\b`)
)

// ParsePlainNumber parses a trimmed run of digits. Leading zeros are ignored.
func ParsePlainNumber(input string) (NumberMatch, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return NumberMatch{}, apperrors.NewParseError(apperrors.ErrInput, input, "Input must be a non-empty string")
	}
	if !plainStrictRe.MatchString(s) {
		return NumberMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "Invalid plain number format: %q", s)
	}
	v, err := parseAmount(input, s)
	if err != nil {
		return NumberMatch{}, err
	}
	return NumberMatch{Value: v, Raw: s}, nil
}

// MatchPlainNumber returns the first whole-word digit run in text.
func MatchPlainNumber(text string) (NumberMatch, bool) {
	m := plainSearchRe.FindString(text)
	if m == "" {
		return NumberMatch{}, false
	}
	res, err := ParsePlainNumber(m)
	if err != nil {
		return NumberMatch{}, false
	}
	return res, true
}

// ParseSeparatedNumber parses "1,234,567.89" style numbers as well as plain
// integers and decimals. Commas must group exactly three digits.
func ParseSeparatedNumber(input string) (NumberMatch, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return NumberMatch{}, apperrors.NewParseError(apperrors.ErrInput, input, "Input must be a non-empty string")
	}
	if !separatedStrictRe.MatchString(s) {
		return NumberMatch{}, apperrors.NewParseError(apperrors.ErrFormat, input, "Invalid separated number format: %q", s)
	}
	v, err := parseAmount(input, s)
	if err != nil {
		return NumberMatch{}, err
	}
	return NumberMatch{Value: v, Raw: s}, nil
}

// MatchSeparatedNumber returns the first comma-grouped or decimal number in text.
func MatchSeparatedNumber(text string) (NumberMatch, bool) {
	m := separatedSearchRe.FindString(text)
	if m == "" {
		return NumberMatch{}, false
	}
	res, err := ParseSeparatedNumber(m)
	if err != nil {
		return NumberMatch{}, false
	}
	return res, true
}
