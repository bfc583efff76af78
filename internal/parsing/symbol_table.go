package parsing

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// SymbolEntry maps a symbol or text token to its candidate ISO codes. The
// first candidate is the default when no hint picks another.
type SymbolEntry struct {
	Symbol string
	Codes  []string
}

// SymbolTable is an ordered, read-only symbol lookup.
type SymbolTable struct {
	entries []SymbolEntry
	index   map[string]int
}

// NewSymbolTable builds a table from entries. Declaration order is kept;
// a repeated symbol replaces the earlier entry's candidates in place.
func NewSymbolTable(entries []SymbolEntry) *SymbolTable {
	t := &SymbolTable{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if e.Symbol == "" || len(e.Codes) == 0 {
			continue
		}
		codes := append([]string(nil), e.Codes...)
		if i, ok := t.index[e.Symbol]; ok {
			t.entries[i].Codes = codes
			continue
		}
		t.index[e.Symbol] = len(t.entries)
		t.entries = append(t.entries, SymbolEntry{Symbol: e.Symbol, Codes: codes})
	}
	return t
}

// DefaultSymbolTable returns the built-in symbol table.
func DefaultSymbolTable() *SymbolTable {
	return defaultSymbolTable
}

// Lookup returns the candidates for token. An exact match wins; otherwise
// the first entry equal under Unicode case folding is used.
func (t *SymbolTable) Lookup(token string) ([]string, bool) {
	if i, ok := t.index[token]; ok {
		return t.entries[i].Codes, true
	}
	if i, ok := t.index[strings.ToUpper(token)]; ok {
		return t.entries[i].Codes, true
	}
	if i, ok := t.index[strings.ToLower(token)]; ok {
		return t.entries[i].Codes, true
	}
	for _, e := range t.entries {
		if strings.EqualFold(e.Symbol, token) {
			return e.Codes, true
		}
	}
	return nil, false
}

// Len returns the number of symbols.
func (t *SymbolTable) Len() int {
	return len(t.entries)
}

// Keys returns the symbols sorted by descending length in runes. Ties keep
// declaration order.
func (t *SymbolTable) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Symbol
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return utf8.RuneCountInString(keys[i]) > utf8.RuneCountInString(keys[j])
	})
	return keys
}

// amountPattern accepts comma grouping or a plain run, each with an optional fraction.
const amountPattern = `\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`

// alternation joins quoted keys; keys must already be in priority order.
func alternation(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(quoted, "|")
}

// compileSymbolPattern builds `<symbol>\s*<amount>` or `<amount>\s*<symbol>`.
func compileSymbolPattern(t *SymbolTable) *regexp.Regexp {
	syms := alternation(t.Keys())
	return regexp.MustCompile(`(?i)(?:(?P<before>` + syms + `)\s*(?P<amountAfter>` + amountPattern + `)` +
		`|(?P<amountBefore>` + amountPattern + `)\s*(?P<after>` + syms + `))`)
}

var (
	defaultSymbolTable = NewSymbolTable(builtinSymbols)
	defaultSymbolRe    = compileSymbolPattern(defaultSymbolTable)
)

// builtinSymbols lists symbols in precedence order. Shared glyphs list their
// currencies from most to least common.
var builtinSymbols = []SymbolEntry{
	{"$", []string{"USD", "AUD", "CAD", "NZD", "SGD", "HKD", "MXN", "ARS", "CLP", "COP", "BRL"}},
	{"USD", []string{"USD"}},
	{"US$", []string{"USD"}},
	{"AUD", []string{"AUD"}},
	{"A$", []string{"AUD"}},
	{"AU$", []string{"AUD"}},
	{"CAD", []string{"CAD"}},
	{"C$", []string{"CAD"}},
	{"CA$", []string{"CAD"}},
	{"NZD", []string{"NZD"}},
	{"NZ$", []string{"NZD"}},
	{"SGD", []string{"SGD"}},
	{"S$", []string{"SGD"}},
	{"HKD", []string{"HKD"}},
	{"HK$", []string{"HKD"}},
	{"MXN", []string{"MXN"}},
	{"MX$", []string{"MXN"}},
	{"ARS", []string{"ARS"}},
	{"AR$", []string{"ARS"}},
	{"CLP", []string{"CLP"}},
	{"CL$", []string{"CLP"}},
	{"COP", []string{"COP"}},
	{"CO$", []string{"COP"}},
	{"BRL", []string{"BRL"}},
	{"R$", []string{"BRL"}},

	{"€", []string{"EUR"}},
	{"EUR", []string{"EUR"}},
	{"£", []string{"GBP"}},
	{"GBP", []string{"GBP"}},
	{"¥", []string{"JPY", "CNY"}},
	{"JPY", []string{"JPY"}},
	{"JP¥", []string{"JPY"}},
	{"CNY", []string{"CNY"}},
	{"CN¥", []string{"CNY"}},
	{"元", []string{"CNY"}},

	{"₹", []string{"INR"}},
	{"Rs", []string{"INR"}},
	{"Rs.", []string{"INR"}},
	{"INR", []string{"INR"}},
	{"₽", []string{"RUB"}},
	{"руб", []string{"RUB"}},
	{"RUB", []string{"RUB"}},
	{"₩", []string{"KRW"}},
	{"KRW", []string{"KRW"}},
	{"₺", []string{"TRY"}},
	{"TL", []string{"TRY"}},
	{"TRY", []string{"TRY"}},
	{"CHF", []string{"CHF"}},
	{"Fr", []string{"CHF"}},
	{"SFr", []string{"CHF"}},
	{"zł", []string{"PLN"}},
	{"PLN", []string{"PLN"}},
	{"฿", []string{"THB"}},
	{"THB", []string{"THB"}},
	{"Rp", []string{"IDR"}},
	{"IDR", []string{"IDR"}},
	{"RM", []string{"MYR"}},
	{"MYR", []string{"MYR"}},
	{"₱", []string{"PHP"}},
	{"PHP", []string{"PHP"}},
	{"₫", []string{"VND"}},
	{"VND", []string{"VND"}},
	{"R", []string{"ZAR"}},
	{"ZAR", []string{"ZAR"}},

	{"kr", []string{"SEK", "NOK", "DKK", "ISK"}},
	{"SEK", []string{"SEK"}},
	{"NOK", []string{"NOK"}},
	{"DKK", []string{"DKK"}},
	{"ISK", []string{"ISK"}},
	{"Kč", []string{"CZK"}},
	{"CZK", []string{"CZK"}},
	{"Ft", []string{"HUF"}},
	{"HUF", []string{"HUF"}},
	{"₪", []string{"ILS"}},
	{"ILS", []string{"ILS"}},
	{"د.إ", []string{"AED"}},
	{"AED", []string{"AED"}},
	{"ر.س", []string{"SAR"}},
	{"SAR", []string{"SAR"}},
	{"E£", []string{"EGP"}},
	{"EGP", []string{"EGP"}},
	{"₦", []string{"NGN"}},
	{"NGN", []string{"NGN"}},
	{"KSh", []string{"KES"}},
	{"KES", []string{"KES"}},
	{"PKR", []string{"PKR"}},
	{"৳", []string{"BDT"}},
	{"BDT", []string{"BDT"}},
	{"LKR", []string{"LKR"}},
	{"₴", []string{"UAH"}},
	{"UAH", []string{"UAH"}},
	{"lei", []string{"RON"}},
	{"RON", []string{"RON"}},
	{"лв", []string{"BGN"}},
	{"BGN", []string{"BGN"}},
	{"kn", []string{"HRK"}},
	{"HRK", []string{"HRK"}},
	{"S/", []string{"PEN"}},
	{"PEN", []string{"PEN"}},

	{"$U", []string{"UYU"}},
	{"UYU", []string{"UYU"}},
	{"₸", []string{"KZT"}},
	{"KZT", []string{"KZT"}},
	{"֏", []string{"AMD"}},
	{"AMD", []string{"AMD"}},
	{"₾", []string{"GEL"}},
	{"GEL", []string{"GEL"}},
	{"₼", []string{"AZN"}},
	{"AZN", []string{"AZN"}},
	{"UZS", []string{"UZS"}},
	{"₮", []string{"MNT"}},
	{"MNT", []string{"MNT"}},
	{"៛", []string{"KHR"}},
	{"KHR", []string{"KHR"}},
	{"₭", []string{"LAK"}},
	{"LAK", []string{"LAK"}},
	{"K", []string{"MMK"}},
	{"MMK", []string{"MMK"}},
	{"NPR", []string{"NPR"}},
	{"؋", []string{"AFN"}},
	{"AFN", []string{"AFN"}},
	{"﷼", []string{"IRR"}},
	{"IRR", []string{"IRR"}},
	{"IQD", []string{"IQD"}},
	{"KD", []string{"KWD"}},
	{"KWD", []string{"KWD"}},
	{"BD", []string{"BHD"}},
	{"BHD", []string{"BHD"}},
	{"OMR", []string{"OMR"}},
	{"QR", []string{"QAR"}},
	{"QAR", []string{"QAR"}},
	{"JOD", []string{"JOD"}},
	{"LL", []string{"LBP"}},
	{"LBP", []string{"LBP"}},
	{"SYP", []string{"SYP"}},
	{"TND", []string{"TND"}},
	{"MAD", []string{"MAD"}},
	{"DZD", []string{"DZD"}},
	{"LYD", []string{"LYD"}},
	{"MRU", []string{"MRU"}},
	{"ETB", []string{"ETB"}},
	{"TSh", []string{"TZS"}},
	{"TZS", []string{"TZS"}},
	{"USh", []string{"UGX"}},
	{"UGX", []string{"UGX"}},
	{"RWF", []string{"RWF"}},
	{"BIF", []string{"BIF"}},
	{"GH₵", []string{"GHS"}},
	{"GHS", []string{"GHS"}},
	{"ZMW", []string{"ZMW"}},
	{"P", []string{"BWP"}},
	{"BWP", []string{"BWP"}},
	{"N$", []string{"NAD"}},
	{"NAD", []string{"NAD"}},
	{"MUR", []string{"MUR"}},
	{"SCR", []string{"SCR"}},
	{"MGA", []string{"MGA"}},
	{"KMF", []string{"KMF"}},
	{"CVE", []string{"CVE"}},
	{"CFA", []string{"XOF", "XAF"}},
	{"XOF", []string{"XOF"}},
	{"XAF", []string{"XAF"}},
	{"XPF", []string{"XPF"}},
	{"FJ$", []string{"FJD"}},
	{"FJD", []string{"FJD"}},
	{"PGK", []string{"PGK"}},
	{"WST", []string{"WST"}},
	{"TOP", []string{"TOP"}},
}
