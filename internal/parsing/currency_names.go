package parsing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minorUnitFactor is the number of minor units in one major unit for every
// currency in minorUnits.
const minorUnitFactor = 100

type currencyName struct {
	codes []string
	// needsQuantity marks names that are also common English words. The
	// tolerant scan only accepts them after an explicit quantity.
	needsQuantity bool
}

// currencyNames maps folded currency names to ordered candidate codes.
var currencyNames = map[string]currencyName{
	"dollar":    {codes: []string{"USD", "CAD", "AUD", "NZD", "SGD", "HKD"}},
	"dollars":   {codes: []string{"USD", "CAD", "AUD", "NZD", "SGD", "HKD"}},
	"euro":      {codes: []string{"EUR"}},
	"euros":     {codes: []string{"EUR"}},
	"pound":     {codes: []string{"GBP", "EGP"}},
	"pounds":    {codes: []string{"GBP", "EGP"}},
	"sterling":  {codes: []string{"GBP"}},
	"yen":       {codes: []string{"JPY"}},
	"yuan":      {codes: []string{"CNY"}},
	"renminbi":  {codes: []string{"CNY"}},
	"rupee":     {codes: []string{"INR", "PKR", "LKR", "NPR"}},
	"rupees":    {codes: []string{"INR", "PKR", "LKR", "NPR"}},
	"franc":     {codes: []string{"CHF"}},
	"francs":    {codes: []string{"CHF"}},
	"peso":      {codes: []string{"MXN", "ARS", "CLP", "COP", "PHP"}},
	"pesos":     {codes: []string{"MXN", "ARS", "CLP", "COP", "PHP"}},
	"real":      {codes: []string{"BRL"}, needsQuantity: true},
	"reais":     {codes: []string{"BRL"}},
	"ruble":     {codes: []string{"RUB"}},
	"rubles":    {codes: []string{"RUB"}},
	"rouble":    {codes: []string{"RUB"}},
	"roubles":   {codes: []string{"RUB"}},
	"won":       {codes: []string{"KRW"}, needsQuantity: true},
	"rand":      {codes: []string{"ZAR"}, needsQuantity: true},
	"krona":     {codes: []string{"SEK", "ISK"}},
	"kronor":    {codes: []string{"SEK"}},
	"kronur":    {codes: []string{"ISK"}},
	"krone":     {codes: []string{"NOK", "DKK"}},
	"kroner":    {codes: []string{"NOK", "DKK"}},
	"zloty":     {codes: []string{"PLN"}},
	"zlotys":    {codes: []string{"PLN"}},
	"złoty":     {codes: []string{"PLN"}},
	"złotys":    {codes: []string{"PLN"}},
	"forint":    {codes: []string{"HUF"}},
	"forints":   {codes: []string{"HUF"}},
	"lira":      {codes: []string{"TRY"}},
	"liras":     {codes: []string{"TRY"}},
	"lire":      {codes: []string{"TRY"}},
	"shekel":    {codes: []string{"ILS"}},
	"shekels":   {codes: []string{"ILS"}},
	"baht":      {codes: []string{"THB"}},
	"dong":      {codes: []string{"VND"}, needsQuantity: true},
	"ringgit":   {codes: []string{"MYR"}},
	"rupiah":    {codes: []string{"IDR"}},
	"naira":     {codes: []string{"NGN"}},
	"hryvnia":   {codes: []string{"UAH"}},
	"hryvnias":  {codes: []string{"UAH"}},
	"dirham":    {codes: []string{"AED", "MAD"}},
	"dirhams":   {codes: []string{"AED", "MAD"}},
	"riyal":     {codes: []string{"SAR", "QAR"}},
	"riyals":    {codes: []string{"SAR", "QAR"}},
	"dinar":     {codes: []string{"KWD", "BHD", "JOD", "IQD"}},
	"dinars":    {codes: []string{"KWD", "BHD", "JOD", "IQD"}},
	"shilling":  {codes: []string{"KES", "UGX", "TZS"}},
	"shillings": {codes: []string{"KES", "UGX", "TZS"}},
}

// minorUnits lists the minor unit names per currency, folded. Currencies
// without an entry (JPY, KRW) have no minor unit.
var minorUnits = map[string][]string{
	"USD": {"cent", "cents"},
	"CAD": {"cent", "cents"},
	"AUD": {"cent", "cents"},
	"NZD": {"cent", "cents"},
	"SGD": {"cent", "cents"},
	"HKD": {"cent", "cents"},
	"ZAR": {"cent", "cents"},
	"EUR": {"cent", "cents", "eurocent", "eurocents"},
	"GBP": {"penny", "pence", "pennies"},
	"EGP": {"piastre", "piastres"},
	"INR": {"paisa", "paise"},
	"PKR": {"paisa", "paise"},
	"NPR": {"paisa", "paise"},
	"LKR": {"cent", "cents"},
	"CHF": {"centime", "centimes", "rappen"},
	"MXN": {"centavo", "centavos"},
	"ARS": {"centavo", "centavos"},
	"COP": {"centavo", "centavos"},
	"PHP": {"centavo", "centavos", "sentimo", "sentimos"},
	"BRL": {"centavo", "centavos"},
	"RUB": {"kopek", "kopeks", "kopeck", "kopecks"},
	"UAH": {"kopiyka", "kopiyky", "kopecks"},
	"CNY": {"fen"},
	"SEK": {"ore", "øre"},
	"NOK": {"ore", "øre"},
	"DKK": {"ore", "øre"},
	"PLN": {"grosz", "groszy"},
	"TRY": {"kurus"},
	"ILS": {"agora", "agorot"},
	"MYR": {"sen"},
	"THB": {"satang"},
}

// foldName lowercases s and strips combining accents, so "Öre" and "ore"
// compare equal. Letters without a decomposition, such as "ł", are kept.
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// lookupCurrencyName returns the candidates for a currency name, if any.
func lookupCurrencyName(tok string) (currencyName, bool) {
	name, ok := currencyNames[foldName(tok)]
	return name, ok
}

// isMinorUnitOf reports whether unit names a minor unit of code.
func isMinorUnitOf(code, unit string) bool {
	unit = foldName(unit)
	for _, u := range minorUnits[code] {
		if u == unit {
			return true
		}
	}
	return false
}

// isMinorUnitName reports whether unit is a minor unit of any currency.
func isMinorUnitName(unit string) bool {
	unit = foldName(unit)
	for _, units := range minorUnits {
		for _, u := range units {
			if u == unit {
				return true
			}
		}
	}
	return false
}
