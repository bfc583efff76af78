// Package parsing recognizes monetary amounts in free-form English text.
//
// Every recognizer comes in two forms. ParseX is strict: it returns a typed
// *apperrors.ParseError or *apperrors.OverflowError on failure. MatchX is
// tolerant: it scans surrounding text and reports "not found" for every
// failure, overflow included.
//
// Compiled patterns are Go regexp values, which keep no scan position between
// calls, so a single Parser is safe for concurrent use.
package parsing

import (
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/SscSPs/moneyparse/internal/core/domain"
)

// Catalog is the currency lookup the recognizers validate against.
type Catalog interface {
	ByCode(code string) (domain.Currency, bool)
	ByNumber(number string) (domain.Currency, bool)
	All() []domain.Currency
	// Version changes whenever the catalog content changes.
	Version() uint64
}

// Parser binds the catalog-dependent recognizers to a Catalog.
type Parser struct {
	catalog  Catalog
	symbols  *SymbolTable
	symbolRe *regexp.Regexp
	codes    atomic.Pointer[codePattern]
}

// Option configures a Parser.
type Option func(*Parser)

// WithSymbolTable replaces the built-in symbol table.
func WithSymbolTable(t *SymbolTable) Option {
	return func(p *Parser) {
		p.symbols = t
		p.symbolRe = compileSymbolPattern(t)
	}
}

// New creates a Parser backed by catalog.
func New(catalog Catalog, opts ...Option) *Parser {
	p := &Parser{
		catalog:  catalog,
		symbols:  defaultSymbolTable,
		symbolRe: defaultSymbolRe,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Catalog returns the catalog the parser validates against.
func (p *Parser) Catalog() Catalog {
	return p.catalog
}

// SymbolTable returns the symbol table in use.
func (p *Parser) SymbolTable() *SymbolTable {
	return p.symbols
}

// resolveCandidates picks one code from an ordered candidate list. A hint wins
// only when it is one of the candidates.
func resolveCandidates(candidates []string, hint string) string {
	if len(candidates) == 1 {
		return candidates[0]
	}
	if hint = strings.ToUpper(strings.TrimSpace(hint)); hint != "" {
		for _, c := range candidates {
			if c == hint {
				return c
			}
		}
	}
	return candidates[0]
}

// firstHint returns the first hint or "" when none is given.
func firstHint(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}
