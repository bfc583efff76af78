// Package pipeline threads a Context through an ordered list of detection
// steps: currency detection, numeric detection, then pattern-specific work.
package pipeline

import (
	"maps"
	"regexp"
	"strings"

	"github.com/SscSPs/moneyparse/internal/core/domain"
	"github.com/SscSPs/moneyparse/internal/parsing"
	"github.com/shopspring/decimal"
)

// Context accumulates what the steps have found so far.
type Context struct {
	Original string              `json:"original"`
	Currency string              `json:"currency,omitempty"`
	Amount   decimal.NullDecimal `json:"amount"`
	Matches  map[string]any      `json:"matches,omitempty"`
}

// Clone returns a copy of c that shares no mutable state with it.
func (c Context) Clone() Context {
	out := c
	if c.Matches != nil {
		out.Matches = maps.Clone(c.Matches)
	}
	return out
}

// Step reads the input and the previous context and returns a new context.
// A step must not modify ctx; it works on ctx.Clone() instead.
type Step func(input string, ctx Context) Context

// Pipeline runs its steps strictly in order. It is not safe to call AddStep
// concurrently with Run.
type Pipeline struct {
	steps []Step
}

// New creates a pipeline from a custom step list.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: append([]Step(nil), steps...)}
}

// Default returns the canonical pipeline: currency detection validated
// against catalog, numeric detection, then the pattern-specific step.
func Default(catalog parsing.Catalog) *Pipeline {
	return New(CurrencyStep(catalog), NumericStep, MatchesStep)
}

// AddStep appends a step and returns the pipeline for chaining.
func (p *Pipeline) AddStep(step Step) *Pipeline {
	p.steps = append(p.steps, step)
	return p
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Run feeds input through every step, starting from a context that only
// holds the original text.
func (p *Pipeline) Run(input string) Context {
	ctx := Context{Original: input}
	for _, step := range p.steps {
		ctx = step(input, ctx)
	}
	return ctx
}

var (
	isoTokenRe = regexp.MustCompile(`\b[A-Z]{3}\b`)
	numeralRe  = regexp.MustCompile(`(?:\b|^)(\d+(?:\.\d+)?)(?:\b|$)`)
)

// symbolShortlist resolves the four most common glyphs without a symbol table.
var symbolShortlist = []struct {
	symbol string
	code   string
}{
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
}

// CurrencyStep sets Currency from the first uppercase three-letter token the
// catalog knows, or else from the first shortlisted symbol in the input.
func CurrencyStep(catalog parsing.Catalog) Step {
	return func(input string, ctx Context) Context {
		out := ctx.Clone()
		for _, tok := range isoTokenRe.FindAllString(input, -1) {
			if cur, ok := catalog.ByCode(tok); ok {
				out.Currency = cur.CurrencyCode
				return out
			}
		}

		first := -1
		for _, s := range symbolShortlist {
			if i := strings.Index(input, s.symbol); i >= 0 && (first < 0 || i < first) {
				first, out.Currency = i, s.code
			}
		}
		return out
	}
}

// NumericStep sets Amount from the first bare integer or decimal.
func NumericStep(input string, ctx Context) Context {
	out := ctx.Clone()
	m := numeralRe.FindStringSubmatch(input)
	if m == nil {
		return out
	}
	if v, err := decimal.NewFromString(m[1]); err == nil {
		out.Amount = decimal.NewNullDecimal(v)
	}
	return out
}

// MatchesStep guarantees Matches is non-nil. It is the hook for
// pattern-specific steps appended after it.
func MatchesStep(_ string, ctx Context) Context {
	out := ctx.Clone()
	if out.Matches == nil {
		out.Matches = map[string]any{}
	}
	return out
}

// PatternStep records every tolerant recognizer hit under
// Matches[<pattern kind>]. It fills Currency and Amount from the highest
// precedence hit when the earlier steps left them empty.
func PatternStep(p *parsing.Parser) Step {
	return func(input string, ctx Context) Context {
		out := MatchesStep(input, ctx)
		hits := p.MatchAll(input, out.Currency)
		for kind, e := range hits {
			out.Matches[string(kind)] = e
		}
		for _, kind := range domain.PatternKinds {
			best, ok := hits[kind]
			if !ok {
				continue
			}
			if out.Currency == "" {
				out.Currency = best.CurrencyCode
			}
			if !out.Amount.Valid {
				out.Amount = decimal.NewNullDecimal(best.Amount)
			}
			break
		}
		return out
	}
}
