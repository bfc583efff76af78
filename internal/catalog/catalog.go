// Package catalog holds the in-memory ISO 4217 currency catalog that every
// recognizer validates against.
package catalog

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/moneyparse/internal/core/domain"
)

// Catalog is a concurrency-safe currency lookup. Reads work on an immutable
// snapshot and never lock; writers swap in a new snapshot and bump Version.
type Catalog struct {
	mu   sync.Mutex // serializes writers
	snap atomic.Pointer[snapshot]
}

type snapshot struct {
	version  uint64
	byCode   map[string]domain.Currency
	byNumber map[string]domain.Currency
	all      []domain.Currency // sorted by code
}

// New creates a catalog holding the given currencies. Later entries win on
// duplicate codes.
func New(currencies []domain.Currency) *Catalog {
	c := &Catalog{}
	c.snap.Store(buildSnapshot(1, currencies))
	return c
}

// Default creates a catalog seeded with the embedded ISO 4217 table. Each call
// returns an independent catalog.
func Default() *Catalog {
	return New(ISO4217())
}

func buildSnapshot(version uint64, currencies []domain.Currency) *snapshot {
	s := &snapshot{
		version:  version,
		byCode:   make(map[string]domain.Currency, len(currencies)),
		byNumber: make(map[string]domain.Currency, len(currencies)),
	}
	for _, cur := range currencies {
		cur.CurrencyCode = strings.ToUpper(strings.TrimSpace(cur.CurrencyCode))
		if cur.CurrencyCode == "" {
			continue
		}
		if prev, ok := s.byCode[cur.CurrencyCode]; ok && prev.Number != "" {
			delete(s.byNumber, prev.Number)
		}
		s.byCode[cur.CurrencyCode] = cur
		if cur.Number != "" {
			s.byNumber[cur.Number] = cur
		}
	}
	s.all = make([]domain.Currency, 0, len(s.byCode))
	for _, cur := range s.byCode {
		s.all = append(s.all, cur)
	}
	sort.Slice(s.all, func(i, j int) bool {
		return s.all[i].CurrencyCode < s.all[j].CurrencyCode
	})
	return s
}

// ByCode looks a currency up by its alphabetic code, ignoring case.
func (c *Catalog) ByCode(code string) (domain.Currency, bool) {
	cur, ok := c.snap.Load().byCode[strings.ToUpper(strings.TrimSpace(code))]
	return cur, ok
}

// ByNumber looks a currency up by its ISO numeric code. Short codes are
// zero-padded, so "36" finds AUD.
func (c *Catalog) ByNumber(number string) (domain.Currency, bool) {
	number = strings.TrimSpace(number)
	for len(number) > 0 && len(number) < 3 {
		number = "0" + number
	}
	cur, ok := c.snap.Load().byNumber[number]
	return cur, ok
}

// All returns every currency sorted by code. The slice is a copy.
func (c *Catalog) All() []domain.Currency {
	all := c.snap.Load().all
	out := make([]domain.Currency, len(all))
	copy(out, all)
	return out
}

// Codes returns every alphabetic code sorted ascending.
func (c *Catalog) Codes() []string {
	all := c.snap.Load().all
	codes := make([]string, len(all))
	for i, cur := range all {
		codes[i] = cur.CurrencyCode
	}
	return codes
}

// Len returns the number of currencies in the catalog.
func (c *Catalog) Len() int {
	return len(c.snap.Load().all)
}

// Version changes every time the catalog content changes.
func (c *Catalog) Version() uint64 {
	return c.snap.Load().version
}

// Replace swaps the whole catalog content.
func (c *Catalog) Replace(currencies []domain.Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Store(buildSnapshot(c.snap.Load().version+1, currencies))
}

// Upsert adds a currency or replaces the entry with the same code.
func (c *Catalog) Upsert(currency domain.Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.snap.Load()
	next := make([]domain.Currency, 0, len(old.all)+1)
	next = append(next, old.all...)
	next = append(next, currency)
	c.snap.Store(buildSnapshot(old.version+1, next))
}
