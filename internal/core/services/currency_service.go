package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyparse/internal/core/ports/repositories"
	"github.com/SscSPs/moneyparse/internal/dto"
	"github.com/SscSPs/moneyparse/internal/platform/metrics"
)

// CurrencyCatalog is the in-memory currency set the service reads from and
// publishes writes to.
type CurrencyCatalog interface {
	ByCode(code string) (domain.Currency, bool)
	All() []domain.Currency
	Len() int
	Upsert(currency domain.Currency)
	Replace(currencies []domain.Currency)
}

// CurrencyService serves catalog reads from memory and writes through to the
// repository when one is configured.
type CurrencyService struct {
	BaseService
	catalog      CurrencyCatalog
	currencyRepo portsrepo.CurrencyRepositoryFacade
	metrics      *metrics.Metrics
}

// CurrencyServiceOption configures a CurrencyService.
type CurrencyServiceOption func(*CurrencyService)

// WithCurrencyRepository persists created currencies.
func WithCurrencyRepository(repo portsrepo.CurrencyRepositoryFacade) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.currencyRepo = repo
	}
}

// WithCurrencyMetrics records catalog changes.
func WithCurrencyMetrics(m *metrics.Metrics) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.metrics = m
	}
}

func NewCurrencyService(catalog CurrencyCatalog, opts ...CurrencyServiceOption) *CurrencyService {
	s := &CurrencyService{catalog: catalog}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	now := time.Now()
	code := strings.ToUpper(req.CurrencyCode)

	currency := domain.Currency{
		CurrencyCode: code,
		Number:       req.Number,
		Symbol:       req.Symbol,
		Name:         req.Name,
		Precision:    req.Precision,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	// Updating an existing currency keeps its creation record.
	if existing, ok := s.catalog.ByCode(code); ok && !existing.CreatedAt.IsZero() {
		currency.CreatedAt = existing.CreatedAt
		currency.CreatedBy = existing.CreatedBy
	}

	if s.currencyRepo != nil {
		if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			s.LogError(ctx, err, "Failed to save currency in repository", slog.String("currency_code", code))
			return nil, fmt.Errorf("failed to create currency in service: %w", err)
		}
	}

	s.catalog.Upsert(currency)
	if s.metrics != nil {
		s.metrics.RecordCatalogUpsert()
		s.metrics.SetCatalogSize(s.catalog.Len())
	}

	s.LogInfo(ctx, "Currency saved", slog.String("currency_code", code))
	return &currency, nil
}

// GetCurrencyByCode reads from the catalog. A code missing there is looked up
// in the repository, since another instance may have written it, and cached
// in the catalog when found.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if currency, ok := s.catalog.ByCode(code); ok {
		return &currency, nil
	}

	if s.currencyRepo == nil {
		s.LogDebug(ctx, "Currency not in catalog", slog.String("currency_code", code))
		return nil, fmt.Errorf("currency %q: %w", code, apperrors.ErrNotFound)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find currency in repository", slog.String("currency_code", code))
			return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
		}
		return nil, fmt.Errorf("currency %q: %w", code, apperrors.ErrNotFound)
	}

	s.catalog.Upsert(*currency)
	if s.metrics != nil {
		s.metrics.SetCatalogSize(s.catalog.Len())
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies := s.catalog.All()
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
