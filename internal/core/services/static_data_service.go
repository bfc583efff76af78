package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/moneyparse/internal/catalog"
	"github.com/SscSPs/moneyparse/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyparse/internal/core/ports/repositories"
	"github.com/SscSPs/moneyparse/internal/platform/metrics"
)

// SystemUserID marks rows written by the service itself.
const SystemUserID = "system"

type staticDataService struct {
	BaseService
	catalog      CurrencyCatalog
	currencyRepo portsrepo.CurrencyRepositoryFacade
	metrics      *metrics.Metrics
}

// NewStaticDataService creates the service that seeds and loads currencies.
// repo and m may be nil.
func NewStaticDataService(cat CurrencyCatalog, repo portsrepo.CurrencyRepositoryFacade, m *metrics.Metrics) *staticDataService {
	return &staticDataService{catalog: cat, currencyRepo: repo, metrics: m}
}

func (s *staticDataService) InitializeStaticData(ctx context.Context) error {
	defer func() {
		if s.metrics != nil {
			s.metrics.SetCatalogSize(s.catalog.Len())
		}
	}()

	if s.currencyRepo == nil {
		s.LogInfo(ctx, "No currency repository configured, using the embedded ISO 4217 catalog",
			slog.Int("currencies", s.catalog.Len()))
		return nil
	}

	count, err := s.currencyRepo.CountCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to count stored currencies: %w", err)
	}

	if count == 0 {
		seed := seedCurrencies(time.Now())
		if err := s.currencyRepo.SaveCurrencies(ctx, seed); err != nil {
			return fmt.Errorf("failed to seed currencies: %w", err)
		}
		s.LogInfo(ctx, "Seeded currency table", slog.Int("currencies", len(seed)))
	}

	stored, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stored currencies: %w", err)
	}
	s.catalog.Replace(stored)
	s.LogInfo(ctx, "Loaded currency catalog from the database", slog.Int("currencies", len(stored)))
	return nil
}

func seedCurrencies(now time.Time) []domain.Currency {
	seed := catalog.ISO4217()
	for i := range seed {
		seed[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     SystemUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: SystemUserID,
		}
	}
	return seed
}
