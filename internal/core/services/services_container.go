package services

import (
	"github.com/SscSPs/moneyparse/internal/catalog"
	portsrepo "github.com/SscSPs/moneyparse/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/moneyparse/internal/core/ports/services"
	"github.com/SscSPs/moneyparse/internal/parsing"
	"github.com/SscSPs/moneyparse/internal/platform/config"
	"github.com/SscSPs/moneyparse/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, cat *catalog.Catalog, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	currencyOpts := []CurrencyServiceOption{WithCurrencyMetrics(m)}
	if repos.CurrencyRepo != nil {
		currencyOpts = append(currencyOpts, WithCurrencyRepository(repos.CurrencyRepo))
	}
	container.Currency = NewCurrencyService(cat, currencyOpts...)

	// The parser reads the same catalog, so currencies created at runtime are
	// recognized by the next request.
	container.Parse = NewParseService(
		parsing.New(cat),
		WithParseMetrics(m),
		WithMaxInputLength(cfg.MaxInputLength),
		WithDefaultCurrency(cfg.DefaultCurrency),
	)

	container.StaticData = NewStaticDataService(cat, repos.CurrencyRepo, m)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
	_ portssvc.ParseSvcFacade    = (*parseService)(nil)
	_ portssvc.StaticDataService = (*staticDataService)(nil)
	_ CurrencyCatalog            = (*catalog.Catalog)(nil)
)
