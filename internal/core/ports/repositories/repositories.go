package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// A nil repository means the service runs without persistence.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
}
