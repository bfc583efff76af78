package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// It is the entry point the handlers use.
type ServiceContainer struct {
	Currency   CurrencySvcFacade
	Parse      ParseSvcFacade
	StaticData StaticDataService
}

// StaticDataService seeds and loads reference data such as currencies.
type StaticDataService interface {
	// InitializeStaticData seeds the store when it is empty and loads the
	// stored currencies into the catalog.
	InitializeStaticData(ctx context.Context) error
}
