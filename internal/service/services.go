package service

import (
	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
)

type Services struct {
	ProductService        ProductService
	SearchService         SearchService
	PublishableKeyService PublishableKeyService
	AppInfoService        AppInfoService

	// IndexService is nil when no search engine is configured.
	IndexService IndexService
}

// NewServices wires the storefront services. searchEngine may be nil.
func NewServices(storages *store.Storages, searchEngine adapter.SearchEngine, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	services := &Services{
		ProductService: NewProductValidationService().
			Wrap(NewProductService(storages.ProductRepository, logger)),
		SearchService: NewSearchValidationService().
			Wrap(NewSearchService(searchEngine, storages.ProductRepository, logger)),
		PublishableKeyService: NewPublishableKeyService(storages.PublishableKeyStorage, storages.ProductRepository, logger),
		AppInfoService:        appInfoService,
	}

	if searchEngine != nil {
		services.IndexService, err = NewIndexService(storages.ProductRepository, searchEngine, 0, logger)
		if err != nil {
			return nil, err
		}
	}

	return services, nil
}
