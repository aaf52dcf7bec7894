package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

// defaultSearchLimit matches the page size of the search engine.
const defaultSearchLimit = 20

type searchService struct {
	searchEngine      adapter.SearchEngine
	productRepository store.ProductRepository

	logger *logger.Logger
}

// NewSearchService builds a SearchService. When searchEngine is nil products
// are searched in the catalog database instead.
func NewSearchService(searchEngine adapter.SearchEngine, productRepository store.ProductRepository, logger *logger.Logger) SearchService {
	return &searchService{
		searchEngine:      searchEngine,
		productRepository: productRepository,
		logger:            logger,
	}
}

func (s *searchService) Search(ctx context.Context, request models.SearchRequest) (models.SearchResponse, error) {
	if s.searchEngine == nil {
		return s.searchCatalog(ctx, request)
	}

	response, err := s.searchEngine.Search(ctx, request)
	if errors.Is(err, adapter.ErrBadRequest) {
		return models.SearchResponse{}, fmt.Errorf("%w: %w", ErrInvalidSearchRequest, err)
	}
	if err != nil {
		return models.SearchResponse{}, err
	}

	return response, nil
}

func (s *searchService) searchCatalog(ctx context.Context, request models.SearchRequest) (models.SearchResponse, error) {
	offset, limit := 0, defaultSearchLimit
	if request.Offset != nil {
		offset = *request.Offset
	}
	if request.Limit != nil {
		limit = *request.Limit
	}

	products, total, err := s.productRepository.SearchProducts(ctx, request.Q, offset, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*searchService.searchCatalog").Msg("error searching catalog")
		return models.SearchResponse{}, err
	}

	hits := make([]any, 0, len(products))
	for _, p := range products {
		hits = append(hits, p)
	}

	return models.SearchResponse{
		Hits: hits,
		Facets: map[string]any{
			"query":              request.Q,
			"offset":             offset,
			"limit":              limit,
			"estimatedTotalHits": total,
		},
	}, nil
}
