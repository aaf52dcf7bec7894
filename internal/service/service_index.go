package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
)

const defaultIndexBatchSize = 500

type indexService struct {
	productRepository store.ProductRepository
	searchEngine      adapter.SearchEngine
	batchSize         int

	logger *logger.Logger
}

func NewIndexService(productRepository store.ProductRepository, searchEngine adapter.SearchEngine, batchSize int, logger *logger.Logger) (IndexService, error) {
	if searchEngine == nil {
		return nil, ErrSearchIndexNotConfigured
	}
	if batchSize <= 0 {
		batchSize = defaultIndexBatchSize
	}

	return &indexService{
		productRepository: productRepository,
		searchEngine:      searchEngine,
		batchSize:         batchSize,
		logger:            logger,
	}, nil
}

// SyncIndex upserts every storefront-visible product, then removes the
// documents of products that were unpublished or soft-deleted. Both passes
// walk the catalog in id order, one batch at a time. A failed batch aborts
// the run; the next run starts over from the first product.
func (s *indexService) SyncIndex(ctx context.Context) (int, error) {
	indexed, err := s.upsertVisible(ctx)
	if err != nil {
		return indexed, err
	}

	removed, err := s.pruneHidden(ctx)
	if err != nil {
		return indexed, err
	}

	s.logger.Debug().Int("indexed", indexed).Int("removed", removed).Msg("search index pass finished")
	return indexed, nil
}

func (s *indexService) upsertVisible(ctx context.Context) (int, error) {
	var (
		afterID string
		indexed int
	)

	for {
		if err := ctx.Err(); err != nil {
			return indexed, err
		}

		products, err := s.productRepository.ListIndexableProducts(ctx, afterID, s.batchSize)
		if err != nil {
			s.logger.Err(err).Str("func", "*indexService.upsertVisible").Str("after_id", afterID).Msg("error reading products to index")
			return indexed, fmt.Errorf("error reading products to index: %w", err)
		}
		if len(products) == 0 {
			return indexed, nil
		}

		if err = s.searchEngine.IndexProducts(ctx, products); err != nil {
			s.logger.Err(err).Str("func", "*indexService.upsertVisible").Str("after_id", afterID).Msg("error indexing products")
			return indexed, fmt.Errorf("error indexing products: %w", err)
		}

		indexed += len(products)
		if len(products) < s.batchSize {
			return indexed, nil
		}
		afterID = products[len(products)-1].ID
	}
}

func (s *indexService) pruneHidden(ctx context.Context) (int, error) {
	var (
		afterID string
		removed int
	)

	for {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		ids, err := s.productRepository.ListHiddenProductIDs(ctx, afterID, s.batchSize)
		if err != nil {
			s.logger.Err(err).Str("func", "*indexService.pruneHidden").Str("after_id", afterID).Msg("error reading hidden products")
			return removed, fmt.Errorf("error reading hidden products: %w", err)
		}
		if len(ids) == 0 {
			return removed, nil
		}

		if err = s.searchEngine.DeleteProducts(ctx, ids); err != nil {
			s.logger.Err(err).Str("func", "*indexService.pruneHidden").Str("after_id", afterID).Msg("error removing hidden products")
			return removed, fmt.Errorf("error removing hidden products: %w", err)
		}

		removed += len(ids)
		if len(ids) < s.batchSize {
			return removed, nil
		}
		afterID = ids[len(ids)-1]
	}
}
