package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Reads are limited to published, non-deleted
// products; identifiers reaching SQL are checked against productColumns
// and relationLoaders.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// ListProducts returns one page of products matching filter, shaped by d,
// together with the total number of matches.
func (r *productRepository) ListProducts(ctx context.Context, filter models.ListProductsFilter, d query.Descriptor) ([]models.Product, int, error) {
	log := logger.FromContext(ctx)

	relations, err := relationSet(d.Relations())
	if err != nil {
		return nil, 0, err
	}
	columns, err := selectColumns(d.Fields(), relations)
	if err != nil {
		return nil, 0, err
	}

	page, ok := d.Pagination()
	if !ok {
		page = query.Pagination{Limit: query.DefaultLimit}
	}
	order, ok := d.Order()
	if !ok {
		order = query.Order{Field: "created_at", Desc: true}
	}
	if _, err = orderByClause(order); err != nil {
		return nil, 0, err
	}

	count, err := r.countProducts(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error counting products")
		return nil, 0, err
	}
	if count == 0 || page.Offset >= count {
		return []models.Product{}, count, nil
	}

	sqlQuery, args, err := buildListProductsQuery(columns, filter, page, order)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	products, err := r.readProducts(ctx, columns, sqlQuery, args)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error reading products")
		return nil, 0, err
	}

	if err = loadRelations(ctx, r.db, products, relations); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

// GetProduct returns the product with the given id shaped by d, or
// [ErrProductNotFound].
func (r *productRepository) GetProduct(ctx context.Context, id string, d query.Descriptor) (models.Product, error) {
	log := logger.FromContext(ctx)

	relations, err := relationSet(d.Relations())
	if err != nil {
		return models.Product{}, err
	}
	columns, err := selectColumns(d.Fields(), relations)
	if err != nil {
		return models.Product{}, err
	}

	sqlQuery, args, err := buildGetProductQuery(columns, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	products, err := r.readProducts(ctx, columns, sqlQuery, args)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error reading product")
		return models.Product{}, err
	}
	if len(products) == 0 {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	if err = loadRelations(ctx, r.db, products, relations); err != nil {
		return models.Product{}, err
	}

	return products[0], nil
}

// IsProductInSalesChannels reports whether the product is attached to at
// least one of salesChannelIDs. An empty set never matches.
func (r *productRepository) IsProductInSalesChannels(ctx context.Context, productID string, salesChannelIDs []string) (bool, error) {
	if len(salesChannelIDs) == 0 {
		return false, nil
	}

	sqlQuery, args, err := buildIsProductInSalesChannelsQuery(productID, salesChannelIDs)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	err = scanAll(ctx, r.db, func() (string, []any, error) { return sqlQuery, args, nil },
		func(scan func(dest ...any) error) error { return scan(&exists) })
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.IsProductInSalesChannels").Msg("error checking sales channel association")
		return false, err
	}

	return exists, nil
}

// SearchProducts is the database fallback of product search: a
// case-insensitive match of q against title, subtitle, description and
// handle, with every attribute and no relations.
func (r *productRepository) SearchProducts(ctx context.Context, q string, offset, limit int) ([]models.Product, int, error) {
	filter := models.ListProductsFilter{Q: q}

	count, err := r.countProducts(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if count == 0 || offset >= count {
		return []models.Product{}, count, nil
	}

	sqlQuery, args, err := buildListProductsQuery(productColumns, filter,
		query.Pagination{Limit: limit, Offset: offset},
		query.Order{Field: "created_at", Desc: true})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	products, err := r.readProducts(ctx, productColumns, sqlQuery, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.SearchProducts").Msg("error searching products")
		return nil, 0, err
	}

	return products, count, nil
}

// ListIndexableProducts returns up to limit published products with an id
// greater than afterID, with the relations the search index stores.
func (r *productRepository) ListIndexableProducts(ctx context.Context, afterID string, limit int) ([]models.Product, error) {
	sqlQuery, args, err := buildIndexableProductsQuery(afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	products, err := r.readProducts(ctx, productColumns, sqlQuery, args)
	if err != nil {
		return nil, err
	}

	relations, err := relationSet(indexedRelations)
	if err != nil {
		return nil, err
	}
	if err = loadRelations(ctx, r.db, products, relations); err != nil {
		return nil, err
	}

	return products, nil
}

// ListHiddenProductIDs returns up to limit ids, greater than afterID, of
// products that must not be searchable.
func (r *productRepository) ListHiddenProductIDs(ctx context.Context, afterID string, limit int) ([]string, error) {
	ids := make([]string, 0)
	err := scanAll(ctx, r.db, func() (string, []any, error) { return buildHiddenProductIDsQuery(afterID, limit) },
		func(scan func(dest ...any) error) error {
			var id string
			if err := scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
	if err != nil {
		r.logger.Err(err).Str("func", "*productRepository.ListHiddenProductIDs").Msg("error reading hidden product ids")
		return nil, err
	}

	return ids, nil
}

// indexedRelations are denormalized into search documents.
var indexedRelations = []string{
	models.RelationVariants,
	models.RelationOptionsValues,
	models.RelationImages,
	models.RelationTags,
	models.RelationCollection,
	models.RelationType,
}

func (r *productRepository) countProducts(ctx context.Context, filter models.ListProductsFilter) (int, error) {
	sqlQuery, args, err := buildCountProductsQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = scanAll(ctx, r.db, func() (string, []any, error) { return sqlQuery, args, nil },
		func(scan func(dest ...any) error) error { return scan(&count) })
	return count, err
}

func (r *productRepository) readProducts(ctx context.Context, columns []string, sqlQuery string, args []any) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := scanAll(ctx, r.db, func() (string, []any, error) { return sqlQuery, args, nil },
		func(scan func(dest ...any) error) error {
			var p models.Product
			targets := productColumnTargets(&p)

			dest := make([]any, len(columns))
			for i, c := range columns {
				dest[i] = targets[c]
			}
			if err := scan(dest...); err != nil {
				return err
			}
			products = append(products, p)
			return nil
		})
	return products, err
}
