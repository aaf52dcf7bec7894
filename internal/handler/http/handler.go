package http

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/featureflag"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/metrics"
	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

// Names of the query shapes that may be overridden from a schema file.
const (
	ListProductsSchema    = "store_products_list"
	RetrieveProductSchema = "store_products_retrieve"
)

type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services
	flags    *featureflag.Router
	metrics  *metrics.Metrics

	listProductsQuery    query.Config
	retrieveProductQuery query.Config

	// salesChannels enables the sales_channel_id filter and relation.
	salesChannels bool

	traceIDs traceIDGenerator
	logger   *logger.Logger
}

// NewHandler resolves the query shapes of the product routes, applying
// overrides from schemas, and validates them. flags and m may be nil.
func NewHandler(services *service.Services, flags *featureflag.Router, schemas query.Schemas, m *metrics.Metrics, logger *logger.Logger) (*Handler, error) {
	if flags == nil {
		flags = featureflag.NewRouter(featureflag.Registry, nil)
	}

	h := &Handler{
		services:             services,
		flags:                flags,
		metrics:              m,
		listProductsQuery:    schemas.Lookup(ListProductsSchema, DefaultListProductsQuery()),
		retrieveProductQuery: schemas.Lookup(RetrieveProductSchema, DefaultRetrieveProductQuery()),
		traceIDs:             utils.NewUUIDGenerator(),
		logger:               logger,
	}

	// an override without a relation allow-list still may not reach
	// relations hidden behind a flag
	if len(h.listProductsQuery.AllowedRelations) == 0 {
		h.listProductsQuery.AllowedRelations = models.StoreProductRelations()
	}
	if len(h.retrieveProductQuery.AllowedRelations) == 0 {
		h.retrieveProductQuery.AllowedRelations = models.StoreProductRelations()
	}

	if err := checkCatalogShape(h.listProductsQuery, true); err != nil {
		return nil, fmt.Errorf("%s: %w", ListProductsSchema, err)
	}
	if err := checkCatalogShape(h.retrieveProductQuery, false); err != nil {
		return nil, fmt.Errorf("%s: %w", RetrieveProductSchema, err)
	}

	h.salesChannels = flags.IsFeatureEnabled(featureflag.SalesChannels.Key) ||
		flags.IsFeatureEnabled(featureflag.PublishableAPIKeys.Key)
	if !h.salesChannels {
		h.listProductsQuery.AllowedRelations = withoutRelation(h.listProductsQuery.AllowedRelations, models.RelationSalesChannels)
		h.retrieveProductQuery.AllowedRelations = withoutRelation(h.retrieveProductQuery.AllowedRelations, models.RelationSalesChannels)
	}

	if err := h.listProductsQuery.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ListProductsSchema, err)
	}
	if err := h.retrieveProductQuery.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", RetrieveProductSchema, err)
	}

	logger.Info().Strs("feature_flags", flags.Enabled()).Msg("http handler created")
	return h, nil
}

// DefaultListProductsQuery is the query shape of GET /store/products: default
// relations only, every attribute, no field allow-list.
func DefaultListProductsQuery() query.Config {
	return query.Config{
		DefaultRelations: models.DefaultStoreProductsRelations(),
		AllowedRelations: models.StoreProductRelations(),
		IsList:           true,
	}
}

// DefaultRetrieveProductQuery is the query shape of GET /store/products/{id}.
func DefaultRetrieveProductQuery() query.Config {
	return query.Config{
		DefaultRelations: models.DefaultStoreProductsRelations(),
		DefaultFields:    models.DefaultStoreProductsFields(),
		AllowedFields:    models.AllowedStoreProductsFields(),
		AllowedRelations: models.StoreProductRelations(),
	}
}

// checkCatalogShape rejects query shapes the catalog store cannot serve:
// a list route resolved without pagination, attributes that are not product
// columns and relations without a loader.
func checkCatalogShape(cfg query.Config, isList bool) error {
	if cfg.IsList != isList {
		return fmt.Errorf("%w: is_list must be %t", query.ErrInvalidConfig, isList)
	}

	columns := models.StoreProductColumns()
	for _, f := range slices.Concat(cfg.DefaultFields, cfg.AllowedFields) {
		if !slices.Contains(columns, f) {
			return fmt.Errorf("%w: %q is not a product attribute", query.ErrInvalidConfig, f)
		}
	}
	if order := strings.TrimPrefix(cfg.DefaultOrder, "-"); order != "" && !slices.Contains(columns, order) {
		return fmt.Errorf("%w: default order %q is not a product attribute", query.ErrInvalidConfig, order)
	}

	relations := models.StoreProductRelations()
	for _, r := range slices.Concat(cfg.DefaultRelations, cfg.AllowedRelations) {
		if !slices.Contains(relations, r) {
			return fmt.Errorf("%w: relation %q is not loadable", query.ErrInvalidConfig, r)
		}
	}

	return nil
}

func withoutRelation(relations []string, relation string) []string {
	out := make([]string, 0, len(relations))
	for _, r := range relations {
		if r != relation && !strings.HasPrefix(r, relation+".") {
			out = append(out, r)
		}
	}
	return out
}
