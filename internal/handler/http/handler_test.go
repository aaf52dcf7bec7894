package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/featureflag"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_DefaultQueryShapes(t *testing.T) {
	h, err := NewHandler(&service.Services{}, nil, nil, nil, logger.Nop())
	require.NoError(t, err)

	list := h.listProductsQuery
	assert.True(t, list.IsList)
	assert.Equal(t, models.DefaultStoreProductsRelations(), list.DefaultRelations)
	assert.Nil(t, list.DefaultFields, "the list route projects every attribute")
	assert.Nil(t, list.AllowedFields)

	retrieve := h.retrieveProductQuery
	assert.False(t, retrieve.IsList)
	assert.Equal(t, models.DefaultStoreProductsRelations(), retrieve.DefaultRelations)
	assert.Equal(t, models.DefaultStoreProductsFields(), retrieve.DefaultFields)
	assert.Equal(t, models.AllowedStoreProductsFields(), retrieve.AllowedFields)
}

func TestNewHandler_SalesChannelsRelationFollowsFlags(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]bool
		want      bool
	}{
		{name: "no flags", want: false},
		{name: "sales channels", overrides: map[string]bool{"sales_channels": true}, want: true},
		{name: "publishable keys", overrides: map[string]bool{"publishable_api_keys": true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := featureflag.NewRouter(featureflag.Registry, tt.overrides)
			h, err := NewHandler(&service.Services{}, flags, nil, nil, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, h.salesChannels)
			assert.Equal(t, tt.want, contains(h.listProductsQuery.AllowedRelations, models.RelationSalesChannels))
			assert.Equal(t, tt.want, contains(h.retrieveProductQuery.AllowedRelations, models.RelationSalesChannels))
		})
	}
}

func TestNewHandler_SchemaOverride(t *testing.T) {
	schemas := query.Schemas{
		ListProductsSchema: {
			DefaultFields:    []string{"id", "title"},
			AllowedFields:    []string{"id", "title", "handle"},
			DefaultRelations: []string{"images"},
			IsList:           true,
			DefaultLimit:     10,
			MaxLimit:         50,
		},
	}

	h, err := NewHandler(&service.Services{}, nil, schemas, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "title"}, h.listProductsQuery.DefaultFields)
	assert.Equal(t, 50, h.listProductsQuery.MaxLimit)
	assert.Equal(t, models.DefaultStoreProductsFields(), h.retrieveProductQuery.DefaultFields)
}

func TestNewHandler_InvalidSchema(t *testing.T) {
	schemas := query.Schemas{
		ListProductsSchema: {DefaultRelations: []string{"Variants!"}},
	}

	h, err := NewHandler(&service.Services{}, nil, schemas, nil, logger.Nop())
	assert.Nil(t, h)
	require.ErrorIs(t, err, query.ErrInvalidConfig)
	assert.Contains(t, err.Error(), ListProductsSchema)
}

func TestNewHandler_RejectsShapesTheCatalogCannotServe(t *testing.T) {
	tests := []struct {
		name    string
		schemas query.Schemas
		schema  string
		message string
	}{
		{
			name:    "list route without pagination",
			schemas: query.Schemas{ListProductsSchema: {DefaultRelations: []string{"images"}}},
			schema:  ListProductsSchema,
			message: "is_list must be true",
		},
		{
			name:    "paginated retrieve route",
			schemas: query.Schemas{RetrieveProductSchema: {IsList: true}},
			schema:  RetrieveProductSchema,
			message: "is_list must be false",
		},
		{
			name:    "default field outside the catalog",
			schemas: query.Schemas{RetrieveProductSchema: {DefaultFields: []string{"password_hash"}}},
			schema:  RetrieveProductSchema,
			message: `"password_hash" is not a product attribute`,
		},
		{
			name: "allowed field outside the catalog",
			schemas: query.Schemas{ListProductsSchema: {
				IsList:        true,
				AllowedFields: []string{"title", "cost_price"},
			}},
			schema:  ListProductsSchema,
			message: `"cost_price" is not a product attribute`,
		},
		{
			name:    "default order outside the catalog",
			schemas: query.Schemas{ListProductsSchema: {IsList: true, DefaultOrder: "-popularity"}},
			schema:  ListProductsSchema,
			message: `"popularity"`,
		},
		{
			name:    "default relation without a loader",
			schemas: query.Schemas{RetrieveProductSchema: {DefaultRelations: []string{"customer"}}},
			schema:  RetrieveProductSchema,
			message: `relation "customer" is not loadable`,
		},
		{
			name: "allowed relation without a loader",
			schemas: query.Schemas{ListProductsSchema: {
				IsList:           true,
				AllowedRelations: []string{"variants", "variants.inventory_items"},
			}},
			schema:  ListProductsSchema,
			message: `relation "variants.inventory_items" is not loadable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandler(&service.Services{}, nil, tt.schemas, nil, logger.Nop())

			assert.Nil(t, h)
			require.ErrorIs(t, err, query.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.schema)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNewHandler_OverrideWithoutRelationAllowList(t *testing.T) {
	schemas := query.Schemas{
		ListProductsSchema: {IsList: true, DefaultRelations: []string{"images"}},
	}

	h, err := NewHandler(&service.Services{}, nil, schemas, nil, logger.Nop())
	require.NoError(t, err)

	assert.NotEmpty(t, h.listProductsQuery.AllowedRelations)
	assert.False(t, contains(h.listProductsQuery.AllowedRelations, models.RelationSalesChannels),
		"sales_channels stays hidden while its flags are off")
}

func TestNewHandler_OverriddenListRouteStillPaginates(t *testing.T) {
	schemas := query.Schemas{
		ListProductsSchema: {IsList: true, DefaultRelations: []string{"images"}},
	}

	h, err := NewHandler(&service.Services{}, nil, schemas, nil, logger.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/store/products?limit=-1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_pagination")
}

func TestWithoutRelation(t *testing.T) {
	in := []string{"variants", "sales_channels", "sales_channels.x", "tags"}
	out := withoutRelation(in, "sales_channels")

	assert.Equal(t, []string{"variants", "tags"}, out)
	assert.Len(t, in, 4, "input must not be modified")
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
