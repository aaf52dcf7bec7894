package http

import (
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testProduct() models.Product {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Product{
		ID:           "prod_1",
		Title:        "Medusa T-Shirt",
		Handle:       strPtr("t-shirt"),
		Status:       models.ProductStatusPublished,
		CollectionID: strPtr("pcol_1"),
		CreatedAt:    &created,
		Metadata:     models.Metadata{"origin": "eu"},
		Variants: []models.ProductVariant{{
			ID:        "variant_1",
			ProductID: "prod_1",
			Title:     "S",
			Prices:    []models.MoneyAmount{{ID: "ma_1", VariantID: "variant_1", CurrencyCode: "eur", Amount: 1950}},
		}},
		Collection: &models.ProductCollection{ID: "pcol_1", Title: "Summer", Handle: "summer"},
		Images:     []models.Image{},
	}
}

func resolve(t *testing.T, raw string, cfg query.Config) query.Descriptor {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	d, err := query.Resolve(values, cfg)
	require.NoError(t, err)
	return d
}

func TestProjectProduct_SelectedFieldsAndRelations(t *testing.T) {
	d := resolve(t, "fields=title,handle&expand=variants.prices,collection", query.Config{})

	got, err := projectProduct(testProduct(), d)
	require.NoError(t, err)

	keys := make([]string, 0, len(got))
	for k := range got {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"id", "title", "handle", "variants", "collection"}, keys)

	assert.Equal(t, "prod_1", got["id"])
	assert.Equal(t, "t-shirt", got["handle"])

	variants := got["variants"].([]any)
	require.Len(t, variants, 1)
	variant := variants[0].(map[string]any)
	assert.Equal(t, "S", variant["title"], "nested relation objects are kept whole")
	assert.Len(t, variant["prices"], 1)

	assert.Equal(t, map[string]any{"id": "pcol_1", "title": "Summer", "handle": "summer"}, got["collection"])
}

func TestProjectProduct_NoProjectionKeepsEveryAttribute(t *testing.T) {
	d := resolve(t, "expand=", query.Config{})

	got, err := projectProduct(testProduct(), d)
	require.NoError(t, err)

	for _, field := range models.DefaultStoreProductsFields() {
		assert.Contains(t, got, field)
	}
	for key := range relationKeys {
		assert.NotContains(t, got, key, "relations are not requested")
	}
	assert.Equal(t, map[string]any{"origin": "eu"}, got["metadata"])
	assert.Equal(t, "2026-03-01T12:00:00Z", got["created_at"])
}

func TestProjectProduct_IDIsAlwaysKept(t *testing.T) {
	d := resolve(t, "fields=title&expand=", query.Config{})

	got, err := projectProduct(testProduct(), d)
	require.NoError(t, err)

	assert.Equal(t, models.ProjectedProduct{"id": "prod_1", "title": "Medusa T-Shirt"}, got)
}

func TestProjectProducts(t *testing.T) {
	d := resolve(t, "fields=handle&expand=", query.Config{IsList: true})

	got, err := projectProducts([]models.Product{testProduct(), {ID: "prod_2"}}, d)
	require.NoError(t, err)

	assert.Equal(t, []models.ProjectedProduct{
		{"id": "prod_1", "handle": "t-shirt"},
		{"id": "prod_2", "handle": nil},
	}, got)

	empty, err := projectProducts(nil, d)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
