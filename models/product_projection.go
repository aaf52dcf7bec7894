package models

// Relation paths understood by the catalog store. Nested paths are
// dot-separated and require their parent to be loaded as well.
const (
	RelationVariants        = "variants"
	RelationVariantsPrices  = "variants.prices"
	RelationVariantsOptions = "variants.options"
	RelationOptions         = "options"
	RelationOptionsValues   = "options.values"
	RelationImages          = "images"
	RelationTags            = "tags"
	RelationCollection      = "collection"
	RelationType            = "type"
	RelationSalesChannels   = "sales_channels"
)

var defaultStoreProductsRelations = []string{
	RelationVariants,
	RelationVariantsPrices,
	RelationVariantsOptions,
	RelationOptions,
	RelationOptionsValues,
	RelationImages,
	RelationTags,
	RelationCollection,
	RelationType,
}

// storeProductColumns are the product attributes stored in the catalog.
var storeProductColumns = []string{
	"id",
	"title",
	"subtitle",
	"status",
	"external_id",
	"description",
	"handle",
	"is_giftcard",
	"discountable",
	"thumbnail",
	"profile_id",
	"collection_id",
	"type_id",
	"weight",
	"length",
	"height",
	"width",
	"hs_code",
	"origin_country",
	"mid_code",
	"material",
	"created_at",
	"updated_at",
	"deleted_at",
	"metadata",
}

// DefaultStoreProductsRelations returns the relations eagerly loaded for
// storefront products when the request has no `expand` parameter.
// A fresh slice is returned on every call.
func DefaultStoreProductsRelations() []string {
	return append([]string(nil), defaultStoreProductsRelations...)
}

// StoreProductColumns returns every product attribute the catalog store can
// read. Query shapes may not name any other attribute.
func StoreProductColumns() []string {
	return append([]string(nil), storeProductColumns...)
}

// DefaultStoreProductsFields returns the product attributes projected when
// the request has no `fields` parameter: every stored column.
func DefaultStoreProductsFields() []string {
	return StoreProductColumns()
}

// AllowedStoreProductsFields returns the closed set of attributes a
// storefront caller may request. It is the same list as the defaults.
func AllowedStoreProductsFields() []string {
	return DefaultStoreProductsFields()
}

// StoreProductRelations returns every relation path the catalog store can
// load for a product, including ones not loaded by default.
func StoreProductRelations() []string {
	return append(DefaultStoreProductsRelations(), RelationSalesChannels)
}
