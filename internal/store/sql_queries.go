// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/models"
)

const productsAlias = "p"

// productColumns is the closed set of product attributes that can reach SQL.
// The order is the order of the SELECT list when no projection is set.
var productColumns = models.StoreProductColumns()

// productColumnTargets maps every column of productColumns to the field of p
// it is scanned into.
func productColumnTargets(p *models.Product) map[string]any {
	return map[string]any{
		"id":             &p.ID,
		"title":          &p.Title,
		"subtitle":       &p.Subtitle,
		"status":         &p.Status,
		"external_id":    &p.ExternalID,
		"description":    &p.Description,
		"handle":         &p.Handle,
		"is_giftcard":    &p.IsGiftcard,
		"discountable":   &p.Discountable,
		"thumbnail":      &p.Thumbnail,
		"profile_id":     &p.ProfileID,
		"collection_id":  &p.CollectionID,
		"type_id":        &p.TypeID,
		"weight":         &p.Weight,
		"length":         &p.Length,
		"height":         &p.Height,
		"width":          &p.Width,
		"hs_code":        &p.HSCode,
		"origin_country": &p.OriginCountry,
		"mid_code":       &p.MIDCode,
		"material":       &p.Material,
		"created_at":     &p.CreatedAt,
		"updated_at":     &p.UpdatedAt,
		"deleted_at":     &p.DeletedAt,
		"metadata":       &p.Metadata,
	}
}

// selectColumns returns the columns to read for the requested projection.
// "id" is always read; foreign keys are added when the matching relation has
// to be loaded. Unknown names fail with [ErrUnknownField].
func selectColumns(fields []string, relations map[string]bool) ([]string, error) {
	if fields == nil {
		return slices.Clone(productColumns), nil
	}

	columns := []string{"id"}
	for _, f := range fields {
		if !slices.Contains(productColumns, f) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if !slices.Contains(columns, f) {
			columns = append(columns, f)
		}
	}

	if relations[models.RelationCollection] && !slices.Contains(columns, "collection_id") {
		columns = append(columns, "collection_id")
	}
	if relations[models.RelationType] && !slices.Contains(columns, "type_id") {
		columns = append(columns, "type_id")
	}

	return columns, nil
}

func qualified(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = productsAlias + "." + c
	}
	return out
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// storefrontVisible restricts every storefront query to published,
// non-deleted products.
func storefrontVisible() squirrel.And {
	return squirrel.And{
		squirrel.Eq{"p.status": string(models.ProductStatusPublished)},
		squirrel.Eq{"p.deleted_at": nil},
	}
}

// existsIn builds "EXISTS (SELECT 1 FROM table WHERE table.product_id = p.id
// AND table.column IN (...))". Placeholders are renumbered by the outer
// builder.
func existsIn(table, column string, ids []string) (squirrel.Sqlizer, error) {
	sql, args, err := squirrel.Select("1").
		From(table).
		Where(table + ".product_id = p.id").
		Where(squirrel.Eq{table + "." + column: ids}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return squirrel.Expr("EXISTS ("+sql+")", args...), nil
}

func productFilterWhere(filter models.ListProductsFilter) (squirrel.And, error) {
	where := storefrontVisible()

	if len(filter.IDs) > 0 {
		where = append(where, squirrel.Eq{"p.id": filter.IDs})
	}
	if filter.Q != "" {
		where = append(where, searchTermWhere(filter.Q))
	}
	if filter.Title != "" {
		where = append(where, squirrel.Eq{"p.title": filter.Title})
	}
	if filter.Handle != "" {
		where = append(where, squirrel.Eq{"p.handle": filter.Handle})
	}
	if len(filter.CollectionIDs) > 0 {
		where = append(where, squirrel.Eq{"p.collection_id": filter.CollectionIDs})
	}
	if len(filter.TypeIDs) > 0 {
		where = append(where, squirrel.Eq{"p.type_id": filter.TypeIDs})
	}
	if filter.IsGiftcard != nil {
		where = append(where, squirrel.Eq{"p.is_giftcard": *filter.IsGiftcard})
	}
	if len(filter.Tags) > 0 {
		expr, err := existsIn("product_tag_links", "tag_id", filter.Tags)
		if err != nil {
			return nil, err
		}
		where = append(where, expr)
	}
	if len(filter.SalesChannelIDs) > 0 {
		expr, err := existsIn("product_sales_channels", "sales_channel_id", filter.SalesChannelIDs)
		if err != nil {
			return nil, err
		}
		where = append(where, expr)
	}

	return where, nil
}

func searchTermWhere(q string) squirrel.Or {
	pattern := "%" + q + "%"
	return squirrel.Or{
		squirrel.ILike{"p.title": pattern},
		squirrel.ILike{"p.subtitle": pattern},
		squirrel.ILike{"p.description": pattern},
		squirrel.ILike{"p.handle": pattern},
	}
}

func orderByClause(order query.Order) (string, error) {
	if !slices.Contains(productColumns, order.Field) {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, order.Field)
	}
	direction := "ASC"
	if order.Desc {
		direction = "DESC"
	}
	return fmt.Sprintf("p.%s %s", order.Field, direction), nil
}

// buildListProductsQuery builds the page query of GET /store/products.
func buildListProductsQuery(columns []string, filter models.ListProductsFilter, page query.Pagination, order query.Order) (string, []any, error) {
	where, err := productFilterWhere(filter)
	if err != nil {
		return "", nil, err
	}
	orderBy, err := orderByClause(order)
	if err != nil {
		return "", nil, err
	}

	return psql().
		Select(qualified(columns)...).
		From("products " + productsAlias).
		Where(where).
		OrderBy(orderBy, "p.id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
}

// buildCountProductsQuery counts the products matching filter regardless of
// pagination.
func buildCountProductsQuery(filter models.ListProductsFilter) (string, []any, error) {
	where, err := productFilterWhere(filter)
	if err != nil {
		return "", nil, err
	}

	return psql().
		Select("COUNT(*)").
		From("products " + productsAlias).
		Where(where).
		ToSql()
}

func buildGetProductQuery(columns []string, id string) (string, []any, error) {
	return psql().
		Select(qualified(columns)...).
		From("products " + productsAlias).
		Where(storefrontVisible()).
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
}

// buildIsProductInSalesChannelsQuery reports whether productID is attached
// to at least one of salesChannelIDs.
func buildIsProductInSalesChannelsQuery(productID string, salesChannelIDs []string) (string, []any, error) {
	return psql().
		Select("1").
		From("product_sales_channels").
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"sales_channel_id": salesChannelIDs}).
		Limit(1).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
}

// buildIndexableProductsQuery pages through published products by id.
func buildIndexableProductsQuery(afterID string, limit int) (string, []any, error) {
	builder := psql().
		Select(qualified(productColumns)...).
		From("products " + productsAlias).
		Where(storefrontVisible()).
		OrderBy("p.id ASC").
		Limit(uint64(limit))
	if afterID != "" {
		builder = builder.Where(squirrel.Gt{"p.id": afterID})
	}
	return builder.ToSql()
}

// buildHiddenProductIDsQuery pages through ids of products the storefront
// no longer shows: unpublished or soft-deleted.
func buildHiddenProductIDsQuery(afterID string, limit int) (string, []any, error) {
	builder := psql().
		Select("p.id").
		From("products " + productsAlias).
		Where(squirrel.Or{
			squirrel.NotEq{"p.status": string(models.ProductStatusPublished)},
			squirrel.NotEq{"p.deleted_at": nil},
		}).
		OrderBy("p.id ASC").
		Limit(uint64(limit))
	if afterID != "" {
		builder = builder.Where(squirrel.Gt{"p.id": afterID})
	}
	return builder.ToSql()
}

// relation queries, all keyed by a set of parent ids
func buildVariantsQuery(productIDs []string) (string, []any, error) {
	return psql().
		Select("id", "product_id", "title", "sku", "barcode", "ean", "upc",
			"inventory_quantity", "allow_backorder", "manage_inventory", "variant_rank",
			"created_at", "updated_at").
		From("product_variants").
		Where(squirrel.Eq{"product_id": productIDs}).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("variant_rank ASC", "created_at ASC").
		ToSql()
}

func buildPricesQuery(variantIDs []string) (string, []any, error) {
	return psql().
		Select("id", "variant_id", "currency_code", "amount", "min_quantity", "max_quantity", "region_id").
		From("money_amounts").
		Where(squirrel.Eq{"variant_id": variantIDs}).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("currency_code ASC").
		ToSql()
}

func buildOptionValuesByVariantQuery(variantIDs []string) (string, []any, error) {
	return psql().
		Select("id", "option_id", "variant_id", "value").
		From("product_option_values").
		Where(squirrel.Eq{"variant_id": variantIDs}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
}

func buildOptionValuesByOptionQuery(optionIDs []string) (string, []any, error) {
	return psql().
		Select("id", "option_id", "variant_id", "value").
		From("product_option_values").
		Where(squirrel.Eq{"option_id": optionIDs}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
}

func buildOptionsQuery(productIDs []string) (string, []any, error) {
	return psql().
		Select("id", "product_id", "title").
		From("product_options").
		Where(squirrel.Eq{"product_id": productIDs}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
}

func buildImagesQuery(productIDs []string) (string, []any, error) {
	return psql().
		Select("pi.product_id", "i.id", "i.url").
		From("product_images pi").
		Join("images i ON i.id = pi.image_id").
		Where(squirrel.Eq{"pi.product_id": productIDs}).
		Where(squirrel.Eq{"i.deleted_at": nil}).
		ToSql()
}

func buildTagsQuery(productIDs []string) (string, []any, error) {
	return psql().
		Select("ptl.product_id", "t.id", "t.value").
		From("product_tag_links ptl").
		Join("product_tags t ON t.id = ptl.tag_id").
		Where(squirrel.Eq{"ptl.product_id": productIDs}).
		ToSql()
}

func buildCollectionsQuery(collectionIDs []string) (string, []any, error) {
	return psql().
		Select("id", "title", "handle").
		From("product_collections").
		Where(squirrel.Eq{"id": collectionIDs}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
}

func buildTypesQuery(typeIDs []string) (string, []any, error) {
	return psql().
		Select("id", "value").
		From("product_types").
		Where(squirrel.Eq{"id": typeIDs}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
}

func buildSalesChannelsQuery(productIDs []string) (string, []any, error) {
	return psql().
		Select("psc.product_id", "sc.id", "sc.name", "sc.description", "sc.is_disabled").
		From("product_sales_channels psc").
		Join("sales_channels sc ON sc.id = psc.sales_channel_id").
		Where(squirrel.Eq{"psc.product_id": productIDs}).
		Where(squirrel.Eq{"sc.deleted_at": nil}).
		ToSql()
}

const (
	findPublishableKey = `SELECT id, revoked_at
		FROM publishable_api_keys
		WHERE id = $1;`

	findPublishableKeySalesChannels = `SELECT sales_channel_id
		FROM publishable_api_key_sales_channels
		WHERE publishable_key_id = $1
		ORDER BY sales_channel_id;`
)
