package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// relationLoader attaches one relation path to products already read from
// the database. Loaders run parents first, so a nested loader can rely on
// its parent relation being populated.
type relationLoader func(ctx context.Context, db *DB, products []models.Product) error

// relationLoaders is ordered: parents before their nested paths.
var relationLoaders = []struct {
	path string
	load relationLoader
}{
	{models.RelationVariants, loadVariants},
	{models.RelationVariantsPrices, loadVariantPrices},
	{models.RelationVariantsOptions, loadVariantOptions},
	{models.RelationOptions, loadOptions},
	{models.RelationOptionsValues, loadOptionValues},
	{models.RelationImages, loadImages},
	{models.RelationTags, loadTags},
	{models.RelationCollection, loadCollection},
	{models.RelationType, loadType},
	{models.RelationSalesChannels, loadSalesChannels},
}

// relationSet validates the requested relation paths and closes the set
// under ancestors ("variants.prices" implies "variants").
func relationSet(relations []string) (map[string]bool, error) {
	known := models.StoreProductRelations()

	set := make(map[string]bool, len(relations))
	for _, r := range relations {
		if !slices.Contains(known, r) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRelation, r)
		}
		parts := strings.Split(r, ".")
		for i := range parts {
			set[strings.Join(parts[:i+1], ".")] = true
		}
	}
	return set, nil
}

func loadRelations(ctx context.Context, db *DB, products []models.Product, relations map[string]bool) error {
	if len(products) == 0 || len(relations) == 0 {
		return nil
	}

	for _, loader := range relationLoaders {
		if !relations[loader.path] {
			continue
		}
		if err := loader.load(ctx, db, products); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "loadRelations").
				Str("relation", loader.path).
				Msg("error loading product relation")
			return fmt.Errorf("loading %s: %w", loader.path, err)
		}
	}
	return nil
}

func productIDs(products []models.Product) []string {
	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	return ids
}

// scanAll runs the query built by build and calls scan for every row.
func scanAll(ctx context.Context, db *DB, build func() (string, []any, error), scan func(scan func(dest ...any) error) error) error {
	sqlQuery, args, err := build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.queryWithRetry(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows.Scan); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func loadVariants(ctx context.Context, db *DB, products []models.Product) error {
	byProduct := make(map[string][]models.ProductVariant)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildVariantsQuery(productIDs(products)) },
		func(scan func(dest ...any) error) error {
			var v models.ProductVariant
			if err := scan(&v.ID, &v.ProductID, &v.Title, &v.SKU, &v.Barcode, &v.EAN, &v.UPC,
				&v.InventoryQuantity, &v.AllowBackorder, &v.ManageInventory, &v.VariantRank,
				&v.CreatedAt, &v.UpdatedAt); err != nil {
				return err
			}
			byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		products[i].Variants = nonNil(byProduct[products[i].ID])
	}
	return nil
}

func variantIDs(products []models.Product) []string {
	var ids []string
	for i := range products {
		for _, v := range products[i].Variants {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

func loadVariantPrices(ctx context.Context, db *DB, products []models.Product) error {
	ids := variantIDs(products)
	if len(ids) == 0 {
		return nil
	}

	byVariant := make(map[string][]models.MoneyAmount)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildPricesQuery(ids) },
		func(scan func(dest ...any) error) error {
			var m models.MoneyAmount
			if err := scan(&m.ID, &m.VariantID, &m.CurrencyCode, &m.Amount, &m.MinQuantity, &m.MaxQuantity, &m.RegionID); err != nil {
				return err
			}
			byVariant[m.VariantID] = append(byVariant[m.VariantID], m)
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		for j := range products[i].Variants {
			products[i].Variants[j].Prices = nonNil(byVariant[products[i].Variants[j].ID])
		}
	}
	return nil
}

func loadVariantOptions(ctx context.Context, db *DB, products []models.Product) error {
	ids := variantIDs(products)
	if len(ids) == 0 {
		return nil
	}

	byVariant := make(map[string][]models.ProductOptionValue)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildOptionValuesByVariantQuery(ids) },
		func(scan func(dest ...any) error) error {
			var v models.ProductOptionValue
			if err := scan(&v.ID, &v.OptionID, &v.VariantID, &v.Value); err != nil {
				return err
			}
			byVariant[v.VariantID] = append(byVariant[v.VariantID], v)
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		for j := range products[i].Variants {
			products[i].Variants[j].Options = nonNil(byVariant[products[i].Variants[j].ID])
		}
	}
	return nil
}

func loadOptions(ctx context.Context, db *DB, products []models.Product) error {
	byProduct := make(map[string][]models.ProductOption)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildOptionsQuery(productIDs(products)) },
		func(scan func(dest ...any) error) error {
			var o models.ProductOption
			if err := scan(&o.ID, &o.ProductID, &o.Title); err != nil {
				return err
			}
			byProduct[o.ProductID] = append(byProduct[o.ProductID], o)
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		products[i].Options = nonNil(byProduct[products[i].ID])
	}
	return nil
}

func loadOptionValues(ctx context.Context, db *DB, products []models.Product) error {
	var ids []string
	for i := range products {
		for _, o := range products[i].Options {
			ids = append(ids, o.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	byOption := make(map[string][]models.ProductOptionValue)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildOptionValuesByOptionQuery(ids) },
		func(scan func(dest ...any) error) error {
			var v models.ProductOptionValue
			if err := scan(&v.ID, &v.OptionID, &v.VariantID, &v.Value); err != nil {
				return err
			}
			byOption[v.OptionID] = append(byOption[v.OptionID], v)
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		for j := range products[i].Options {
			products[i].Options[j].Values = nonNil(byOption[products[i].Options[j].ID])
		}
	}
	return nil
}

func loadImages(ctx context.Context, db *DB, products []models.Product) error {
	byProduct := make(map[string][]models.Image)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildImagesQuery(productIDs(products)) },
		func(scan func(dest ...any) error) error {
			var productID string
			var img models.Image
			if err := scan(&productID, &img.ID, &img.URL); err != nil {
				return err
			}
			byProduct[productID] = append(byProduct[productID], img)
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		products[i].Images = nonNil(byProduct[products[i].ID])
	}
	return nil
}

func loadTags(ctx context.Context, db *DB, products []models.Product) error {
	byProduct := make(map[string][]models.ProductTag)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildTagsQuery(productIDs(products)) },
		func(scan func(dest ...any) error) error {
			var productID string
			var tag models.ProductTag
			if err := scan(&productID, &tag.ID, &tag.Value); err != nil {
				return err
			}
			byProduct[productID] = append(byProduct[productID], tag)
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		products[i].Tags = nonNil(byProduct[products[i].ID])
	}
	return nil
}

func loadCollection(ctx context.Context, db *DB, products []models.Product) error {
	ids := distinctRefs(products, func(p models.Product) *string { return p.CollectionID })
	if len(ids) == 0 {
		return nil
	}

	byID := make(map[string]models.ProductCollection)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildCollectionsQuery(ids) },
		func(scan func(dest ...any) error) error {
			var c models.ProductCollection
			if err := scan(&c.ID, &c.Title, &c.Handle); err != nil {
				return err
			}
			byID[c.ID] = c
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].CollectionID == nil {
			continue
		}
		if c, ok := byID[*products[i].CollectionID]; ok {
			products[i].Collection = &c
		}
	}
	return nil
}

func loadType(ctx context.Context, db *DB, products []models.Product) error {
	ids := distinctRefs(products, func(p models.Product) *string { return p.TypeID })
	if len(ids) == 0 {
		return nil
	}

	byID := make(map[string]models.ProductType)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildTypesQuery(ids) },
		func(scan func(dest ...any) error) error {
			var t models.ProductType
			if err := scan(&t.ID, &t.Value); err != nil {
				return err
			}
			byID[t.ID] = t
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].TypeID == nil {
			continue
		}
		if t, ok := byID[*products[i].TypeID]; ok {
			products[i].Type = &t
		}
	}
	return nil
}

func loadSalesChannels(ctx context.Context, db *DB, products []models.Product) error {
	byProduct := make(map[string][]models.SalesChannel)
	err := scanAll(ctx, db, func() (string, []any, error) { return buildSalesChannelsQuery(productIDs(products)) },
		func(scan func(dest ...any) error) error {
			var productID string
			var sc models.SalesChannel
			if err := scan(&productID, &sc.ID, &sc.Name, &sc.Description, &sc.IsDisabled); err != nil {
				return err
			}
			byProduct[productID] = append(byProduct[productID], sc)
			return nil
		})
	if err != nil {
		return err
	}

	for i := range products {
		products[i].SalesChannels = nonNil(byProduct[products[i].ID])
	}
	return nil
}

func distinctRefs(products []models.Product, ref func(models.Product) *string) []string {
	var ids []string
	for _, p := range products {
		if id := ref(p); id != nil && !slices.Contains(ids, *id) {
			ids = append(ids, *id)
		}
	}
	return ids
}

// nonNil keeps loaded-but-empty relations distinguishable from relations
// that were not requested: the former serialize as [], the latter as null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
