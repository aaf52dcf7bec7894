package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-storefront/models"
)

const (
	FieldQ               = "q"
	FieldOffset          = "offset"
	FieldLimit           = "limit"
	FieldFilter          = "filter"
	FieldIDs             = "id"
	FieldCollectionIDs   = "collection_id"
	FieldTypeIDs         = "type_id"
	FieldTags            = "tags"
	FieldSalesChannelIDs = "sales_channel_id"
	FieldKeyID           = "key_id"
)

const (
	// MaxSearchLimit is the largest page a search request may ask for.
	MaxSearchLimit = 1000

	// MaxQueryLength bounds the free-text search term.
	MaxQueryLength = 512
)

type ProductsValidator struct {
}

func NewProductsValidator() Validator {
	return &ProductsValidator{}
}

func (v *ProductsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SearchRequest:
		return v.validateSearchRequest(ctx, value, fields...)
	case *models.SearchRequest:
		return v.validateSearchRequest(ctx, *value, fields...)

	case models.ListProductsFilter:
		return v.validateListFilter(ctx, value, fields...)
	case *models.ListProductsFilter:
		return v.validateListFilter(ctx, *value, fields...)

	case models.PublishableKeyScopes:
		return v.validateScopes(ctx, value, fields...)
	case *models.PublishableKeyScopes:
		return v.validateScopes(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProductsValidator) validateSearchRequest(_ context.Context, request models.SearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQ, FieldOffset, FieldLimit, FieldFilter}
	}

	for _, f := range fields {
		switch f {
		case FieldQ:
			if len(request.Q) > MaxQueryLength {
				return ErrQueryTooLong
			}
		case FieldOffset:
			if request.Offset != nil && *request.Offset < 0 {
				return ErrInvalidOffset
			}
		case FieldLimit:
			if request.Limit != nil && (*request.Limit < 0 || *request.Limit > MaxSearchLimit) {
				return fmt.Errorf("%w: must be between 0 and %d", ErrInvalidLimit, MaxSearchLimit)
			}
		case FieldFilter:
			switch request.Filter.(type) {
			case nil, string, []any, map[string]any:
			default:
				return ErrInvalidFilter
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProductsValidator) validateListFilter(_ context.Context, filter models.ListProductsFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQ, FieldIDs, FieldCollectionIDs, FieldTypeIDs, FieldTags, FieldSalesChannelIDs}
	}

	for _, f := range fields {
		var ids []string
		switch f {
		case FieldQ:
			if len(filter.Q) > MaxQueryLength {
				return ErrQueryTooLong
			}
			continue
		case FieldIDs:
			ids = filter.IDs
		case FieldCollectionIDs:
			ids = filter.CollectionIDs
		case FieldTypeIDs:
			ids = filter.TypeIDs
		case FieldTags:
			ids = filter.Tags
		case FieldSalesChannelIDs:
			ids = filter.SalesChannelIDs
		default:
			return ErrUnknownField
		}

		if err := validateIdentifiers(ids); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}

func (v *ProductsValidator) validateScopes(_ context.Context, scopes models.PublishableKeyScopes, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeyID, FieldSalesChannelIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldKeyID:
			if strings.TrimSpace(scopes.KeyID) == "" {
				return ErrEmptyKeyID
			}
		case FieldSalesChannelIDs:
			if err := validateIdentifiers(scopes.SalesChannelIDs); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateIdentifiers(ids []string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return ErrEmptyIdentifier
		}
	}
	return nil
}
