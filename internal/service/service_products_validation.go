package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
)

type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

func NewProductValidationService() ProductServiceWrapper {
	return &ProductValidationService{
		validator: validators.NewProductsValidator(),
	}
}

func (v *ProductValidationService) ListProducts(ctx context.Context, filter models.ListProductsFilter, d query.Descriptor) ([]models.Product, int, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidListFilter, err)
	}

	return v.inner.ListProducts(ctx, filter, d)
}

func (v *ProductValidationService) GetProduct(ctx context.Context, id string, d query.Descriptor) (models.Product, error) {
	if err := v.validator.Validate(ctx, models.ListProductsFilter{IDs: []string{id}}, validators.FieldIDs); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidListFilter, err)
	}

	return v.inner.GetProduct(ctx, id, d)
}

func (v *ProductValidationService) Wrap(wrapper ProductService) ProductService {
	v.inner = wrapper
	return v
}

type SearchValidationService struct {
	inner     SearchService
	validator validators.Validator
}

func NewSearchValidationService() SearchServiceWrapper {
	return &SearchValidationService{
		validator: validators.NewProductsValidator(),
	}
}

func (v *SearchValidationService) Search(ctx context.Context, request models.SearchRequest) (models.SearchResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.SearchResponse{}, fmt.Errorf("%w: %w", ErrInvalidSearchRequest, err)
	}

	return v.inner.Search(ctx, request)
}

func (v *SearchValidationService) Wrap(wrapper SearchService) SearchService {
	v.inner = wrapper
	return v
}
