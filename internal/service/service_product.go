package service

import (
	"context"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

type productService struct {
	productRepository store.ProductRepository

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (p *productService) ListProducts(ctx context.Context, filter models.ListProductsFilter, d query.Descriptor) ([]models.Product, int, error) {
	return p.productRepository.ListProducts(ctx, filter, d)
}

func (p *productService) GetProduct(ctx context.Context, id string, d query.Descriptor) (models.Product, error) {
	return p.productRepository.GetProduct(ctx, id, d)
}
