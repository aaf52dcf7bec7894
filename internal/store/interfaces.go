// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the catalog persistence layer: PostgreSQL
// repositories for products and publishable API keys, the optional Redis
// scope cache, and the retry policy for transient database errors.
package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProductRepository reads storefront-visible products.
type ProductRepository interface {
	ListProducts(ctx context.Context, filter models.ListProductsFilter, d query.Descriptor) ([]models.Product, int, error)
	GetProduct(ctx context.Context, id string, d query.Descriptor) (models.Product, error)
	IsProductInSalesChannels(ctx context.Context, productID string, salesChannelIDs []string) (bool, error)
	SearchProducts(ctx context.Context, q string, offset, limit int) ([]models.Product, int, error)
	ListIndexableProducts(ctx context.Context, afterID string, limit int) ([]models.Product, error)
	ListHiddenProductIDs(ctx context.Context, afterID string, limit int) ([]string, error)
}

// PublishableKeyRepository resolves publishable API keys.
type PublishableKeyRepository interface {
	GetScopes(ctx context.Context, keyID string) (models.PublishableKeyScopes, error)
}

// PublishableKeyCache caches resolved scopes. GetScopes returns
// [ErrCacheMiss] for absent entries.
type PublishableKeyCache interface {
	GetScopes(ctx context.Context, keyID string) (models.PublishableKeyScopes, error)
	SetScopes(ctx context.Context, scopes models.PublishableKeyScopes) error
}

// PublishableKeyStorage is the read path used by the service layer.
type PublishableKeyStorage interface {
	GetScopes(ctx context.Context, keyID string) (models.PublishableKeyScopes, error)
}
