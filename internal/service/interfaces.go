// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the storefront business logic that sits between the
// HTTP handlers and the catalog store.
package service

import (
	"context"

	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ProductServiceWrapper,SearchServiceWrapper

type ProductService interface {
	ListProducts(ctx context.Context, filter models.ListProductsFilter, d query.Descriptor) ([]models.Product, int, error)
	GetProduct(ctx context.Context, id string, d query.Descriptor) (models.Product, error)
}

type SearchService interface {
	Search(ctx context.Context, request models.SearchRequest) (models.SearchResponse, error)
}

// PublishableKeyService resolves publishable API keys and enforces their
// sales channel scope.
type PublishableKeyService interface {
	GetScopes(ctx context.Context, keyID string) (models.PublishableKeyScopes, error)
	ValidateSalesChannels(ctx context.Context, scopes models.PublishableKeyScopes, salesChannelIDs []string) error
	ValidateProductAssociation(ctx context.Context, scopes models.PublishableKeyScopes, productID string) error
}

// IndexService pushes storefront-visible products into the search engine.
type IndexService interface {
	// SyncIndex indexes every published product and returns how many were sent.
	SyncIndex(ctx context.Context) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ProductServiceWrapper defines middleware composition for ProductService.
// Implementations wrap an existing ProductService to add behavior such as
// validation.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService
}

// SearchServiceWrapper is the SearchService counterpart of [ProductServiceWrapper].
type SearchServiceWrapper interface {
	Wrap(SearchService) SearchService
}
