// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the external product search engine.
//
// [SearchEngine] hides the engine's REST API from the service layer. The
// HTTP implementation ([NewHTTPSearchEngine]) targets a MeiliSearch-style
// API: POST /indexes/{index}/search, POST /indexes/{index}/documents and
// POST /indexes/{index}/documents/delete-batch.
//
// Transport failures and HTTP statuses are mapped to the sentinel errors in
// errors.go so callers can use [errors.Is], e.g. [ErrSearchUnavailable] for
// connection failures and 5xx responses.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/search_engine_mock.go -package=mock

// SearchEngine queries and feeds the product search index.
type SearchEngine interface {
	// Search runs req against the configured index and returns the raw hits
	// together with every other top-level key of the engine response.
	Search(ctx context.Context, req models.SearchRequest) (models.SearchResponse, error)

	// IndexProducts adds or replaces documents in the configured index,
	// keyed by product id.
	IndexProducts(ctx context.Context, products []models.Product) error

	// DeleteProducts removes documents by product id. Ids absent from the
	// index are ignored.
	DeleteProducts(ctx context.Context, ids []string) error
}
