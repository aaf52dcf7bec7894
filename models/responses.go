package models

import "encoding/json"

// ProjectedProduct is a product reduced to the attributes and relations
// selected for a single request.
type ProjectedProduct map[string]any

// ProductsListResponse is returned by GET /store/products.
type ProductsListResponse struct {
	Products []ProjectedProduct `json:"products"`

	// Count is the total number of products matching the filters,
	// regardless of pagination.
	Count int `json:"count"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProductResponse is returned by GET /store/products/{id}.
type ProductResponse struct {
	Product ProjectedProduct `json:"product"`
}

// SearchResponse is returned by POST /store/products/search.
//
// Hits is always present. Facets holds every other top-level key produced
// by the search engine (estimatedTotalHits, facetDistribution, ...) and is
// flattened into the same JSON object.
type SearchResponse struct {
	Hits   []any
	Facets map[string]any
}

// MarshalJSON flattens Facets next to "hits".
func (r SearchResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Facets)+1)
	for k, v := range r.Facets {
		out[k] = v
	}

	hits := r.Hits
	if hits == nil {
		hits = []any{}
	}
	out["hits"] = hits

	return json.Marshal(out)
}

// UnmarshalJSON splits "hits" from the remaining keys.
func (r *SearchResponse) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.Hits = nil
	if hits, ok := raw["hits"].([]any); ok {
		r.Hits = hits
	}
	delete(raw, "hits")

	r.Facets = raw
	return nil
}

// ErrorResponse is the JSON body written for every rejected request.
type ErrorResponse struct {
	// Type is a coarse error class ("invalid_data", "not_found", ...).
	Type string `json:"type"`

	// Code is a machine-readable error code, stable across releases.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`
}
