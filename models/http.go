package models

// ListProductsFilter holds the entity-specific filters accepted by
// GET /store/products. Empty fields do not restrict the result.
type ListProductsFilter struct {
	// IDs restricts the result to the given product identifiers.
	IDs []string `json:"id,omitempty"`

	// Q is a free-text term matched against title, subtitle, description
	// and handle (case-insensitive).
	Q string `json:"q,omitempty"`

	Title  string `json:"title,omitempty"`
	Handle string `json:"handle,omitempty"`

	CollectionIDs []string `json:"collection_id,omitempty"`
	TypeIDs       []string `json:"type_id,omitempty"`

	// Tags restricts the result to products carrying at least one of the
	// given tag ids.
	Tags []string `json:"tags,omitempty"`

	// SalesChannelIDs restricts the result to products available in at
	// least one of the given sales channels.
	SalesChannelIDs []string `json:"sales_channel_id,omitempty"`

	// IsGiftcard is nil when the caller did not filter on it.
	IsGiftcard *bool `json:"is_giftcard,omitempty"`
}

// SearchRequest is the body of POST /store/products/search.
type SearchRequest struct {
	// Q is the search term.
	Q string `json:"q"`

	Offset *int `json:"offset,omitempty"`
	Limit  *int `json:"limit,omitempty"`

	// Filter is passed through to the search engine untouched.
	Filter any `json:"filter,omitempty"`
}

// PublishableKeyScopes is the request-scoped view of a publishable API key:
// the sales channels the key grants access to.
type PublishableKeyScopes struct {
	KeyID           string   `json:"key_id"`
	SalesChannelIDs []string `json:"sales_channel_id"`
}

// Contains reports whether salesChannelID is one of the scoped channels.
func (s PublishableKeyScopes) Contains(salesChannelID string) bool {
	for _, id := range s.SalesChannelIDs {
		if id == salesChannelID {
			return true
		}
	}
	return false
}
