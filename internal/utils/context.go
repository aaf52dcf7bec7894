// Package utils provides general-purpose helpers used across the
// storefront server: typed context keys, cache-key fingerprints, JSON
// request/response helpers, the HTTP client used for outbound calls and
// id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

// contextKey is a private type for context keys, so string keys set by
// other packages cannot collide with ours.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// PublishableScopesCtxKey is the key under which the resolved publishable
// API key scopes are stored for the rest of the request.
var PublishableScopesCtxKey = contextKey("publishableApiKeyScopes")

// WithPublishableScopes returns a copy of ctx carrying scopes.
func WithPublishableScopes(ctx context.Context, scopes models.PublishableKeyScopes) context.Context {
	return context.WithValue(ctx, PublishableScopesCtxKey, scopes)
}

// GetPublishableScopesFromContext returns the scopes attached by
// WithPublishableScopes. ok is false when the request carried no key.
func GetPublishableScopesFromContext(ctx context.Context) (models.PublishableKeyScopes, bool) {
	scopes, ok := ctx.Value(PublishableScopesCtxKey).(models.PublishableKeyScopes)
	return scopes, ok
}
