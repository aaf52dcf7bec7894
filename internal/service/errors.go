package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidPublishableKey  = errors.New("publishable key is invalid")
	ErrSalesChannelNotInScope = errors.New("requested sales channel is not within the scope of the publishable key")
	ErrSalesChannelMismatch   = errors.New("product is not associated with any of the sales channels of the publishable key")
	ErrInvalidSearchRequest   = errors.New("invalid search request")
	ErrInvalidListFilter      = errors.New("invalid product filter")
	ErrMalformedKeyScopes     = errors.New("publishable key scopes are malformed")

	ErrSearchIndexNotConfigured = errors.New("search index is not configured")
)
