package adapter

import "errors"

var (
	// ErrSearchUnavailable is returned when the search engine cannot be
	// reached or fails with a server error.
	ErrSearchUnavailable = errors.New("search engine unavailable")

	ErrBadRequest   = errors.New("search engine rejected the request")
	ErrUnauthorized = errors.New("search engine rejected the api key")
	ErrNotFound     = errors.New("search index not found")

	ErrInvalidAddress = errors.New("invalid search engine address")
	ErrDecodeResponse = errors.New("error decoding search engine response")
)
