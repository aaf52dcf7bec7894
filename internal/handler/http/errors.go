package http

import "errors"

var (
	errInvalidQueryParameter = errors.New("invalid query parameter")
	errInvalidBody           = errors.New("invalid request body")
	errRouteNotFound         = errors.New("route not found")
)
