package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/app"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

// Error types of the JSON error body.
const (
	errorTypeInvalidData     = "invalid_data"
	errorTypeNotFound        = "not_found"
	errorTypeUnexpectedState = "unexpected_state"
	errorTypeUnknown         = "unknown_error"
)

// Every error below must be matched by at most one entry: wrapped chains
// never combine two of them.
var errorStatusMap = map[error]int{
	query.ErrInvalidField:      http.StatusBadRequest,
	query.ErrInvalidRelation:   http.StatusBadRequest,
	query.ErrInvalidPagination: http.StatusBadRequest,

	service.ErrInvalidPublishableKey:  http.StatusBadRequest,
	service.ErrSalesChannelNotInScope: http.StatusBadRequest,
	service.ErrSalesChannelMismatch:   http.StatusBadRequest,
	service.ErrInvalidSearchRequest:   http.StatusBadRequest,
	service.ErrInvalidListFilter:      http.StatusBadRequest,

	errInvalidQueryParameter: http.StatusBadRequest,
	errInvalidBody:           http.StatusBadRequest,
	errRouteNotFound:         http.StatusNotFound,

	store.ErrProductNotFound:  http.StatusNotFound,
	store.ErrUnknownField:     http.StatusBadRequest,
	store.ErrUnknownRelation:  http.StatusBadRequest,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	adapter.ErrSearchUnavailable: http.StatusBadGateway,
	adapter.ErrUnauthorized:      http.StatusBadGateway,
	adapter.ErrNotFound:          http.StatusBadGateway,
	adapter.ErrDecodeResponse:    http.StatusBadGateway,
}

var errorCodeMap = map[error]string{
	service.ErrInvalidPublishableKey:  "invalid_publishable_key",
	service.ErrSalesChannelNotInScope: "sales_channel_not_in_scope",
	service.ErrSalesChannelMismatch:   "sales_channel_mismatch",
	service.ErrInvalidSearchRequest:   "invalid_search_request",
	service.ErrInvalidListFilter:      "invalid_filter",
	errInvalidQueryParameter:          "invalid_query_parameter",
	errInvalidBody:                    "invalid_body",
	errRouteNotFound:                  "route_not_found",
	store.ErrProductNotFound:          "product_not_found",
	store.ErrUnknownField:             "invalid_field",
	store.ErrUnknownRelation:          "invalid_relation",
	adapter.ErrSearchUnavailable:      "search_unavailable",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type coder interface {
	Code() string
}

func codeFromError(err error, status int) string {
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}

	switch status {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadGateway:
		return "upstream_error"
	default:
		return "unknown_error"
	}
}

func typeFromStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return errorTypeNotFound
	case status >= 400 && status < 500:
		return errorTypeInvalidData
	case status == http.StatusBadGateway:
		return errorTypeUnexpectedState
	default:
		return errorTypeUnknown
	}
}

// writeError writes the JSON error body for err. Details of server-side
// failures are logged, not returned.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		message = app.MsgInternalServerError
		if status == http.StatusBadGateway {
			message = app.MsgUpstreamError
		}
	} else {
		logger.FromRequest(r).Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Type:    typeFromStatus(status),
		Code:    codeFromError(err, status),
		Message: message,
	}, status)
}
