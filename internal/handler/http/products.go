package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

var errNoQueryDescriptor = errors.New("query descriptor is missing from the request context")

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	d, ok := query.FromContext(ctx)
	if !ok {
		writeError(w, r, errNoQueryDescriptor, "*Handler.listProducts")
		return
	}

	filter, err := parseListFilter(r.URL.Query(), h.salesChannels)
	if err != nil {
		writeError(w, r, err, "*Handler.listProducts")
		return
	}

	if scopes, found := utils.GetPublishableScopesFromContext(ctx); found &&
		len(scopes.SalesChannelIDs) > 0 && len(filter.SalesChannelIDs) == 0 {
		filter.SalesChannelIDs = scopes.SalesChannelIDs
	}

	products, count, err := h.services.ProductService.ListProducts(ctx, filter, d)
	if err != nil {
		writeError(w, r, err, "*Handler.listProducts")
		return
	}

	projected, err := projectProducts(products, d)
	if err != nil {
		writeError(w, r, fmt.Errorf("error projecting products: %w", err), "*Handler.listProducts")
		return
	}

	pagination, _ := d.Pagination()
	utils.WriteJSON(w, models.ProductsListResponse{
		Products: projected,
		Count:    count,
		Offset:   pagination.Offset,
		Limit:    pagination.Limit,
	}, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	d, ok := query.FromContext(ctx)
	if !ok {
		writeError(w, r, errNoQueryDescriptor, "*Handler.getProduct")
		return
	}

	product, err := h.services.ProductService.GetProduct(ctx, chi.URLParam(r, "id"), d)
	if err != nil {
		writeError(w, r, err, "*Handler.getProduct")
		return
	}

	projected, err := projectProduct(product, d)
	if err != nil {
		writeError(w, r, fmt.Errorf("error projecting product: %w", err), "*Handler.getProduct")
		return
	}

	utils.WriteJSON(w, models.ProductResponse{Product: projected}, http.StatusOK)
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SearchRequest
	if err := utils.ReadJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.searchProducts").Msg("invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", errInvalidBody, err), "*Handler.searchProducts")
		return
	}

	response, err := h.services.SearchService.Search(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "*Handler.searchProducts")
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
