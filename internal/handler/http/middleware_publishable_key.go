package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-storefront/internal/utils"
)

// extendRequestParams loads the scopes of the publishable API key sent in
// the x-publishable-api-key header. Requests without the header pass
// through unscoped.
func (h *Handler) extendRequestParams(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyID := r.Header.Get(publishableKeyHeader)
		if keyID == "" {
			next.ServeHTTP(w, r)
			return
		}

		scopes, err := h.services.PublishableKeyService.GetScopes(r.Context(), keyID)
		if err != nil {
			writeError(w, r, err, "*Handler.extendRequestParams")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPublishableScopes(r.Context(), scopes)))
	})
}

// validateSalesChannelParam rejects sales_channel_id filters outside the
// scope of the publishable key.
func (h *Handler) validateSalesChannelParam(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scopes, ok := utils.GetPublishableScopesFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		requested := queryList(r.URL.Query(), paramSalesChannelID)
		if len(requested) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if err := h.services.PublishableKeyService.ValidateSalesChannels(r.Context(), scopes, requested); err != nil {
			writeError(w, r, err, "*Handler.validateSalesChannelParam")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// validateProductSalesChannelAssociation rejects products that are not
// attached to any sales channel of the publishable key. A key without sales
// channels does not restrict anything.
func (h *Handler) validateProductSalesChannelAssociation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scopes, ok := utils.GetPublishableScopesFromContext(r.Context())
		productID := chi.URLParam(r, "id")
		if !ok || len(scopes.SalesChannelIDs) == 0 || productID == "" {
			next.ServeHTTP(w, r)
			return
		}

		if err := h.services.PublishableKeyService.ValidateProductAssociation(r.Context(), scopes, productID); err != nil {
			writeError(w, r, err, "*Handler.validateProductSalesChannelAssociation")
			return
		}

		next.ServeHTTP(w, r)
	})
}
