package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-storefront/internal/featureflag"
)

// Init builds the router. Feature flags are read here, once: middleware
// gated by a flag is either part of a route's chain or not.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(withGZip)

	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	publishableKeys := h.flags.IsFeatureEnabled(featureflag.PublishableAPIKeys.Key)

	router.Group(func(r chi.Router) {
		if publishableKeys {
			r.Use(h.extendRequestParams, h.validateSalesChannelParam)
		}

		r.With(TransformQuery(h.listProductsQuery)).
			Get("/store/products", h.listProducts)

		retrieve := []func(http.Handler) http.Handler{TransformQuery(h.retrieveProductQuery)}
		if publishableKeys {
			retrieve = append([]func(http.Handler) http.Handler{h.validateProductSalesChannelAssociation}, retrieve...)
		}
		r.With(retrieve...).Get("/store/products/{id}", h.getProduct)

		r.Post("/store/products/search", h.searchProducts)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, fmt.Errorf("%w: %s %s", errRouteNotFound, r.Method, r.URL.Path), "NotFound")
	})
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
