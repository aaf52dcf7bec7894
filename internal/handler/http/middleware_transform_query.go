package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/query"
)

// TransformQuery resolves the query shape of every request against cfg and
// stores the resulting descriptor in the request context. Requests with an
// invalid shape are answered with 400 and never reach next.
func TransformQuery(cfg query.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d, err := query.Resolve(r.URL.Query(), cfg)
			if err != nil {
				writeError(w, r, err, "TransformQuery")
				return
			}

			next.ServeHTTP(w, r.WithContext(query.WithDescriptor(r.Context(), d)))
		})
	}
}
