package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

func newKeyMiddlewareHandler(t *testing.T) (*Handler, *mock.MockPublishableKeyService) {
	t.Helper()
	keys := mock.NewMockPublishableKeyService(gomock.NewController(t))
	return &Handler{
		services: &service.Services{PublishableKeyService: keys},
		logger:   logger.Nop(),
	}, keys
}

// recordingNext remembers whether it ran and the scopes it saw.
type recordingNext struct {
	called bool
	scopes *models.PublishableKeyScopes
}

func (n *recordingNext) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.called = true
	if scopes, ok := utils.GetPublishableScopesFromContext(r.Context()); ok {
		n.scopes = &scopes
	}
	w.WriteHeader(http.StatusOK)
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestExtendRequestParams(t *testing.T) {
	scopes := models.PublishableKeyScopes{KeyID: "pk_1", SalesChannelIDs: []string{"sc_1"}}

	t.Run("no header passes through unscoped", func(t *testing.T) {
		h, _ := newKeyMiddlewareHandler(t)
		next := &recordingNext{}

		rec := httptest.NewRecorder()
		h.extendRequestParams(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/store/products", nil))

		assert.True(t, next.called)
		assert.Nil(t, next.scopes)
	})

	t.Run("known key attaches scopes", func(t *testing.T) {
		h, keys := newKeyMiddlewareHandler(t)
		keys.EXPECT().GetScopes(gomock.Any(), "pk_1").Return(scopes, nil)
		next := &recordingNext{}

		req := httptest.NewRequest(http.MethodGet, "/store/products", nil)
		req.Header.Set("X-Publishable-Api-Key", "pk_1")
		rec := httptest.NewRecorder()
		h.extendRequestParams(next).ServeHTTP(rec, req)

		require.True(t, next.called)
		require.NotNil(t, next.scopes)
		assert.Equal(t, scopes, *next.scopes)
	})

	t.Run("invalid key is rejected", func(t *testing.T) {
		h, keys := newKeyMiddlewareHandler(t)
		keys.EXPECT().GetScopes(gomock.Any(), "pk_bad").
			Return(models.PublishableKeyScopes{}, fmt.Errorf("%w: %w", service.ErrInvalidPublishableKey, store.ErrPublishableKeyNotFound))
		next := &recordingNext{}

		req := httptest.NewRequest(http.MethodGet, "/store/products", nil)
		req.Header.Set(publishableKeyHeader, "pk_bad")
		rec := httptest.NewRecorder()
		h.extendRequestParams(next).ServeHTTP(rec, req)

		assert.False(t, next.called)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_publishable_key", errorCode(t, rec))
	})
}

func TestValidateSalesChannelParam(t *testing.T) {
	scopes := models.PublishableKeyScopes{KeyID: "pk_1", SalesChannelIDs: []string{"sc_1", "sc_2"}}

	serve := func(h *Handler, target string, withScopes bool) (*httptest.ResponseRecorder, *recordingNext) {
		next := &recordingNext{}
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if withScopes {
			req = req.WithContext(utils.WithPublishableScopes(req.Context(), scopes))
		}
		rec := httptest.NewRecorder()
		h.validateSalesChannelParam(next).ServeHTTP(rec, req)
		return rec, next
	}

	t.Run("no scopes", func(t *testing.T) {
		h, _ := newKeyMiddlewareHandler(t)
		_, next := serve(h, "/store/products?sales_channel_id=sc_9", false)
		assert.True(t, next.called)
	})

	t.Run("no sales channel filter", func(t *testing.T) {
		h, _ := newKeyMiddlewareHandler(t)
		_, next := serve(h, "/store/products?q=shirt", true)
		assert.True(t, next.called)
	})

	t.Run("filter within scope", func(t *testing.T) {
		h, keys := newKeyMiddlewareHandler(t)
		keys.EXPECT().ValidateSalesChannels(gomock.Any(), scopes, []string{"sc_1", "sc_2"}).Return(nil)

		_, next := serve(h, "/store/products?sales_channel_id[]=sc_1&sales_channel_id[]=sc_2", true)
		assert.True(t, next.called)
	})

	t.Run("filter outside scope", func(t *testing.T) {
		h, keys := newKeyMiddlewareHandler(t)
		keys.EXPECT().ValidateSalesChannels(gomock.Any(), scopes, []string{"sc_9"}).
			Return(fmt.Errorf("%w: sc_9", service.ErrSalesChannelNotInScope))

		rec, next := serve(h, "/store/products?sales_channel_id=sc_9", true)
		assert.False(t, next.called)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "sales_channel_not_in_scope", errorCode(t, rec))
	})
}

func TestValidateProductSalesChannelAssociation(t *testing.T) {
	scopes := models.PublishableKeyScopes{KeyID: "pk_1", SalesChannelIDs: []string{"sc_1"}}

	serve := func(h *Handler, productID string, ctxScopes *models.PublishableKeyScopes) (*httptest.ResponseRecorder, *recordingNext) {
		next := &recordingNext{}
		req := httptest.NewRequest(http.MethodGet, "/store/products/"+productID, nil)

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", productID)
		ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
		if ctxScopes != nil {
			ctx = utils.WithPublishableScopes(ctx, *ctxScopes)
		}

		rec := httptest.NewRecorder()
		h.validateProductSalesChannelAssociation(next).ServeHTTP(rec, req.WithContext(ctx))
		return rec, next
	}

	t.Run("no scopes", func(t *testing.T) {
		h, _ := newKeyMiddlewareHandler(t)
		_, next := serve(h, "prod_1", nil)
		assert.True(t, next.called)
	})

	t.Run("key without sales channels", func(t *testing.T) {
		h, _ := newKeyMiddlewareHandler(t)
		_, next := serve(h, "prod_1", &models.PublishableKeyScopes{KeyID: "pk_empty", SalesChannelIDs: []string{}})
		assert.True(t, next.called)
	})

	t.Run("associated product", func(t *testing.T) {
		h, keys := newKeyMiddlewareHandler(t)
		keys.EXPECT().ValidateProductAssociation(gomock.Any(), scopes, "prod_1").Return(nil)

		_, next := serve(h, "prod_1", &scopes)
		assert.True(t, next.called)
	})

	t.Run("product outside the scope", func(t *testing.T) {
		h, keys := newKeyMiddlewareHandler(t)
		keys.EXPECT().ValidateProductAssociation(gomock.Any(), scopes, "prod_2").
			Return(fmt.Errorf("%w: prod_2", service.ErrSalesChannelMismatch))

		rec, next := serve(h, "prod_2", &scopes)
		assert.False(t, next.called)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "sales_channel_mismatch", errorCode(t, rec))
	})
}
