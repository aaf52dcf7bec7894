package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPublishableKeySvc(t *testing.T) (PublishableKeyService, *mock.MockPublishableKeyStorage, *mock.MockProductRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	keys := mock.NewMockPublishableKeyStorage(ctrl)
	products := mock.NewMockProductRepository(ctrl)

	return NewPublishableKeyService(keys, products, logger.Nop()), keys, products
}

func TestPublishableKeyService_GetScopes(t *testing.T) {
	ctx := context.Background()
	scopes := models.PublishableKeyScopes{KeyID: "pk_1", SalesChannelIDs: []string{"sc_1", "sc_2"}}
	dbErr := errors.New("connection reset")

	tests := []struct {
		name     string
		keyID    string
		setup    func(keys *mock.MockPublishableKeyStorage)
		want     models.PublishableKeyScopes
		wantErrs []error
	}{
		{
			name:  "known key",
			keyID: "pk_1",
			setup: func(keys *mock.MockPublishableKeyStorage) {
				keys.EXPECT().GetScopes(ctx, "pk_1").Return(scopes, nil)
			},
			want: scopes,
		},
		{
			name:     "empty key is rejected without a lookup",
			keyID:    "",
			setup:    func(*mock.MockPublishableKeyStorage) {},
			wantErrs: []error{ErrInvalidPublishableKey},
		},
		{
			name:  "unknown key",
			keyID: "pk_x",
			setup: func(keys *mock.MockPublishableKeyStorage) {
				keys.EXPECT().GetScopes(ctx, "pk_x").Return(models.PublishableKeyScopes{}, store.ErrPublishableKeyNotFound)
			},
			wantErrs: []error{ErrInvalidPublishableKey, store.ErrPublishableKeyNotFound},
		},
		{
			name:  "revoked key",
			keyID: "pk_r",
			setup: func(keys *mock.MockPublishableKeyStorage) {
				keys.EXPECT().GetScopes(ctx, "pk_r").Return(models.PublishableKeyScopes{}, store.ErrPublishableKeyRevoked)
			},
			wantErrs: []error{ErrInvalidPublishableKey, store.ErrPublishableKeyRevoked},
		},
		{
			name:  "blank sales channel id in stored scopes",
			keyID: "pk_1",
			setup: func(keys *mock.MockPublishableKeyStorage) {
				keys.EXPECT().GetScopes(ctx, "pk_1").
					Return(models.PublishableKeyScopes{KeyID: "pk_1", SalesChannelIDs: []string{"sc_1", " "}}, nil)
			},
			wantErrs: []error{ErrMalformedKeyScopes, validators.ErrEmptyIdentifier},
		},
		{
			name:  "stored scopes without key id",
			keyID: "pk_1",
			setup: func(keys *mock.MockPublishableKeyStorage) {
				keys.EXPECT().GetScopes(ctx, "pk_1").Return(models.PublishableKeyScopes{SalesChannelIDs: []string{"sc_1"}}, nil)
			},
			wantErrs: []error{ErrMalformedKeyScopes, validators.ErrEmptyKeyID},
		},
		{
			name:  "key without sales channels",
			keyID: "pk_open",
			setup: func(keys *mock.MockPublishableKeyStorage) {
				keys.EXPECT().GetScopes(ctx, "pk_open").Return(models.PublishableKeyScopes{KeyID: "pk_open"}, nil)
			},
			want: models.PublishableKeyScopes{KeyID: "pk_open"},
		},
		{
			name:  "store failure is not a client error",
			keyID: "pk_1",
			setup: func(keys *mock.MockPublishableKeyStorage) {
				keys.EXPECT().GetScopes(ctx, "pk_1").Return(models.PublishableKeyScopes{}, dbErr)
			},
			wantErrs: []error{dbErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, keys, _ := newTestPublishableKeySvc(t)
			tt.setup(keys)

			got, err := svc.GetScopes(ctx, tt.keyID)
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			if errors.Is(tt.wantErrs[0], dbErr) {
				assert.NotErrorIs(t, err, ErrInvalidPublishableKey)
			}
		})
	}
}

func TestPublishableKeyService_ValidateSalesChannels(t *testing.T) {
	svc, _, _ := newTestPublishableKeySvc(t)
	ctx := context.Background()
	scopes := models.PublishableKeyScopes{KeyID: "pk_1", SalesChannelIDs: []string{"sc_1", "sc_2"}}

	assert.NoError(t, svc.ValidateSalesChannels(ctx, scopes, nil))
	assert.NoError(t, svc.ValidateSalesChannels(ctx, scopes, []string{"sc_2", "sc_1"}))

	err := svc.ValidateSalesChannels(ctx, scopes, []string{"sc_1", "sc_3"})
	require.ErrorIs(t, err, ErrSalesChannelNotInScope)
	assert.Contains(t, err.Error(), "sc_3")
}

func TestPublishableKeyService_ValidateProductAssociation(t *testing.T) {
	ctx := context.Background()
	scopes := models.PublishableKeyScopes{KeyID: "pk_1", SalesChannelIDs: []string{"sc_1"}}

	t.Run("associated", func(t *testing.T) {
		svc, _, products := newTestPublishableKeySvc(t)
		products.EXPECT().IsProductInSalesChannels(ctx, "prod_1", []string{"sc_1"}).Return(true, nil)

		assert.NoError(t, svc.ValidateProductAssociation(ctx, scopes, "prod_1"))
	})

	t.Run("outside the scope", func(t *testing.T) {
		svc, _, products := newTestPublishableKeySvc(t)
		products.EXPECT().IsProductInSalesChannels(ctx, "prod_2", []string{"sc_1"}).Return(false, nil)

		err := svc.ValidateProductAssociation(ctx, scopes, "prod_2")
		assert.ErrorIs(t, err, ErrSalesChannelMismatch)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, _, products := newTestPublishableKeySvc(t)
		products.EXPECT().IsProductInSalesChannels(ctx, "prod_1", []string{"sc_1"}).Return(false, store.ErrExecutingQuery)

		err := svc.ValidateProductAssociation(ctx, scopes, "prod_1")
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrSalesChannelMismatch)
	})
}
