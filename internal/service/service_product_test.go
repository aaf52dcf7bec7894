package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listDescriptor(t *testing.T) query.Descriptor {
	t.Helper()
	d, err := query.Resolve(url.Values{"fields": {"title"}}, query.Config{IsList: true})
	require.NoError(t, err)
	return d
}

func TestProductService_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProductRepository(ctrl)
	svc := NewProductService(repo, logger.Nop())
	ctx := context.Background()
	d := listDescriptor(t)
	filter := models.ListProductsFilter{Handle: "t-shirt"}
	products := []models.Product{{ID: "prod_1", Title: "T-Shirt"}}

	repo.EXPECT().ListProducts(ctx, filter, d).Return(products, 7, nil)

	got, count, err := svc.ListProducts(ctx, filter, d)
	require.NoError(t, err)
	assert.Equal(t, products, got)
	assert.Equal(t, 7, count)
}

func TestProductService_ListProducts_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProductRepository(ctrl)
	svc := NewProductService(repo, logger.Nop())

	repo.EXPECT().ListProducts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, 0, store.ErrExecutingQuery)

	_, _, err := svc.ListProducts(context.Background(), models.ListProductsFilter{}, query.Descriptor{})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestProductService_GetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProductRepository(ctrl)
	svc := NewProductService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().GetProduct(ctx, "prod_1", query.Descriptor{}).Return(models.Product{ID: "prod_1"}, nil)
	repo.EXPECT().GetProduct(ctx, "missing", query.Descriptor{}).Return(models.Product{}, store.ErrProductNotFound)

	got, err := svc.GetProduct(ctx, "prod_1", query.Descriptor{})
	require.NoError(t, err)
	assert.Equal(t, "prod_1", got.ID)

	_, err = svc.GetProduct(ctx, "missing", query.Descriptor{})
	assert.True(t, errors.Is(err, store.ErrProductNotFound))
}

func TestProductValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockProductService(ctrl)
	svc := NewProductValidationService().Wrap(inner)
	ctx := context.Background()

	t.Run("invalid filter never reaches the inner service", func(t *testing.T) {
		_, _, err := svc.ListProducts(ctx, models.ListProductsFilter{IDs: []string{""}}, query.Descriptor{})
		assert.ErrorIs(t, err, ErrInvalidListFilter)
	})

	t.Run("valid filter is passed through", func(t *testing.T) {
		filter := models.ListProductsFilter{IDs: []string{"prod_1"}}
		inner.EXPECT().ListProducts(ctx, filter, query.Descriptor{}).Return([]models.Product{{ID: "prod_1"}}, 1, nil)

		got, count, err := svc.ListProducts(ctx, filter, query.Descriptor{})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, 1, count)
	})

	t.Run("blank id is rejected", func(t *testing.T) {
		_, err := svc.GetProduct(ctx, " ", query.Descriptor{})
		assert.ErrorIs(t, err, ErrInvalidListFilter)
	})

	t.Run("get is passed through", func(t *testing.T) {
		inner.EXPECT().GetProduct(ctx, "prod_1", query.Descriptor{}).Return(models.Product{ID: "prod_1"}, nil)

		got, err := svc.GetProduct(ctx, "prod_1", query.Descriptor{})
		require.NoError(t, err)
		assert.Equal(t, "prod_1", got.ID)
	})
}
