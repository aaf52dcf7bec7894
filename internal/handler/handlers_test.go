package handler

import (
	"testing"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/featureflag"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewHandlers only stores the services pointer, so an empty aggregate is
// enough for construction-time tests.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":9000"}

	h, err := NewHandlers(newTestServices(), featureflag.NewRouter(featureflag.Registry, nil), nil, nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), nil, nil, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_InvalidSchema(t *testing.T) {
	schemas := query.Schemas{
		"store_products_retrieve": {
			DefaultFields: []string{"title"},
			AllowedFields: []string{"handle"},
		},
	}

	h, err := NewHandlers(newTestServices(), nil, schemas, nil, config.Server{HTTPAddress: ":9000"}, logger.Nop())

	require.ErrorIs(t, err, query.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "store_products_retrieve")
	assert.Nil(t, h)
}
