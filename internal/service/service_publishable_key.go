package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
)

type publishableKeyService struct {
	publishableKeyStorage store.PublishableKeyStorage
	productRepository     store.ProductRepository
	validator             validators.Validator

	logger *logger.Logger
}

func NewPublishableKeyService(publishableKeyStorage store.PublishableKeyStorage, productRepository store.ProductRepository, logger *logger.Logger) PublishableKeyService {
	return &publishableKeyService{
		publishableKeyStorage: publishableKeyStorage,
		productRepository:     productRepository,
		validator:             validators.NewProductsValidator(),
		logger:                logger,
	}
}

// GetScopes returns ErrInvalidPublishableKey for unknown and revoked keys
// and ErrMalformedKeyScopes for stored scopes with blank ids. Other store
// failures are returned as is.
func (s *publishableKeyService) GetScopes(ctx context.Context, keyID string) (models.PublishableKeyScopes, error) {
	if keyID == "" {
		return models.PublishableKeyScopes{}, ErrInvalidPublishableKey
	}

	scopes, err := s.publishableKeyStorage.GetScopes(ctx, keyID)
	switch {
	case errors.Is(err, store.ErrPublishableKeyNotFound), errors.Is(err, store.ErrPublishableKeyRevoked):
		return models.PublishableKeyScopes{}, fmt.Errorf("%w: %w", ErrInvalidPublishableKey, err)
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*publishableKeyService.GetScopes").Msg("error loading publishable key scopes")
		return models.PublishableKeyScopes{}, err
	}

	if err = s.validator.Validate(ctx, scopes); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*publishableKeyService.GetScopes").Msg("stored publishable key scopes are malformed")
		return models.PublishableKeyScopes{}, fmt.Errorf("%w: %w", ErrMalformedKeyScopes, err)
	}

	return scopes, nil
}

func (s *publishableKeyService) ValidateSalesChannels(ctx context.Context, scopes models.PublishableKeyScopes, salesChannelIDs []string) error {
	for _, id := range salesChannelIDs {
		if !scopes.Contains(id) {
			return fmt.Errorf("%w: %s", ErrSalesChannelNotInScope, id)
		}
	}
	return nil
}

func (s *publishableKeyService) ValidateProductAssociation(ctx context.Context, scopes models.PublishableKeyScopes, productID string) error {
	ok, err := s.productRepository.IsProductInSalesChannels(ctx, productID, scopes.SalesChannelIDs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*publishableKeyService.ValidateProductAssociation").Msg("error checking product sales channels")
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrSalesChannelMismatch, productID)
	}
	return nil
}
