// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// publishableKeyStorage is the default implementation of
// [PublishableKeyStorage].
//
// It delegates to a [PublishableKeyRepository] and, when configured, keeps
// resolved scopes in a [PublishableKeyCache]. Cache failures are logged and
// never fail the request.
type publishableKeyStorage struct {
	repository PublishableKeyRepository

	// cache is nil when no Redis address is configured.
	cache PublishableKeyCache

	logger *logger.Logger
}

// NewPublishableKeyStorage wires repository with an optional cache.
func NewPublishableKeyStorage(repository PublishableKeyRepository, cache PublishableKeyCache, logger *logger.Logger) PublishableKeyStorage {
	logger.Debug().Bool("cached", cache != nil).Msg("creating publishable key storage")
	return &publishableKeyStorage{
		repository: repository,
		cache:      cache,
		logger:     logger,
	}
}

// GetScopes returns the scopes of keyID, from the cache when possible.
// Unknown and revoked keys are not cached.
func (s *publishableKeyStorage) GetScopes(ctx context.Context, keyID string) (models.PublishableKeyScopes, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		scopes, err := s.cache.GetScopes(ctx, keyID)
		if err == nil {
			return scopes, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Warn().Err(err).Str("func", "*publishableKeyStorage.GetScopes").Msg("publishable key cache lookup failed")
		}
	}

	scopes, err := s.repository.GetScopes(ctx, keyID)
	if err != nil {
		return models.PublishableKeyScopes{}, err
	}

	if s.cache != nil {
		if err = s.cache.SetScopes(ctx, scopes); err != nil {
			log.Warn().Err(err).Str("func", "*publishableKeyStorage.GetScopes").Msg("publishable key cache write failed")
		}
	}

	return scopes, nil
}
