package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// publishableKeyRepository is the PostgreSQL-backed implementation of
// [PublishableKeyRepository].
type publishableKeyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPublishableKeyRepository constructs a [PublishableKeyRepository]
// backed by db.
func NewPublishableKeyRepository(db *DB, logger *logger.Logger) PublishableKeyRepository {
	logger.Debug().Msg("creating publishable key repository")
	return &publishableKeyRepository{
		db:     db,
		logger: logger,
	}
}

// GetScopes resolves a publishable API key to the sales channels it grants
// access to.
//
// Error handling:
//   - no key with this id: [ErrPublishableKeyNotFound].
//   - key has a revocation date: [ErrPublishableKeyRevoked].
func (r *publishableKeyRepository) GetScopes(ctx context.Context, keyID string) (models.PublishableKeyScopes, error) {
	log := logger.FromContext(ctx)

	var (
		found     bool
		revokedAt *time.Time
	)
	err := scanAll(ctx, r.db, func() (string, []any, error) { return findPublishableKey, []any{keyID}, nil },
		func(scan func(dest ...any) error) error {
			var id string
			found = true
			return scan(&id, &revokedAt)
		})
	if err != nil {
		log.Err(err).Str("func", "*publishableKeyRepository.GetScopes").Msg("error reading publishable key")
		return models.PublishableKeyScopes{}, err
	}
	if !found {
		return models.PublishableKeyScopes{}, ErrPublishableKeyNotFound
	}
	if revokedAt != nil {
		return models.PublishableKeyScopes{}, ErrPublishableKeyRevoked
	}

	scopes := models.PublishableKeyScopes{KeyID: keyID, SalesChannelIDs: []string{}}
	err = scanAll(ctx, r.db, func() (string, []any, error) { return findPublishableKeySalesChannels, []any{keyID}, nil },
		func(scan func(dest ...any) error) error {
			var id string
			if err := scan(&id); err != nil {
				return err
			}
			scopes.SalesChannelIDs = append(scopes.SalesChannelIDs, id)
			return nil
		})
	if err != nil {
		log.Err(err).Str("func", "*publishableKeyRepository.GetScopes").Msg("error reading publishable key sales channels")
		return models.PublishableKeyScopes{}, fmt.Errorf("reading key sales channels: %w", err)
	}

	return scopes, nil
}
