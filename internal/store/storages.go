package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
)

// Storages aggregates every store handed to the service layer.
type Storages struct {
	ProductRepository     ProductRepository
	PublishableKeyStorage PublishableKeyStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and, when a Redis
// address is configured, connects the scope cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	storages := &Storages{db: db}

	var cache PublishableKeyCache
	if cfg.Redis.Address != "" {
		client, err := NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.redis = client
		cache = NewRedisPublishableKeyCache(client, cfg.Redis.TTL, log)
	}

	storages.ProductRepository = NewProductRepository(db, log)
	storages.PublishableKeyStorage = NewPublishableKeyStorage(NewPublishableKeyRepository(db, log), cache, log)

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var err error
	if s.redis != nil {
		err = s.redis.Close()
	}
	if s.db != nil {
		if dbErr := s.db.Close(); dbErr != nil {
			err = dbErr
		}
	}
	return err
}
