package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

const (
	defaultCacheTTL         = 5 * time.Minute
	publishableKeyKeyPrefix = "storefront:publishable_key:"
)

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// redisPublishableKeyCache is the Redis implementation of
// [PublishableKeyCache]. Entries are keyed by a fingerprint of the
// publishable key id and hold only the sales channel ids, so raw keys never
// land in Redis.
//
// An entry lives for the cache TTL: a key revoked meanwhile keeps its
// cached scope until the entry expires.
type redisPublishableKeyCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisPublishableKeyCache constructs a [PublishableKeyCache]. A zero
// ttl means five minutes.
func NewRedisPublishableKeyCache(client redis.Cmdable, ttl time.Duration, logger *logger.Logger) PublishableKeyCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &redisPublishableKeyCache{client: client, ttl: ttl, logger: logger}
}

// cachedScopes is the stored form of [models.PublishableKeyScopes]. The key
// id is restored from the lookup argument.
type cachedScopes struct {
	SalesChannelIDs []string `json:"sales_channel_id"`
}

func publishableKeyCacheKey(keyID string) string {
	return publishableKeyKeyPrefix + utils.Fingerprint(keyID)
}

func (c *redisPublishableKeyCache) GetScopes(ctx context.Context, keyID string) (models.PublishableKeyScopes, error) {
	data, err := c.client.Get(ctx, publishableKeyCacheKey(keyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.PublishableKeyScopes{}, ErrCacheMiss
	}
	if err != nil {
		return models.PublishableKeyScopes{}, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	var cached cachedScopes
	if err = json.Unmarshal(data, &cached); err != nil {
		// a corrupt entry is as good as a miss
		return models.PublishableKeyScopes{}, ErrCacheMiss
	}
	return models.PublishableKeyScopes{KeyID: keyID, SalesChannelIDs: cached.SalesChannelIDs}, nil
}

func (c *redisPublishableKeyCache) SetScopes(ctx context.Context, scopes models.PublishableKeyScopes) error {
	data, err := json.Marshal(cachedScopes{SalesChannelIDs: scopes.SalesChannelIDs})
	if err != nil {
		return err
	}

	if err = c.client.Set(ctx, publishableKeyCacheKey(scopes.KeyID), string(data), c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}
