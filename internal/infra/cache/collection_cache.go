package cache

import (
	"context"
	"encoding/json"
	"time"

	"bookshelf/config"
	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	collectionKeyPrefix  = "books:collection:"
	defaultCollectionTTL = 5 * time.Minute
)

// CollectionCache caches per-user book collections in Redis. All methods are
// nil-safe: with no Redis client every read is a miss and every write is a
// no-op, so the service keeps working against the database alone.
type CollectionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// CollectionCacheParams defines the required parameters
type CollectionCacheParams struct {
	fx.In

	Config *config.Config
	Client *redis.Client `optional:"true"`
}

// NewCollectionCache returns a new CollectionCache.
func NewCollectionCache(params CollectionCacheParams) *CollectionCache {
	ttl := defaultCollectionTTL
	if params.Config.Redis != nil && params.Config.Redis.CollectionTTL > 0 {
		ttl = params.Config.Redis.CollectionTTL
	}

	return &CollectionCache{rdb: params.Client, ttl: ttl}
}

// Get returns the cached collection for the user, or nil on miss.
func (c *CollectionCache) Get(ctx context.Context, userID uuid.UUID) ([]*entity.Book, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}

	b, err := c.rdb.Get(ctx, collectionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var books []*entity.Book
	if err := json.Unmarshal(b, &books); err != nil {
		return nil, err
	}

	return books, nil
}

// Set stores the user's collection in cache.
func (c *CollectionCache) Set(ctx context.Context, userID uuid.UUID, books []*entity.Book) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	b, err := json.Marshal(books)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, collectionKey(userID), b, c.ttl).Err()
}

// Invalidate removes the user's cached collection (cache invalidation on write).
func (c *CollectionCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	return c.rdb.Del(ctx, collectionKey(userID)).Err()
}

func collectionKey(userID uuid.UUID) string {
	return collectionKeyPrefix + userID.String()
}
