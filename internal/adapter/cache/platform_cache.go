package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"leadfunnel/internal/core/domain"
	"leadfunnel/internal/core/port"
)

const (
	keyObjectives = "leadfunnel:catalog:objectives"
	keyCreatives  = "leadfunnel:catalog:creatives"
	keyWallet     = "leadfunnel:wallet"
	keyCampaigns  = "leadfunnel:campaigns"
)

var staleKeys = map[domain.StaleKey][]string{
	domain.StaleCatalog:   {keyObjectives, keyCreatives},
	domain.StaleWallet:    {keyWallet},
	domain.StaleCampaigns: {keyCampaigns},
}

// Upstream is the platform API as seen by the cache.
type Upstream interface {
	port.CatalogReader
	port.WalletReader
	port.CampaignReader
}

// PlatformCache is a read-through cache in front of the platform API reads.
// It also implements port.CacheInvalidator: invalidated datasets are
// refetched on the next read. Redis failures are logged and the read falls
// through to the upstream.
type PlatformCache struct {
	client   *redis.Client
	upstream Upstream
	ttl      time.Duration
	logger   *slog.Logger
}

// NewPlatformCache wraps upstream with a cache stored in client. Entries
// expire after ttl.
func NewPlatformCache(client *redis.Client, upstream Upstream, ttl time.Duration, logger *slog.Logger) *PlatformCache {
	return &PlatformCache{client: client, upstream: upstream, ttl: ttl, logger: logger}
}

func (c *PlatformCache) Objectives(ctx context.Context) ([]domain.Objective, error) {
	return readThrough(ctx, c, keyObjectives, c.upstream.Objectives)
}

func (c *PlatformCache) Creatives(ctx context.Context) ([]domain.CreativeSupport, error) {
	return readThrough(ctx, c, keyCreatives, c.upstream.Creatives)
}

func (c *PlatformCache) Wallet(ctx context.Context) (domain.Wallet, error) {
	return readThrough(ctx, c, keyWallet, c.upstream.Wallet)
}

func (c *PlatformCache) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	return readThrough(ctx, c, keyCampaigns, c.upstream.Campaigns)
}

// Invalidate drops the cached datasets named by keys.
func (c *PlatformCache) Invalidate(ctx context.Context, keys ...domain.StaleKey) error {
	var redisKeys []string
	for _, k := range keys {
		redisKeys = append(redisKeys, staleKeys[k]...)
	}
	if len(redisKeys) == 0 {
		return nil
	}
	return c.client.Del(ctx, redisKeys...).Err()
}

func readThrough[T any](ctx context.Context, c *PlatformCache, key string, load func(context.Context) (T, error)) (T, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var out T
		if err = json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		c.logger.Warn("drop undecodable cache entry", slog.String("key", key), slog.Any("error", err))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	out, err := load(ctx)
	if err != nil {
		return out, err
	}
	if raw, err = json.Marshal(out); err == nil {
		err = c.client.Set(ctx, key, raw, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return out, nil
}
