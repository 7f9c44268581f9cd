package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const pageKeyPrefix = "page:"

// PageCache invalidates cached renderings of public pages. Invalidation is
// idempotent: deleting a path that is not cached is a no-op.
type PageCache interface {
	// Invalidate discards the cached renderings of the given paths.
	Invalidate(ctx context.Context, paths ...string) error
	// InvalidateAll discards every cached page.
	InvalidateAll(ctx context.Context) error
}

// RedisPageCache stores rendered pages under page:<path> keys.
type RedisPageCache struct {
	rdb redis.Cmdable
}

func NewRedisPageCache(rdb redis.Cmdable) *RedisPageCache {
	return &RedisPageCache{rdb: rdb}
}

func (c *RedisPageCache) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	keys := make([]string, len(paths))
	for i, path := range paths {
		keys[i] = pageKey(path)
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *RedisPageCache) InvalidateAll(ctx context.Context) error {
	keys, err := c.rdb.Keys(ctx, pageKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func pageKey(path string) string {
	return pageKeyPrefix + path
}
