package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/romch007/youtube/internal/config"
)

// LikeCountTTL bounds how stale a cached like count can get.
const LikeCountTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// KeyForLikeCount generates the Redis key for a video's like count.
func (c *RedisCache) KeyForLikeCount(videoID uint64) string {
	return fmt.Sprintf("likes:count:%d", videoID)
}

// GetLikeCount returns the cached like count for a video. The second
// return value reports whether the key was present.
func (c *RedisCache) GetLikeCount(ctx context.Context, videoID uint64) (int64, bool, error) {
	val, err := c.Client.Get(ctx, c.KeyForLikeCount(videoID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

// SetLikeCount stores a like count with the standard TTL.
func (c *RedisCache) SetLikeCount(ctx context.Context, videoID uint64, count int64) error {
	return c.Client.Set(ctx, c.KeyForLikeCount(videoID), count, LikeCountTTL).Err()
}

// InvalidateLikeCount drops the cached count after a reaction changes,
// so the next read recomputes from the database.
func (c *RedisCache) InvalidateLikeCount(ctx context.Context, videoID uint64) error {
	return c.Client.Del(ctx, c.KeyForLikeCount(videoID)).Err()
}
