/*
 * @Description: 缓存服务（Redis 可选，缺失时降级为空实现）
 */
package utility

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService 是一个薄缓存抽象。所有实现都必须把缓存故障
// 当作未命中处理，业务路径不因缓存不可用而失败。
type CacheService interface {
	// Get 返回缓存值，第二个返回值指示是否命中。
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// NewCacheService 按 Redis 客户端是否可用决定缓存实现。
// client 为 nil 时返回空实现，服务在无缓存模式下继续工作。
func NewCacheService(client *redis.Client) CacheService {
	if client == nil {
		return &noopCache{}
	}
	return &redisCache{client: client}
}

type redisCache struct {
	client *redis.Client
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// noopCache 永远未命中，写入直接丢弃。
type noopCache struct{}

func (*noopCache) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (*noopCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}
func (*noopCache) Delete(context.Context, ...string) error { return nil }
