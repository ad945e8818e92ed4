package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/thereayou/devconnector/internal/services"
)

const blacklistPrefix = "blacklist:"

// RedisBlacklist хранит отозванные токены в Redis с TTL до их истечения
type RedisBlacklist struct {
	client *redis.Client
}

var _ services.TokenBlacklist = (*RedisBlacklist)(nil)

func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

// ConnectRedis разбирает REDIS_URL и проверяет соединение
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (b *RedisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, blacklistPrefix+token, 1, ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	exists, err := b.client.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
