package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisSlotGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSlotGuard(rdb *redis.Client, ttl time.Duration) *RedisSlotGuard {
	return &RedisSlotGuard{rdb: rdb, ttl: ttl}
}

func (g *RedisSlotGuard) ClaimSlot(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, "slot:"+key, 1, g.ttl).Result()
}

func (g *RedisSlotGuard) ReleaseSlot(ctx context.Context, key string) error {
	return g.rdb.Del(ctx, "slot:"+key).Err()
}
