package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/shelter_guard/internal/config"
)

const pingTimeout = 3 * time.Second

// NewRedisClient подключается к Redis для кеша укрытий и очереди вебхуков
func NewRedisClient(ctx context.Context, appCfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     appCfg.RedisAddr,
		Password: appCfg.RedisPass,
		DB:       appCfg.RedisDB,
		PoolSize: 10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", appCfg.RedisAddr, err)
	}

	return rdb, nil
}
