package cache

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/shop-booking/internal/config"
)

func NewRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrapf(err, "ping redis at %s", cfg.RedisAddr)
	}
	return rdb, nil
}
