package client

import (
	"Tweeter/config"
	"Tweeter/pkg/log"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置 redis 时返回 nil，调用方需要兼容
func NewRedisClient(conf *config.Config) *redis.Client {
	if !conf.Redis.Enabled() {
		log.L.Info("redis disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Fatal("connect redis error", zap.Error(err))
	}
	log.L.Info("redis client success", zap.String("addr", conf.Redis.Addr()))
	return client
}
