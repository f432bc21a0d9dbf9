package utils

import (
	"context"
	"log"
	"time"

	"hotelhub/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the shared Redis client used for read-side caching
// (room counts and listings). It is never on the critical path: callers
// fall through to Mongo when Redis is unavailable.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Printf("Redis cache unavailable, continuing without it: %v", err)
	}
}

// GetCacheClient returns the shared cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// CloseCache releases the Redis connection during shutdown.
func CloseCache() {
	if CacheClient == nil {
		return
	}
	if err := CacheClient.Close(); err != nil {
		log.Printf("failed to close Redis client: %v", err)
	}
}
