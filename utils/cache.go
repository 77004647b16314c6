// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"aria/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for auth session caching.
	AuthCacheClient *redis.Client
	// OTPCacheClient is the dedicated client for OTP storage.
	OTPCacheClient *redis.Client
	// DirectiveQueueClient holds pending device directives.
	DirectiveQueueClient *redis.Client
)

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth Cache")
	OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB, "OTP Cache")
	DirectiveQueueClient = newRedisClient(config.AppConfig.RedisDirectiveDB, "Directive Queue")
}

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for auth session caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth Cache")
	}
	return AuthCacheClient
}

// GetOTPCacheClient returns the Redis client for OTP storage.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB, "OTP Cache")
	}
	return OTPCacheClient
}

// GetDirectiveQueueClient returns the Redis client holding device directive queues.
func GetDirectiveQueueClient() *redis.Client {
	if DirectiveQueueClient == nil {
		DirectiveQueueClient = newRedisClient(config.AppConfig.RedisDirectiveDB, "Directive Queue")
	}
	return DirectiveQueueClient
}
