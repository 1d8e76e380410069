// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"lacquer/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// SaveAuthToken stores the hash of an issued admin token for its lifetime.
// The middleware only accepts tokens whose hash is still present, which is
// what makes logout an actual revocation rather than a client-side discard.
func SaveAuthToken(client *redis.Client, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	return client.Set(ctx, AuthCachePrefix+tokenHash, "1", ttl).Err()
}

// IsAuthTokenLive reports whether the token hash is still registered.
func IsAuthTokenLive(client *redis.Client, tokenHash string) (bool, error) {
	ctx := context.Background()
	n, err := client.Exists(ctx, AuthCachePrefix+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeAuthToken removes the token hash, invalidating the bearer token.
func RevokeAuthToken(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthCachePrefix+tokenHash).Err()
}
