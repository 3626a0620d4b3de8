package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	ctx := context.Background()
	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// RevokeToken blacklists a token until it would have expired anyway.
// Logout works by revocation since JWTs are otherwise stateless.
func RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf("revoked:token:%s", token)
	return RedisClient.Set(ctx, key, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token has been logged out.
func IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("revoked:token:%s", token)
	n, err := RedisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
