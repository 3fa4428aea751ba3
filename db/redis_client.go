package db

import (
	"context"
	"errors"
	"strings"

	"github.com/go-redis/redis/v8"
)

// RedisClient defines the store operations the DAOs rely on
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	IncrBy(key string, delta int64) (int64, error)
	GetContext() context.Context
	Ping() error
}

// IsMissingKey reports whether an error means "key not in the store" rather
// than a real store failure. Both the redis client and the in-memory mock
// funnel through here so DAOs can treat misses uniformly.
func IsMissingKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, redis.Nil) {
		return true
	}
	return strings.Contains(err.Error(), "key not found")
}
