package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis stores each blob as a plain string value. Keys are namespaced with
// a fixed prefix so the portal can share a Redis instance with other apps.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an already-connected client. The caller is responsible for
// pinging the server; config.NewRedisClient returns nil on failure so the
// startup path can fall back to the in-memory store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client, prefix: "portal:"}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	// No TTL: portal state lives until overwritten.
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}
