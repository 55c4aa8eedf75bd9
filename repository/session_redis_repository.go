package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const defaultSessionPrefix = "storefront:session:"

// RedisSessionRepository keeps tokens in redis with a TTL, for deployments
// where several storefront replicas share sessions.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, ttl: ttl, prefix: defaultSessionPrefix}
}

func (r *RedisSessionRepository) key(sessionID string) string { return r.prefix + sessionID }

func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	v, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	return v, err
}

// Put stores the token until expiresAt, or for the configured TTL when the
// token carries no expiry. A token already past its expiry is not stored.
func (r *RedisSessionRepository) Put(ctx context.Context, sessionID, token string, expiresAt *time.Time) error {
	ttl := r.ttl
	if expiresAt != nil {
		ttl = time.Until(*expiresAt)
		if ttl <= 0 {
			return r.Delete(ctx, sessionID)
		}
	}
	return r.client.Set(ctx, r.key(sessionID), token, ttl).Err()
}

func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}
