package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jacmel/storefront-backend/pkg/redis"
)

type blobClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	BlobKey(name string) string
	Ping(ctx context.Context) error
	Close() error
}

// RedisStore persists blobs as plain redis strings without expiry.
type RedisStore struct {
	client blobClient
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.client.BlobKey(key))
	if errors.Is(err, redis.ErrNil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.client.BlobKey(key), value, 0); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.client.BlobKey(key)); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error { return s.client.Ping(ctx) }

func (s *RedisStore) Close() error { return s.client.Close() }
