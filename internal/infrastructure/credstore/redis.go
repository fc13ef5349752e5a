package credstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// tokenKey is the single slot; one credential per terminal group.
const tokenKey = "session:token"

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore keeps the token under a single key, with no expiry: lifecycle
// is driven entirely by login/logout, never by a TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	return s.client.Set(ctx, tokenKey, token, 0).Err()
}

func (s *RedisStore) Read(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNoCredential
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, tokenKey).Err()
}
