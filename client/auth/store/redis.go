package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	accessField  = "access_token"
	refreshField = "refresh_token"
)

// RedisStore keeps both tokens in a single hash so a reader never observes
// one token updated and the other stale.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisOption configures RedisStore
type RedisOption func(s *RedisStore)

// WithTTL expires the stored session after ttl; zero keeps it until cleared.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// NewRedisStore creates a redis backed store under key
func NewRedisStore(client *redis.Client, key string, options ...RedisOption) *RedisStore {
	ret := &RedisStore{client: client, key: key}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (s *RedisStore) Save(ctx context.Context, accessToken, refreshToken string) error {
	if _, err := NewSession(accessToken, refreshToken); err != nil {
		return err
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.key, accessField, accessToken, refreshField, refreshToken)
		if s.ttl > 0 {
			pipe.Expire(ctx, s.key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session %v: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Read(ctx context.Context) (*Session, bool, error) {
	values, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read session %v: %w", s.key, err)
	}
	session := &Session{AccessToken: values[accessField], RefreshToken: values[refreshField]}
	if session.AccessToken == "" || session.RefreshToken == "" {
		return nil, false, nil
	}
	return session, true, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear session %v: %w", s.key, err)
	}
	return nil
}
