package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/toheco/tohekit/core/kv"
)

// Compile-time check that Store implements the kv.Store interface.
var _ kv.Store = (*Store)(nil)

// Connect creates a Redis client, retrying the initial ping to ride out
// transient startup races, and returns it only once connectivity is
// verified.
func Connect(ctx context.Context, cfg Config) (*goredis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := goredis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrParseConnectionURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := goredis.NewClient(opts)

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var pingErr error
	for i := 0; i < attempts; i++ {
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			return client, nil
		}
		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, errors.Join(ErrNotReady, pingErr, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrNotReady, pingErr)
}

// Healthcheck returns a health check function that verifies Redis
// connectivity with a ping.
func Healthcheck(client *goredis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// Store is a Redis-backed kv.Store. Values persist without expiration.
type Store struct {
	client *goredis.Client
	prefix string
}

// New creates a Store over an established client. The prefix, usually taken
// from Config.KeyPrefix, namespaces this module's keys.
func New(client *goredis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Get returns the value stored under key, or kv.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", kv.ErrNotFound
		}
		return "", errors.Join(kv.ErrUnavailable, err)
	}
	return val, nil
}

// Set stores value under key with no expiration.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errors.Join(kv.ErrUnavailable, err)
	}
	return nil
}

// Remove deletes the value stored under key. Deleting an absent key
// succeeds.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(kv.ErrUnavailable, err)
	}
	return nil
}
