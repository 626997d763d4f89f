// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/katalvlaran/tutte/polynomial"
)

const defaultRedisPrefix = "tutte:poly:"

// Redis is a Store backed by a Redis server. Values are the JSON encoding of
// the polynomial, stored with an optional TTL.
type Redis struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ Store = (*Redis)(nil)

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithRedisTTL sets the expiration for entries; 0 means none.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) { r.ttl = ttl }
}

// WithRedisPrefix sets the key prefix.
func WithRedisPrefix(prefix string) RedisOption {
	return func(r *Redis) { r.prefix = prefix }
}

// NewRedis connects to a Redis server.
func NewRedis(address, password string, db int, opts ...RedisOption) *Redis {
	return NewRedisFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *backend.Client, opts ...RedisOption) *Redis {
	r := &Redis{client: client, prefix: defaultRedisPrefix}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Redis) key(k string) string { return r.prefix + k }

// Get implements Store.
func (r *Redis) Get(ctx context.Context, key string) (*polynomial.Polynomial, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, ErrMiss
	}
	if errors.Is(err, backend.ErrClosed) {
		return nil, ErrClosed
	}
	if err != nil {
		return nil, fmt.Errorf("cache: redis get: %w", err)
	}
	p := polynomial.Zero()
	if err = json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("cache: decode: %w", err)
	}

	return p, nil
}

// Put implements Store.
func (r *Redis) Put(ctx context.Context, key string, p *polynomial.Polynomial) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}
	err = r.client.Set(ctx, r.key(key), data, r.ttl).Err()
	if errors.Is(err, backend.ErrClosed) {
		return ErrClosed
	}
	if err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}

	return nil
}

// Close implements Store.
func (r *Redis) Close() error {
	if err := r.client.Close(); err != nil && !errors.Is(err, backend.ErrClosed) {
		return err
	}

	return nil
}
