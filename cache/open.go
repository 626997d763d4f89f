// SPDX-License-Identifier: MIT

package cache

import (
	"fmt"
	"time"
)

// Backend kinds accepted by Open.
const (
	KindNone   = "none"
	KindMemory = "memory"
	KindBadger = "badger"
	KindRedis  = "redis"
)

// Config selects and parameterizes a backend.
type Config struct {
	Kind       string        `yaml:"kind"`
	MaxEntries int           `yaml:"max_entries"` // memory
	Path       string        `yaml:"path"`        // badger; empty = in-memory
	Addr       string        `yaml:"addr"`        // redis
	Password   string        `yaml:"password"`    // redis
	DB         int           `yaml:"db"`          // redis
	TTL        time.Duration `yaml:"ttl"`         // badger, redis
}

// Open builds the Store described by cfg. KindNone (or "") returns a nil
// Store, which Cached treats as "always compute".
func Open(cfg Config) (Store, error) {
	switch cfg.Kind {
	case "", KindNone:
		return nil, nil
	case KindMemory:
		return NewMemory(cfg.MaxEntries), nil
	case KindBadger:
		b, err := OpenBadger(cfg.Path, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return b, nil
	case KindRedis:
		return NewRedis(cfg.Addr, cfg.Password, cfg.DB, WithRedisTTL(cfg.TTL)), nil
	default:
		return nil, fmt.Errorf("cache: %q: %w", cfg.Kind, ErrUnknownKind)
	}
}
