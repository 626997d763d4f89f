// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/katalvlaran/tutte/polynomial"
)

// Badger is a Store backed by an embedded Badger LSM database. Values are the
// JSON encoding of the polynomial.
type Badger struct {
	mu  sync.RWMutex
	db  *badger.DB
	ttl time.Duration
}

var _ Store = (*Badger)(nil)

// OpenBadger opens (or creates) a Badger store at path. An empty path keeps
// the database in memory. ttl ≤ 0 keeps entries forever.
func OpenBadger(path string, ttl time.Duration) (*Badger, error) {
	dbOpts := badger.DefaultOptions(path)
	dbOpts.DetectConflicts = false
	dbOpts.Logger = nil
	if path == "" {
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("cache: open badger %q: %w", path, err)
	}

	return &Badger{db: db, ttl: ttl}, nil
}

// Get implements Store.
func (b *Badger) Get(ctx context.Context, key string) (*polynomial.Polynomial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.db == nil {
		return nil, ErrClosed
	}

	p := polynomial.Zero()
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, p)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Put implements Store.
func (b *Badger) Put(ctx context.Context, key string, p *polynomial.Polynomial) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.db == nil {
		return ErrClosed
	}

	return b.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), data)
		if b.ttl > 0 {
			e = e.WithTTL(b.ttl)
		}
		return txn.SetEntry(e)
	})
}

// Close implements Store.
func (b *Badger) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil

	return err
}
