// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/tutte/polynomial"
)

// Memory is an in-process Store bounded by entry count. When full, the oldest
// inserted key is evicted first (FIFO).
type Memory struct {
	mu      sync.Mutex
	entries *linkedhashmap.Map // key string → *polynomial.Polynomial, insertion order
	max     int
	closed  bool
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty Memory store; maxEntries ≤ 0 means unbounded.
func NewMemory(maxEntries int) *Memory {
	return &Memory{entries: linkedhashmap.New(), max: maxEntries}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) (*polynomial.Polynomial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	v, ok := m.entries.Get(key)
	if !ok {
		return nil, ErrMiss
	}

	return v.(*polynomial.Polynomial), nil
}

// Put implements Store. Polynomials are immutable, so the pointer is shared.
func (m *Memory) Put(_ context.Context, key string, p *polynomial.Polynomial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if _, ok := m.entries.Get(key); !ok && m.max > 0 && m.entries.Size() >= m.max {
		it := m.entries.Iterator()
		if it.First() {
			m.entries.Remove(it.Key())
		}
	}
	m.entries.Put(key, p)

	return nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.entries.Size()
}

// Close implements Store.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.entries.Clear()

	return nil
}
