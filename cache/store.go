// SPDX-License-Identifier: MIT
// Package: tutte/cache
//
// File: store.go
// Role: Store contract, canonical graph keys and the Cached helper.
// Determinism: Key is a pure function of the labelled graph (vertex IDs and
//              endpoint multiset); edge IDs and insertion order do not matter.
// Concurrency: every Store implementation is safe for concurrent use.

package cache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/polynomial"
)

var (
	// ErrMiss is returned by Get when the key is absent or expired.
	ErrMiss = errors.New("cache: miss")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("cache: store closed")

	// ErrUnknownKind is returned by Open for an unsupported backend name.
	ErrUnknownKind = errors.New("cache: unknown store kind")
)

// keyVersion is bumped whenever the canonical form or value encoding changes.
const keyVersion = "v1"

// Store persists Tutte polynomials by graph key.
type Store interface {
	// Get returns the polynomial for key or ErrMiss.
	Get(ctx context.Context, key string) (*polynomial.Polynomial, error)
	// Put stores p under key, replacing any previous value.
	Put(ctx context.Context, key string, p *polynomial.Polynomial) error
	// Close releases backend resources. Further calls return ErrClosed.
	Close() error
}

// Canonical renders the labelled graph as text:
//
//	"u|" or "d|" + sorted vertex IDs joined by "," + "|" + sorted endpoint pairs
//
// Undirected pairs are normalized to (min, max) so "a-b" and "b-a" coincide.
// Parallel edges repeat their pair, preserving multiplicity.
func Canonical(g *core.Graph) string {
	var sb strings.Builder
	if g.Directed() {
		sb.WriteString("d|")
	} else {
		sb.WriteString("u|")
	}
	vs := g.Vertices()
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(v))
	}
	sb.WriteByte('|')

	edges := g.Edges()
	pairs := make([]string, 0, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if !g.Directed() && v < u {
			u, v = v, u
		}
		pairs = append(pairs, strconv.Quote(u)+"-"+strconv.Quote(v))
	}
	sort.Strings(pairs)
	sb.WriteString(strings.Join(pairs, ","))

	return sb.String()
}

// Key returns the cache key of g: "tutte:v1:" + 16 hex digits of xxhash64(Canonical(g)).
func Key(g *core.Graph) string {
	return fmt.Sprintf("tutte:%s:%016x", keyVersion, xxhash.Sum64String(Canonical(g)))
}

// ComputeFunc produces the polynomial of g on a miss.
type ComputeFunc func(ctx context.Context, g *core.Graph) (*polynomial.Polynomial, error)

// Cached returns the polynomial of g from s, computing and storing it on a
// miss. hit reports whether the value came from the store. A nil store (or
// graph) bypasses the cache. Backend failures other than ErrMiss are returned
// wrapped with the key.
func Cached(ctx context.Context, s Store, g *core.Graph, compute ComputeFunc) (p *polynomial.Polynomial, hit bool, err error) {
	if s == nil || g == nil {
		p, err = compute(ctx, g)
		return p, false, err
	}

	key := Key(g)
	p, err = s.Get(ctx, key)
	switch {
	case err == nil:
		return p, true, nil
	case !errors.Is(err, ErrMiss):
		return nil, false, fmt.Errorf("cache: get %s: %w", key, err)
	}

	if p, err = compute(ctx, g); err != nil {
		return nil, false, err
	}
	if err = s.Put(ctx, key, p); err != nil {
		return nil, false, fmt.Errorf("cache: put %s: %w", key, err)
	}

	return p, false, nil
}
