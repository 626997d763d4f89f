// Package runner is the computation path shared by the CLI and the HTTP
// server: cache lookup, metered engine run, per-call deadline.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/tutte/builder"
	"github.com/katalvlaran/tutte/cache"
	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/metrics"
	"github.com/katalvlaran/tutte/polynomial"
	"github.com/katalvlaran/tutte/tutte"
)

// Runner computes Tutte polynomials. The zero value computes directly with
// default engine options; every field is optional.
type Runner struct {
	Store   cache.Store
	Metrics *metrics.Collector
	Options []tutte.Option
	Timeout time.Duration
	Log     logr.Logger

	// Size caps for Build, 0 = none.
	MaxVertices int
	MaxEdges    int
}

// Build builds the named family, refusing parameters beyond the size caps
// with builder.ErrTooLarge.
func (r *Runner) Build(family string, params []int) (*core.Graph, error) {
	return builder.BuildFamily(family, params, builder.WithMaxSize(r.MaxVertices, r.MaxEdges))
}

// Polynomial returns T(g) and whether it came from the store.
func (r *Runner) Polynomial(ctx context.Context, g *core.Graph) (*polynomial.Polynomial, bool, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	p, hit, err := cache.Cached(ctx, r.Store, g, r.compute)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			r.Log.V(1).Info("tutte computation canceled", "reason", err.Error())
		} else {
			r.Log.Error(err, "tutte computation failed")
		}
		return nil, false, err
	}
	if hit {
		if r.Metrics != nil {
			r.Metrics.ObserveCacheHit()
		}
		r.Log.V(1).Info("tutte polynomial served from cache", "key", cache.Key(g))
	}

	return p, hit, nil
}

func (r *Runner) compute(ctx context.Context, g *core.Graph) (*polynomial.Polynomial, error) {
	if r.Metrics != nil {
		return r.Metrics.Compute(ctx, g, r.Options...)
	}

	return tutte.Compute(ctx, g, r.Options...)
}
