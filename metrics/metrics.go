// SPDX-License-Identifier: MIT
// Package: tutte/metrics
//
// File: metrics.go
// Role: Prometheus collectors fed by the engine's OnExpand/OnLeaf hooks plus
//       per-computation outcome and latency.
// Concurrency: all collectors are safe for concurrent use; the hooks may be
//              called from parallel workers.

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/polynomial"
	"github.com/katalvlaran/tutte/tutte"
)

const (
	namespace    = "tutte"
	labelOutcome = "outcome"
)

// Outcome label values of tutte_computations_total.
const (
	OutcomeOK       = "ok"
	OutcomeBudget   = "budget_exhausted"
	OutcomeCanceled = "canceled"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
	OutcomeCacheHit = "cache_hit"
)

// Collector groups the engine metrics.
type Collector struct {
	NodesExpanded prometheus.Counter
	Leaves        prometheus.Counter
	Computations  *prometheus.CounterVec
	Duration      prometheus.Histogram
}

// New creates the collectors and registers them with reg (nil skips
// registration, which is handy in tests).
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		NodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_expanded_total",
			Help:      "Deletion-contraction nodes expanded into two children.",
		}),
		Leaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaves_total",
			Help:      "Base-case graphs (bridges and loops only) reached.",
		}),
		Computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Tutte polynomial computations by outcome.",
		}, []string{labelOutcome}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_seconds",
			Help:      "Wall time of Tutte polynomial computations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
	if reg == nil {
		return c, nil
	}
	for _, col := range []prometheus.Collector{c.NodesExpanded, c.Leaves, c.Computations, c.Duration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Options returns engine options that feed NodesExpanded and Leaves.
func (c *Collector) Options() []tutte.Option {
	return []tutte.Option{
		tutte.WithOnExpand(func(*core.Graph, string) { c.NodesExpanded.Inc() }),
		tutte.WithOnLeaf(func(int, int) { c.Leaves.Inc() }),
	}
}

// Outcome classifies a Compute error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, tutte.ErrResourceExhausted):
		return OutcomeBudget
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	case errors.Is(err, tutte.ErrUnsupportedGraphKind), errors.Is(err, tutte.ErrGraphNil):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}

// Observe records one finished computation.
func (c *Collector) Observe(err error, elapsed time.Duration) {
	c.Computations.WithLabelValues(Outcome(err)).Inc()
	c.Duration.Observe(elapsed.Seconds())
}

// ObserveCacheHit records a computation answered from the cache.
func (c *Collector) ObserveCacheHit() {
	c.Computations.WithLabelValues(OutcomeCacheHit).Inc()
}

// Compute runs tutte.Compute with the hook options prepended to opts and
// records the outcome and wall time. Hooks passed in opts replace the
// counting hooks.
func (c *Collector) Compute(ctx context.Context, g *core.Graph, opts ...tutte.Option) (*polynomial.Polynomial, error) {
	start := time.Now()
	p, err := tutte.Compute(ctx, g, append(c.Options(), opts...)...)
	c.Observe(err, time.Since(start))

	return p, err
}
