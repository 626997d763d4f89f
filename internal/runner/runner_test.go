package runner

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tutte/builder"
	"github.com/katalvlaran/tutte/cache"
	"github.com/katalvlaran/tutte/metrics"
	"github.com/katalvlaran/tutte/tutte"
)

func TestRunner_ZeroValue(t *testing.T) {
	g, err := builder.BuildFamily("cycle", []int{5})
	require.NoError(t, err)

	var r Runner
	p, hit, err := r.Polynomial(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "x^4 + x^3 + x^2 + x + y", p.String())
}

func TestRunner_CacheAndMetrics(t *testing.T) {
	g, err := builder.BuildFamily("diamond", nil)
	require.NoError(t, err)

	col, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	r := &Runner{Store: cache.NewMemory(8), Metrics: col}

	p1, hit, err := r.Polynomial(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, hit)
	p2, hit, err := r.Polynomial(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.True(t, p1.Equal(p2))

	assert.Equal(t, 1.0, testutil.ToFloat64(col.Computations.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.Computations.WithLabelValues(metrics.OutcomeCacheHit)))
}

func TestRunner_Errors(t *testing.T) {
	g, err := builder.BuildFamily("complete", []int{6})
	require.NoError(t, err)

	r := &Runner{Options: []tutte.Option{tutte.WithNodeBudget(10)}}
	_, _, err = r.Polynomial(context.Background(), g)
	assert.ErrorIs(t, err, tutte.ErrResourceExhausted)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r = &Runner{Timeout: time.Minute}
	_, _, err = r.Polynomial(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}
