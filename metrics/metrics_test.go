package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tutte/builder"
	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/metrics"
	"github.com/katalvlaran/tutte/tutte"
)

func TestCollector_Compute(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	g, err := builder.BuildMultigraph(nil, builder.Cycle(4))
	require.NoError(t, err)

	p, err := c.Compute(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, "x^3 + x^2 + x + y", p.String())

	// C4: 3 internal nodes, 4 leaves.
	assert.Equal(t, 3.0, testutil.ToFloat64(c.NodesExpanded))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.Leaves))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Computations.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.Duration))

	_, err = c.Compute(context.Background(), g, tutte.WithNodeBudget(2))
	assert.ErrorIs(t, err, tutte.ErrResourceExhausted)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Computations.WithLabelValues(metrics.OutcomeBudget)))

	c.ObserveCacheHit()
	expected := `
# HELP tutte_computations_total Tutte polynomial computations by outcome.
# TYPE tutte_computations_total counter
tutte_computations_total{outcome="budget_exhausted"} 1
tutte_computations_total{outcome="cache_hit"} 1
tutte_computations_total{outcome="ok"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "tutte_computations_total"))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)

	c, err := metrics.New(nil)
	require.NoError(t, err)
	c.Observe(nil, time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Computations.WithLabelValues(metrics.OutcomeOK)))
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, metrics.OutcomeOK},
		{fmt.Errorf("wrap: %w", tutte.ErrResourceExhausted), metrics.OutcomeBudget},
		{context.Canceled, metrics.OutcomeCanceled},
		{context.DeadlineExceeded, metrics.OutcomeCanceled},
		{tutte.ErrUnsupportedGraphKind, metrics.OutcomeRejected},
		{tutte.ErrGraphNil, metrics.OutcomeRejected},
		{errors.New("other"), metrics.OutcomeError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, metrics.Outcome(tc.err), "%v", tc.err)
	}

	c, err := metrics.New(nil)
	require.NoError(t, err)
	_, err = c.Compute(context.Background(), core.NewGraph(core.WithDirected(true)))
	assert.ErrorIs(t, err, tutte.ErrUnsupportedGraphKind)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Computations.WithLabelValues(metrics.OutcomeRejected)))
}
