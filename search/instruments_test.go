package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/katalvlaran/lvsearch/algebra"
	"github.com/katalvlaran/lvsearch/problem"
)

func TestInstrumentsFor_CachedPerProvider(t *testing.T) {
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	other := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))

	first := instrumentsFor(mp)
	require.NotNil(t, first.runs)
	assert.Same(t, first, instrumentsFor(mp))
	assert.NotSame(t, first, instrumentsFor(other))
}

func TestInstrumentsFor_SharedAcrossRuns(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	p := &problem.Funcs[int, struct{}, int]{
		Goal:    2,
		HasGoal: true,
		Successors: problem.FromSlice(func(from int) []problem.Transition[int, struct{}] {
			return []problem.Transition[int, struct{}]{{To: from + 1}}
		}),
		CostFunc:    func(_, _ int, _ struct{}) int { return 1 },
		Accumulator: algebra.Additive[int](),
	}

	for range 3 {
		res, err := New[int, struct{}, int](p, WithMeterProvider(mp), WithLabel("chain")).Run(context.Background())
		require.NoError(t, err)
		require.True(t, res.Found())
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "search_runs_total" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		assert.Equal(t, int64(3), sum.DataPoints[0].Value)
		return
	}
	t.Fatal("search_runs_total not collected")
}
