package jsd

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/jsd/resource"
	"github.com/hupe1980/jsd/sparse"
	"github.com/hupe1980/jsd/testutil"
)

func vec(indices []uint64, values []float64) sparse.Vector {
	return sparse.FromSlices(indices, values)
}

func randomDistributions(n int) []sparse.Vector {
	rng := testutil.NewRNG(42)
	out := make([]sparse.Vector, n)
	for i := range out {
		out[i] = rng.SparseDistribution(20+rng.Intn(50), 200)
	}
	return out
}

func TestCalculator_Distance(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	calc := New(WithMetricsCollector(metrics))

	d, err := calc.Distance(context.Background(),
		vec([]uint64{1, 2}, []float64{0.5, 0.5}),
		vec([]uint64{2, 3}, []float64{0.5, 0.5}))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.5), d, 1e-12)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.DistanceCount)
	assert.Equal(t, int64(0), stats.DistanceErrors)
}

func TestCalculator_DistanceValidation(t *testing.T) {
	bad := vec([]uint64{2, 1}, []float64{0.5, 0.5})
	good := vec([]uint64{1}, []float64{1})

	t.Run("Enabled", func(t *testing.T) {
		calc := New(WithValidation(true))
		_, err := calc.Distance(context.Background(), good, bad)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Disabled", func(t *testing.T) {
		calc := New()
		_, err := calc.Distance(context.Background(), good, bad)
		require.NoError(t, err)
	})
}

func TestCalculator_DistanceNumericDomain(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	calc := New(WithMetricsCollector(metrics))

	heavy := vec([]uint64{1, 2}, []float64{1, 1})
	d, err := calc.Distance(context.Background(), heavy, heavy)
	require.ErrorIs(t, err, ErrNumericDomain)
	assert.True(t, math.IsNaN(d))
	assert.Equal(t, int64(1), metrics.GetStats().DistanceErrors)
}

func TestCalculator_OneToMany(t *testing.T) {
	vs := randomDistributions(16)
	calc := New(WithWorkers(4))

	got, err := calc.OneToMany(context.Background(), vs[0], vs)
	require.NoError(t, err)
	require.Len(t, got, len(vs))

	for i, v := range vs {
		expect := Distance(vs[0].Indices, vs[0].Values, v.Indices, v.Values)
		assert.InDelta(t, expect, got[i], 1e-12, "target %d", i)
	}
	assert.InDelta(t, 0, got[0], 1e-6)
}

func TestCalculator_OneToManyNumericDomainIsNaN(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	calc := New(WithMetricsCollector(metrics))

	heavy := vec([]uint64{1, 2}, []float64{1, 1})
	targets := []sparse.Vector{
		vec([]uint64{1}, []float64{1}),
		heavy,
	}

	got, err := calc.OneToMany(context.Background(), heavy, targets)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(2), stats.BatchPairs)
	assert.Equal(t, int64(1), stats.BatchFailed)
}

func TestCalculator_OneToManyValidation(t *testing.T) {
	calc := New(WithValidation(true))
	targets := []sparse.Vector{
		vec([]uint64{1}, []float64{1}),
		vec([]uint64{1, 1}, []float64{0.5, 0.5}),
	}

	_, err := calc.OneToMany(context.Background(), vec([]uint64{1}, []float64{1}), targets)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "targets[1]")
}

func TestCalculator_Pairwise(t *testing.T) {
	vs := randomDistributions(12)
	metrics := &BasicMetricsCollector{}
	calc := New(WithWorkers(3), WithMetricsCollector(metrics))

	m, err := calc.Pairwise(context.Background(), vs)
	require.NoError(t, err)
	require.Equal(t, len(vs), m.N)

	for i := range vs {
		assert.InDelta(t, 0.0, m.At(i, i), 1e-6)
		for j := range vs {
			assert.Equal(t, m.At(i, j), m.At(j, i))
			if i <= j {
				expect := Distance(vs[i].Indices, vs[i].Values, vs[j].Indices, vs[j].Values)
				assert.InDelta(t, expect, m.At(i, j), 1e-12)
			}
			assert.GreaterOrEqual(t, m.At(i, j), 0.0)
			assert.LessOrEqual(t, m.At(i, j), 1.0)
		}
	}

	assert.Len(t, m.Row(3), len(vs))
	assert.Equal(t, int64(len(vs)*(len(vs)+1)/2), metrics.GetStats().DistanceCount)
}

func TestCalculator_PairwiseDiagonal(t *testing.T) {
	calc := New()
	ctx := context.Background()

	vs := []sparse.Vector{
		vec([]uint64{1, 2}, []float64{0.5, 0.5}),
		sparse.New(0),
	}

	m, err := calc.Pairwise(ctx, vs)
	require.NoError(t, err)

	for i, v := range vs {
		d, err := calc.Distance(ctx, v, v)
		require.NoError(t, err)
		assert.Equal(t, d, m.At(i, i), "vector %d", i)
	}
	assert.Equal(t, 1.0, m.At(1, 1))
	assert.Equal(t, 1.0, m.At(0, 1))
}

func TestCalculator_LengthMismatch(t *testing.T) {
	ctx := context.Background()
	short := vec([]uint64{0, 1}, []float64{1})
	good := vec([]uint64{0}, []float64{1})

	assert.True(t, math.IsNaN(Distance(short.Indices, short.Values, good.Indices, good.Values)))

	for _, validate := range []bool{false, true} {
		metrics := &BasicMetricsCollector{}
		calc := New(WithValidation(validate), WithMetricsCollector(metrics))

		d, err := calc.Distance(ctx, short, good)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.True(t, math.IsNaN(d))
		assert.Contains(t, err.Error(), "length mismatch")

		d, err = calc.Distance(ctx, good, short)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.True(t, math.IsNaN(d))

		_, err = calc.OneToMany(ctx, good, []sparse.Vector{good, short})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = calc.Pairwise(ctx, []sparse.Vector{good, short})
		require.ErrorIs(t, err, ErrInvalidInput)

		assert.Equal(t, int64(0), metrics.GetStats().BatchCount)
	}
}

func TestCalculator_PairwiseWithResourceController(t *testing.T) {
	vs := randomDistributions(8)
	rc := resource.NewController(resource.Config{
		MaxWorkers:       2,
		MemoryLimitBytes: 1024,
	})
	calc := New(WithResourceController(rc))

	m, err := calc.Pairwise(context.Background(), vs)
	require.NoError(t, err)
	assert.Equal(t, len(vs), m.N)
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

func TestCalculator_PairwiseEmpty(t *testing.T) {
	m, err := New().Pairwise(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.N)
}

func TestCalculator_Canceled(t *testing.T) {
	vs := randomDistributions(6)
	calc := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := calc.Distance(ctx, vs[0], vs[1])
	require.ErrorIs(t, err, context.Canceled)

	_, err = calc.OneToMany(ctx, vs[0], vs)
	require.ErrorIs(t, err, context.Canceled)

	_, err = calc.Pairwise(ctx, vs)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMatrix_AtOutOfRange(t *testing.T) {
	m := newMatrix(2)
	assert.Panics(t, func() { m.At(2, 0) })
}

func BenchmarkCalculator_Pairwise(b *testing.B) {
	vs := randomDistributions(32)
	calc := New()
	ctx := context.Background()

	for b.Loop() {
		_, _ = calc.Pairwise(ctx, vs)
	}
}
