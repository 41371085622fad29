package sparse_test

import (
	"math"
	"testing"

	"github.com/hupe1980/jsd/sparse"
	"github.com/hupe1980/jsd/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(a, b float64) float64 { return a + b }

func TestMergeIntersect(t *testing.T) {
	tests := []struct {
		name        string
		x, y        sparse.Vector
		wantIndices []uint64
		wantValues  []float64
	}{
		{
			name:        "PartialOverlap",
			x:           sparse.FromSlices([]uint64{0, 1}, []float64{0.5, 0.5}),
			y:           sparse.FromSlices([]uint64{1, 2}, []float64{0.25, 0.75}),
			wantIndices: []uint64{1},
			wantValues:  []float64{0.75},
		},
		{
			name:        "Identical",
			x:           sparse.FromSlices([]uint64{3, 7, 9}, []float64{1, 2, 3}),
			y:           sparse.FromSlices([]uint64{3, 7, 9}, []float64{10, 20, 30}),
			wantIndices: []uint64{3, 7, 9},
			wantValues:  []float64{11, 22, 33},
		},
		{
			name:        "Disjoint",
			x:           sparse.FromSlices([]uint64{0, 2, 4}, []float64{1, 1, 1}),
			y:           sparse.FromSlices([]uint64{1, 3, 5}, []float64{1, 1, 1}),
			wantIndices: []uint64{},
			wantValues:  []float64{},
		},
		{
			// The final element of each input must still be compared
			// before its cursor is retired.
			name:        "LastElementsMatch",
			x:           sparse.FromSlices([]uint64{1, 5, 100}, []float64{1, 1, 1}),
			y:           sparse.FromSlices([]uint64{2, 100}, []float64{2, 2}),
			wantIndices: []uint64{100},
			wantValues:  []float64{3},
		},
		{
			name:        "SingleElements",
			x:           sparse.FromSlices([]uint64{42}, []float64{1}),
			y:           sparse.FromSlices([]uint64{42}, []float64{2}),
			wantIndices: []uint64{42},
			wantValues:  []float64{3},
		},
		{
			name:        "FirstShorterExhaustsEarly",
			x:           sparse.FromSlices([]uint64{0}, []float64{1}),
			y:           sparse.FromSlices([]uint64{0, 1, 2, 3}, []float64{1, 1, 1, 1}),
			wantIndices: []uint64{0},
			wantValues:  []float64{2},
		},
		{
			name:        "EmptyX",
			x:           sparse.Vector{},
			y:           sparse.FromSlices([]uint64{0, 1}, []float64{1, 1}),
			wantIndices: []uint64{},
			wantValues:  []float64{},
		},
		{
			name:        "BothEmpty",
			x:           sparse.Vector{},
			y:           sparse.Vector{},
			wantIndices: []uint64{},
			wantValues:  []float64{},
		},
		{
			name:        "MaxIndex",
			x:           sparse.FromSlices([]uint64{0, math.MaxUint64}, []float64{1, 1}),
			y:           sparse.FromSlices([]uint64{math.MaxUint64}, []float64{4}),
			wantIndices: []uint64{math.MaxUint64},
			wantValues:  []float64{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sparse.MergeIntersect(tt.x, tt.y, sum)
			assert.Equal(t, tt.wantIndices, got.Indices)
			assert.Equal(t, tt.wantValues, got.Values)
		})
	}
}

func TestMergeIntersect_Combiners(t *testing.T) {
	x := sparse.FromSlices([]uint64{1, 2, 3}, []float64{1, 5, 3})
	y := sparse.FromSlices([]uint64{2, 3, 4}, []float64{4, 6, 8})

	got := sparse.MergeIntersect(x, y, func(a, b float64) float64 { return math.Min(a, b) })
	assert.Equal(t, []float64{4, 3}, got.Values)

	// The combiner sees x's value first.
	got = sparse.MergeIntersect(x, y, func(a, b float64) float64 { return a - b })
	assert.Equal(t, []float64{1, -3}, got.Values)
}

func TestMergeIntersect_DoesNotMutateInputs(t *testing.T) {
	x := sparse.FromSlices([]uint64{1, 2}, []float64{1, 2})
	y := sparse.FromSlices([]uint64{2, 3}, []float64{3, 4})
	xc, yc := x.Clone(), y.Clone()

	_ = sparse.MergeIntersect(x, y, sum)

	assert.Equal(t, xc, x)
	assert.Equal(t, yc, y)
}

func TestMergeIntersect_Capacity(t *testing.T) {
	x := sparse.FromSlices([]uint64{1, 2, 3, 4, 5}, []float64{1, 1, 1, 1, 1})
	y := sparse.FromSlices([]uint64{5}, []float64{1})

	got := sparse.MergeIntersect(x, y, sum)

	assert.Equal(t, 1, got.Len())
	assert.GreaterOrEqual(t, cap(got.Indices), 5)
}

func TestMergeIntersect_MatchesSetIntersection(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range 50 {
		universe := 1 + rng.Intn(500)
		x := rng.SparseVector(rng.Intn(universe+1), universe)
		y := rng.SparseVector(rng.Intn(universe+1), universe)

		got := sparse.MergeIntersect(x, y, sum)
		want := testutil.BruteForceIntersection(x, y)

		require.Equal(t, len(want), got.Len())
		for i, idx := range want {
			assert.Equal(t, idx, got.Indices[i])
		}
		for i := 1; i < got.Len(); i++ {
			assert.Less(t, got.Indices[i-1], got.Indices[i])
		}
		assert.LessOrEqual(t, got.Len(), min(x.Len(), y.Len()))
	}
}

func TestMergeIntersect_LinearSteps(t *testing.T) {
	rng := testutil.NewRNG(99)

	for range 50 {
		universe := 1 + rng.Intn(1000)
		x := rng.SparseVector(rng.Intn(universe+1), universe)
		y := rng.SparseVector(rng.Intn(universe+1), universe)

		steps := 0
		_ = sparse.MergeIntersectWithHook(x, y, sum, func() { steps++ })

		assert.LessOrEqual(t, steps, x.Len()+y.Len())
	}
}

func TestMergeIntersect_UnsortedIsDeterministic(t *testing.T) {
	x := sparse.FromSlices([]uint64{5, 1, 3}, []float64{1, 1, 1})
	y := sparse.FromSlices([]uint64{3, 5, 1}, []float64{1, 1, 1})

	first := sparse.MergeIntersect(x, y, sum)
	second := sparse.MergeIntersect(x, y, sum)

	assert.Equal(t, first, second)
}

func BenchmarkMergeIntersect(b *testing.B) {
	rng := testutil.NewRNG(42)
	x := rng.SparseVector(10_000, 100_000)
	y := rng.SparseVector(10_000, 100_000)

	b.ReportAllocs()
	for b.Loop() {
		_ = sparse.MergeIntersect(x, y, sum)
	}
}
