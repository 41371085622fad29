package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseIndices(t *testing.T) {
	rng := NewRNG(4711)

	idx := rng.SparseIndices(32, 100)

	require.Len(t, idx, 32)
	for i := 1; i < len(idx); i++ {
		assert.Less(t, idx[i-1], idx[i])
	}
	assert.Less(t, idx[len(idx)-1], uint64(100))

	assert.Len(t, rng.SparseIndices(10, 4), 4)
}

func TestSparseDistribution(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.SparseDistribution(50, 1000)

	assert.Equal(t, 50, v.Len())
	assert.InDelta(t, 1.0, v.Sum(), 1e-12)
	assert.NoError(t, v.Validate())
}

func TestZipfDistribution(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.ZipfDistribution(200, 1.5)

	assert.Equal(t, 200, v.Len())
	assert.InDelta(t, 1.0, v.Sum(), 1e-12)
	assert.NoError(t, v.Validate())
}

func TestDNA(t *testing.T) {
	rng := NewRNG(4711)

	seq := rng.DNA(500)

	require.Len(t, seq, 500)
	for _, b := range seq {
		assert.Contains(t, "ACGT", string(b))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.SparseVector(8, 64)
	rng.Reset()
	v2 := rng.SparseVector(8, 64)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestBruteForceIntersection(t *testing.T) {
	rng := NewRNG(1)
	x := rng.SparseVector(20, 40)
	y := rng.SparseVector(20, 40)

	shared := BruteForceIntersection(x, y)

	for _, idx := range shared {
		assert.Contains(t, x.Indices, idx)
		assert.Contains(t, y.Indices, idx)
	}
}

func TestBruteForceJensenShannon(t *testing.T) {
	rng := NewRNG(1)
	x := rng.SparseDistribution(16, 64)

	assert.InDelta(t, 0.0, BruteForceJensenShannon(x, x), 1e-9)

	a := rng.SparseDistribution(4, 4)
	b := a.Clone()
	b.Indices = []uint64{10, 11, 12, 13}
	assert.InDelta(t, 1.0, BruteForceJensenShannon(a, b), 1e-9)

	d := BruteForceJensenShannon(rng.SparseDistribution(16, 64), rng.SparseDistribution(16, 64))
	assert.False(t, math.IsNaN(d))
	assert.GreaterOrEqual(t, d, 0.0)
	assert.LessOrEqual(t, d, 1.0+1e-9)
}
