package distance_test

import (
	"math"
	"testing"

	"github.com/hupe1980/jsd/distance"
	"github.com/hupe1980/jsd/testutil"
	"github.com/stretchr/testify/assert"
)

func TestJensenShannon_Properties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range 100 {
		universe := 1 + rng.Intn(200)
		x := rng.SparseDistribution(1+rng.Intn(universe), universe)
		y := rng.SparseDistribution(1+rng.Intn(universe), universe)

		dxy := distance.JensenShannon(x, y)
		dyx := distance.JensenShannon(y, x)

		assert.False(t, math.IsNaN(dxy))
		assert.InDelta(t, dxy, dyx, 1e-12, "symmetry")
		assert.GreaterOrEqual(t, dxy, -1e-9, "range")
		assert.LessOrEqual(t, dxy, 1+1e-9, "range")
		assert.InDelta(t, 0.0, distance.JensenShannon(x, x), 1e-6, "identity")
		assert.InDelta(t, testutil.BruteForceJensenShannon(x, y), dxy, 1e-6, "reference")
	}
}

func TestJensenShannon_HeavyTailed(t *testing.T) {
	rng := testutil.NewRNG(7)
	x := rng.ZipfDistribution(2000, 1.2)
	y := rng.ZipfDistribution(2000, 1.2)

	d := distance.JensenShannon(x, y)

	assert.InDelta(t, testutil.BruteForceJensenShannon(x, y), d, 1e-6)
	assert.InDelta(t, 0.0, distance.JensenShannon(x, x), 1e-4)
}

func BenchmarkJensenShannon(b *testing.B) {
	rng := testutil.NewRNG(42)
	x := rng.SparseDistribution(10_000, 100_000)
	y := rng.SparseDistribution(10_000, 100_000)

	b.ReportAllocs()
	for b.Loop() {
		_ = distance.JensenShannon(x, y)
	}
}
