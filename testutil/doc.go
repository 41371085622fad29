// Package testutil provides testing utilities for jsd.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random sparse distributions and
// DNA sequences, and brute-force reference implementations used as
// ground truth.
//
// # Random Distributions
//
//	rng := testutil.NewRNG(seed)
//	x := rng.SparseDistribution(64, 1024) // 64 entries drawn from [0, 1024)
//
// # Ground Truth
//
//	shared := testutil.BruteForceIntersection(x, y)
//	want := testutil.BruteForceJensenShannon(x, y)
package testutil
