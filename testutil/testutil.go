package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/jsd/sparse"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// SparseIndices returns nnz distinct indices drawn from [0, universe),
// sorted ascending. nnz is capped at universe.
func (r *RNG) SparseIndices(nnz, universe int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sparseIndicesLocked(nnz, universe)
}

// sparseIndicesLocked is the internal implementation (caller must hold lock).
func (r *RNG) sparseIndicesLocked(nnz, universe int) []uint64 {
	nnz = min(nnz, universe)
	perm := r.rand.Perm(universe)[:nnz]

	indices := make([]uint64, nnz)
	for i, p := range perm {
		indices[i] = uint64(p)
	}
	slices.Sort(indices)
	return indices
}

// SparseVector returns a vector with nnz entries in [0, universe) and
// uniform values in (0, 1].
func (r *RNG) SparseVector(nnz, universe int) sparse.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	indices := r.sparseIndicesLocked(nnz, universe)
	values := make([]float64, len(indices))
	for i := range values {
		values[i] = 1 - r.rand.Float64()
	}
	return sparse.FromSlices(indices, values)
}

// SparseDistribution returns a random sparse probability distribution:
// like SparseVector, normalized to sum to 1.
func (r *RNG) SparseDistribution(nnz, universe int) sparse.Vector {
	v := r.SparseVector(nnz, universe)
	v.Normalize()
	return v
}

// ZipfDistribution returns a distribution over [0, universe) whose mass
// follows Zipf's law P(k) ∝ 1/k^s, with the ranks shuffled across indices.
// Heavy-tailed like real k-mer spectra.
func (r *RNG) ZipfDistribution(universe int, s float64) sparse.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	ranks := r.rand.Perm(universe)
	v := sparse.New(universe)
	for i := range universe {
		v.Append(uint64(i), 1.0/math.Pow(float64(ranks[i]+1), s))
	}
	v.Normalize()
	return v
}

// DNA returns a random sequence of n bases over ACGT.
func (r *RNG) DNA(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	const bases = "ACGT"
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = bases[r.rand.Intn(len(bases))]
	}
	return seq
}

// BruteForceIntersection returns the sorted indices present in both x and y,
// computed with a hash set.
func BruteForceIntersection(x, y sparse.Vector) []uint64 {
	seen := make(map[uint64]struct{}, x.Len())
	for idx := range x.All() {
		seen[idx] = struct{}{}
	}

	shared := make([]uint64, 0)
	for idx := range y.All() {
		if _, ok := seen[idx]; ok {
			shared = append(shared, idx)
		}
	}
	slices.Sort(shared)
	return shared
}

// BruteForceJensenShannon computes the Jensen-Shannon distance from the
// textbook definition: sqrt(0.5·KL(P‖M) + 0.5·KL(Q‖M)) with M = (P+Q)/2,
// in base 2, over the union of both supports.
func BruteForceJensenShannon(x, y sparse.Vector) float64 {
	p := make(map[uint64]float64, x.Len())
	for idx, v := range x.All() {
		p[idx] = v
	}
	q := make(map[uint64]float64, y.Len())
	for idx, v := range y.All() {
		q[idx] = v
	}

	union := make(map[uint64]struct{}, len(p)+len(q))
	for idx := range p {
		union[idx] = struct{}{}
	}
	for idx := range q {
		union[idx] = struct{}{}
	}

	var div float64
	for idx := range union {
		pi, qi := p[idx], q[idx]
		m := (pi + qi) / 2
		if pi > 0 {
			div += 0.5 * pi * math.Log2(pi/m)
		}
		if qi > 0 {
			div += 0.5 * qi * math.Log2(qi/m)
		}
	}

	return math.Sqrt(math.Max(div, 0))
}
