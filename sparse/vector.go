package sparse

import (
	"iter"
	"slices"
)

// Vector is a sparse vector of (index, value) pairs held in two parallel
// slices. Indices are strictly ascending.
//
// The two slices form a single logical entity: they are never resized
// independently. A Vector built with FromSlices borrows the caller's memory.
type Vector struct {
	Indices []uint64
	Values  []float64
}

// New returns an empty vector with room for capacity entries.
func New(capacity int) Vector {
	if capacity < 0 {
		capacity = 0
	}
	return Vector{
		Indices: make([]uint64, 0, capacity),
		Values:  make([]float64, 0, capacity),
	}
}

// FromSlices wraps the given slices without copying them.
// The caller keeps ownership and must not modify them while the vector is in use.
func FromSlices(indices []uint64, values []float64) Vector {
	return Vector{Indices: indices, Values: values}
}

// FromMap builds a vector from an index-to-value map, sorting the indices.
func FromMap(m map[uint64]float64) Vector {
	v := New(len(m))
	for idx := range m {
		v.Indices = append(v.Indices, idx)
	}
	slices.Sort(v.Indices)
	for _, idx := range v.Indices {
		v.Values = append(v.Values, m[idx])
	}
	return v
}

// Len returns the number of entries. If the slices disagree in length,
// the shorter one wins.
func (v Vector) Len() int {
	return min(len(v.Indices), len(v.Values))
}

// Append adds an entry at the end. idx must be greater than every index
// already stored.
func (v *Vector) Append(idx uint64, value float64) {
	v.Indices = append(v.Indices, idx)
	v.Values = append(v.Values, value)
}

// Reserve grows the capacity of both slices to hold at least n more entries.
func (v *Vector) Reserve(n int) {
	v.Indices = slices.Grow(v.Indices, n)
	v.Values = slices.Grow(v.Values, n)
}

// Clone returns a deep copy that shares no memory with v.
func (v Vector) Clone() Vector {
	n := v.Len()
	return Vector{
		Indices: slices.Clone(v.Indices[:n]),
		Values:  slices.Clone(v.Values[:n]),
	}
}

// Apply replaces every value with f(value) in place. Indices are untouched.
func (v Vector) Apply(f func(float64) float64) {
	for i := range v.Values {
		v.Values[i] = f(v.Values[i])
	}
}

// Sum returns the sum of all values, accumulated in ascending index order.
func (v Vector) Sum() float64 {
	var sum float64
	for _, val := range v.Values[:v.Len()] {
		sum += val
	}
	return sum
}

// Normalize scales the values in place so that they sum to 1.
// Returns false if the sum is zero, leaving v unchanged.
func (v Vector) Normalize() bool {
	sum := v.Sum()
	if sum == 0 {
		return false
	}
	inv := 1 / sum
	v.Apply(func(x float64) float64 { return x * inv })
	return true
}

// All iterates over the (index, value) pairs in ascending index order.
func (v Vector) All() iter.Seq2[uint64, float64] {
	return func(yield func(uint64, float64) bool) {
		for i := range v.Len() {
			if !yield(v.Indices[i], v.Values[i]) {
				return
			}
		}
	}
}
