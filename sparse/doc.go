// Package sparse provides sorted sparse vectors and the intersection merge
// that the Jensen-Shannon kernel is built on.
//
// A Vector stores parallel Indices and Values slices. Indices must be
// strictly ascending (sorted, no duplicates). The invariant is a caller
// precondition: constructors and the merge never check it. Use Validate
// when the input comes from an untrusted source.
//
// # Usage
//
//	x := sparse.FromSlices([]uint64{0, 1}, []float64{0.5, 0.5})
//	y := sparse.FromSlices([]uint64{1, 2}, []float64{0.5, 0.5})
//	r := sparse.MergeIntersect(x, y, func(a, b float64) float64 { return a * b })
//	// r.Indices == [1], r.Values == [0.25]
package sparse
