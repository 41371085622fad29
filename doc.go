// Package jsd computes the Jensen-Shannon distance between probability
// distributions stored as sparse vectors.
//
// A sparse vector is a pair of parallel slices: strictly ascending uint64
// indices and their float64 values. Entries absent from a vector are zero.
//
// # Quick Start
//
//	d := jsd.Distance(
//	    []uint64{1, 2}, []float64{0.5, 0.5},
//	    []uint64{2, 3}, []float64{0.5, 0.5},
//	) // 0.7071...
//
// Distance borrows its arguments and performs no validation. Malformed input
// yields NaN or an unspecified value, never a panic. DistanceChecked
// validates first and reports typed errors:
//
//	d, err := jsd.DistanceChecked(xi, xv, yi, yv)
//	if errors.Is(err, jsd.ErrInvalidInput) {
//	    // unsorted, duplicated, negative or over-unit input
//	}
//
// # Algorithm
//
// Only indices present in both vectors contribute. For such an index with
// masses a and b, the kernel h(a)+h(b)-h(a+b) with h(v) = -v·log2(v) is
// summed over the sorted intersection (see sparse.MergeIntersect). The
// divergence is 1 - sum/2 and the distance is its square root, which lies in
// [0, 1] for probability distributions.
//
// # Batches
//
// Calculator evaluates one-to-many and pairwise distances concurrently:
//
//	calc := jsd.New(
//	    jsd.WithWorkers(8),
//	    jsd.WithValidation(true),
//	    jsd.WithLogger(jsd.NewTextLogger(slog.LevelDebug)),
//	)
//	m, err := calc.Pairwise(ctx, vectors)
//	fmt.Println(m.At(0, 1))
//
// Workers and merge-buffer memory can be bounded with a resource.Controller
// passed via WithResourceController.
package jsd
