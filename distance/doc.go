// Package distance provides the Jensen-Shannon distance between sparse
// probability distributions.
//
// The kernel evaluates the pointwise term
//
//	JSKernel(a, b) = h(a) + h(b) - h(a+b),  h(v) = -v·log2(v), h(0) = 0
//
// only at indices present in both inputs. JSKernel(v, 0) is exactly zero,
// so skipping indices held by one side only loses nothing.
//
// # Supported Metrics
//
//   - MetricJensenShannon: sqrt of the divergence, a metric in [0, 1]
//   - MetricJensenShannonDivergence: base-2 divergence in [0, 1]
//
// # Usage
//
//	d := distance.JensenShannon(x, y)
//	if math.IsNaN(d) {
//	    // inputs were not probability distributions
//	}
package distance
