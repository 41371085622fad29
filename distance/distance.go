package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/jsd/sparse"
)

// RoundingTolerance is how far below zero the divergence may fall through
// floating-point rounding before it is treated as a domain error.
const RoundingTolerance = 1e-9

// ErrNumericDomain is returned when the divergence is negative, which
// happens when the inputs carry more than unit probability mass.
var ErrNumericDomain = errors.New("distance: divergence outside [0, 1]")

// Entropy returns the entropy contribution -v·log2(v) of a single mass v.
// Entropy(0) is exactly 0.
func Entropy(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v * math.Log2(v)
}

// JSKernel is the per-index contribution of two masses to the
// Jensen-Shannon sum.
func JSKernel(a, b float64) float64 {
	return Entropy(a) + Entropy(b) - Entropy(a+b)
}

// JensenShannonDivergence returns the base-2 Jensen-Shannon divergence
// 1 - ½·Σ JSKernel(x[k], y[k]) over the shared indices k.
//
// The result lies in [0, 1] for probability distributions. Inputs with more
// than unit mass can push it below zero; no clamping is applied here.
func JensenShannonDivergence(x, y sparse.Vector) float64 {
	merged := sparse.MergeIntersect(x, y, JSKernel)
	return 1 - 0.5*merged.Sum()
}

// JensenShannon returns the Jensen-Shannon distance, the square root of
// JensenShannonDivergence. It returns NaN if the divergence is negative
// beyond RoundingTolerance.
func JensenShannon(x, y sparse.Vector) float64 {
	d, err := JensenShannonChecked(x, y)
	if err != nil {
		return math.NaN()
	}
	return d
}

// JensenShannonChecked is JensenShannon reporting a negative divergence as
// an error wrapping ErrNumericDomain instead of NaN.
func JensenShannonChecked(x, y sparse.Vector) (float64, error) {
	return FromDivergence(JensenShannonDivergence(x, y))
}

// FromDivergence converts a divergence into a distance. Values in
// [-RoundingTolerance, 0) are clamped to zero.
func FromDivergence(div float64) (float64, error) {
	switch {
	case math.IsNaN(div) || div < -RoundingTolerance:
		return math.NaN(), fmt.Errorf("%w: %g", ErrNumericDomain, div)
	case div < 0:
		return 0, nil
	}
	return math.Sqrt(div), nil
}

// Metric selects the quantity computed between two distributions.
type Metric int

const (
	MetricJensenShannon Metric = iota
	MetricJensenShannonDivergence
)

func (m Metric) String() string {
	switch m {
	case MetricJensenShannon:
		return "JensenShannon"
	case MetricJensenShannonDivergence:
		return "JensenShannonDivergence"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(x, y sparse.Vector) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricJensenShannon:
		return JensenShannon, nil
	case MetricJensenShannonDivergence:
		return JensenShannonDivergence, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
