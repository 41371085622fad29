package jsd

import (
	"math"

	"github.com/hupe1980/jsd/distance"
	"github.com/hupe1980/jsd/sparse"
)

// Distance returns the Jensen-Shannon distance between two sparse
// distributions given as parallel index/value slices.
//
// Indices must be strictly ascending and each index slice must match its
// value slice in length. The slices are borrowed for the duration of the
// call only; nothing is copied or retained.
//
// For probability distributions the result lies in [0, 1]. It is NaN if the
// index and value slices differ in length or if the inputs carry so much
// mass that the divergence turns negative. Unsorted or duplicated indices
// and negative values are not detected; use DistanceChecked for that.
func Distance(xIndices []uint64, xValues []float64, yIndices []uint64, yValues []float64) float64 {
	if len(xIndices) != len(xValues) || len(yIndices) != len(yValues) {
		return math.NaN()
	}
	return distance.JensenShannon(
		sparse.FromSlices(xIndices, xValues),
		sparse.FromSlices(yIndices, yValues),
	)
}

// DistanceChecked is Distance with a validation pass in front of the kernel.
//
// It returns an *InvalidInputError (matching ErrInvalidInput) for unsorted
// or duplicated indices, mismatched lengths, negative or non-finite values
// and a total mass above one, and a *NumericDomainError (matching
// ErrNumericDomain) if the divergence is negative anyway.
func DistanceChecked(xIndices []uint64, xValues []float64, yIndices []uint64, yValues []float64) (float64, error) {
	x := sparse.FromSlices(xIndices, xValues)
	y := sparse.FromSlices(yIndices, yValues)

	if err := validateOperand("x", x); err != nil {
		return math.NaN(), err
	}
	if err := validateOperand("y", y); err != nil {
		return math.NaN(), err
	}

	return checkedDistance(x, y)
}

func checkedDistance(x, y sparse.Vector) (float64, error) {
	div := distance.JensenShannonDivergence(x, y)
	d, err := distance.FromDivergence(div)
	if err != nil {
		return d, &NumericDomainError{Divergence: div, cause: err}
	}
	return d, nil
}
