package sparse

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is matched by every *InvalidError via errors.Is.
var ErrInvalid = errors.New("sparse: invalid vector")

// Reason classifies a Validate failure.
type Reason int

const (
	// ReasonLengthMismatch means Indices and Values differ in length.
	ReasonLengthMismatch Reason = iota
	// ReasonUnsorted means an index is smaller than its predecessor.
	ReasonUnsorted
	// ReasonDuplicate means an index equals its predecessor.
	ReasonDuplicate
	// ReasonNonFinite means a value is NaN or infinite.
	ReasonNonFinite
	// ReasonNegative means a value is below zero.
	ReasonNegative
)

func (r Reason) String() string {
	switch r {
	case ReasonLengthMismatch:
		return "length mismatch"
	case ReasonUnsorted:
		return "unsorted index"
	case ReasonDuplicate:
		return "duplicate index"
	case ReasonNonFinite:
		return "non-finite value"
	case ReasonNegative:
		return "negative value"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// InvalidError reports the first entry that violates the vector invariants.
type InvalidError struct {
	Position int
	Reason   Reason
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("sparse: %s at position %d", e.Reason, e.Position)
}

// Is reports whether target is ErrInvalid.
func (e *InvalidError) Is(target error) bool { return target == ErrInvalid }

// Validate checks that v is well formed: equal slice lengths, strictly
// ascending indices and finite, non-negative values.
func (v Vector) Validate() error {
	if len(v.Indices) != len(v.Values) {
		return &InvalidError{Position: min(len(v.Indices), len(v.Values)), Reason: ReasonLengthMismatch}
	}

	for i, val := range v.Values {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return &InvalidError{Position: i, Reason: ReasonNonFinite}
		}
		if val < 0 {
			return &InvalidError{Position: i, Reason: ReasonNegative}
		}
		if i == 0 {
			continue
		}
		switch prev := v.Indices[i-1]; {
		case v.Indices[i] == prev:
			return &InvalidError{Position: i, Reason: ReasonDuplicate}
		case v.Indices[i] < prev:
			return &InvalidError{Position: i, Reason: ReasonUnsorted}
		}
	}

	return nil
}
