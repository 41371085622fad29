package jsd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/jsd/distance"
	"github.com/hupe1980/jsd/sparse"
)

var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNumericDomain is matched by every *NumericDomainError. It is the
	// same value as distance.ErrNumericDomain.
	ErrNumericDomain = distance.ErrNumericDomain
)

// InvalidInputError indicates an operand that violates the input contract.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type InvalidInputError struct {
	// Operand names the offending argument ("x", "y", or "vectors[i]").
	Operand string
	// Position is the offending entry, or -1 if the whole vector is at fault.
	Position int
	Reason   string
	cause    error
}

func (e *InvalidInputError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid input %s: %s", e.Operand, e.Reason)
	}
	return fmt.Sprintf("invalid input %s: %s at position %d", e.Operand, e.Reason, e.Position)
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func (e *InvalidInputError) Unwrap() error { return e.cause }

// NumericDomainError indicates that the radicand 1 - ½·Σ JSKernel fell
// below zero, i.e. the half kernel sum exceeds one, so no real distance
// exists. This only happens for inputs carrying more than unit probability
// mass. Divergence holds the radicand, the value JensenShannonDivergence
// returns.
//
// The underlying error can be accessed via errors.Unwrap.
type NumericDomainError struct {
	Divergence float64
	cause      error
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("numeric domain error: radicand 1 - 0.5*sum = %g is negative (0.5*sum = %g exceeds 1)",
		e.Divergence, 1-e.Divergence)
}

func (e *NumericDomainError) Unwrap() error { return e.cause }

// checkShape rejects an operand whose index and value slices differ in
// length. Calculator applies it with or without validation.
func checkShape(operand string, v sparse.Vector) error {
	if len(v.Indices) != len(v.Values) {
		return &InvalidInputError{Operand: operand, Position: -1, Reason: sparse.ReasonLengthMismatch.String()}
	}
	return nil
}

// massTolerance is the slack allowed on a total mass of 1.
const massTolerance = 1e-9

// validateOperand checks the vector invariants and that v is a
// sub-probability distribution.
func validateOperand(operand string, v sparse.Vector) error {
	if err := v.Validate(); err != nil {
		var ie *sparse.InvalidError
		if errors.As(err, &ie) {
			return &InvalidInputError{Operand: operand, Position: ie.Position, Reason: ie.Reason.String(), cause: err}
		}
		return &InvalidInputError{Operand: operand, Position: -1, Reason: err.Error(), cause: err}
	}

	if mass := v.Sum(); mass > 1+massTolerance {
		return &InvalidInputError{
			Operand:  operand,
			Position: -1,
			Reason:   fmt.Sprintf("total mass %g exceeds 1", mass),
		}
	}

	return nil
}
