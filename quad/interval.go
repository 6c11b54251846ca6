package quad

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInterval indicates a ≥ b or a non-finite bound.
	ErrInvalidInterval = errors.New("quad: invalid interval")

	// ErrEmptyRule indicates a rule with no nodes or mismatched slices.
	ErrEmptyRule = errors.New("quad: empty or malformed rule")
)

// Interval is the closed integration range [A, B].
type Interval struct {
	A, B float64
}

// NewInterval returns [a, b] after Validate.
func NewInterval(a, b float64) (Interval, error) {
	iv := Interval{A: a, B: b}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

// Validate reports ErrInvalidInterval unless both bounds are finite and A < B.
func (iv Interval) Validate() error {
	if math.IsNaN(iv.A) || math.IsInf(iv.A, 0) || math.IsNaN(iv.B) || math.IsInf(iv.B, 0) {
		return fmt.Errorf("[%g, %g]: non-finite bound: %w", iv.A, iv.B, ErrInvalidInterval)
	}
	if iv.A >= iv.B {
		return fmt.Errorf("[%g, %g]: lower bound must be below upper bound: %w", iv.A, iv.B, ErrInvalidInterval)
	}

	return nil
}

// Length returns B − A.
func (iv Interval) Length() float64 { return iv.B - iv.A }

// HalfWidth returns (B − A)/2, the Jacobian of the map from [-1, 1].
func (iv Interval) HalfWidth() float64 { return (iv.B - iv.A) / 2 }

// Midpoint returns (B + A)/2.
func (iv Interval) Midpoint() float64 { return (iv.B + iv.A) / 2 }

// String renders the interval as "[a, b]".
func (iv Interval) String() string { return fmt.Sprintf("[%g, %g]", iv.A, iv.B) }
