// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the solvers.
var (
	// ErrBadOrder indicates an order n < 1.
	ErrBadOrder = errors.New("gauss: order must be >= 1")

	// ErrBadOptions indicates a non-positive or non-finite Newton tolerance,
	// a Newton iteration cap below 1, or an unknown Method.
	ErrBadOptions = errors.New("gauss: invalid solver options")

	// ErrNewtonDivergence indicates that Newton refinement of a root did not
	// meet NewtonTol within NewtonMaxIter iterations.
	ErrNewtonDivergence = errors.New("gauss: newton iteration did not converge")

	// ErrSolverFailed indicates that the Golub–Welsch eigen-solver did not converge.
	ErrSolverFailed = errors.New("gauss: eigen solver did not converge")

	// ErrInvalidRule indicates a Rule that violates its invariants.
	ErrInvalidRule = errors.New("gauss: invalid rule")
)

// IsConvergenceFailure reports whether err is a numerical-convergence failure
// of either method, as opposed to a usage error.
func IsConvergenceFailure(err error) bool {
	return errors.Is(err, ErrNewtonDivergence) || errors.Is(err, ErrSolverFailed)
}

// Method selects the node/weight algorithm.
type Method int

const (
	// MethodNewton refines asymptotic guesses with Newton's method on P_n.
	MethodNewton Method = iota

	// MethodGolubWelsch diagonalizes the Jacobi matrix of the Legendre recurrence.
	MethodGolubWelsch
)

// String returns the CLI spelling of m.
func (m Method) String() string {
	switch m {
	case MethodNewton:
		return "newton"
	case MethodGolubWelsch:
		return "golub-welsch"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "newton":
		return MethodNewton, nil
	case "golub-welsch", "gw":
		return MethodGolubWelsch, nil
	default:
		return 0, fmt.Errorf("unknown method %q: %w", s, ErrBadOptions)
	}
}

// Defaults for Options.
const (
	// DefaultNewtonTol is the absolute step size at which a root is accepted.
	DefaultNewtonTol = 1e-14

	// DefaultNewtonMaxIter caps Newton steps per root.
	DefaultNewtonMaxIter = 100
)

// Options configures the solvers.
//
//   - Method:        MethodNewton (default) or MethodGolubWelsch.
//   - NewtonTol:     accept a root once |step| < NewtonTol. Must be finite and > 0.
//   - NewtonMaxIter: Newton steps allowed per root before ErrNewtonDivergence. ≥ 1.
//
// The Golub–Welsch method ignores the Newton fields.
type Options struct {
	Method        Method
	NewtonTol     float64
	NewtonMaxIter int
}

// Option is a functional setter for Options.
type Option func(*Options)

// DefaultOptions returns Newton with tolerance 1e-14 and a 100-step cap.
func DefaultOptions() Options {
	return Options{
		Method:        MethodNewton,
		NewtonTol:     DefaultNewtonTol,
		NewtonMaxIter: DefaultNewtonMaxIter,
	}
}

// WithMethod selects the algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithNewtonTol sets the absolute Newton step tolerance.
// Panics if tol is not finite and positive.
func WithNewtonTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("gauss: WithNewtonTol: tol must be finite and > 0")
	}

	return func(o *Options) { o.NewtonTol = tol }
}

// WithNewtonMaxIter sets the per-root Newton iteration cap. Panics if n < 1.
func WithNewtonMaxIter(n int) Option {
	if n < 1 {
		panic("gauss: WithNewtonMaxIter: cap must be >= 1")
	}

	return func(o *Options) { o.NewtonMaxIter = n }
}

// WithOptions replaces the whole configuration, e.g. with a struct built by a caller.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.Validate()
}

// Validate checks the option invariants.
func (o Options) Validate() error {
	if o.Method != MethodNewton && o.Method != MethodGolubWelsch {
		return fmt.Errorf("method %d: %w", int(o.Method), ErrBadOptions)
	}
	if math.IsNaN(o.NewtonTol) || math.IsInf(o.NewtonTol, 0) || o.NewtonTol <= 0 {
		return fmt.Errorf("newton tol %g: %w", o.NewtonTol, ErrBadOptions)
	}
	if o.NewtonMaxIter < 1 {
		return fmt.Errorf("newton max iter %d: %w", o.NewtonMaxIter, ErrBadOptions)
	}

	return nil
}

// Rule is a set of quadrature nodes with their weights.
//
// Invariants (as produced by Solve and quad.Map):
//   - len(Nodes) == len(Weights) == order.
//   - Nodes strictly increasing and symmetric about the interval midpoint.
//   - Weights positive, summing to the interval length (2 on [-1, 1]).
//
// A Rule is treated as immutable: every function returns a fresh Rule.
// Use Clone before modifying the slices.
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// Order returns the number of nodes.
func (r Rule) Order() int { return len(r.Nodes) }

// Clone returns a deep copy of r.
func (r Rule) Clone() Rule {
	out := Rule{
		Nodes:   make([]float64, len(r.Nodes)),
		Weights: make([]float64, len(r.Weights)),
	}
	copy(out.Nodes, r.Nodes)
	copy(out.Weights, r.Weights)

	return out
}

// Sum returns Σ weights, accumulated left to right.
func (r Rule) Sum() float64 {
	var s float64
	for _, w := range r.Weights {
		s += w
	}

	return s
}

// Validate checks the structural invariants of r: non-empty, equal lengths,
// finite strictly increasing nodes and finite positive weights.
func (r Rule) Validate() error {
	n := len(r.Nodes)
	if n == 0 || n != len(r.Weights) {
		return fmt.Errorf("%d nodes, %d weights: %w", n, len(r.Weights), ErrInvalidRule)
	}
	for i := 0; i < n; i++ {
		if !isFinite(r.Nodes[i]) || !isFinite(r.Weights[i]) {
			return fmt.Errorf("entry %d not finite: %w", i, ErrInvalidRule)
		}
		if r.Weights[i] <= 0 {
			return fmt.Errorf("weight %d = %g: %w", i, r.Weights[i], ErrInvalidRule)
		}
		if i > 0 && r.Nodes[i] <= r.Nodes[i-1] {
			return fmt.Errorf("nodes %d, %d not increasing: %w", i-1, i, ErrInvalidRule)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
