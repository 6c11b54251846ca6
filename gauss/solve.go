// SPDX-License-Identifier: MIT

package gauss

import "fmt"

// Solve returns the n-point Gauss–Legendre rule on [-1, 1], exact for
// polynomials of degree ≤ 2n−1. Nodes are returned in ascending order.
//
// Contracts:
//   - n ≥ 1; n == 1 always yields node 0 with weight 2 exactly.
//   - The result is symmetric bit-for-bit: Nodes[i] == −Nodes[n−1−i],
//     Weights[i] == Weights[n−1−i].
//
// Errors:
//   - ErrBadOrder, ErrBadOptions (usage).
//   - ErrNewtonDivergence, ErrSolverFailed (numerical; see IsConvergenceFailure).
func Solve(n int, opts ...Option) (Rule, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Rule{}, err
	}

	return solve(n, o)
}

// solve dispatches on validated options.
func solve(n int, o Options) (Rule, error) {
	if n < 1 {
		return Rule{}, fmt.Errorf("order %d: %w", n, ErrBadOrder)
	}
	if n == 1 {
		return Rule{Nodes: []float64{0}, Weights: []float64{2}}, nil
	}

	switch o.Method {
	case MethodGolubWelsch:
		return golubWelsch(n)
	default:
		return newton(n, o.NewtonTol, o.NewtonMaxIter)
	}
}
