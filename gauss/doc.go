// Package gauss computes n-point Gauss–Legendre rules on the reference
// interval [-1, 1].
//
// 🚀 What is a Gauss–Legendre rule?
//
//	The n nodes are the roots of the Legendre polynomial P_n and the weights
//	are w_i = 2 / ((1 − x_i²)·P_n'(x_i)²). The rule Σ w_i·f(x_i) integrates
//	every polynomial of degree ≤ 2n−1 exactly over [-1, 1].
//
// ✨ Key features:
//   - MethodNewton (default): asymptotic initial guesses
//     cos(π(i − 0.25)/(n + 0.5)) refined by Newton's method on P_n, with an
//     explicit tolerance and iteration cap; non-convergence is an error
//     (ErrNewtonDivergence), never a silent fallback.
//   - MethodGolubWelsch: eigen-decomposition of the symmetric tridiagonal
//     Jacobi matrix (package matrix); nodes are eigenvalues, weights 2·v₀².
//   - Exact symmetry: only one half of the roots is computed, the other half
//     is mirrored; odd orders carry an exact 0 node.
//   - Cache: an order-keyed memo that is safe for concurrent use.
//
// ⚙️ Usage:
//
//	r, err := gauss.Solve(5)
//	if err != nil {
//	    // ErrBadOrder, ErrBadOptions, ErrNewtonDivergence, ErrSolverFailed
//	}
//	for i := range r.Nodes {
//	    fmt.Println(r.Nodes[i], r.Weights[i])
//	}
//
// Rules map to an arbitrary interval [a, b] with package quad.
//
// Performance:
//
//   - Newton:        O(n²·k) time (k Newton steps per root, usually ≤ 5), O(n) memory.
//   - Golub–Welsch:  O(s·n³) time (s Jacobi sweeps), O(n²) memory.
package gauss
