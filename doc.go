// Package lvquad integrates one-dimensional functions with Gauss–Legendre
// quadrature, raising the number of points until the estimate matches a
// known exact value.
//
// 🚀 What is lvquad?
//
//	A small, pure-Go numerical library plus a CLI that brings together:
//		• Legendre polynomials: P_n(x) and P_n'(x) by the three-term recurrence
//		• Node/weight solvers: Newton root refinement or Golub–Welsch
//		• Interval mapping: any rule on [-1, 1] moved onto [a, b]
//		• A convergence driver: N = 1, 2, … until the relative error < tol
//		• Reporting: text tables, CSV and PNG plots of the trace
//
// ✨ Why lvquad?
//
//   - Deterministic: same inputs, bit-identical trace
//   - Explicit outcomes: Converged, Exhausted or Failed, never a silent stop
//   - Context-aware: deadlines end a run with a partial trace
//   - Cache-friendly: rules memoized per order, safe for concurrent runs
//
// Packages:
//
//	legendre/:   P_n and P_n' on [-1, 1]
//	matrix/:     dense symmetric matrices and a cyclic Jacobi eigen-solver
//	gauss/:      n-point rules on [-1, 1] (Newton, Golub–Welsch) + Cache
//	quad/:       intervals, affine mapping and weighted sums
//	converge/:   the adaptive driver and its trace
//	problems/:   catalog of integrands with exact integrals
//	report/:     tables, CSV and plots
//	cmd/lvquad/: command-line front end
//
// Quick example:
//
//	f := func(x float64) float64 { return math.Pow(x, 6) - x*x*math.Sin(2*x) }
//	res, err := converge.Run(ctx, f, quad.Interval{A: 1, B: 3}, 317.34424667382643)
//	// res.Status == converge.StatusConverged, last order 7
//
//	go install github.com/katalvlaran/lvquad/cmd/lvquad@latest
package lvquad
