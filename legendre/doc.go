// Package legendre evaluates Legendre polynomials P_n and their first
// derivatives on the reference interval [-1, 1].
//
// 🚀 What is P_n?
//
//	The Legendre polynomials are the orthogonal polynomials of [-1, 1] under
//	the unit weight. Their n roots are exactly the nodes of the n-point
//	Gauss–Legendre quadrature rule, which is why package gauss refines roots
//	of P_n with the (value, derivative) pair returned here.
//
// ✨ Key features:
//   - three-term (Bonnet) recurrence, O(n) time and O(1) memory
//   - analytic derivative from P_n and P_{n-1}, no second recurrence
//   - closed-form endpoint values at x = ±1, where the derivative formula
//     degenerates
//
// ⚙️ Usage:
//
//	p, dp := legendre.Eval(5, 0.3)
//
// All functions are pure: no errors, no allocation, no shared state.
package legendre
