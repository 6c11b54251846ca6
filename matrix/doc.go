// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel that backs the
// Golub–Welsch node solver in package gauss.
//
// What is inside:
//   - Dense: row-major float64 storage with the explicit index formula i*cols + j.
//   - NewSymTridiagonal: builds the symmetric tridiagonal (Jacobi) matrix of a
//     three-term recurrence from its diagonal and off-diagonal.
//   - SymEigen: cyclic Jacobi eigen-decomposition of a symmetric matrix,
//     returning eigenvalues and the orthonormal eigenvector matrix.
//
// Design goals:
//   - Deterministic behavior: fixed loop orders (p→q row sweeps), no maps, no randomness.
//   - Safe public surface: At/Set return sentinel errors instead of panicking.
//   - Explicit numeric policy: NaN/±Inf are rejected on Set and on construction.
//
// Errors are package-level sentinels (errors.go) wrapped with an operation tag,
// so callers match them with errors.Is.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c).
//   - SymEigen: O(sweeps * n^3) time, O(n^2) space.
package matrix
