// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvquad/matrix"
)

// golubWelsch computes the n-point rule (n ≥ 2) from the spectrum of the
// Legendre Jacobi matrix.
//
// Algorithm Outline:
//  1. J = tridiag(β, 0, β) with β_k = k/√(4k²−1), k = 1..n−1.
//  2. J = Q·Λ·Qᵀ via matrix.SymEigen (cyclic Jacobi).
//  3. Node_k = Λ[k,k], Weight_k = 2·Q[0,k]² (μ₀ = ∫₋₁¹ 1 dx = 2).
//  4. Sort ascending and symmetrize pairs so the output has the same exact
//     mirror symmetry as the Newton method.
func golubWelsch(n int) (Rule, error) {
	diag := make([]float64, n)
	off := make([]float64, n-1)
	var kf float64
	for k := 1; k < n; k++ {
		kf = float64(k)
		off[k-1] = kf / math.Sqrt(4*kf*kf-1)
	}

	jm, err := matrix.NewSymTridiagonal(diag, off)
	if err != nil {
		return Rule{}, fmt.Errorf("order %d: %w (%w)", n, ErrSolverFailed, err)
	}
	vals, vecs, err := matrix.SymEigen(jm, matrix.DefaultEigenTol, matrix.DefaultEigenSweeps)
	if err != nil {
		return Rule{}, fmt.Errorf("order %d: %w (%w)", n, ErrSolverFailed, err)
	}

	type pair struct{ x, w float64 }
	pairs := make([]pair, n)
	var v0 float64
	for k := 0; k < n; k++ {
		v0, _ = vecs.At(0, k)
		pairs[k] = pair{x: vals[k], w: 2 * v0 * v0}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].x < pairs[j].x })

	r := Rule{
		Nodes:   make([]float64, n),
		Weights: make([]float64, n),
	}
	var j int
	var x, w float64
	for i := 0; i < n/2; i++ {
		j = n - 1 - i
		x = (math.Abs(pairs[i].x) + math.Abs(pairs[j].x)) / 2
		w = (pairs[i].w + pairs[j].w) / 2
		r.Nodes[i], r.Weights[i] = -x, w
		r.Nodes[j], r.Weights[j] = x, w
	}
	if n%2 == 1 {
		r.Nodes[n/2], r.Weights[n/2] = 0, pairs[n/2].w
	}

	return r, nil
}
