// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvquad/legendre"
)

// newton computes the n-point rule (n ≥ 2) by Newton refinement of the
// non-negative roots of P_n.
//
// Algorithm Outline:
//  1. m = ⌈n/2⌉. For i = 1..m take x = cos(π(i − 0.25)/(n + 0.5)); these
//     guesses sit in (0, 1) and decrease with i.
//  2. Iterate x ← x − P_n(x)/P_n'(x) until |step| < tol, or fail once
//     maxIter steps have been taken.
//  3. w = 2 / ((1 − x²)·P_n'(x)²) at the accepted root.
//  4. Store (x, w) at index n−i and the mirror (−x, w) at index i−1.
//
// For odd n the middle root is exactly 0 (P_n is odd) and is not iterated.
func newton(n int, tol float64, maxIter int) (Rule, error) {
	r := Rule{
		Nodes:   make([]float64, n),
		Weights: make([]float64, n),
	}
	nf := float64(n)
	m := (n + 1) / 2

	var (
		x, p, dp, step float64
		iter           int
	)
	for i := 1; i <= m; i++ {
		if n%2 == 1 && i == m {
			_, dp = legendre.Eval(n, 0)
			r.Nodes[m-1] = 0
			r.Weights[m-1] = 2 / (dp * dp)
			continue
		}

		x = math.Cos(math.Pi * (float64(i) - 0.25) / (nf + 0.5))
		for iter = 1; ; iter++ {
			p, dp = legendre.Eval(n, x)
			step = p / dp
			x -= step
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return Rule{}, fmt.Errorf("order %d, root %d: iterate not finite after %d steps: %w",
					n, i, iter, ErrNewtonDivergence)
			}
			if math.Abs(step) < tol {
				break
			}
			if iter >= maxIter {
				return Rule{}, fmt.Errorf("order %d, root %d: %d steps, last step %.3g >= tol %.3g: %w",
					n, i, iter, math.Abs(step), tol, ErrNewtonDivergence)
			}
		}

		_, dp = legendre.Eval(n, x)
		w := 2 / ((1 - x*x) * dp * dp)
		r.Nodes[n-i], r.Weights[n-i] = x, w
		r.Nodes[i-1], r.Weights[i-1] = -x, w
	}

	return r, nil
}
