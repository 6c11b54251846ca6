package legendre

import "math"

// BoundaryEps is the threshold on |1 - x²| below which x is treated as an
// endpoint of [-1, 1] and the closed-form endpoint derivative is returned.
const BoundaryEps = 1e-15

// Eval returns P_n(x) and P_n'(x).
//
// Algorithm:
//  1. P_0 = 1, P_1 = x.
//  2. For k = 1..n-1: (k+1)·P_{k+1} = (2k+1)·x·P_k − k·P_{k−1}.
//  3. P_n'(x) = n·(x·P_n − P_{n−1}) / (x² − 1).
//
// Edge cases:
//   - n ≤ 0 returns (1, 0).
//   - |1 − x²| < BoundaryEps returns P_n(±1) = (±1)^n and
//     P_n'(±1) = (±1)^(n−1)·n(n+1)/2.
//
// Complexity: O(n) time, O(1) memory.
func Eval(n int, x float64) (p, dp float64) {
	if n <= 0 {
		return 1, 0
	}
	if math.Abs(1-x*x) < BoundaryEps {
		return endpoint(n, x)
	}

	prev, curr := 1.0, x // P_{k-1}, P_k with k = 1
	var kf float64
	for k := 1; k < n; k++ {
		kf = float64(k)
		prev, curr = curr, ((2*kf+1)*x*curr-kf*prev)/(kf+1)
	}
	nf := float64(n)

	return curr, nf * (x*curr - prev) / (x*x - 1)
}

// Value returns P_n(x).
func Value(n int, x float64) float64 {
	p, _ := Eval(n, x)

	return p
}

// Derivative returns P_n'(x).
func Derivative(n int, x float64) float64 {
	_, dp := Eval(n, x)

	return dp
}

// endpoint returns the closed-form values at x = ±1.
func endpoint(n int, x float64) (p, dp float64) {
	nf := float64(n)
	dp = nf * (nf + 1) / 2
	if x > 0 {
		return 1, dp
	}
	// P_n(-1) = (-1)^n, P_n'(-1) = (-1)^(n-1)·n(n+1)/2
	if n%2 == 0 {
		return 1, -dp
	}

	return -1, dp
}
