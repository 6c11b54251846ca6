package quad

import (
	"fmt"

	"github.com/katalvlaran/lvquad/gauss"
)

// Func is a pure real integrand, total on the integration interval.
type Func func(x float64) float64

// Map rescales a reference rule on [-1, 1] onto iv.
//
//	x_i = (b−a)/2 · t_i + (b+a)/2
//	w_i = (b−a)/2 · ω_i
//
// The result is a fresh Rule with the same order and node ordering; ref is
// not modified.
//
// Errors:
//   - ErrInvalidInterval if iv fails Validate.
//   - ErrEmptyRule if ref has no nodes or len(Nodes) != len(Weights).
func Map(ref gauss.Rule, iv Interval) (gauss.Rule, error) {
	if err := iv.Validate(); err != nil {
		return gauss.Rule{}, err
	}
	n := len(ref.Nodes)
	if n == 0 || n != len(ref.Weights) {
		return gauss.Rule{}, fmt.Errorf("%d nodes, %d weights: %w", n, len(ref.Weights), ErrEmptyRule)
	}

	half, mid := iv.HalfWidth(), iv.Midpoint()
	out := gauss.Rule{
		Nodes:   make([]float64, n),
		Weights: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		out.Nodes[i] = half*ref.Nodes[i] + mid
		out.Weights[i] = half * ref.Weights[i]
	}

	return out, nil
}

// Integrate returns Σ w_i·f(x_i) over the rule, summed left to right in
// increasing node index. f is called exactly Order() times and nothing else
// happens. An empty rule yields 0.
func Integrate(r gauss.Rule, f Func) float64 {
	var sum float64
	for i, x := range r.Nodes {
		sum += r.Weights[i] * f(x)
	}

	return sum
}

// Fixed integrates f over iv with an n-point rule: Solve, Map, Integrate.
//
// Errors: those of gauss.Solve and Map.
func Fixed(f Func, iv Interval, n int, opts ...gauss.Option) (float64, error) {
	if err := iv.Validate(); err != nil {
		return 0, err
	}
	ref, err := gauss.Solve(n, opts...)
	if err != nil {
		return 0, err
	}
	r, err := Map(ref, iv)
	if err != nil {
		return 0, err
	}

	return Integrate(r, f), nil
}
