package legendre_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvquad/legendre"
	"github.com/stretchr/testify/assert"
)

// closedForm lists P_n and P_n' for small n in explicit polynomial form.
var closedForm = []struct {
	n  int
	p  func(x float64) float64
	dp func(x float64) float64
}{
	{0, func(x float64) float64 { return 1 }, func(x float64) float64 { return 0 }},
	{1, func(x float64) float64 { return x }, func(x float64) float64 { return 1 }},
	{2, func(x float64) float64 { return (3*x*x - 1) / 2 }, func(x float64) float64 { return 3 * x }},
	{3, func(x float64) float64 { return (5*x*x*x - 3*x) / 2 }, func(x float64) float64 { return (15*x*x - 3) / 2 }},
	{4,
		func(x float64) float64 { return (35*math.Pow(x, 4) - 30*x*x + 3) / 8 },
		func(x float64) float64 { return (140*x*x*x - 60*x) / 8 }},
	{5,
		func(x float64) float64 { return (63*math.Pow(x, 5) - 70*x*x*x + 15*x) / 8 },
		func(x float64) float64 { return (315*math.Pow(x, 4) - 210*x*x + 15) / 8 }},
}

// TestEval_ClosedForms compares the recurrence against explicit polynomials
// on a grid of interior points.
func TestEval_ClosedForms(t *testing.T) {
	for _, tc := range closedForm {
		for i := -19; i <= 19; i++ {
			x := float64(i) / 20
			p, dp := legendre.Eval(tc.n, x)
			assert.InDelta(t, tc.p(x), p, 1e-13, "P_%d(%g)", tc.n, x)
			assert.InDelta(t, tc.dp(x), dp, 1e-11, "P_%d'(%g)", tc.n, x)
		}
	}
}

// TestEval_Endpoints checks the closed-form boundary values at ±1.
func TestEval_Endpoints(t *testing.T) {
	for n := 1; n <= 12; n++ {
		nf := float64(n)
		p, dp := legendre.Eval(n, 1)
		assert.Equal(t, 1.0, p, "P_%d(1)", n)
		assert.Equal(t, nf*(nf+1)/2, dp, "P_%d'(1)", n)

		sign := 1.0
		if n%2 == 1 {
			sign = -1.0
		}
		p, dp = legendre.Eval(n, -1)
		assert.Equal(t, sign, p, "P_%d(-1)", n)
		assert.Equal(t, -sign*nf*(nf+1)/2, dp, "P_%d'(-1)", n)
	}
}

// TestEval_OrderZero covers the trivial and negative orders.
func TestEval_OrderZero(t *testing.T) {
	p, dp := legendre.Eval(0, 0.7)
	assert.Equal(t, 1.0, p)
	assert.Equal(t, 0.0, dp)

	p, dp = legendre.Eval(-3, 0.7)
	assert.Equal(t, 1.0, p, "negative order behaves like n=0")
	assert.Equal(t, 0.0, dp)
}

// TestEval_DerivativeMatchesFiniteDifference checks P_n' against a central
// difference for a high order where no closed form is listed.
func TestEval_DerivativeMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, n := range []int{7, 12, 25} {
		for _, x := range []float64{-0.8, -0.31, 0.05, 0.42, 0.9} {
			fd := (legendre.Value(n, x+h) - legendre.Value(n, x-h)) / (2 * h)
			assert.InDelta(t, fd, legendre.Derivative(n, x), 1e-5*float64(n*n), "n=%d x=%g", n, x)
		}
	}
}

// TestEval_Parity checks P_n(−x) = (−1)^n·P_n(x).
func TestEval_Parity(t *testing.T) {
	for n := 0; n <= 15; n++ {
		sign := 1.0
		if n%2 == 1 {
			sign = -1.0
		}
		for _, x := range []float64{0.1, 0.33, 0.75} {
			assert.InDelta(t, sign*legendre.Value(n, x), legendre.Value(n, -x), 1e-14, "n=%d x=%g", n, x)
		}
	}
}

// TestEval_BoundedOnInterval checks |P_n(x)| ≤ 1 on [-1, 1].
func TestEval_BoundedOnInterval(t *testing.T) {
	for n := 0; n <= 40; n += 5 {
		for i := -100; i <= 100; i++ {
			x := float64(i) / 100
			assert.LessOrEqual(t, math.Abs(legendre.Value(n, x)), 1.0+1e-12, "n=%d x=%g", n, x)
		}
	}
}
