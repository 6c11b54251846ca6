package gauss_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvquad/gauss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonumquad "gonum.org/v1/gonum/integrate/quad"
)

var methods = []gauss.Method{gauss.MethodNewton, gauss.MethodGolubWelsch}

// maxOrder bounds the orders exercised per method; Golub–Welsch is O(n³)
// per sweep so it gets a smaller range.
func maxOrder(m gauss.Method) int {
	if m == gauss.MethodGolubWelsch {
		return 60
	}

	return 200
}

// TestSolve_OrderOne checks the base case: node 0, weight 2, exactly.
func TestSolve_OrderOne(t *testing.T) {
	for _, m := range methods {
		r, err := gauss.Solve(1, gauss.WithMethod(m))
		require.NoError(t, err, m.String())
		assert.Equal(t, []float64{0}, r.Nodes, m.String())
		assert.Equal(t, []float64{2}, r.Weights, m.String())
	}
}

// TestSolve_KnownSmallRules compares n=2 and n=3 with their closed forms.
func TestSolve_KnownSmallRules(t *testing.T) {
	for _, m := range methods {
		r, err := gauss.Solve(2, gauss.WithMethod(m))
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)}, r.Nodes, 1e-14, m.String())
		assert.InDeltaSlice(t, []float64{1, 1}, r.Weights, 1e-14, m.String())

		r, err = gauss.Solve(3, gauss.WithMethod(m))
		require.NoError(t, err)
		s := math.Sqrt(0.6)
		assert.InDeltaSlice(t, []float64{-s, 0, s}, r.Nodes, 1e-14, m.String())
		assert.InDeltaSlice(t, []float64{5.0 / 9, 8.0 / 9, 5.0 / 9}, r.Weights, 1e-14, m.String())
	}
}

// TestSolve_WeightsSumToTwo: Σ w == 2 within 1e-12 for every order.
func TestSolve_WeightsSumToTwo(t *testing.T) {
	for _, m := range methods {
		for n := 1; n <= maxOrder(m); n++ {
			r, err := gauss.Solve(n, gauss.WithMethod(m))
			require.NoError(t, err, "%s n=%d", m, n)
			assert.InDelta(t, 2.0, r.Sum(), 1e-12, "%s n=%d", m, n)
		}
	}
}

// TestSolve_SymmetricAndOrdered: exact mirror symmetry and the Rule invariants.
func TestSolve_SymmetricAndOrdered(t *testing.T) {
	for _, m := range methods {
		for n := 1; n <= maxOrder(m); n++ {
			r, err := gauss.Solve(n, gauss.WithMethod(m))
			require.NoError(t, err)
			require.Equal(t, n, r.Order())
			require.NoError(t, r.Validate(), "%s n=%d", m, n)
			for i := 0; i < n; i++ {
				j := n - 1 - i
				assert.Equal(t, -r.Nodes[j], r.Nodes[i], "%s n=%d i=%d", m, n, i)
				assert.Equal(t, r.Weights[j], r.Weights[i], "%s n=%d i=%d", m, n, i)
				assert.Greater(t, r.Nodes[i], -1.0)
				assert.Less(t, r.Nodes[i], 1.0)
			}
		}
	}
}

// TestSolve_PolynomialExactness integrates x^k, k = 0..2n−1, over [-1, 1].
func TestSolve_PolynomialExactness(t *testing.T) {
	for _, m := range methods {
		for n := 1; n <= 20; n++ {
			r, err := gauss.Solve(n, gauss.WithMethod(m))
			require.NoError(t, err)
			for k := 0; k <= 2*n-1; k++ {
				var got float64
				for i := range r.Nodes {
					got += r.Weights[i] * math.Pow(r.Nodes[i], float64(k))
				}
				want := 0.0
				if k%2 == 0 {
					want = 2 / float64(k+1)
				}
				assert.InDelta(t, want, got, 1e-13, "%s n=%d k=%d", m, n, k)
			}
		}
	}
}

// TestSolve_MatchesGonum cross-checks against gonum's independent implementation.
func TestSolve_MatchesGonum(t *testing.T) {
	for _, n := range []int{2, 5, 10, 17, 20, 21, 40, 64, 100} {
		x := make([]float64, n)
		w := make([]float64, n)
		gonumquad.Legendre{}.FixedLocations(x, w, -1, 1)
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

		r, err := gauss.Solve(n)
		require.NoError(t, err)
		for i, k := range idx {
			assert.InDelta(t, x[k], r.Nodes[i], 1e-12, "n=%d node %d", n, i)
			assert.InDelta(t, w[k], r.Weights[i], 1e-12, "n=%d weight %d", n, i)
		}
	}
}

// TestSolve_MethodsAgree: Newton and Golub–Welsch produce the same rule.
func TestSolve_MethodsAgree(t *testing.T) {
	for n := 2; n <= 40; n++ {
		a, err := gauss.Solve(n, gauss.WithMethod(gauss.MethodNewton))
		require.NoError(t, err)
		b, err := gauss.Solve(n, gauss.WithMethod(gauss.MethodGolubWelsch))
		require.NoError(t, err)
		assert.InDeltaSlice(t, a.Nodes, b.Nodes, 1e-12, "n=%d", n)
		assert.InDeltaSlice(t, a.Weights, b.Weights, 1e-12, "n=%d", n)
	}
}

// TestSolve_NewtonDivergence: a one-step cap cannot meet 1e-14 from the
// asymptotic guess, and the failure is reported rather than accepted.
func TestSolve_NewtonDivergence(t *testing.T) {
	_, err := gauss.Solve(5, gauss.WithNewtonMaxIter(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, gauss.ErrNewtonDivergence)
	assert.True(t, gauss.IsConvergenceFailure(err))

	// The base case never iterates, so it is unaffected by the cap.
	r, err := gauss.Solve(1, gauss.WithNewtonMaxIter(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, r.Weights)
}

// TestSolve_LooseToleranceStillValid: a loose tolerance converges in fewer
// steps and still yields a usable rule.
func TestSolve_LooseToleranceStillValid(t *testing.T) {
	r, err := gauss.Solve(8, gauss.WithNewtonTol(1e-6), gauss.WithNewtonMaxIter(3))
	require.NoError(t, err)
	assert.NoError(t, r.Validate())
	assert.InDelta(t, 2.0, r.Sum(), 1e-9)
}

// TestSolve_UsageErrors covers order and option validation.
func TestSolve_UsageErrors(t *testing.T) {
	_, err := gauss.Solve(0)
	assert.ErrorIs(t, err, gauss.ErrBadOrder)
	_, err = gauss.Solve(-4)
	assert.ErrorIs(t, err, gauss.ErrBadOrder)
	assert.False(t, gauss.IsConvergenceFailure(err))

	_, err = gauss.Solve(3, gauss.WithOptions(gauss.Options{NewtonTol: -1, NewtonMaxIter: 10}))
	assert.ErrorIs(t, err, gauss.ErrBadOptions)
	_, err = gauss.Solve(3, gauss.WithOptions(gauss.Options{NewtonTol: 1e-14, NewtonMaxIter: 0}))
	assert.ErrorIs(t, err, gauss.ErrBadOptions)
	_, err = gauss.Solve(3, gauss.WithMethod(gauss.Method(9)))
	assert.ErrorIs(t, err, gauss.ErrBadOptions)

	assert.Panics(t, func() { gauss.WithNewtonTol(0) })
	assert.Panics(t, func() { gauss.WithNewtonTol(math.NaN()) })
	assert.Panics(t, func() { gauss.WithNewtonMaxIter(0) })
}

// TestParseMethod round-trips the CLI spellings.
func TestParseMethod(t *testing.T) {
	for _, m := range methods {
		got, err := gauss.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := gauss.ParseMethod("gw")
	require.NoError(t, err)
	assert.Equal(t, gauss.MethodGolubWelsch, got)

	_, err = gauss.ParseMethod("simpson")
	assert.ErrorIs(t, err, gauss.ErrBadOptions)
	assert.Equal(t, "Method(7)", gauss.Method(7).String())
}
