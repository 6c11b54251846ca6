package problems_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvquad/converge"
	"github.com/katalvlaran/lvquad/problems"
	"github.com/katalvlaran/lvquad/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReference pins the closed-form integrals of the built-ins.
func TestReference(t *testing.T) {
	want := map[string]float64{
		"poly-trig": 317.34424667382643,
		"exp":       math.E - 1,
		"cos":       1,
		"runge":     2 * math.Atan(5) / 5,
		"sqrt":      14.0 / 3,
	}
	require.Len(t, problems.All(), len(want))
	for name, ref := range want {
		p, err := problems.Lookup(name)
		require.NoError(t, err, name)
		assert.InDelta(t, ref, p.Reference(), 1e-12*math.Max(1, math.Abs(ref)), name)
		assert.NoError(t, p.Interval().Validate(), name)
	}
}

// TestAntiderivative checks F against a central difference of the primitive.
func TestAntiderivative(t *testing.T) {
	const h = 1e-5
	for _, p := range problems.All() {
		for i := 1; i < 10; i++ {
			x := p.A + (p.B-p.A)*float64(i)/10
			d := (p.Antiderivative(x+h) - p.Antiderivative(x-h)) / (2 * h)
			assert.InDelta(t, p.F(x), d, 1e-6*math.Max(1, math.Abs(p.F(x))), "%s x=%g", p.Name, x)
		}
	}
}

// TestReferenceOn integrates over a sub-interval.
func TestReferenceOn(t *testing.T) {
	p, err := problems.Lookup("exp")
	require.NoError(t, err)
	assert.InDelta(t, math.E*math.E-math.E, p.ReferenceOn(quad.Interval{A: 1, B: 2}), 1e-12)
}

// TestLookup_Unknown returns the sentinel.
func TestLookup_Unknown(t *testing.T) {
	_, err := problems.Lookup("tan")
	assert.ErrorIs(t, err, problems.ErrUnknownProblem)
}

// TestNames keeps listing order.
func TestNames(t *testing.T) {
	assert.Equal(t, []string{"poly-trig", "exp", "cos", "runge", "sqrt"}, problems.Names())
}

// TestAll_IsCopy ensures callers cannot edit the catalog.
func TestAll_IsCopy(t *testing.T) {
	all := problems.All()
	all[0].Name = "changed"
	assert.Equal(t, "poly-trig", problems.Names()[0])
}

// TestCatalog_Converges runs every built-in through the driver.
func TestCatalog_Converges(t *testing.T) {
	for _, p := range problems.All() {
		t.Run(p.Name, func(t *testing.T) {
			res, err := converge.Run(context.Background(), p.F, p.Interval(), p.Reference())
			require.NoError(t, err)
			assert.Equal(t, converge.StatusConverged, res.Status)
		})
	}
}
