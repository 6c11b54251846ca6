package converge_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvquad/converge"
	"github.com/stretchr/testify/assert"
)

// TestTrace_Helpers covers Last/Best/columns on small hand-built traces.
func TestTrace_Helpers(t *testing.T) {
	var empty converge.Trace
	_, ok := empty.Last()
	assert.False(t, ok)
	_, ok = empty.Best()
	assert.False(t, ok)

	tr := converge.Trace{
		{Order: 1, Estimate: 1.5, Error: 0.5},
		{Order: 2, Estimate: 1.9, Error: 0.1},
		{Order: 3, Estimate: math.NaN(), Error: math.NaN()},
		{Order: 4, Estimate: 2.1, Error: 0.1},
	}
	last, ok := tr.Last()
	assert.True(t, ok)
	assert.Equal(t, 4, last.Order)

	best, ok := tr.Best()
	assert.True(t, ok)
	assert.Equal(t, 2, best.Order, "ties go to the lower order, NaN is skipped")

	assert.Equal(t, []int{1, 2, 3, 4}, tr.Orders())
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, []float64{0.5, 0.1}, tr.Errors()[:2])
	assert.Equal(t, 1.9, tr.Estimates()[1])
}

// TestStatus_String names every state.
func TestStatus_String(t *testing.T) {
	names := map[converge.Status]string{
		converge.StatusInitializing: "initializing",
		converge.StatusIterating:    "iterating",
		converge.StatusConverged:    "converged",
		converge.StatusExhausted:    "exhausted",
		converge.StatusFailed:       "failed",
		converge.Status(42):         "Status(42)",
	}
	for s, want := range names {
		assert.Equal(t, want, s.String())
	}
	assert.False(t, converge.StatusIterating.Terminal())
	assert.True(t, converge.StatusFailed.Terminal())
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := converge.DefaultOptions()
	assert.Equal(t, 1, o.StartOrder)
	assert.Equal(t, 200, o.MaxOrder)
	assert.Equal(t, 1e-10, o.Tolerance)
	assert.Equal(t, 1e-14, o.Solver.NewtonTol)
	assert.Equal(t, 100, o.Solver.NewtonMaxIter)
	assert.NoError(t, o.Validate())
}
