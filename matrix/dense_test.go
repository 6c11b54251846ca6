// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvquad/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shape validates shape checks and zero initialization.
func TestNewDense_Shape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestDense_AtSetBounds checks that accessors return sentinels instead of panicking.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	require.NoError(t, m.Set(0, 1, 4.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
}

// TestDense_CloneIsDeep ensures Clone does not alias the source buffer.
func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 7))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "source must be unchanged")
	assert.Equal(t, []float64{7, 1}, c.Diagonal())
}

// TestNewSymTridiagonal checks layout and input validation.
func TestNewSymTridiagonal(t *testing.T) {
	m, err := matrix.NewSymTridiagonal([]float64{1, 2, 3}, []float64{0.5, 0.25})
	require.NoError(t, err)
	assert.Equal(t, "[1, 0.5, 0]\n[0.5, 2, 0.25]\n[0, 0.25, 3]\n", m.String())
	assert.NoError(t, matrix.ValidateSymmetric(m, 0))

	_, err = matrix.NewSymTridiagonal(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewSymTridiagonal([]float64{1, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewSymTridiagonal([]float64{1, 2}, []float64{math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDense_Col returns a copy of one column.
func TestDense_Col(t *testing.T) {
	m, err := matrix.NewSymTridiagonal([]float64{1, 2}, []float64{3})
	require.NoError(t, err)
	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, col)

	_, err = m.Col(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
