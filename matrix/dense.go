// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Reject NaN/±Inf on Set so every kernel can assume finite input.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Col/Diagonal: O(n).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewSymTridiagonal builds the n×n symmetric tridiagonal matrix with main
// diagonal diag (len n) and sub/super-diagonal off (len n-1).
//
// Implementation:
//   - Stage 1: validate n>0, len(off)==n-1 and all entries finite.
//   - Stage 2: write diag[i] at (i,i) and off[i] at (i,i+1) and (i+1,i).
//
// Errors:
//   - ErrInvalidDimensions if diag is empty.
//   - ErrDimensionMismatch if len(off) != len(diag)-1.
//   - ErrNaNInf if any entry is not finite.
//
// Complexity:
//   - Time O(n^2) (zero-init dominates), Space O(n^2).
//
// Notes:
//   - This is the Jacobi matrix of a three-term recurrence; its eigenvalues are
//     the roots of the associated orthogonal polynomial (Golub–Welsch).
func NewSymTridiagonal(diag, off []float64) (*Dense, error) {
	n := len(diag)
	if n == 0 {
		return nil, matrixErrorf(opSymTridiagonal, ErrInvalidDimensions)
	}
	if len(off) != n-1 {
		return nil, matrixErrorf(opSymTridiagonal, ErrDimensionMismatch)
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opSymTridiagonal, err)
	}
	var i int
	for i = 0; i < n; i++ {
		if isNonFinite(diag[i]) {
			return nil, matrixErrorf(opSymTridiagonal, ErrNaNInf)
		}
		m.data[i*n+i] = diag[i]
	}
	for i = 0; i < n-1; i++ {
		if isNonFinite(off[i]) {
			return nil, matrixErrorf(opSymTridiagonal, ErrNaNInf)
		}
		m.data[i*n+i+1] = off[i]
		m.data[(i+1)*n+i] = off[i]
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j).
//
// Errors:
//   - ErrOutOfRange if (i, j) is outside the matrix.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set writes v at (i, j).
//
// Errors:
//   - ErrOutOfRange if (i, j) is outside the matrix.
//   - ErrNaNInf if v is NaN or ±Inf.
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if isNonFinite(v) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Diagonal returns a fresh slice with the main diagonal of m (min(r,c) entries).
func (m *Dense) Diagonal() []float64 {
	k := m.r
	if m.c < k {
		k = m.c
	}
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// Col returns a fresh copy of column j.
//
// Errors:
//   - ErrOutOfRange if j is outside [0, cols).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxAt, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// String renders the matrix row by row, e.g. "[1, 0]\n[0, 1]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
