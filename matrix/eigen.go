// SPDX-License-Identifier: MIT

package matrix

import "math"

// Defaults for SymEigen callers that have no problem-specific policy.
const (
	// DefaultEigenTol bounds the largest off-diagonal magnitude at convergence.
	DefaultEigenTol = 1e-15

	// DefaultEigenSweeps caps the number of full cyclic sweeps.
	DefaultEigenSweeps = 100
)

// ValidateSymmetric checks m is square and |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n^2) time, O(1) space.
func ValidateSymmetric(m *Dense, tol float64) error {
	if m == nil {
		return matrixErrorf(opValidateSym, ErrNilMatrix)
	}
	if m.r != m.c {
		return matrixErrorf(opValidateSym, ErrDimensionMismatch)
	}
	if isNonFinite(tol) {
		return matrixErrorf(opValidateSym, ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return matrixErrorf(opValidateSym, ErrAsymmetry)
			}
		}
	}

	return nil
}

// SymEigen computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Sweep the strict upper triangle in fixed p→q order; for every
//     |A[p,q]| > tol apply the Jacobi rotation that annihilates it and
//     accumulate the rotation into Q.
//   - Stage 3: Stop after the first sweep that starts with max|A[p,q]| ≤ tol.
//
// Behavior highlights:
//   - A is never mutated; the sweeps run on a private clone.
//   - Deterministic: same input ⇒ bit-identical output.
//
// Inputs:
//   - m: symmetric matrix (within tol); n := m.Rows().
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxSweeps: safety cap on full sweeps (≥ 1).
//
// Returns:
//   - []float64: eigenvalues, values[k] = rotated A[k,k] (unsorted).
//   - *Dense: Q whose column k is the unit eigenvector of values[k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry from validation.
//   - ErrEigenFailed if max off-diagonal > tol after maxSweeps sweeps.
//
// Complexity:
//   - Time O(maxSweeps * n^3), Space O(n^2).
//
// Notes:
//   - Cyclic sweeps replace the classical "largest pivot" search: one sweep is
//     O(n^3) with no O(n^2) scan per rotation, and convergence is quadratic
//     once the off-diagonal is small.
func SymEigen(m *Dense, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opSymEigen, err)
	}
	if maxSweeps < 1 {
		maxSweeps = 1
	}

	n := m.r
	a := m.Clone().data // working copy of A
	qm, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opSymEigen, err)
	}
	q := qm.data

	var (
		sweep, p, r, i     int
		app, arr, apr      float64 // A[p,p], A[r,r], A[p,r]
		aip, air, qip, qir float64 // temporaries
		theta, t, c, s     float64 // rotation parameters
		converged          bool
	)
	for sweep = 0; sweep <= maxSweeps; sweep++ {
		// S.1: convergence check on the current off-diagonal.
		if maxOffDiagonal(a, n) <= tol {
			converged = true
			break
		}
		if sweep == maxSweeps {
			break
		}

		// S.2: one cyclic sweep over the strict upper triangle.
		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apr = a[p*n+r]
				if math.Abs(apr) <= tol {
					continue
				}
				app = a[p*n+p]
				arr = a[r*n+r]

				// θ = (arr−app)/(2*apr); t = sign(θ) / (|θ|+√(θ²+1))
				theta = (arr - app) / (2 * apr)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// Rotate rows/columns p and r of A (symmetric update).
				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip = a[i*n+p]
					air = a[i*n+r]
					a[i*n+p], a[p*n+i] = c*aip-s*air, c*aip-s*air
					a[i*n+r], a[r*n+i] = s*aip+c*air, s*aip+c*air
				}
				a[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
				a[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
				a[p*n+r], a[r*n+p] = 0, 0

				// Accumulate the rotation into Q.
				for i = 0; i < n; i++ {
					qip = q[i*n+p]
					qir = q[i*n+r]
					q[i*n+p] = c*qip - s*qir
					q[i*n+r] = s*qip + c*qir
				}
			}
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opSymEigen, ErrEigenFailed)
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = a[i*n+i]
	}

	return values, qm, nil
}

// maxOffDiagonal returns max |a[i,j]| over the strict upper triangle.
func maxOffDiagonal(a []float64, n int) float64 {
	var maxOff, off float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			off = math.Abs(a[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}

	return maxOff
}
