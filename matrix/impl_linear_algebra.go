// SPDX-License-Identifier: MIT
// Package matrix provides products over Z/26Z on any Matrix implementation.
// All functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Purpose:
//   - Declare operation tags and shared constants for error reporting.
//   - Implement Mul and MatVec with a flat *Dense fast path.
//
// Notes:
//   - Determinant/Adjugate live in impl_cofactor.go, Inverse in impl_inverse.go.
//   - Accumulators may leave [0,25]; results are normalized once per cell.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/hill/modular"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opDeterminant = "Determinant"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes C = A·B mod 26 and returns a fresh Dense result.
// Implementation:
//   - Stage 1: resolve both operands to *Dense (fast path or At fallback), check sizes.
//   - Stage 2: i→k→j loop over flat buffers, then normalize each cell.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b Matrix) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = ValidateSameSize(da, db); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := da.n
	res := newDense(n)
	var i, j, k int
	var aik int
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			aik = da.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				res.data[i*n+j] += aik * db.data[k*n+j]
			}
		}
		for j = 0; j < n; j++ {
			res.data[i*n+j] = modular.Normalize(res.data[i*n+j])
		}
	}

	return res, nil
}

// MatVec computes y = m·x mod 26 for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Output: y[i] = Normalize(Σ_j m[i][j]·x[j]); x itself may hold any integers.
// Determinism: fixed i→j loop order.
// Complexity: Time O(n²), Space O(n) for y.
func MatVec(m Matrix, x []int) ([]int, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(x, d.n); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]int, d.n)
	var i, j, base, acc int
	for i = 0; i < d.n; i++ {
		acc = 0
		base = i * d.n
		for j = 0; j < d.n; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = modular.Normalize(acc)
	}

	return y, nil
}
