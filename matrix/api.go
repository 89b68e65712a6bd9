// SPDX-License-Identifier: MIT
// Package matrix: convenience facade.
// Thin aliases over the kernels so callers can pick the name that reads best
// at the call site.

package matrix

import "github.com/katalvlaran/hill/modular"

// Det is an alias for Determinant.
func Det(m Matrix) (int, error) { return Determinant(m) }

// InverseOf is an alias for Inverse.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// MatVecMul is an alias for MatVec.
func MatVecMul(m Matrix, x []int) ([]int, error) { return MatVec(m, x) }

// IsInvertible reports whether m has an inverse mod 26, i.e. gcd(det(m), 26) == 1.
// Cheaper than Inverse: determinant only, no adjugate.
func IsInvertible(m Matrix) (bool, error) {
	d, err := Determinant(m)
	if err != nil {
		return false, err
	}

	return modular.IsUnit(d), nil
}
