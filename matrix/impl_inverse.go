// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/hill/modular"
)

// Inverse computes K⁻¹ mod 26 as adj(K)·det(K)⁻¹.
// MAIN DESCRIPTION:
//   - Division-free inverse over Z/26Z, the decryption key of a Hill cipher.
//
// Implementation:
//   - Stage 1: d = det(K).
//   - Stage 2: dInv = modular.Inverse(d); fail with ErrNotInvertible when gcd(d,26) != 1.
//   - Stage 3: adj = adj(K); result[i][j] = Normalize(adj[i][j]·dInv).
//
// Behavior highlights:
//   - Pure: K is not mutated; the result is a fresh Dense.
//   - A singular key is reported, never panicked on.
//
// Errors:
//   - ErrNotInvertible (det shares a factor with 26), plus ErrNilMatrix,
//     ErrNonSquare, ErrInvalidDimensions from input resolution.
//
// Complexity:
//   - Time O(n²·(n−1)!), dominated by the adjugate; Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	k, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	d := determinant(k, newScratch(k.n))
	dInv, err := modular.Inverse(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("determinant %d: %w", d, ErrNotInvertible))
	}

	inv := adjugate(k)
	var idx int
	for idx = range inv.data {
		inv.data[idx] = modular.Normalize(inv.data[idx] * dInv)
	}

	return inv, nil
}
