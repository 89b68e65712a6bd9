// Package matrix provides square matrices over Z/26Z and the linear algebra
// the Hill cipher needs: determinant, adjugate, inverse and matrix-vector
// products, all reduced mod 26.
//
// The matrix package provides:
//
//   - Dense, a row-major n×n matrix over a flat []int whose cells are
//     always held in canonical form [0,25].
//   - Determinant by recursive cofactor expansion along the first row.
//   - Adjugate (transpose of the cofactor matrix).
//   - Inverse = adj(K)·det(K)⁻¹ mod 26, or ErrNotInvertible.
//   - MatVec / Mul for block transforms and verification.
//
// Cofactor expansion is O(n!) and is only meant for cipher keys, where
// MinBlockSize ≤ n ≤ MaxBlockSize is enforced by ValidateBlockSize at the
// boundary.
//
// See example_test.go for usage patterns.
package matrix
