// SPDX-License-Identifier: MIT

// Package matrix - cofactor kernels: Determinant and Adjugate.
//
// Purpose:
//   - Determinant by recursive Laplace expansion along row 0.
//   - Adjugate as the transpose of the cofactor matrix.
//
// Sign bookkeeping:
//   - Determinant alternates +,−,+,… across columns of row 0.
//   - Adjugate uses (−1)^(i+j) and stores the cofactor of (i,j) at (j,i).
//
// Scratch reuse:
//   - One minor buffer per recursion depth, allocated once per top-level call.
//     Depth d works on an (n−1−d)×(n−1−d) buffer; a level overwrites its buffer
//     for every column, and only deeper levels touch deeper buffers.
//
// Complexity quicksheet:
//   - Determinant O(n!) time, O(n²) scratch; Adjugate O(n²·(n−1)!) time.

package matrix

import "github.com/katalvlaran/hill/modular"

// scratch holds per-depth minor buffers; scratch[0] is the largest.
type scratch []*Dense

// newScratch allocates buffers of sizes n-1, n-2, …, 1 for an n×n expansion.
func newScratch(n int) scratch {
	if n <= 1 {
		return nil
	}
	s := make(scratch, 0, n-1)
	var k int
	for k = n - 1; k >= 1; k-- {
		s = append(s, newDense(k))
	}

	return s
}

// Determinant returns det(m) mod 26 in [0,25].
// MAIN DESCRIPTION:
//   - Recursive cofactor expansion along the first row.
//
// Implementation:
//   - Stage 1: resolve m to *Dense and allocate depth-indexed scratch.
//   - Stage 2: recurse; base case 1×1 returns the normalized cell.
//
// Behavior highlights:
//   - The per-level running sum is a plain signed int; it is normalized once
//     when the level returns.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (foreign Matrix), ErrInvalidDimensions.
//
// Complexity:
//   - Time O(n!), Space O(n²).
func Determinant(m Matrix) (int, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(d, newScratch(d.n)), nil
}

// determinant is the recursive kernel. s must come from newScratch(m.n)
// (or be the matching tail of a larger scratch).
func determinant(m *Dense, s scratch) int {
	if m.n == 1 {
		return modular.Normalize(m.data[0])
	}

	sub := s[0] // (n-1)×(n-1), owned by this depth
	det, sign := 0, 1
	var f int
	for f = 0; f < m.n; f++ {
		if m.data[f] != 0 {
			m.minorInto(sub, 0, f)
			det += sign * m.data[f] * determinant(sub, s[1:])
		}
		sign = -sign
	}

	return modular.Normalize(det)
}

// Adjugate returns adj(m): the transpose of the cofactor matrix, mod 26.
// MAIN DESCRIPTION:
//   - adj[j][i] = (−1)^(i+j) · det(minor(i,j)) mod 26.
//
// Implementation:
//   - Stage 1: resolve m to *Dense; n == 1 yields [1].
//   - Stage 2: for every (i,j) extract the minor into a reused buffer, take its
//     determinant with shared scratch, apply the sign and store transposed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (foreign Matrix), ErrInvalidDimensions.
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
//
// Notes:
//   - m·adj(m) = det(m)·I mod 26 holds for every m, invertible or not.
func Adjugate(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adjugate(d), nil
}

// adjugate is the kernel behind Adjugate and Inverse.
func adjugate(m *Dense) *Dense {
	n := m.n
	adj := newDense(n)
	if n == 1 {
		adj.data[0] = 1

		return adj
	}

	minor := newDense(n - 1)
	s := newScratch(n - 1)
	var i, j, sign int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.minorInto(minor, i, j)
			sign = 1
			if (i+j)%2 != 0 {
				sign = -1
			}
			adj.data[j*n+i] = modular.Normalize(sign * determinant(minor, s)) // transpose
		}
	}

	return adj
}
