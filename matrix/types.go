// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the public Matrix interface and size bounds.

package matrix

// Block size bounds for cipher keys.
const (
	// MinBlockSize is the smallest key order accepted at the boundary.
	MinBlockSize = 2

	// MaxBlockSize caps the key order; cofactor expansion is O(n!).
	MaxBlockSize = 10
)

// Matrix represents a square two-dimensional array of residues mod 26.
//
// Rationale:
//   - Algorithms accept any implementation and take a flat fast path for *Dense.
//   - Implementations must keep cells canonical in [0,25].
//
// Complexity notes: all methods are expected O(1) except Clone (O(n²)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int, error)

	// Set stores v mod 26 at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v int) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
