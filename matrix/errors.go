// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/hill/modular"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, err) so the
// surface reads "Inverse: matrix: ..."; callers still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Minor) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul of different sizes or MatVec with len(x) != n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidBlockSize indicates a key size outside [MinBlockSize, MaxBlockSize].
	// Rejected at the boundary, before any core computation.
	ErrInvalidBlockSize = errors.New("matrix: block size must be between 2 and 10")
)

// ErrNotInvertible is returned by Inverse when det(K) shares a factor with 26.
// It is the modular sentinel re-exported so callers of this package need a
// single import; errors.Is matches either name.
var ErrNotInvertible = modular.ErrNotInvertible
