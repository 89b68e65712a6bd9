// SPDX-License-Identifier: MIT

// Package cipher - block transforms.
//
// Purpose:
//   - TransformBlock: y = M·v mod 26 for one block.
//   - TransformText: the same, block by block over a whole index sequence.
//
// Complexity quicksheet:
//   - TransformBlock O(n²); TransformText O(len·n).

package cipher

import (
	"fmt"

	"github.com/katalvlaran/hill/matrix"
)

// Operation tags for error wrapping.
const (
	opTransformBlock = "TransformBlock"
	opTransformText  = "TransformText"
)

// TransformBlock returns M·v mod 26. The same call encrypts (M = K) and
// decrypts (M = K⁻¹).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (len(v) != n).
func TransformBlock(m matrix.Matrix, v []int) ([]int, error) {
	y, err := matrix.MatVec(m, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransformBlock, err)
	}

	return y, nil
}

// TransformText partitions indices into consecutive blocks of n, transforms
// each with m and concatenates the results in block order.
// MAIN DESCRIPTION:
//   - The caller owns padding; this function only checks alignment.
//
// Implementation:
//   - Stage 1: m non-nil, n > 0 and n == m.Rows().
//   - Stage 2: len(indices) % n == 0, else ErrMisalignedInput.
//   - Stage 3: per block MatVec, copied into one output slice.
//
// Errors:
//   - ErrMisalignedInput, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrInvalidDimensions (n <= 0).
//
// Behavior highlights:
//   - indices is never mutated; an empty input yields an empty output.
func TransformText(m matrix.Matrix, indices []int, n int) ([]int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opTransformText, err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%s: block size %d: %w", opTransformText, n, matrix.ErrInvalidDimensions)
	}
	if n != m.Rows() {
		return nil, fmt.Errorf("%s: block size %d for %dx%d matrix: %w",
			opTransformText, n, m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}
	if len(indices)%n != 0 {
		return nil, fmt.Errorf("%s: length %d, block size %d: %w",
			opTransformText, len(indices), n, ErrMisalignedInput)
	}

	out := make([]int, len(indices))
	var off int
	for off = 0; off < len(indices); off += n {
		y, err := matrix.MatVec(m, indices[off:off+n])
		if err != nil {
			return nil, fmt.Errorf("%s: block %d: %w", opTransformText, off/n, err)
		}
		copy(out[off:], y)
	}
	log.Debugw("transformed text", "blocks", len(indices)/n, "n", n)

	return out, nil
}
