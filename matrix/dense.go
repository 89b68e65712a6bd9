// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every cell canonical mod 26: constructors and Set normalize on write.
//   - Support copy-based minor extraction (Minor) and an allocation-free
//     variant (minorInto) for the determinant recursion.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Minor: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hill/modular"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxMinor = "Minor" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major square matrix over Z/26Z.
//   - n is the side length.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// Invariant: every element of data is in [0,25].
type Dense struct {
	n    int   // side length (>0)
	data []int // contiguous row-major storage (len == n*n)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an n×n zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// Notes:
//   - The key-size bound [MinBlockSize, MaxBlockSize] is NOT applied here:
//     minors legitimately shrink down to 1×1.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(n), nil
}

// newDense allocates without validation; n must be positive.
func newDense(n int) *Dense {
	return &Dense{n: n, data: make([]int, n*n)}
}

// NewDenseFromRows builds a Dense from a row slice, normalizing every cell mod 26.
// MAIN DESCRIPTION:
//   - Convenience constructor for literals and parsed keys.
//
// Implementation:
//   - Stage 1: validate non-empty and square (every row has len(rows) entries).
//   - Stage 2: copy row-major into a fresh buffer with modular.Normalize.
//
// Errors:
//   - ErrInvalidDimensions (no rows), ErrNonSquare (ragged or rectangular input).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDenseFromRows(rows [][]int) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	m := newDense(n)
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cells, want %d: %w",
				i, len(rows[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			m.data[i*n+j] = modular.Normalize(rows[i][j])
		}
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.n }

// Size returns the side length n. Complexity: O(1).
func (m *Dense) Size() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v mod 26 at (row, col) or returns ErrOutOfRange.
// Negative and oversized values are accepted and normalized.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = modular.Normalize(v)

	return nil
}

// Clone returns a deep copy (new buffer).
// Complexity: O(n²).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed Clone used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Copy returns a deep copy as *Dense, saving callers a type assertion.
func (m *Dense) Copy() *Dense { return m.clone() }

// ToRows exports the matrix as a freshly allocated [][]int.
// Complexity: O(n²).
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		row := make([]int, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// Equal reports whether o has the same size and cells.
// A nil o is never equal.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.n != o.n {
		return false
	}
	var k int
	for k = range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is the identity matrix.
func (m *Dense) IsIdentity() bool {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			want := 0
			if i == j {
				want = 1
			}
			if m.data[i*m.n+j] != want {
				return false
			}
		}
	}

	return true
}

// Minor returns a fresh (n-1)×(n-1) matrix with row `row` and column `col` removed.
// MAIN DESCRIPTION:
//   - Copy-based submatrix used by cofactor expansion.
//
// Errors:
//   - ErrOutOfRange (index outside bounds), ErrInvalidDimensions for a 1×1 source.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if _, err := m.indexOf(row, col); err != nil {
		return nil, denseErrorf(ctxMinor, row, col, err)
	}
	if m.n == 1 {
		return nil, denseErrorf(ctxMinor, row, col, ErrInvalidDimensions)
	}
	dst := newDense(m.n - 1)
	m.minorInto(dst, row, col)

	return dst, nil
}

// minorInto writes the minor of (row, col) into dst without allocating.
// dst must be (n-1)×(n-1); indices must be valid. Internal hot path only.
func (m *Dense) minorInto(dst *Dense, row, col int) {
	var i, j, k int
	for i = 0; i < m.n; i++ {
		if i == row {
			continue
		}
		base := i * m.n
		for j = 0; j < m.n; j++ {
			if j == col {
				continue
			}
			dst.data[k] = m.data[base+j]
			k++
		}
	}
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: O(n²).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m as *Dense, taking the fast path when it already is one.
// MAIN DESCRIPTION:
//   - Fallback for foreign Matrix implementations: copy through At in i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, any At error.
//   - ErrInvalidDimensions for an empty matrix, including the zero value Dense{}.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return nil, validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
		if d.n <= 0 {
			return nil, ErrInvalidDimensions // zero-value Dense{}
		}

		return d, nil
	}
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	n := m.Rows()
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	d := newDense(n)
	var i, j, v int
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*n+j] = modular.Normalize(v)
		}
	}

	return d, nil
}
