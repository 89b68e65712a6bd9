package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hill/matrix"
)

func TestValidateBlockSize(t *testing.T) {
	for n := matrix.MinBlockSize; n <= matrix.MaxBlockSize; n++ {
		require.NoError(t, matrix.ValidateBlockSize(n), "n=%d", n)
	}
	for _, n := range []int{-3, 0, 1, 11, 100} {
		require.ErrorIs(t, matrix.ValidateBlockSize(n), matrix.ErrInvalidBlockSize, "n=%d", n)
	}
}

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 2)))
}

func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]int{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]int{1, 2}, 2))
}

func TestValidateKey(t *testing.T) {
	require.NoError(t, matrix.ValidateKey(MustDense(t, 3)))
	require.ErrorIs(t, matrix.ValidateKey(MustDense(t, 1)), matrix.ErrInvalidBlockSize)
	require.ErrorIs(t, matrix.ValidateKey(MustDense(t, 11)), matrix.ErrInvalidBlockSize)
	require.ErrorIs(t, matrix.ValidateKey(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateKey(rect{}), matrix.ErrNonSquare)
}

// rect is a 2×3 Matrix used only to trip square checks.
type rect struct{}

func (rect) Rows() int                 { return 2 }
func (rect) Cols() int                 { return 3 }
func (rect) At(i, j int) (int, error)  { return 0, nil }
func (rect) Set(i, j int, v int) error { return nil }
func (r rect) Clone() matrix.Matrix    { return r }
