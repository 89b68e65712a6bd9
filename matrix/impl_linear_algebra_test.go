// Package matrix_test contains unit tests for products over Z/26Z.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hill/matrix"
)

func TestMatVec_TextbookBlocks(t *testing.T) {
	key := MustRows(t, [][]int{{3, 3}, {2, 5}})

	he, err := matrix.MatVec(key, []int{7, 4}) // "HE"
	require.NoError(t, err)
	require.Equal(t, []int{7, 8}, he) // "HI"

	lp, err := matrix.MatVecMul(key, []int{11, 15}) // "LP"
	require.NoError(t, err)
	require.Equal(t, []int{0, 19}, lp) // "AT"
}

func TestMatVec_NormalizesUnreducedInput(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	y, err := matrix.MatVec(id, []int{-1, 26, 53})
	require.NoError(t, err)
	require.Equal(t, []int{25, 0, 1}, y)
}

func TestMatVec_Errors(t *testing.T) {
	key := MustDense(t, 2)
	_, err := matrix.MatVec(key, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(key, []int{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(nil, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec_FallbackMatchesFastPath(t *testing.T) {
	m := MustDense(t, 4)
	RandomFill(t, m, 5)
	x := []int{1, 20, 3, 25}
	fast, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	slow, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	require.Equal(t, fast, slow)
}

func TestMul_Known(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{2, 0}, {1, 2}})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireRows(t, [][]int{{4, 4}, {10, 8}}, c)

	big := MustRows(t, [][]int{{25, 25}, {25, 25}})
	sq, err := matrix.Mul(big, big)
	require.NoError(t, err)
	requireRows(t, [][]int{{2, 2}, {2, 2}}, sq) // 2·625 = 1250 ≡ 2
}

func TestMul_Errors(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2), MustDense(t, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, MustDense(t, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
