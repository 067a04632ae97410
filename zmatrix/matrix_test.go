package zmatrix_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/zmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix_ConstructorErrors verifies the sentinel errors on malformed
// shapes.
func TestMatrix_ConstructorErrors(t *testing.T) {
	_, err := zmatrix.NewMatrix(-1, 2)
	assert.ErrorIs(t, err, zmatrix.ErrBadShape, "negative row count")

	_, err = zmatrix.FromInt64(2, 2, 1, 2, 3)
	assert.ErrorIs(t, err, zmatrix.ErrDimensionMismatch, "3 entries for a 2×2 matrix")

	_, err = zmatrix.FromRows(2, zmatrix.VectorFromInt64(1, 2, 3))
	assert.ErrorIs(t, err, zmatrix.ErrDimensionMismatch, "row longer than cols")
}

// TestMatrix_ZeroRowsKeepWidth pins the design point that a 0×n matrix still
// carries its ambient dimension.
func TestMatrix_ZeroRowsKeepWidth(t *testing.T) {
	m, err := zmatrix.NewMatrix(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NumRows())
	assert.Equal(t, 5, m.NumCols())

	err = m.AppendRow(zmatrix.VectorFromInt64(1, 2))
	assert.ErrorIs(t, err, zmatrix.ErrDimensionMismatch, "width survives emptiness")
}

// TestMatrix_Mul checks an exact product and the inner-dimension guard.
func TestMatrix_Mul(t *testing.T) {
	a, err := zmatrix.FromInt64(2, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	b, err := zmatrix.FromInt64(3, 2, 7, 8, 9, 10, 11, 12)
	require.NoError(t, err)

	p, err := zmatrix.Mul(a, b)
	require.NoError(t, err)
	want, err := zmatrix.FromInt64(2, 2, 58, 64, 139, 154)
	require.NoError(t, err)
	assert.True(t, p.Equal(want))

	_, err = zmatrix.Mul(a, a)
	assert.ErrorIs(t, err, zmatrix.ErrDimensionMismatch)
}

// TestMatrix_TransposeAndVStack covers the remaining shape plumbing.
func TestMatrix_TransposeAndVStack(t *testing.T) {
	a, err := zmatrix.FromInt64(2, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	at := a.Transpose()
	assert.Equal(t, 3, at.NumRows())
	assert.Equal(t, 2, at.NumCols())
	assert.True(t, at.Row(1).Equal(zmatrix.VectorFromInt64(2, 5)))

	s, err := zmatrix.VStack(a, a)
	require.NoError(t, err)
	assert.Equal(t, 4, s.NumRows())
	assert.True(t, s.Row(2).Equal(a.Row(0)))

	narrow := zmatrix.Identity(2)
	_, err = zmatrix.VStack(a, narrow)
	assert.ErrorIs(t, err, zmatrix.ErrDimensionMismatch)
}

// TestMatrix_SortRows verifies the deterministic lexicographic row order
// canonical forms rely on.
func TestMatrix_SortRows(t *testing.T) {
	m, err := zmatrix.FromInt64(3, 2, 1, 0, 0, 1, 0, 9)
	require.NoError(t, err)
	m.SortRows()
	want, err := zmatrix.FromInt64(3, 2, 0, 1, 0, 9, 1, 0)
	require.NoError(t, err)
	assert.True(t, m.Equal(want))
}

// TestMatrix_RowAliasesAppendCopies pins aliasing: Row shares storage,
// AppendRow does not.
func TestMatrix_RowAliasesAppendCopies(t *testing.T) {
	m := zmatrix.Identity(2)
	m.Row(0)[1].SetInt64(7)
	assert.True(t, m.Row(0).Equal(zmatrix.VectorFromInt64(1, 7)), "Row returns live storage")

	v := zmatrix.VectorFromInt64(3, 4)
	require.NoError(t, m.AppendRow(v))
	v[0].SetInt64(99)
	assert.True(t, m.Row(2).Equal(zmatrix.VectorFromInt64(3, 4)), "AppendRow stores a copy")
}
