package zmatrix_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/zmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromInt64(t *testing.T, rows, cols int, entries ...int64) *zmatrix.Matrix {
	t.Helper()
	m, err := zmatrix.FromInt64(rows, cols, entries...)
	require.NoError(t, err)

	return m
}

// TestRank covers the degenerate shapes polyhedral code leans on: zero rows,
// dependent rows, full rank.
func TestRank(t *testing.T) {
	empty, err := zmatrix.NewMatrix(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rank())

	dep := mustFromInt64(t, 2, 2, 1, 2, 2, 4)
	assert.Equal(t, 1, dep.Rank())

	assert.Equal(t, 3, zmatrix.Identity(3).Rank())
}

// TestRowSpaceReduced_CanonicalAcrossBases verifies that two different bases
// of the same row space reduce to the identical matrix.
func TestRowSpaceReduced_CanonicalAcrossBases(t *testing.T) {
	a := mustFromInt64(t, 2, 3, 1, 1, 0, 0, 1, 1)
	b := mustFromInt64(t, 2, 3, 1, 2, 1, 1, 1, 0)

	ra := a.RowSpaceReduced()
	rb := b.RowSpaceReduced()
	assert.True(t, ra.Equal(rb), "same space, same canonical basis")

	want := mustFromInt64(t, 2, 3, 1, 0, -1, 0, 1, 1)
	assert.True(t, ra.Equal(want))
}

// TestInRowSpace checks membership, including the scaled-basis case that
// forces rational arithmetic.
func TestInRowSpace(t *testing.T) {
	m := mustFromInt64(t, 1, 3, 2, 4, 0)
	assert.True(t, m.InRowSpace(zmatrix.VectorFromInt64(1, 2, 0)), "half of the row")
	assert.False(t, m.InRowSpace(zmatrix.VectorFromInt64(1, 2, 1)))
	assert.True(t, m.InRowSpace(zmatrix.VectorFromInt64(0, 0, 0)))
}

// TestReduceModRowSpace verifies the canonical-representative contract:
// pivot coordinates vanish, direction is preserved, output is primitive.
func TestReduceModRowSpace(t *testing.T) {
	space := mustFromInt64(t, 1, 3, 1, 0, 0)

	got := zmatrix.ReduceModRowSpace(zmatrix.VectorFromInt64(3, 2, 0), space)
	assert.True(t, got.Equal(zmatrix.VectorFromInt64(0, 1, 0)))

	got = zmatrix.ReduceModRowSpace(zmatrix.VectorFromInt64(3, -2, 0), space)
	assert.True(t, got.Equal(zmatrix.VectorFromInt64(0, -1, 0)), "positive scaling only")

	got = zmatrix.ReduceModRowSpace(zmatrix.VectorFromInt64(5, 0, 0), space)
	assert.True(t, got.IsZero(), "vectors inside the space reduce to zero")
}

// TestProjectOrthogonal checks the orthogonal component with its
// direction-preserving primitive scaling.
func TestProjectOrthogonal(t *testing.T) {
	basis := mustFromInt64(t, 1, 2, 0, 1)
	got := zmatrix.ProjectOrthogonal(zmatrix.VectorFromInt64(3, 7), basis)
	assert.True(t, got.Equal(zmatrix.VectorFromInt64(1, 0)))

	// already orthogonal: only the primitive scaling applies
	basis = mustFromInt64(t, 1, 2, 1, -1)
	got = zmatrix.ProjectOrthogonal(zmatrix.VectorFromInt64(2, 2), basis)
	assert.True(t, got.Equal(zmatrix.VectorFromInt64(1, 1)))

	// empty basis: pure primitive reduction
	empty, err := zmatrix.NewMatrix(0, 2)
	require.NoError(t, err)
	got = zmatrix.ProjectOrthogonal(zmatrix.VectorFromInt64(-4, 6), empty)
	assert.True(t, got.Equal(zmatrix.VectorFromInt64(-2, 3)))
}

// TestExpressInBasis covers integer coordinates and both failure modes of
// ErrNotInLattice.
func TestExpressInBasis(t *testing.T) {
	basis := mustFromInt64(t, 2, 2, 1, 0, 1, 2)
	targets := mustFromInt64(t, 1, 2, 3, 2)

	coeffs, err := zmatrix.ExpressInBasis(basis, targets)
	require.NoError(t, err)
	assert.True(t, coeffs.Equal(mustFromInt64(t, 1, 2, 2, 1)), "(3,2) = 2·(1,0) + 1·(1,2)")

	back, err := zmatrix.Mul(coeffs, basis)
	require.NoError(t, err)
	assert.True(t, back.Equal(targets))

	// rational coordinate
	_, err = zmatrix.ExpressInBasis(mustFromInt64(t, 1, 2, 2, 0), mustFromInt64(t, 1, 2, 1, 0))
	assert.ErrorIs(t, err, zmatrix.ErrNotInLattice)

	// outside the span entirely
	_, err = zmatrix.ExpressInBasis(mustFromInt64(t, 1, 2, 1, 0), mustFromInt64(t, 1, 2, 0, 1))
	assert.ErrorIs(t, err, zmatrix.ErrNotInLattice)
}
