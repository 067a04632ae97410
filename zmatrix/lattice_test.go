package zmatrix_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/zmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHermiteNormalForm checks the full contract on a small matrix: the
// exact H, the transform identity U·m = H, and U·U⁻¹ = I.
func TestHermiteNormalForm(t *testing.T) {
	m := mustFromInt64(t, 2, 2, 4, 6, 2, 2)
	h, u, uinv := m.HermiteNormalForm()

	assert.True(t, h.Equal(mustFromInt64(t, 2, 2, 2, 0, 0, 2)))

	um, err := zmatrix.Mul(u, m)
	require.NoError(t, err)
	assert.True(t, um.Equal(h), "U·m = H")

	id, err := zmatrix.Mul(u, uinv)
	require.NoError(t, err)
	assert.True(t, id.Equal(zmatrix.Identity(2)), "Uinv inverts U")
}

// TestHermiteNormalForm_RankDeficient verifies echelon shape with a zero
// bottom row and the transform identity on a singular input.
func TestHermiteNormalForm_RankDeficient(t *testing.T) {
	m := mustFromInt64(t, 2, 3, 1, 2, 3, 2, 4, 6)
	h, u, _ := m.HermiteNormalForm()

	assert.True(t, h.Row(1).IsZero(), "dependent row eliminated")
	assert.Equal(t, 1, h.Row(0)[0].Sign(), "positive pivot")

	um, err := zmatrix.Mul(u, m)
	require.NoError(t, err)
	assert.True(t, um.Equal(h))
}

// TestKernelBasis pins the exact bases the cone algorithms depend on,
// including the saturation property: kernel rows are primitive even when the
// input rows are not.
func TestKernelBasis(t *testing.T) {
	// {x : x − 2y = 0} is generated by (2,1)
	k := mustFromInt64(t, 1, 2, 1, -2).KernelBasis()
	assert.True(t, k.Equal(mustFromInt64(t, 1, 2, 2, 1)))

	// non-primitive row, same kernel as (1,0,0)
	k = mustFromInt64(t, 1, 3, 2, 0, 0).KernelBasis()
	assert.Equal(t, 2, k.NumRows())
	for i := 0; i < k.NumRows(); i++ {
		assert.True(t, k.Row(i).Equal(k.Row(i).Primitive()), "saturated basis rows are primitive")
		assert.Equal(t, 0, k.Row(i)[0].Sign())
	}

	// two independent constraints in Z³
	k = mustFromInt64(t, 2, 3, 1, 1, 0, 0, 1, 1).KernelBasis()
	assert.True(t, k.Equal(mustFromInt64(t, 1, 3, 1, -1, 1)))
}

// TestKernelBasis_DegenerateShapes covers the empty-constraint and
// full-rank cases that bound the cone state machine.
func TestKernelBasis_DegenerateShapes(t *testing.T) {
	empty, err := zmatrix.NewMatrix(0, 3)
	require.NoError(t, err)
	assert.True(t, empty.KernelBasis().Equal(zmatrix.Identity(3)), "no constraints, full kernel")

	k := zmatrix.Identity(3).KernelBasis()
	assert.Equal(t, 0, k.NumRows())
	assert.Equal(t, 3, k.NumCols(), "width survives an empty kernel")
}

// TestKernelBasis_AnnihilatesInput is the defining property, checked on a
// slightly larger matrix where pinning exact rows would be brittle.
func TestKernelBasis_AnnihilatesInput(t *testing.T) {
	m := mustFromInt64(t, 2, 4, 3, 1, 4, 1, 5, 9, 2, 6)
	k := m.KernelBasis()
	require.Equal(t, 2, k.NumRows())

	for i := 0; i < m.NumRows(); i++ {
		for j := 0; j < k.NumRows(); j++ {
			assert.Equal(t, 0, m.Row(i).Dot(k.Row(j)).Sign())
		}
	}
	assert.Equal(t, 2, k.Rank(), "basis rows are independent")
}
