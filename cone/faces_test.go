package cone_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/cone"
	"github.com/katalvlaran/polyhedra/zmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRelativeInteriorPoint checks the ray-sum point on a pointed cone and
// the zero vector on a subspace.
func TestRelativeInteriorPoint(t *testing.T) {
	orthant := cone.PositiveOrthant(3)
	p := orthant.RelativeInteriorPoint()
	assert.True(t, p.Equal(zmatrix.VectorFromInt64(1, 1, 1)))
	assert.True(t, orthant.ContainsRelatively(p))

	line := mustCone(t, zeroMatrix(t, 2), mustMatrix(t, 1, 2, 1, 0))
	assert.True(t, line.RelativeInteriorPoint().IsZero(), "subspaces sum to zero")
}

// TestFaceContaining walks the face lattice of the orthant from a boundary
// point, an interior point and a vertex.
func TestFaceContaining(t *testing.T) {
	c := cone.PositiveOrthant(3)

	f := c.FaceContaining(zmatrix.VectorFromInt64(1, 1, 0))
	assert.Equal(t, 2, f.Dimension())
	assert.True(t, f.ExtremeRays().Equal(mustMatrix(t, 2, 3, 0, 1, 0, 1, 0, 0)))

	interior := c.FaceContaining(zmatrix.VectorFromInt64(1, 1, 1))
	interior.Canonicalize()
	c.Canonicalize()
	assert.True(t, cone.Equal(interior, c), "interior points yield the cone itself")

	origin := c.FaceContaining(zmatrix.VectorFromInt64(0, 0, 0))
	assert.True(t, origin.IsOrigin())

	assert.Panics(t, func() { c.FaceContaining(zmatrix.VectorFromInt64(-1, 0, 0)) })
}

// TestHasFace accepts genuine faces, including the improper one, and
// rejects subcones that merely sit inside a face.
func TestHasFace(t *testing.T) {
	c := cone.PositiveOrthant(3)

	quarter, err := cone.FromRays(mustMatrix(t, 2, 3, 1, 0, 0, 0, 1, 0), zeroMatrix(t, 3))
	require.NoError(t, err)
	assert.True(t, c.HasFace(quarter))

	whole := mustCone(t, zmatrix.Identity(3), zeroMatrix(t, 3))
	assert.True(t, c.HasFace(whole), "a cone is a face of itself")

	// inside the z = 0 facet but no face
	diagonal, err := cone.FromRays(mustMatrix(t, 1, 3, 1, 1, 0), zeroMatrix(t, 3))
	require.NoError(t, err)
	assert.False(t, c.HasFace(diagonal))

	outside, err := cone.FromRays(mustMatrix(t, 1, 3, -1, 0, 0), zeroMatrix(t, 3))
	require.NoError(t, err)
	assert.False(t, c.HasFace(outside))
}

// TestLink keeps tight inequalities only: the link opens up in every
// direction along the face.
func TestLink(t *testing.T) {
	c := cone.PositiveOrthant(3)

	l := c.Link(zmatrix.VectorFromInt64(1, 1, 0))
	assert.Equal(t, 3, l.Dimension())
	assert.Equal(t, 2, l.DimensionOfLinealitySpace())
	assert.Equal(t, 1, l.Facets().NumRows())
	assert.True(t, l.Contains(zmatrix.VectorFromInt64(-5, -5, 1)), "directions along the face are free")
	assert.False(t, l.Contains(zmatrix.VectorFromInt64(0, 0, -1)))

	assert.True(t, c.Link(zmatrix.VectorFromInt64(1, 1, 1)).IsFullSpace(), "interior point")
	assert.Panics(t, func() { c.Link(zmatrix.VectorFromInt64(0, 0, -1)) })
}

// TestQuotientLatticeBasis covers the trivial-lineality shortcut, the
// nontrivial quotient and the knowledge guard.
func TestQuotientLatticeBasis(t *testing.T) {
	orthant := cone.PositiveOrthant(2)
	assert.True(t, orthant.QuotientLatticeBasis().Equal(zmatrix.Identity(2)), "pointed full-dimensional: the span lattice itself")

	half := mustCone(t, mustMatrix(t, 1, 2, 1, 0), zeroMatrix(t, 2))
	half.FindImpliedEquations()
	q := half.QuotientLatticeBasis()
	require.Equal(t, 1, q.NumRows())
	assert.NotEqual(t, 0, q.Row(0).Dot(zmatrix.VectorFromInt64(1, 0)).Sign(), "the class generator leaves the lineality line")

	raw := mustCone(t, mustMatrix(t, 1, 2, 1, 0), zeroMatrix(t, 2))
	assert.Panics(t, func() { raw.QuotientLatticeBasis() }, "implied equations required")
}

// TestSemiGroupGeneratorOfRay pins the lattice generator of a ray whose
// primitive direction is not a unit vector.
func TestSemiGroupGeneratorOfRay(t *testing.T) {
	// {x ≥ 0, y ≥ 0} ∩ {x = 2y}: the ray through (2,1)
	c := mustCone(t, mustMatrix(t, 2, 2, 1, 0, 0, 1), mustMatrix(t, 1, 2, 1, -2))
	c.FindImpliedEquations()
	assert.True(t, c.SemiGroupGeneratorOfRay().Equal(zmatrix.VectorFromInt64(2, 1)))

	// a ray modulo lineality: the halfplane {x ≥ 0}
	half := mustCone(t, mustMatrix(t, 1, 2, 1, 0), zeroMatrix(t, 2))
	half.FindImpliedEquations()
	g := half.SemiGroupGeneratorOfRay()
	assert.Equal(t, 1, g.Dot(zmatrix.VectorFromInt64(1, 0)).Sign(), "positive side of the ray")

	assert.Panics(t, func() { cone.PositiveOrthant(2).SemiGroupGeneratorOfRay() }, "not a ray")
}
