// Package cone: face and lattice derivation.
// Extreme rays (with their cache), minimal faces containing a point, links,
// quotient-lattice bases and semigroup generators of rays.

package cone

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/zmatrix"
)

// ExtremeRays returns one primitive integer representative per extreme ray,
// each orthogonally reduced against the lineality space, as sorted rows.
// The result is cached: a second call without an intervening construction
// returns the cache without re-running the dual-description primitive, and
// since state transitions refine the description of an immutable cone the
// cache is never invalidated.
func (c *Cone) ExtremeRays() *zmatrix.Matrix {
	return c.extremeRays(nil).Clone()
}

// ExtremeRaysGivenLineality is ExtremeRays with a performance hint: a
// caller that already holds generators of the lineality space (a parent fan,
// say) can pass them to skip the lineality-basis derivation. The hint must
// span the lineality space; it changes how the result is derived, never the
// result.
func (c *Cone) ExtremeRaysGivenLineality(lineality *zmatrix.Matrix) *zmatrix.Matrix {
	return c.extremeRays(lineality).Clone()
}

func (c *Cone) extremeRays(linHint *zmatrix.Matrix) *zmatrix.Matrix {
	if c.raysCached {
		return c.cachedRays
	}
	rays, lin := c.dualDescription()
	if linHint != nil {
		lin = linHint
	}
	c.cachedRays = reduceRays(rays, lin)
	c.raysCached = true

	return c.cachedRays
}

// RelativeInteriorPoint returns a point in the relative interior of the
// cone: the sum of all extreme rays, which is the zero vector exactly when
// the cone is a linear subspace.
func (c *Cone) RelativeInteriorPoint() zmatrix.Vector {
	return sumRows(c.extremeRays(nil), c.n)
}

// FaceContaining returns the minimal face of the cone whose relative
// interior contains v: every inequality tight at v becomes an equation.
// Panics if v is not contained in the cone.
func (c *Cone) FaceContaining(v zmatrix.Vector) *Cone {
	if !c.Contains(v) {
		panic(fmt.Sprintf("cone: FaceContaining: point %s not in cone", v))
	}
	ineq := mustZero(c.n)
	eq := c.equations.Clone()
	for i := 0; i < c.inequalities.NumRows(); i++ {
		row := c.inequalities.Row(i)
		target := ineq
		if row.Dot(v).Sign() == 0 {
			target = eq
		}
		if err := target.AppendRow(row); err != nil {
			panic(fmt.Sprintf("cone: FaceContaining: %v", err))
		}
	}
	f, err := New(ineq, eq)
	if err != nil {
		panic(fmt.Sprintf("cone: FaceContaining: %v", err))
	}

	return f
}

// HasFace reports whether f equals a face of the cone. The test isolates
// the candidate through FaceContaining at a relative interior point of f
// and compares canonical forms; both cones may be canonicalized as a side
// effect (a refinement, never a geometric change). Panics if the ambient
// dimensions differ.
func (c *Cone) HasFace(f *Cone) bool {
	if f.n != c.n {
		panic(fmt.Sprintf("cone: HasFace: ambient dimensions %d and %d differ", c.n, f.n))
	}
	p := f.RelativeInteriorPoint()
	if !c.Contains(p) {
		return false
	}
	face := c.FaceContaining(p)
	face.Canonicalize()
	f.Canonicalize()

	return Equal(face, f)
}

// Link returns the link of the face containing w in its relative interior:
// the cone of directions u with w + εu inside the cone for small ε > 0. Its
// description keeps exactly the inequalities tight at w plus all equations.
// Knowledge transfers: facets of the cone through the face stay facets of
// the link, and the implied-equation space is unchanged. Panics if w is not
// contained in the cone.
func (c *Cone) Link(w zmatrix.Vector) *Cone {
	if !c.Contains(w) {
		panic(fmt.Sprintf("cone: Link: point %s not in cone", w))
	}
	ineq := mustZero(c.n)
	for i := 0; i < c.inequalities.NumRows(); i++ {
		row := c.inequalities.Row(i)
		if row.Dot(w).Sign() != 0 {
			continue
		}
		if err := ineq.AppendRow(row); err != nil {
			panic(fmt.Sprintf("cone: Link: %v", err))
		}
	}
	var opts []Option
	if c.ImpliedEquationsKnown() {
		opts = append(opts, WithKnownImpliedEquations())
	}
	if c.FacetsKnown() {
		opts = append(opts, WithKnownFacets())
	}
	l, err := New(ineq, c.equations, opts...)
	if err != nil {
		panic(fmt.Sprintf("cone: Link: %v", err))
	}

	return l
}

// QuotientLatticeBasis returns generators, as vectors in the span of the
// cone, of the quotient lattice (Zⁿ ∩ span) / (Zⁿ ∩ lineality). The
// lineality lattice is saturated in the span lattice, so the quotient is
// free and the rows are a basis, not merely a spanning set. Panics unless
// the implied equations are known — derive them first or construct with
// WithKnownImpliedEquations.
func (c *Cone) QuotientLatticeBasis() *zmatrix.Matrix {
	if !c.ImpliedEquationsKnown() {
		panic("cone: QuotientLatticeBasis: implied equations not known")
	}
	span := c.equations.KernelBasis()     // basis of Zⁿ ∩ span
	lin := c.generatorsOfLinealitySpace() // basis of Zⁿ ∩ lineality
	if lin.NumRows() == 0 {
		return span
	}
	// Express the lineality basis in span coordinates and complete it to a
	// basis of the span lattice with a unimodular change of basis from the
	// Hermite normal form; the completing rows map to a quotient basis.
	t, err := zmatrix.ExpressInBasis(span, lin)
	if err != nil {
		panic(fmt.Sprintf("cone: QuotientLatticeBasis: %v", err))
	}
	_, _, uinv := t.Transpose().HermiteNormalForm()
	bprime, err := zmatrix.Mul(uinv.Transpose(), span)
	if err != nil {
		panic(fmt.Sprintf("cone: QuotientLatticeBasis: %v", err))
	}
	out := mustZero(c.n)
	for i := lin.NumRows(); i < bprime.NumRows(); i++ {
		if err = out.AppendRow(bprime.Row(i)); err != nil {
			panic(fmt.Sprintf("cone: QuotientLatticeBasis: %v", err))
		}
	}

	return out
}

// SemiGroupGeneratorOfRay returns the unique generator, in the positive
// direction of the ray, of the rank-one semigroup
// (ray ∩ Zⁿ) / (lineality ∩ Zⁿ). Panics unless the implied equations are
// known and the cone is a ray (dimension = lineality dimension + 1).
func (c *Cone) SemiGroupGeneratorOfRay() zmatrix.Vector {
	if !c.ImpliedEquationsKnown() {
		panic("cone: SemiGroupGeneratorOfRay: implied equations not known")
	}
	if c.Dimension() != c.DimensionOfLinealitySpace()+1 {
		panic(fmt.Sprintf("cone: SemiGroupGeneratorOfRay: cone of dimension %d with lineality dimension %d is not a ray",
			c.Dimension(), c.DimensionOfLinealitySpace()))
	}
	v := c.QuotientLatticeBasis().Row(0).Clone()
	r := c.extremeRays(nil)
	if r.NumRows() != 1 {
		panic(fmt.Sprintf("cone: SemiGroupGeneratorOfRay: expected one extreme ray, found %d", r.NumRows()))
	}
	// v generates the quotient up to sign; the extreme ray is orthogonal to
	// the lineality span, so ⟨v,r⟩ carries the sign of v's class.
	if v.Dot(r.Row(0)).Sign() < 0 {
		v = v.Neg()
	}

	return v
}

// sumRows returns the sum of the rows of m (the zero vector for no rows).
func sumRows(m *zmatrix.Matrix, n int) zmatrix.Vector {
	s := zmatrix.NewVector(n)
	for i := 0; i < m.NumRows(); i++ {
		s = s.Add(m.Row(i))
	}

	return s
}
