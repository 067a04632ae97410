// Package cone: the cone algebra.
// Pure functions and logically-const methods combining cones. Combinators
// allocate fresh cones; the only state they may advance on an operand is
// whatever their knowledge requirement forces (a dual description for
// generator access, canonicalization for comparisons).

package cone

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/zmatrix"
)

// Intersection returns a ∩ b: the union of both descriptions. The result
// starts at LevelRaw — redundancy is not implied by the union even when both
// inputs know their facets. Returns ErrAmbientMismatch if the ambient
// dimensions differ.
func Intersection(a, b *Cone) (*Cone, error) {
	if a.n != b.n {
		return nil, fmt.Errorf("Intersection: ambient dimensions %d and %d: %w", a.n, b.n, ErrAmbientMismatch)
	}
	ineq, err := zmatrix.VStack(a.inequalities, b.inequalities)
	if err != nil {
		return nil, fmt.Errorf("Intersection: %w", err)
	}
	eq, err := zmatrix.VStack(a.equations, b.equations)
	if err != nil {
		return nil, fmt.Errorf("Intersection: %w", err)
	}

	return New(ineq, eq)
}

// Product returns the Cartesian product a × b in dimension
// a.AmbientDimension() + b.AmbientDimension(): rows of each input are
// zero-padded into their own coordinate block. Block independence preserves
// knowledge: the result carries a preassumption exactly when both inputs
// hold the corresponding knowledge.
func Product(a, b *Cone) *Cone {
	n := a.n + b.n
	ineq := padBlocks(a.inequalities, b.inequalities, a.n, n)
	eq := padBlocks(a.equations, b.equations, a.n, n)
	var opts []Option
	if a.ImpliedEquationsKnown() && b.ImpliedEquationsKnown() {
		opts = append(opts, WithKnownImpliedEquations())
	}
	if a.FacetsKnown() && b.FacetsKnown() {
		opts = append(opts, WithKnownFacets())
	}
	p, err := New(ineq, eq, opts...)
	if err != nil {
		panic(fmt.Sprintf("cone: Product: %v", err))
	}

	return p
}

// padBlocks embeds left's rows into coordinates [0,offset) and right's rows
// into [offset,n) of the combined space.
func padBlocks(left, right *zmatrix.Matrix, offset, n int) *zmatrix.Matrix {
	out := mustZero(n)
	appendPadded := func(row zmatrix.Vector, at int) {
		v := zmatrix.NewVector(n)
		for j := 0; j < row.Len(); j++ {
			v[at+j].Set(row[j])
		}
		if err := out.AppendRow(v); err != nil {
			panic(fmt.Sprintf("cone: padBlocks: %v", err))
		}
	}
	for i := 0; i < left.NumRows(); i++ {
		appendPadded(left.Row(i), 0)
	}
	for i := 0; i < right.NumRows(); i++ {
		appendPadded(right.Row(i), offset)
	}

	return out
}

// Dual returns {y : ⟨y,x⟩ ≥ 0 for all x in the cone}. The generator
// description is required, so the extreme-ray computation is forced. The
// extreme rays become the dual's facet inequalities and the lineality basis
// its implied equations, so the result carries both preassumptions — the
// double dual reproduces the original point set.
func (c *Cone) Dual() *Cone {
	rays := c.extremeRays(nil)
	lin := c.generatorsOfLinealitySpace()
	d, err := New(rays, lin, WithKnownImpliedEquations(), WithKnownFacets())
	if err != nil {
		panic(fmt.Sprintf("cone: Dual: %v", err))
	}

	return d
}

// Negated returns −c. Inequality rows are negated; equations describe the
// same space for −c and stay untouched, which keeps every knowledge level
// valid. At LevelCanonical only the row order can change, so the rows are
// re-sorted; the cached extreme rays negate along.
func (c *Cone) Negated() *Cone {
	ineq := mustZero(c.n)
	for i := 0; i < c.inequalities.NumRows(); i++ {
		if err := ineq.AppendRow(c.inequalities.Row(i).Neg()); err != nil {
			panic(fmt.Sprintf("cone: Negated: %v", err))
		}
	}
	if c.level >= LevelCanonical {
		ineq.SortRows()
	}
	neg := &Cone{
		n:            c.n,
		pre:          c.pre,
		level:        c.level,
		inequalities: ineq,
		equations:    c.equations.Clone(),
		multiplicity: c.Multiplicity(),
		linearForms:  c.linearForms.Clone(),
	}
	if c.raysCached {
		rays := mustZero(c.n)
		for i := 0; i < c.cachedRays.NumRows(); i++ {
			if err := rays.AppendRow(c.cachedRays.Row(i).Neg()); err != nil {
				panic(fmt.Sprintf("cone: Negated: %v", err))
			}
		}
		rays.SortRows()
		neg.cachedRays = rays
		neg.raysCached = true
	}

	return neg
}

// LinealitySpace returns the cone c ∩ (−c): the largest linear subspace
// inside c, described by turning every inequality into an equation.
func (c *Cone) LinealitySpace() *Cone {
	eq, err := zmatrix.VStack(c.inequalities, c.equations)
	if err != nil {
		panic(fmt.Sprintf("cone: LinealitySpace: %v", err))
	}
	l, err := New(mustZero(c.n), eq)
	if err != nil {
		panic(fmt.Sprintf("cone: LinealitySpace: %v", err))
	}

	return l
}

// Contains reports whether v satisfies every inequality and equation.
// Exact: no tolerance of any kind. Panics if v has the wrong length.
func (c *Cone) Contains(v zmatrix.Vector) bool {
	for i := 0; i < c.inequalities.NumRows(); i++ {
		if c.inequalities.Row(i).Dot(v).Sign() < 0 {
			return false
		}
	}
	for i := 0; i < c.equations.NumRows(); i++ {
		if c.equations.Row(i).Dot(v).Sign() != 0 {
			return false
		}
	}

	return true
}

// ContainsRowsOf reports whether every row of m lies in the cone.
func (c *Cone) ContainsRowsOf(m *zmatrix.Matrix) bool {
	for i := 0; i < m.NumRows(); i++ {
		if !c.Contains(m.Row(i)) {
			return false
		}
	}

	return true
}

// ContainsCone reports whether other ⊆ c, by checking every generator of
// other against c's description: rays must satisfy the inequalities, and
// lineality generators must satisfy everything with equality. Forces
// generator access on other. Panics if the ambient dimensions differ.
func (c *Cone) ContainsCone(other *Cone) bool {
	if other.n != c.n {
		panic(fmt.Sprintf("cone: ContainsCone: ambient dimensions %d and %d differ", c.n, other.n))
	}
	if !c.ContainsRowsOf(other.extremeRays(nil)) {
		return false
	}
	lin := other.generatorsOfLinealitySpace()
	for i := 0; i < lin.NumRows(); i++ {
		l := lin.Row(i)
		if !c.Contains(l) || !c.Contains(l.Neg()) {
			return false
		}
	}

	return true
}

// ContainsRelatively reports whether v lies in the relative interior of the
// cone: equations vanish at v and every remaining inequality is strictly
// positive. Advances the cone to LevelImpliedEquationsKnown first — the
// relative interior is only meaningful once the true affine hull is known.
func (c *Cone) ContainsRelatively(v zmatrix.Vector) bool {
	c.ensureLevel(LevelImpliedEquationsKnown)
	for i := 0; i < c.equations.NumRows(); i++ {
		if c.equations.Row(i).Dot(v).Sign() != 0 {
			return false
		}
	}
	for i := 0; i < c.inequalities.NumRows(); i++ {
		if c.inequalities.Row(i).Dot(v).Sign() <= 0 {
			return false
		}
	}

	return true
}

// ContainsPositiveVector reports whether some point of the cone has all
// coordinates strictly positive, by inspecting a relative interior point of
// the intersection with the positive orthant.
func (c *Cone) ContainsPositiveVector() bool {
	withOrthant, err := Intersection(c, PositiveOrthant(c.n))
	if err != nil {
		panic(fmt.Sprintf("cone: ContainsPositiveVector: %v", err))
	}

	return withOrthant.RelativeInteriorPoint().IsPositive()
}

// IsSimplicial reports whether the cone is simplicial: its dimension equals
// the number of facets plus the dimension of the lineality space (for a
// pointed cone, dimension = number of facets). Structural, not approximate.
func (c *Cone) IsSimplicial() bool {
	c.ensureLevel(LevelFacetsKnown)

	return c.Dimension() == c.inequalities.NumRows()+c.DimensionOfLinealitySpace()
}

// Compare totally orders canonical cones: by ambient dimension, then by the
// equation matrices, then by the inequality matrices (row count first, then
// lexicographic rows). Returns -1, 0 or +1. Panics unless both operands are
// at LevelCanonical — comparing non-canonical cones is a usage error.
func Compare(a, b *Cone) int {
	if a.level < LevelCanonical || b.level < LevelCanonical {
		panic(fmt.Sprintf("cone: Compare: operands at levels %s and %s, both must be canonical", a.level, b.level))
	}
	if a.n != b.n {
		if a.n < b.n {
			return -1
		}

		return 1
	}
	if cmp := compareMatrices(a.equations, b.equations); cmp != 0 {
		return cmp
	}

	return compareMatrices(a.inequalities, b.inequalities)
}

// Equal reports whether two canonical cones describe the same point set.
// Panics unless both operands are at LevelCanonical.
func Equal(a, b *Cone) bool { return Compare(a, b) == 0 }

// compareMatrices orders by row count, then row-wise lexicographically.
func compareMatrices(a, b *zmatrix.Matrix) int {
	if a.NumRows() != b.NumRows() {
		if a.NumRows() < b.NumRows() {
			return -1
		}

		return 1
	}
	for i := 0; i < a.NumRows(); i++ {
		if cmp := a.Row(i).Cmp(b.Row(i)); cmp != 0 {
			return cmp
		}
	}

	return 0
}
