// Package cone: dual-description conversion.
// The double description method (Motzkin et al.) turns an H-description
// (inequalities + equations) into a V-description (extreme rays + lineality
// basis) over exact integers. Equations are eliminated first by restricting
// to their saturated integer kernel lattice; inequalities are then added one
// at a time. gfan delegates this step to cddlib; here it is in-module and
// instrumented, because everything expensive in the package funnels through
// it and the caching contract is tested against the run counter.

package cone

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/polyhedra/zmatrix"
)

// dualDescription computes the extreme rays (modulo lineality, not yet
// orthogonally reduced) and a basis of the lineality space of the cone's
// current description.
//
// Complexity: worst-case exponential in the number of inequalities — the
// double description intermediate cones can blow up. Callers cache.
func (c *Cone) dualDescription() (rays, lin *zmatrix.Matrix) {
	c.ddRuns++

	// Equations first: work inside their kernel lattice. K's rows are a
	// saturated lattice basis, so primitive vectors in the coordinate space
	// map back to primitive vectors in Zⁿ.
	k := c.equations.KernelBasis()
	dim := k.NumRows()
	if dim == 0 {
		return mustZero(c.n), mustZero(c.n)
	}

	// Inequality rows in kernel coordinates: aᵢ ↦ (aᵢ·k₀, ..., aᵢ·k_{dim-1}).
	var constraints []zmatrix.Vector
	for i := 0; i < c.inequalities.NumRows(); i++ {
		row := c.inequalities.Row(i)
		p := make(zmatrix.Vector, dim)
		for j := 0; j < dim; j++ {
			p[j] = k.Row(j).Dot(row)
		}
		constraints = append(constraints, p)
	}

	r, l := doubleDescription(dim, constraints)

	return mapRows(r, k), mapRows(l, k)
}

// doubleDescription runs the incremental algorithm in a dim-dimensional
// space with no equations: start from the full space and add one halfspace
// at a time, maintaining the pair (extreme rays, lineality basis).
func doubleDescription(dim int, constraints []zmatrix.Vector) (rays, lin []zmatrix.Vector) {
	for i := 0; i < dim; i++ {
		e := zmatrix.NewVector(dim)
		e[i].SetInt64(1)
		lin = append(lin, e)
	}

	var processed []zmatrix.Vector
	for _, a := range constraints {
		if a.IsZero() {
			continue
		}
		if idx := firstNonOrthogonal(a, lin); idx >= 0 {
			rays, lin = cutLineality(a, rays, lin, idx)
		} else {
			rays = splitRays(a, rays, processed)
		}
		processed = append(processed, a)
	}

	return rays, lin
}

// firstNonOrthogonal returns the index of the first lineality generator not
// orthogonal to a, or -1.
func firstNonOrthogonal(a zmatrix.Vector, lin []zmatrix.Vector) int {
	for i, l := range lin {
		if a.Dot(l).Sign() != 0 {
			return i
		}
	}

	return -1
}

// cutLineality intersects the current cone with {a ≥ 0} when the lineality
// generator lin[idx] crosses the hyperplane: every other generator is
// projected onto {a = 0} along it, and the crossing generator survives as a
// new extreme ray on the positive side.
func cutLineality(a zmatrix.Vector, rays, lin []zmatrix.Vector, idx int) (newRays, newLin []zmatrix.Vector) {
	l := lin[idx]
	al := a.Dot(l)
	if al.Sign() < 0 {
		l = l.Neg()
		al.Neg(al)
	}
	project := func(g zmatrix.Vector) zmatrix.Vector {
		// al·g − (a·g)·l lands on {a = 0}; al > 0 keeps orientation
		return zmatrix.Combine(al, g, new(big.Int).Neg(a.Dot(g)), l).Primitive()
	}
	for i, g := range lin {
		if i == idx {
			continue
		}
		newLin = append(newLin, project(g))
	}
	for _, r := range rays {
		newRays = append(newRays, project(r))
	}
	newRays = append(newRays, l)

	return newRays, newLin
}

// splitRays performs the classic double description step for a constraint
// orthogonal to the whole current lineality space: rays on the negative
// side are dropped and each adjacent positive/negative pair contributes one
// new ray on the hyperplane {a = 0}.
func splitRays(a zmatrix.Vector, rays, processed []zmatrix.Vector) []zmatrix.Vector {
	var pos, zero, neg []zmatrix.Vector
	for _, r := range rays {
		switch a.Dot(r).Sign() {
		case 1:
			pos = append(pos, r)
		case 0:
			zero = append(zero, r)
		default:
			neg = append(neg, r)
		}
	}
	if len(neg) == 0 {
		return rays
	}
	out := make([]zmatrix.Vector, 0, len(pos)+len(zero)+len(pos)*len(neg))
	out = append(out, pos...)
	out = append(out, zero...)
	for _, rp := range pos {
		ap := a.Dot(rp)
		for _, rm := range neg {
			if !adjacent(rp, rm, rays, processed) {
				continue
			}
			am := new(big.Int).Neg(a.Dot(rm)) // > 0
			out = append(out, zmatrix.Combine(ap, rm, am, rp).Primitive())
		}
	}

	return out
}

// adjacent implements the combinatorial adjacency test: rp and rm are
// adjacent extreme rays iff no third ray is tight at every processed
// constraint that is tight at both of them. All processed constraints
// vanish on the current lineality space, so the test takes place in the
// pointed quotient where it is exact.
func adjacent(rp, rm zmatrix.Vector, rays, processed []zmatrix.Vector) bool {
	var tight []zmatrix.Vector
	for _, a := range processed {
		if a.Dot(rp).Sign() == 0 && a.Dot(rm).Sign() == 0 {
			tight = append(tight, a)
		}
	}
	for _, r := range rays {
		if r.Equal(rp) || r.Equal(rm) {
			continue
		}
		covers := true
		for _, a := range tight {
			if a.Dot(r).Sign() != 0 {
				covers = false
				break
			}
		}
		if covers {
			return false
		}
	}

	return true
}

// mapRows lifts coordinate-space rows back to Zⁿ through the kernel basis:
// y ↦ Σ yⱼ·kⱼ. Saturation of the kernel lattice keeps primitive vectors
// primitive.
func mapRows(rows []zmatrix.Vector, k *zmatrix.Matrix) *zmatrix.Matrix {
	n := k.NumCols()
	out := mustZero(n)
	for _, y := range rows {
		v := zmatrix.NewVector(n)
		t := new(big.Int)
		for j := 0; j < k.NumRows(); j++ {
			if y[j].Sign() == 0 {
				continue
			}
			for col := 0; col < n; col++ {
				v[col].Add(v[col], t.Mul(y[j], k.Row(j)[col]))
			}
		}
		if err := out.AppendRow(v); err != nil {
			panic(fmt.Sprintf("cone: mapRows: %v", err))
		}
	}

	return out
}

// reduceRays turns raw double-description rays into the canonical extreme
// ray set: each ray is orthogonally reduced against the lineality
// span, made primitive, deduplicated and the rows sorted. The result is
// unique for the cone and invariant under lattice- and angle-preserving
// transforms.
func reduceRays(rays, lin *zmatrix.Matrix) *zmatrix.Matrix {
	n := rays.NumCols()
	reduced := mustZero(n)
	for i := 0; i < rays.NumRows(); i++ {
		r := zmatrix.ProjectOrthogonal(rays.Row(i), lin)
		if r.IsZero() {
			continue // inside the lineality span; not a ray modulo lineality
		}
		if err := reduced.AppendRow(r); err != nil {
			panic(fmt.Sprintf("cone: reduceRays: %v", err))
		}
	}
	reduced.SortRows()
	out := mustZero(n)
	for i := 0; i < reduced.NumRows(); i++ {
		if i > 0 && reduced.Row(i).Equal(reduced.Row(i-1)) {
			continue
		}
		if err := out.AppendRow(reduced.Row(i)); err != nil {
			panic(fmt.Sprintf("cone: reduceRays: %v", err))
		}
	}

	return out
}
