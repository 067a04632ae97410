// Package zmatrix: exact rational elimination.
// Everything here runs Gaussian elimination over big.Rat and converts
// results back to primitive integer vectors. Row and pivot selection is by
// fixed order, so identical inputs yield identical outputs.

package zmatrix

import (
	"fmt"
	"math/big"
)

// ratRows converts m to rational working rows.
func ratRows(m *Matrix) [][]*big.Rat {
	a := make([][]*big.Rat, m.NumRows())
	for i := range a {
		a[i] = make([]*big.Rat, m.cols)
		for j := 0; j < m.cols; j++ {
			a[i][j] = new(big.Rat).SetInt(m.rows[i][j])
		}
	}

	return a
}

// rrefInPlace reduces a to reduced row echelon form (pivot entries 1,
// pivot columns otherwise zero) and returns the pivot column indices in
// ascending order. Nonzero rows end up first, in pivot order.
func rrefInPlace(a [][]*big.Rat, cols int) []int {
	var pivots []int
	r := 0
	for c := 0; c < cols && r < len(a); c++ {
		// first nonzero entry at or below row r decides the pivot row
		pr := -1
		for i := r; i < len(a); i++ {
			if a[i][c].Sign() != 0 {
				pr = i
				break
			}
		}
		if pr < 0 {
			continue
		}
		a[r], a[pr] = a[pr], a[r]
		inv := new(big.Rat).Inv(a[r][c])
		for j := c; j < cols; j++ {
			a[r][j].Mul(a[r][j], inv)
		}
		t := new(big.Rat)
		for i := range a {
			if i == r || a[i][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[i][c])
			for j := c; j < cols; j++ {
				a[i][j].Sub(a[i][j], t.Mul(f, a[r][j]))
			}
		}
		pivots = append(pivots, c)
		r++
	}

	return pivots
}

// Rank returns the rank of m over the rationals.
func (m *Matrix) Rank() int {
	a := ratRows(m)

	return len(rrefInPlace(a, m.cols))
}

// RowSpaceReduced returns the canonical basis of m's row space: the reduced
// row echelon form with every row scaled to a primitive integer vector.
// Two matrices with equal row spaces produce equal results, which makes
// this the backbone of cone canonicalization.
func (m *Matrix) RowSpaceReduced() *Matrix {
	a := ratRows(m)
	pivots := rrefInPlace(a, m.cols)
	out := &Matrix{rows: make([]Vector, 0, len(pivots)), cols: m.cols}
	for i := 0; i < len(pivots); i++ {
		out.rows = append(out.rows, ratToPrimitive(a[i]))
	}

	return out
}

// reduceByRREF subtracts from v the pivot-column components spanned by the
// reduced rows, leaving zeros in every pivot coordinate.
func reduceByRREF(v Vector, a [][]*big.Rat, pivots []int) []*big.Rat {
	vr := make([]*big.Rat, len(v))
	for j := range v {
		vr[j] = new(big.Rat).SetInt(v[j])
	}
	t := new(big.Rat)
	for k, p := range pivots {
		if vr[p].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Set(vr[p])
		for j := range vr {
			vr[j].Sub(vr[j], t.Mul(f, a[k][j]))
		}
	}

	return vr
}

// InRowSpace reports whether v lies in the row space of m.
// Panics if v's length differs from m's column count.
func (m *Matrix) InRowSpace(v Vector) bool {
	if v.Len() != m.cols {
		panic(fmt.Sprintf("zmatrix: InRowSpace: vector length %d, matrix width %d", v.Len(), m.cols))
	}
	a := ratRows(m)
	pivots := rrefInPlace(a, m.cols)
	for _, e := range reduceByRREF(v, a, pivots) {
		if e.Sign() != 0 {
			return false
		}
	}

	return true
}

// ReduceModRowSpace returns the canonical representative of v modulo the
// row space of space: pivot coordinates of the space are eliminated and the
// remainder is scaled by a positive rational to a primitive integer vector.
// The representative of v is therefore unique among all u with
// u ≡ c·v (mod space) for c > 0. Panics on a length mismatch.
func ReduceModRowSpace(v Vector, space *Matrix) Vector {
	if v.Len() != space.cols {
		panic(fmt.Sprintf("zmatrix: ReduceModRowSpace: vector length %d, matrix width %d", v.Len(), space.cols))
	}
	a := ratRows(space)
	pivots := rrefInPlace(a, space.cols)

	return ratToPrimitive(reduceByRREF(v, a, pivots))
}

// ProjectOrthogonal returns the primitive integer representative of the
// component of v orthogonal to the row space of basis. The result is a
// positive rational multiple of v − proj(v), so direction is preserved.
// Requires basis rows to be linearly independent; panics on a length
// mismatch or a singular Gram matrix.
func ProjectOrthogonal(v Vector, basis *Matrix) Vector {
	if v.Len() != basis.cols {
		panic(fmt.Sprintf("zmatrix: ProjectOrthogonal: vector length %d, matrix width %d", v.Len(), basis.cols))
	}
	k := basis.NumRows()
	if k == 0 {
		return v.Primitive()
	}
	// Gram system (B·Bᵀ)·c = B·v, then r = v − cᵀ·B.
	g := make([][]*big.Rat, k)
	rhs := make([]*big.Rat, k)
	for i := 0; i < k; i++ {
		g[i] = make([]*big.Rat, k)
		for j := 0; j < k; j++ {
			g[i][j] = new(big.Rat).SetInt(basis.rows[i].Dot(basis.rows[j]))
		}
		rhs[i] = new(big.Rat).SetInt(basis.rows[i].Dot(v))
	}
	c := solveRat(g, rhs)
	r := make([]*big.Rat, v.Len())
	t := new(big.Rat)
	for j := range r {
		r[j] = new(big.Rat).SetInt(v[j])
		for i := 0; i < k; i++ {
			r[j].Sub(r[j], t.Mul(c[i], new(big.Rat).SetInt(basis.rows[i][j])))
		}
	}

	return ratToPrimitive(r)
}

// ExpressInBasis returns the integer matrix T with T·basis = targets.
// basis rows must be linearly independent. Returns ErrNotInLattice when a
// target row is outside the row space or needs non-integer coefficients.
func ExpressInBasis(basis, targets *Matrix) (*Matrix, error) {
	if basis.cols != targets.cols {
		return nil, fmt.Errorf("ExpressInBasis: widths %d and %d: %w", basis.cols, targets.cols, ErrDimensionMismatch)
	}
	d := basis.NumRows()
	l := targets.NumRows()
	// Augmented system basisᵀ·x = targetᵀ, solved for all targets at once.
	n := basis.cols
	a := make([][]*big.Rat, n)
	for r := 0; r < n; r++ {
		a[r] = make([]*big.Rat, d+l)
		for j := 0; j < d; j++ {
			a[r][j] = new(big.Rat).SetInt(basis.rows[j][r])
		}
		for i := 0; i < l; i++ {
			a[r][d+i] = new(big.Rat).SetInt(targets.rows[i][r])
		}
	}
	pivots := rrefInPlace(a, d+l)
	out, err := NewMatrix(l, d)
	if err != nil {
		return nil, err
	}
	for k, p := range pivots {
		if p >= d {
			// a pivot in the target block means some target row is not in
			// the row space of basis
			return nil, fmt.Errorf("ExpressInBasis: %w", ErrNotInLattice)
		}
		for i := 0; i < l; i++ {
			e := a[k][d+i]
			if !e.IsInt() {
				return nil, fmt.Errorf("ExpressInBasis: %w", ErrNotInLattice)
			}
			out.rows[i][p].Set(e.Num())
		}
	}

	return out, nil
}

// solveRat solves the square system a·x = b by Gaussian elimination.
// Panics if a is singular: every caller passes a Gram matrix of independent
// rows, so singularity is a programmer error.
func solveRat(a [][]*big.Rat, b []*big.Rat) []*big.Rat {
	k := len(a)
	for c := 0; c < k; c++ {
		pr := -1
		for i := c; i < k; i++ {
			if a[i][c].Sign() != 0 {
				pr = i
				break
			}
		}
		if pr < 0 {
			panic("zmatrix: solveRat: singular system")
		}
		a[c], a[pr] = a[pr], a[c]
		b[c], b[pr] = b[pr], b[c]
		inv := new(big.Rat).Inv(a[c][c])
		for j := c; j < k; j++ {
			a[c][j].Mul(a[c][j], inv)
		}
		b[c].Mul(b[c], inv)
		t := new(big.Rat)
		for i := 0; i < k; i++ {
			if i == c || a[i][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[i][c])
			for j := c; j < k; j++ {
				a[i][j].Sub(a[i][j], t.Mul(f, a[c][j]))
			}
			b[i].Sub(b[i], t.Mul(f, b[c]))
		}
	}

	return b
}

// ratToPrimitive clears denominators with the positive lcm and reduces the
// resulting integer vector to primitive form. Zero stays zero.
func ratToPrimitive(r []*big.Rat) Vector {
	lcm := big.NewInt(1)
	t := new(big.Int)
	for _, e := range r {
		if e.Sign() == 0 {
			continue
		}
		d := e.Denom()
		t.GCD(nil, nil, lcm, d)
		lcm.Div(new(big.Int).Mul(lcm, d), t)
	}
	v := make(Vector, len(r))
	for i, e := range r {
		v[i] = new(big.Int).Mul(e.Num(), new(big.Int).Div(lcm, e.Denom()))
	}

	return v.Primitive()
}
