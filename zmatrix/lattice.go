// Package zmatrix: integer lattice arithmetic.
// The Hermite normal form is the workhorse: kernel-lattice bases fall out
// of its unimodular transform, and the cone package leans on it for
// quotient-lattice computations.

package zmatrix

import "math/big"

// HermiteNormalForm returns (H, U, Uinv) with U·m = H, U unimodular and
// Uinv = U⁻¹. H is in row-style Hermite normal form: echelon shape with
// positive pivots, entries above each pivot reduced into [0, pivot), zero
// rows at the bottom. Deterministic for a given m.
//
// Complexity: O(rows²·cols) big-integer row operations.
func (m *Matrix) HermiteNormalForm() (h, u, uinv *Matrix) {
	rows := m.NumRows()
	h = m.Clone()
	u = Identity(rows)
	uinv = Identity(rows)
	q := new(big.Int)
	r := 0
	for c := 0; c < m.cols && r < rows; c++ {
		if !clearColumnBelow(h, u, uinv, r, c) {
			continue
		}
		if h.rows[r][c].Sign() < 0 {
			negateRow(h, u, uinv, r)
		}
		// reduce entries above the pivot into [0, pivot)
		for i := 0; i < r; i++ {
			if h.rows[i][c].Sign() == 0 {
				continue
			}
			q.Div(h.rows[i][c], h.rows[r][c]) // Euclidean: 0 ≤ rem < pivot
			if q.Sign() != 0 {
				addRow(h, u, uinv, i, r, new(big.Int).Neg(q))
			}
		}
		r++
	}

	return h, u, uinv
}

// clearColumnBelow zeroes column c strictly below row r using Euclidean row
// operations, leaving the column's gcd at (r,c). Reports whether a nonzero
// pivot exists.
func clearColumnBelow(h, u, uinv *Matrix, r, c int) bool {
	q := new(big.Int)
	for {
		// row with smallest nonzero |entry| at or below r becomes the pivot
		best := -1
		for i := r; i < h.NumRows(); i++ {
			if h.rows[i][c].Sign() == 0 {
				continue
			}
			if best < 0 || absCmp(h.rows[i][c], h.rows[best][c]) < 0 {
				best = i
			}
		}
		if best < 0 {
			return false
		}
		if best != r {
			swapRows(h, u, uinv, r, best)
		}
		done := true
		for i := r + 1; i < h.NumRows(); i++ {
			if h.rows[i][c].Sign() == 0 {
				continue
			}
			q.Quo(h.rows[i][c], h.rows[r][c])
			addRow(h, u, uinv, i, r, new(big.Int).Neg(q))
			if h.rows[i][c].Sign() != 0 {
				done = false
			}
		}
		if done {
			return true
		}
	}
}

// KernelBasis returns a basis, as rows, of the integer kernel lattice
// {x ∈ Zⁿ : m·x = 0}. The lattice is saturated by construction (it is the
// intersection of a rational subspace with Zⁿ), so every basis row is
// primitive. Rows come from the unimodular transform of the HNF of mᵀ and
// are deterministic for a given m.
func (m *Matrix) KernelBasis() *Matrix {
	t := m.Transpose() // cols×rows
	h, u, _ := t.HermiteNormalForm()
	rank := 0
	for i := 0; i < h.NumRows(); i++ {
		if !h.rows[i].IsZero() {
			rank++
		}
	}
	out := &Matrix{rows: make([]Vector, 0, h.NumRows()-rank), cols: m.cols}
	for i := rank; i < h.NumRows(); i++ {
		out.rows = append(out.rows, u.rows[i].Clone())
	}

	return out
}

// absCmp compares |a| and |b|.
func absCmp(a, b *big.Int) int {
	return new(big.Int).Abs(a).Cmp(new(big.Int).Abs(b))
}

// swapRows swaps rows i and j of h and u, and columns i and j of uinv.
func swapRows(h, u, uinv *Matrix, i, j int) {
	h.rows[i], h.rows[j] = h.rows[j], h.rows[i]
	u.rows[i], u.rows[j] = u.rows[j], u.rows[i]
	for r := 0; r < uinv.NumRows(); r++ {
		uinv.rows[r][i], uinv.rows[r][j] = uinv.rows[r][j], uinv.rows[r][i]
	}
}

// addRow performs rowᵢ += q·rowⱼ on h and u, and colⱼ -= q·colᵢ on uinv,
// keeping the invariant u·m = h, uinv = u⁻¹.
func addRow(h, u, uinv *Matrix, i, j int, q *big.Int) {
	t := new(big.Int)
	for c := 0; c < h.NumCols(); c++ {
		h.rows[i][c].Add(h.rows[i][c], t.Mul(q, h.rows[j][c]))
	}
	for c := 0; c < u.NumCols(); c++ {
		u.rows[i][c].Add(u.rows[i][c], t.Mul(q, u.rows[j][c]))
	}
	for r := 0; r < uinv.NumRows(); r++ {
		uinv.rows[r][j].Sub(uinv.rows[r][j], t.Mul(q, uinv.rows[r][i]))
	}
}

// negateRow negates row i of h and u, and column i of uinv.
func negateRow(h, u, uinv *Matrix, i int) {
	for c := 0; c < h.NumCols(); c++ {
		h.rows[i][c].Neg(h.rows[i][c])
	}
	for c := 0; c < u.NumCols(); c++ {
		u.rows[i][c].Neg(u.rows[i][c])
	}
	for r := 0; r < uinv.NumRows(); r++ {
		uinv.rows[r][i].Neg(uinv.rows[r][i])
	}
}
