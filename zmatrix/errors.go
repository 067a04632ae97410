// Package zmatrix: sentinel error set.
// Constructors and shape-changing operations return these sentinels and
// callers match them via errors.Is. Panics are reserved for programmer
// errors (index out of range, mismatched vector lengths in arithmetic);
// see doc.go for the split.

package zmatrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// row or column count).
	ErrBadShape = errors.New("zmatrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: a row of the wrong length, VStack of different widths, or
	// Mul where a.NumCols() != b.NumRows().
	ErrDimensionMismatch = errors.New("zmatrix: dimension mismatch")

	// ErrNotInLattice is returned by ExpressInBasis when a target row is
	// not an integer combination of the basis rows.
	ErrNotInLattice = errors.New("zmatrix: target is not an integer combination of the basis")
)
