// Package zmatrix provides exact integer vectors and matrices together with
// the linear-algebra kernels the cone package consumes: rational Gaussian
// elimination (rank, reduced row-space bases, canonical reduction modulo a
// row space, exact orthogonal projection) and integer lattice arithmetic
// (Hermite normal form with unimodular transforms, saturated kernel-lattice
// bases).
//
// All arithmetic is arbitrary precision via math/big; there is no epsilon,
// no rounding and no overflow anywhere in the package.
//
// Conventions:
//
//   - Vectors and matrices are row oriented: a Matrix is a list of rows of
//     equal length, and linear forms/constraints are stored as rows.
//   - A Matrix carries an explicit column count, so 0×n matrices are first
//     class citizens (an empty constraint set in ambient dimension n).
//   - Constructors validate user input and return sentinel errors (see
//     errors.go). Computational methods assume structurally valid receivers
//     and panic on caller contract violations such as mismatched lengths;
//     those panics indicate programmer errors, not runtime conditions.
//   - Every routine is deterministic: fixed loop orders, no map iteration,
//     no randomness. Equal inputs produce bit-equal outputs.
package zmatrix
