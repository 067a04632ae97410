// Package polyhedra is an exact-arithmetic toolkit for polyhedral cones —
// the computational primitive behind tropical and toric geometry.
//
// 🚀 What is polyhedra?
//
//	A pure-Go library for cones over the integers/rationals, with no
//	floating point anywhere:
//		• Dual descriptions: inequalities/equations ↔ rays/lineality
//		• Staged canonicalization: implied equations → facets → canonical form
//		• Derived geometry: dimension, facets, extreme rays, duals, faces, links
//		• Lattice data: quotient-lattice bases, semigroup generators of rays
//		• An equivariant "unique point" for symmetry detection across cones
//
// ✨ Why choose polyhedra?
//
//   - Exact by construction – math/big everywhere, no epsilon, no overflow
//   - Lazy but honest – expensive conversions run once, are cached, and the
//     knowledge level of every cone is explicit
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	cone/    — the PolyhedralCone state machine, cone algebra, faces, lattices
//	zmatrix/ — exact integer vectors/matrices and the linear-algebra kernels
//	           (rational elimination, Hermite normal form, kernel lattices)
//
// Quick ASCII example:
//
//	    y
//	    │    the positive orthant {x≥0, y≥0}:
//	    █████   2 facets, 2 extreme rays (1,0) and (0,1),
//	    █████   unique interior point (1,1).
//	    └────── x
//
// Dive into cone/doc.go for the state machine contract and the
// single-owner concurrency rules.
//
//	go get github.com/katalvlaran/polyhedra
package polyhedra
