// Package cone implements exact-arithmetic polyhedral cones: sets of points
// closed under non-negative scaling and addition, described by finitely many
// integer linear inequalities (⟨row,x⟩ ≥ 0) and equations (⟨row,x⟩ = 0).
//
// 🚀 What is cone?
//
//	The computational primitive for tropical and toric geometry:
//		• Staged canonicalization: RAW → implied equations → facets → canonical
//		• Cone algebra: intersection, product, dual, negation, containment
//		• Faces and lattices: face-containing-point, links, quotient-lattice
//		  bases, semigroup generators of rays, extreme rays
//		• A deterministic, transformation-equivariant "unique point"
//
// The state machine
//
// A Cone is logically immutable as a geometric object; only its description
// is refined, in four monotonic knowledge levels:
//
//	LevelRaw                   nothing removed; the initial state
//	LevelImpliedEquationsKnown equations span exactly the forms vanishing on
//	                           the cone; the dimension is known
//	LevelFacetsKnown           every inequality row defines a distinct facet
//	LevelCanonical             unique representation; two canonical cones are
//	                           equal iff their matrices are equal
//
// Moving between levels is expensive, so accessors advance the state lazily
// and only as far as they need: the first call may pay for a dual-description
// conversion, later calls read cached results. Construction-time options
// (WithKnownImpliedEquations, WithKnownFacets) let callers assert knowledge
// they already have; asserted transitions are fast-forwarded, never
// recomputed.
//
// Errors vs panics
//
// Construction validates user input and returns sentinel errors (see
// errors.go). Everything in breach of a contract — comparing non-canonical
// cones, ray-only operations on non-rays, face queries with points outside
// the cone — panics with a "cone: ..." message: these are programmer errors,
// not runtime conditions, exactly the split the rest of the library uses.
//
// Concurrency
//
// A Cone holds mutable derived state behind logically-const accessors and is
// NOT safe for concurrent use: one cone, one logical owner goroutine, or
// external mutual exclusion around every call. Functions combining cones
// (Intersection, Product, Dual, ...) allocate and return fresh independent
// cones.
package cone
