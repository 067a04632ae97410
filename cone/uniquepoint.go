// Package cone: the canonical point functional.

package cone

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/zmatrix"
)

// UniquePoint returns a deterministically chosen relative interior point
// v(C) of the cone: the sum of its extreme rays (zero for a subspace).
// Because each extreme ray is primitive and orthogonal to the lineality
// space, v is equivariant: for every lattice-, angle- and
// lineality-space-preserving linear transform T,
// UniquePoint(T(C)) = T(UniquePoint(C)) — which makes
// equality-up-to-symmetry checks across collections of cones cheap.
//
// Panics unless the cone is at LevelCanonical. Whether facet knowledge
// alone would suffice is an open question inherited from gfan's ZCone; the
// stronger level is required until that is settled, and the tests pin the
// documented level.
func (c *Cone) UniquePoint() zmatrix.Vector {
	if c.level < LevelCanonical {
		panic(fmt.Sprintf("cone: UniquePoint: cone at level %s, must be canonical", c.level))
	}

	return sumRows(c.extremeRays(nil), c.n)
}

// UniquePointFromExtremeRays is the fast path of UniquePoint for callers
// that already hold a superset of the cone's extreme rays (a parent fan,
// say): it sums exactly the candidate rows contained in the cone, skipping
// the dual-description conversion entirely.
func (c *Cone) UniquePointFromExtremeRays(candidates *zmatrix.Matrix) zmatrix.Vector {
	s := zmatrix.NewVector(c.n)
	for i := 0; i < candidates.NumRows(); i++ {
		if c.Contains(candidates.Row(i)) {
			s = s.Add(candidates.Row(i))
		}
	}

	return s
}
