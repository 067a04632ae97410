package cone

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/polyhedra/zmatrix"
)

// KnowledgeLevel tracks how much redundancy removal has been performed on a
// cone's description. Levels only ever advance; see doc.go.
type KnowledgeLevel int

const (
	// LevelRaw: nothing has been done to remove redundancies.
	LevelRaw KnowledgeLevel = iota
	// LevelImpliedEquationsKnown: equations span exactly the space of
	// linear forms vanishing identically on the cone.
	LevelImpliedEquationsKnown
	// LevelFacetsKnown: every inequality row defines a distinct facet.
	LevelFacetsKnown
	// LevelCanonical: unique representation; canonical cones with equal
	// point sets have equal matrices.
	LevelCanonical
)

// String renders a level for diagnostics.
func (l KnowledgeLevel) String() string {
	switch l {
	case LevelRaw:
		return "raw"
	case LevelImpliedEquationsKnown:
		return "implied-equations-known"
	case LevelFacetsKnown:
		return "facets-known"
	case LevelCanonical:
		return "canonical"
	default:
		return fmt.Sprintf("KnowledgeLevel(%d)", int(l))
	}
}

// Preassumption is a bitset of construction-time promises about the supplied
// description. A promised transition is fast-forwarded by the state machine
// instead of being recomputed; a false promise yields wrong results, which
// is the caller's contract to keep (CheckInvariants verifies it in tests).
type Preassumption uint8

const (
	// PreImpliedEquationsKnown asserts the given equations span exactly the
	// implied-equation space and no inequality row lies in that span.
	PreImpliedEquationsKnown Preassumption = 1 << iota
	// PreFacetsKnown asserts every given inequality defines a distinct
	// facet.
	PreFacetsKnown
)

// Cone is a polyhedral cone in Zⁿ described by inequality and equation
// matrices. The geometric object is immutable; the description, the
// knowledge level and the extreme-ray cache mutate lazily behind
// logically-const accessors. Not safe for concurrent use (see doc.go).
type Cone struct {
	n     int
	pre   Preassumption
	level KnowledgeLevel

	inequalities *zmatrix.Matrix
	equations    *zmatrix.Matrix

	multiplicity *big.Int
	linearForms  *zmatrix.Matrix

	// cachedRays is the only field cached independently of level: extreme
	// rays are expensive and invariant under description refinement, so the
	// cache, once valid, is never invalidated.
	cachedRays *zmatrix.Matrix
	raysCached bool

	// ddRuns counts dual-description conversions, the expensive primitive.
	// White-box tests use it to pin the caching contract.
	ddRuns int
}

// Option configures construction. All options validate eagerly inside New.
type Option func(*consOptions)

type consOptions struct {
	pre          Preassumption
	multiplicity *big.Int
	linearForms  *zmatrix.Matrix
}

// WithKnownImpliedEquations asserts PreImpliedEquationsKnown.
func WithKnownImpliedEquations() Option {
	return func(o *consOptions) { o.pre |= PreImpliedEquationsKnown }
}

// WithKnownFacets asserts PreFacetsKnown.
func WithKnownFacets() Option {
	return func(o *consOptions) { o.pre |= PreFacetsKnown }
}

// WithMultiplicity sets the user-settable weight (default 1). The value is
// copied; it is orthogonal to the geometry.
func WithMultiplicity(m *big.Int) Option {
	return func(o *consOptions) { o.multiplicity = m }
}

// WithLinearForms stores an auxiliary matrix of linear forms supported on
// the cone (for example one row per piece of a piecewise-linear function).
// Opaque to every geometric algorithm. The matrix is copied.
func WithLinearForms(lf *zmatrix.Matrix) Option {
	return func(o *consOptions) { o.linearForms = lf }
}

// New constructs a cone from inequality and equation matrices, read as rows.
// The ambient dimension is the shared column count. Returns
// ErrAmbientMismatch if the widths differ (or a linear-forms option has the
// wrong width) and ErrBadMultiplicity for a nil multiplicity.
func New(inequalities, equations *zmatrix.Matrix, opts ...Option) (*Cone, error) {
	if inequalities.NumCols() != equations.NumCols() {
		return nil, fmt.Errorf("New: inequality width %d, equation width %d: %w",
			inequalities.NumCols(), equations.NumCols(), ErrAmbientMismatch)
	}
	o := consOptions{multiplicity: big.NewInt(1)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.multiplicity == nil {
		return nil, fmt.Errorf("New: %w", ErrBadMultiplicity)
	}
	n := inequalities.NumCols()
	if o.linearForms != nil && o.linearForms.NumCols() != n {
		return nil, fmt.Errorf("New: linear-forms width %d, ambient %d: %w",
			o.linearForms.NumCols(), n, ErrAmbientMismatch)
	}
	lf := o.linearForms
	if lf == nil {
		lf, _ = zmatrix.NewMatrix(0, n)
	} else {
		lf = lf.Clone()
	}

	return &Cone{
		n:            n,
		pre:          o.pre,
		level:        LevelRaw,
		inequalities: inequalities.Clone(),
		equations:    equations.Clone(),
		multiplicity: new(big.Int).Set(o.multiplicity),
		linearForms:  lf,
	}, nil
}

// FullSpace returns the cone with no inequalities and no equations: all of
// Zⁿ⊗ℝ. Panics if n is negative.
func FullSpace(n int) *Cone {
	c, err := New(mustZero(n), mustZero(n), WithKnownImpliedEquations(), WithKnownFacets())
	if err != nil {
		panic(fmt.Sprintf("cone: FullSpace(%d): %v", n, err))
	}

	return c
}

// PositiveOrthant returns {x : xᵢ ≥ 0 for all i}. The identity rows are
// already facets, so the result carries both preassumptions. Panics if n is
// negative.
func PositiveOrthant(n int) *Cone {
	c, err := New(zmatrix.Identity(n), mustZero(n), WithKnownImpliedEquations(), WithKnownFacets())
	if err != nil {
		panic(fmt.Sprintf("cone: PositiveOrthant(%d): %v", n, err))
	}

	return c
}

// FromRays returns the cone spanned by non-negative combinations of the
// generator rows plus arbitrary combinations of the lineality rows. The
// H-description is obtained by double dualization: the dual of the wanted
// cone is {y : y·g ≥ 0, y·l = 0}, whose extreme rays and lineality are the
// wanted cone's facets and implied equations. Returns ErrAmbientMismatch if
// the two matrices have different widths.
func FromRays(generators, lineality *zmatrix.Matrix) (*Cone, error) {
	dual, err := New(generators, lineality)
	if err != nil {
		return nil, fmt.Errorf("FromRays: %w", err)
	}

	return dual.Dual(), nil
}

// mustZero returns a 0×n matrix; n < 0 panics via the constructor error.
func mustZero(n int) *zmatrix.Matrix {
	m, err := zmatrix.NewMatrix(0, n)
	if err != nil {
		panic(fmt.Sprintf("cone: ambient dimension %d: %v", n, err))
	}

	return m
}

// ─────────────────────────────── state machine ───────────────────────────────

// ensureLevel advances the description to at least the target level, running
// exactly the missing transitions. A transition promised by a preassumption
// is fast-forwarded: the level advances without recomputation.
func (c *Cone) ensureLevel(target KnowledgeLevel) {
	if target >= LevelImpliedEquationsKnown && c.level < LevelImpliedEquationsKnown {
		if c.pre&PreImpliedEquationsKnown != 0 {
			c.level = LevelImpliedEquationsKnown
		} else {
			c.findImpliedEquations()
		}
	}
	if target >= LevelFacetsKnown && c.level < LevelFacetsKnown {
		if c.pre&PreFacetsKnown != 0 {
			c.level = LevelFacetsKnown
		} else {
			c.findFacets()
		}
	}
	if target >= LevelCanonical && c.level < LevelCanonical {
		c.canonicalizeRows()
	}
}

// FindImpliedEquations advances the cone to LevelImpliedEquationsKnown:
// afterwards the equations form a basis of the space of linear forms
// vanishing on the cone, and inequality rows inside that space are gone.
func (c *Cone) FindImpliedEquations() { c.ensureLevel(LevelImpliedEquationsKnown) }

// FindFacets advances the cone to LevelFacetsKnown: afterwards every
// inequality row defines a distinct facet.
func (c *Cone) FindFacets() { c.ensureLevel(LevelFacetsKnown) }

// Canonicalize advances the cone to LevelCanonical: two cones with the same
// point set end up with identical matrices. Idempotent.
func (c *Cone) Canonicalize() { c.ensureLevel(LevelCanonical) }

// findImpliedEquations runs the dual-description conversion once, replaces
// the equations with a saturated lattice basis of the forms vanishing on
// every generator, drops inequality rows inside that space, and seeds the
// extreme-ray cache with the rays that were just computed.
//
// Complexity: one double-description run (exponential in pathological
// input) plus polynomial exact linear algebra.
func (c *Cone) findImpliedEquations() {
	rays, lin := c.dualDescription()
	gens, err := zmatrix.VStack(rays, lin)
	if err != nil {
		panic(fmt.Sprintf("cone: findImpliedEquations: %v", err))
	}
	eqSpace := gens.KernelBasis()

	kept := mustZero(c.n)
	for i := 0; i < c.inequalities.NumRows(); i++ {
		row := c.inequalities.Row(i)
		if eqSpace.InRowSpace(row) {
			continue // vanishes on the cone, now carried by the equations
		}
		if err = kept.AppendRow(row); err != nil {
			panic(fmt.Sprintf("cone: findImpliedEquations: %v", err))
		}
	}
	c.equations = eqSpace
	c.inequalities = kept

	if !c.raysCached {
		c.cachedRays = reduceRays(rays, lin)
		c.raysCached = true
	}
	c.level = LevelImpliedEquationsKnown
}

// findFacets removes redundant inequalities. A row a defines a facet iff
// the extreme rays tight at a together with the lineality space span a
// (dim−1)-dimensional subspace; rows defining the same facet are deduped by
// their canonical representative modulo the equation space. No linear
// program is solved: the generator description makes redundancy a rank
// question.
func (c *Cone) findFacets() {
	rays := c.extremeRays(nil)
	lin := c.generatorsOfLinealitySpace()
	d := c.n - c.equations.Rank()

	kept := mustZero(c.n)
	seen := make(map[string]bool)
	for i := 0; i < c.inequalities.NumRows(); i++ {
		row := c.inequalities.Row(i)
		tight := lin.Clone()
		for j := 0; j < rays.NumRows(); j++ {
			if row.Dot(rays.Row(j)).Sign() == 0 {
				if err := tight.AppendRow(rays.Row(j)); err != nil {
					panic(fmt.Sprintf("cone: findFacets: %v", err))
				}
			}
		}
		if tight.Rank() != d-1 {
			continue
		}
		key := zmatrix.ReduceModRowSpace(row, c.equations).String()
		if seen[key] {
			continue
		}
		seen[key] = true
		if err := kept.AppendRow(row); err != nil {
			panic(fmt.Sprintf("cone: findFacets: %v", err))
		}
	}
	c.inequalities = kept
	c.level = LevelFacetsKnown
}

// canonicalizeRows produces the unique representation: equations become the
// primitive-integer reduced row echelon basis of the equation space, each
// inequality is reduced to its canonical representative modulo that space,
// and both matrices are sorted lexicographically.
func (c *Cone) canonicalizeRows() {
	eq := c.equations.RowSpaceReduced()
	ineq := mustZero(c.n)
	for i := 0; i < c.inequalities.NumRows(); i++ {
		if err := ineq.AppendRow(zmatrix.ReduceModRowSpace(c.inequalities.Row(i), eq)); err != nil {
			panic(fmt.Sprintf("cone: canonicalize: %v", err))
		}
	}
	ineq.SortRows()
	eq.SortRows()
	c.equations = eq
	c.inequalities = ineq
	c.level = LevelCanonical
}

// ─────────────────────────────── accessors ───────────────────────────────

// AmbientDimension returns the dimension of the enclosing space.
func (c *Cone) AmbientDimension() int { return c.n }

// Level returns the current knowledge level. Monotone over a cone's life.
func (c *Cone) Level() KnowledgeLevel { return c.level }

// ImpliedEquationsKnown reports whether the equations are known to span
// exactly the implied-equation space, either by derivation or by promise.
func (c *Cone) ImpliedEquationsKnown() bool {
	return c.level >= LevelImpliedEquationsKnown || c.pre&PreImpliedEquationsKnown != 0
}

// FacetsKnown reports whether every inequality row is known to define a
// distinct facet, either by derivation or by promise.
func (c *Cone) FacetsKnown() bool {
	return c.level >= LevelFacetsKnown || c.pre&PreFacetsKnown != 0
}

// Inequalities returns a copy of the current inequality description. No
// minimality is implied below LevelFacetsKnown.
func (c *Cone) Inequalities() *zmatrix.Matrix { return c.inequalities.Clone() }

// Equations returns a copy of the current equation description.
func (c *Cone) Equations() *zmatrix.Matrix { return c.equations.Clone() }

// Facets returns the facet-defining inequalities, advancing the cone to
// LevelFacetsKnown if needed. The first call may be expensive.
func (c *Cone) Facets() *zmatrix.Matrix {
	c.ensureLevel(LevelFacetsKnown)

	return c.inequalities.Clone()
}

// ImpliedEquations returns a basis of the space of linear forms vanishing
// on the cone, advancing to LevelImpliedEquationsKnown if needed.
func (c *Cone) ImpliedEquations() *zmatrix.Matrix {
	c.ensureLevel(LevelImpliedEquationsKnown)

	return c.equations.Clone()
}

// Dimension returns the dimension of the cone:
// ambient − rank(implied equations).
func (c *Cone) Dimension() int {
	c.ensureLevel(LevelImpliedEquationsKnown)

	return c.n - c.equations.Rank()
}

// Codimension returns ambient − dimension.
func (c *Cone) Codimension() int { return c.n - c.Dimension() }

// DimensionOfLinealitySpace returns the dimension of the largest linear
// subspace contained in the cone. Needs no state advancement: the lineality
// space is the kernel of the stacked description.
func (c *Cone) DimensionOfLinealitySpace() int {
	return c.generatorsOfLinealitySpace().NumRows()
}

// IsOrigin reports whether the cone is {0}.
func (c *Cone) IsOrigin() bool { return c.Dimension() == 0 }

// IsFullSpace reports whether the cone is all of the ambient space.
// A valid constraint on the full space is necessarily the zero row, so this
// never triggers a derivation.
func (c *Cone) IsFullSpace() bool {
	for i := 0; i < c.inequalities.NumRows(); i++ {
		if !c.inequalities.Row(i).IsZero() {
			return false
		}
	}
	for i := 0; i < c.equations.NumRows(); i++ {
		if !c.equations.Row(i).IsZero() {
			return false
		}
	}

	return true
}

// GeneratorsOfSpan returns a lattice basis of span(cone) ∩ Zⁿ as rows.
func (c *Cone) GeneratorsOfSpan() *zmatrix.Matrix {
	c.ensureLevel(LevelImpliedEquationsKnown)

	return c.equations.KernelBasis()
}

// GeneratorsOfLinealitySpace returns a lattice basis of
// lineality(cone) ∩ Zⁿ as rows.
func (c *Cone) GeneratorsOfLinealitySpace() *zmatrix.Matrix {
	return c.generatorsOfLinealitySpace()
}

func (c *Cone) generatorsOfLinealitySpace() *zmatrix.Matrix {
	stack, err := zmatrix.VStack(c.inequalities, c.equations)
	if err != nil {
		panic(fmt.Sprintf("cone: lineality: %v", err))
	}

	return stack.KernelBasis()
}

// Multiplicity returns a copy of the cone's weight (default 1).
func (c *Cone) Multiplicity() *big.Int { return new(big.Int).Set(c.multiplicity) }

// SetMultiplicity stores a copy of m as the cone's weight. Plain stored
// field, no state interaction. Panics on nil.
func (c *Cone) SetMultiplicity(m *big.Int) {
	if m == nil {
		panic("cone: SetMultiplicity: nil multiplicity")
	}
	c.multiplicity = new(big.Int).Set(m)
}

// LinearForms returns a copy of the stored linear-forms payload.
func (c *Cone) LinearForms() *zmatrix.Matrix { return c.linearForms.Clone() }

// SetLinearForms stores a copy of lf. Returns ErrAmbientMismatch if lf has
// the wrong width. Plain stored field, no state interaction.
func (c *Cone) SetLinearForms(lf *zmatrix.Matrix) error {
	if lf.NumCols() != c.n {
		return fmt.Errorf("SetLinearForms: width %d, ambient %d: %w", lf.NumCols(), c.n, ErrAmbientMismatch)
	}
	c.linearForms = lf.Clone()

	return nil
}

// CheckInvariants re-derives the description from scratch and reports the
// first broken promise as an ErrInvariantViolated: equations failing to
// span the implied-equation space when ImpliedEquationsKnown, or inequality
// rows that are redundant or duplicated when FacetsKnown. A debug hook for
// tests; production paths trust preassumptions without re-checking.
func (c *Cone) CheckInvariants() error {
	fresh, err := New(c.inequalities, c.equations)
	if err != nil {
		return err
	}
	if c.ImpliedEquationsKnown() {
		fresh.FindImpliedEquations()
		if !fresh.equations.RowSpaceReduced().Equal(c.equations.RowSpaceReduced()) {
			return fmt.Errorf("equations do not span the implied-equation space: %w", ErrInvariantViolated)
		}
		if fresh.inequalities.NumRows() != c.inequalities.NumRows() {
			return fmt.Errorf("an inequality row lies in the implied-equation space: %w", ErrInvariantViolated)
		}
	}
	if c.FacetsKnown() {
		fresh.FindFacets()
		if fresh.inequalities.NumRows() != c.inequalities.NumRows() {
			return fmt.Errorf("inequality rows are not distinct facets: %w", ErrInvariantViolated)
		}
	}

	return nil
}

// String renders the cone's current description for humans: level,
// inequalities and equations. Not a parseable exchange format.
func (c *Cone) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cone in Z^%d [%s]", c.n, c.level)
	fmt.Fprintf(&b, " inequalities=%s equations=%s", c.inequalities, c.equations)

	return b.String()
}
