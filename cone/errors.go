// Package cone: sentinel error set.
// Constructors return these sentinels for invalid user input; callers match
// them via errors.Is. Contract violations on an already-constructed cone
// panic instead (see doc.go).

package cone

import "errors"

var (
	// ErrAmbientMismatch is returned when matrices or cones that must share
	// an ambient dimension do not: inequality vs equation width at
	// construction, linear-forms width, or Intersection of cones living in
	// different spaces.
	ErrAmbientMismatch = errors.New("cone: ambient dimension mismatch")

	// ErrBadMultiplicity is returned when a nil multiplicity is supplied.
	ErrBadMultiplicity = errors.New("cone: multiplicity must be non-nil")

	// ErrInvariantViolated is returned by CheckInvariants when a
	// construction-time promise (preassumption) or a level invariant does
	// not hold for the current description.
	ErrInvariantViolated = errors.New("cone: preassumption or level invariant violated")
)
