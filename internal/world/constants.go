package world

import "github.com/san-kum/bounce/internal/fixed"

// Tunable simulation constants. The fractional ones are exact Q15.16
// literals rather than float conversions, so the integrator never touches
// floating point. The commented value is the fraction they encode.
const (
	// CoefficientOfFriction is the per-frame velocity decay factor.
	CoefficientOfFriction = fixed.Fix(62259) // 0.95

	// CoefficientOfGravity is the per-frame gravitational acceleration.
	CoefficientOfGravity = fixed.Fix(32768) // 0.5

	// CoefficientOfRestitution is the rebound fraction kept on a damped
	// vertical bounce.
	CoefficientOfRestitution = fixed.Fix(19660) // 0.3

	// RestitutionThreshold is the vertical speed below which a boundary
	// contact comes to rest instead of rebounding. Keeps fixed-point
	// residue from bouncing forever.
	RestitutionThreshold = fixed.Epsilon * 16

	// InputForce is the velocity added per frame per held direction.
	InputForce = fixed.Fix(16384) // 0.25
)

const (
	// BodyCount is the fixed size of the body population.
	BodyCount = 8

	// BodyExtent is the edge length in pixels of every body's bounding
	// box, used by the boundary test and the renderer.
	BodyExtent = 8
)
