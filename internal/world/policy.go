package world

import "github.com/san-kum/bounce/internal/fixed"

// collisionPolicy resolves a body's contact with the top and bottom walls.
// Horizontal walls are always perfectly elastic and handled inline by the
// integrator; only the vertical rule changes with the gravity mode, so the
// policy is selected once per step.
type collisionPolicy interface {
	collideVertical(b *RigidBody, maxY fixed.Fix)
}

// elasticWalls is the top-down mode policy: clamp and negate, identical to
// the horizontal walls.
type elasticWalls struct{}

func (elasticWalls) collideVertical(b *RigidBody, maxY fixed.Fix) {
	if b.Position.Y < 0 {
		b.Position.Y = 0
		b.Velocity.Y = -b.Velocity.Y
	}
	if b.Position.Y > maxY {
		b.Position.Y = maxY
		b.Velocity.Y = -b.Velocity.Y
	}
}

// gravityWell is the gravity mode policy: clamp, then either rebound with
// restitution damping or come to rest outright.
type gravityWell struct{}

func (gravityWell) collideVertical(b *RigidBody, maxY fixed.Fix) {
	if b.Position.Y < 0 {
		b.Position.Y = 0
		settle(b)
	}
	if b.Position.Y > maxY {
		b.Position.Y = maxY
		settle(b)
	}
}

// settle applies the restitution rule to the vertical velocity read at the
// moment of the boundary test, whichever wall was crossed.
//
// Note the comparison is signed: only a large downward (positive) velocity
// rebounds. A large upward velocity at a crossing takes the rest branch and
// is zeroed outright. Changing that would change every gravity-mode
// trajectory, so a test pins it.
func settle(b *RigidBody) {
	if b.Velocity.Y > RestitutionThreshold {
		b.Velocity.Y = (-b.Velocity.Y).Mul(CoefficientOfRestitution)
	} else {
		b.Velocity.Y = 0
	}
}
