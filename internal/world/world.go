package world

import (
	"math/rand"

	"github.com/san-kum/bounce/internal/fixed"
	"github.com/san-kum/bounce/internal/geom"
)

// World owns the body population and the world-level physics state, and
// advances it one discrete time step per Step call. It is not safe for
// concurrent use; the frame loop runs input, Step and rendering on a single
// goroutine.
type World struct {
	bodies [BodyCount]RigidBody

	// player indexes the body under external control. It is fixed at
	// construction so the input pass and the physics pass always name the
	// same body.
	player int

	gravityEnabled     bool
	gravitationalForce geom.Vector2

	width, height int
	maxX, maxY    fixed.Fix

	rng *rand.Rand
}

// New creates a world bounded by a width x height pixel display, scatters
// the free bodies and places the player at rest in the center. The seed
// drives all randomization; equal seeds give bit-identical worlds.
func New(width, height int, seed int64) *World {
	w := &World{
		gravitationalForce: geom.Vec(0, CoefficientOfGravity),
		width:              width,
		height:             height,
		maxX:               fixed.FromInt(width - BodyExtent),
		maxY:               fixed.FromInt(height - BodyExtent),
		rng:                rand.New(rand.NewSource(seed)),
	}

	w.Randomize()

	p := &w.bodies[w.player]
	p.Position = geom.Pt(fixed.FromInt(width/2), fixed.FromInt(height/2))
	p.Velocity = geom.Vector2{}

	return w
}

// Step advances the simulation by exactly one frame. For each body, in
// array order: gravity, friction, horizontal walls, vertical walls per the
// active collision policy, then semi-implicit Euler integration. Later
// stages deliberately read the velocity mutated by earlier ones.
func (w *World) Step() {
	var policy collisionPolicy = elasticWalls{}
	if w.gravityEnabled {
		policy = gravityWell{}
	}

	for i := range w.bodies {
		b := &w.bodies[i]

		if w.gravityEnabled {
			b.Velocity = b.Velocity.Add(w.gravitationalForce)
		}

		if w.gravityEnabled {
			// Vertical motion belongs to gravity and restitution, so
			// ambient friction only drags the horizontal axis.
			b.Velocity.X = b.Velocity.X.Mul(CoefficientOfFriction)
		} else {
			b.Velocity = b.Velocity.Scale(CoefficientOfFriction)
		}

		if b.Position.X < 0 {
			b.Position.X = 0
			b.Velocity.X = -b.Velocity.X
		}
		if b.Position.X > w.maxX {
			b.Position.X = w.maxX
			b.Velocity.X = -b.Velocity.X
		}

		policy.collideVertical(b, w.maxY)

		b.Position = b.Position.Add(b.Velocity)
	}
}

// Randomize scatters every body, the player included, to a uniform pixel
// position inside the display and kicks its velocity. With gravity on only
// the vertical axis is kicked; in top-down mode both axes are.
func (w *World) Randomize() {
	for i := range w.bodies {
		b := &w.bodies[i]

		b.Position = geom.Pt(
			fixed.FromInt(w.rng.Intn(w.width)),
			fixed.FromInt(w.rng.Intn(w.height)),
		)

		if w.gravityEnabled {
			b.Velocity.Y += w.randomKick()
		} else {
			b.Velocity = b.Velocity.Add(geom.Vec(w.randomKick(), w.randomKick()))
		}
	}
}

// randomKick returns a velocity offset in roughly [-8, 8) with a uniform
// fractional component.
func (w *World) randomKick() fixed.Fix {
	return fixed.FromParts(-8+w.rng.Intn(16), uint16(w.rng.Intn(1<<fixed.FractionBits)))
}

// SetGravityEnabled switches between gravity mode and top-down mode.
func (w *World) SetGravityEnabled(enabled bool) {
	w.gravityEnabled = enabled
}

// GravityEnabled reports whether gravity mode is active.
func (w *World) GravityEnabled() bool {
	return w.gravityEnabled
}

// InvertGravity flips the gravitational force. Magnitude is preserved.
func (w *World) InvertGravity() {
	w.gravitationalForce = w.gravitationalForce.Neg()
}

// GravityPointsDown reports the current direction of the gravitational
// force, for the stats overlay.
func (w *World) GravityPointsDown() bool {
	return w.gravitationalForce.Y >= 0
}

// ApplyPlayerForce adds an input force to the player's velocity. Input is
// modeled as a force enacted on the controlled body for one frame.
func (w *World) ApplyPlayerForce(f geom.Vector2) {
	b := &w.bodies[w.player]
	b.Velocity = b.Velocity.Add(f)
}

// HaltPlayer hard-zeroes the player's velocity. Emergency stop.
func (w *World) HaltPlayer() {
	w.bodies[w.player].Velocity = geom.Vector2{}
}

// Body returns a copy of body i.
func (w *World) Body(i int) RigidBody {
	return w.bodies[i]
}

// Player returns a copy of the player body.
func (w *World) Player() RigidBody {
	return w.bodies[w.player]
}

// PlayerIndex returns the index of the player body.
func (w *World) PlayerIndex() int {
	return w.player
}

// Size returns the display bounds in pixels.
func (w *World) Size() (width, height int) {
	return w.width, w.height
}

// SetBody overwrites body i. Test and scenario setup only; the frame loop
// never repositions bodies directly.
func (w *World) SetBody(i int, b RigidBody) {
	w.bodies[i] = b
}
