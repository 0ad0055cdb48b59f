package world

import "github.com/san-kum/bounce/internal/geom"

// RigidBody is a single simulated object: an axis-aligned point mass with
// an 8x8 bounding box. No mass, rotation or shape beyond that.
type RigidBody struct {
	Position geom.Point2
	Velocity geom.Vector2
}

// PixelX returns the body's left edge in whole pixels.
func (b RigidBody) PixelX() int {
	return b.Position.X.Int()
}

// PixelY returns the body's top edge in whole pixels.
func (b RigidBody) PixelY() int {
	return b.Position.Y.Int()
}
