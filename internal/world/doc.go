// Package world implements the fixed-point rigid-body playground.
//
// A [World] owns a fixed population of eight [RigidBody] values bouncing
// inside a rectangular display. One body is the player, driven by external
// input; the rest are free bodies governed purely by the per-frame
// integrator. Each [World.Step] applies gravity, friction, boundary
// collision and semi-implicit Euler integration in a fixed order, entirely
// in Q15.16 fixed point, so two runs from the same seed and input sequence
// are bit-identical on every platform.
//
// Step never fails: the frame transform is total over the body population
// and the configured bounds. The only numeric hazard is fixed-point
// wraparound, which the display-sized coordinate range stays far away from.
package world
