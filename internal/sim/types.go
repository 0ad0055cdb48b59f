// Package sim drives headless simulation runs: it advances a world a fixed
// number of frames, snapshots diagnostic state each frame and feeds metrics
// and observers. The snapshots are float64 copies of the fixed-point state,
// for storage and display only; the simulation itself never reads them back.
package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/bounce/internal/world"
)

// BodyState is a diagnostic float copy of one body's state, in pixels and
// pixels per frame.
type BodyState struct {
	X, Y   float64
	VX, VY float64
}

// Speed returns the body's speed magnitude.
func (b BodyState) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Frame is the diagnostic snapshot of every body after one step.
type Frame struct {
	Index  int
	Bodies []BodyState
}

// Snapshot captures the current world state as frame number index.
func Snapshot(w *world.World, index int) Frame {
	f := Frame{Index: index, Bodies: make([]BodyState, world.BodyCount)}
	for i := 0; i < world.BodyCount; i++ {
		b := w.Body(i)
		f.Bodies[i] = BodyState{
			X:  b.Position.X.Float(),
			Y:  b.Position.Y.Float(),
			VX: b.Velocity.X.Float(),
			VY: b.Velocity.Y.Float(),
		}
	}
	return f
}

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer is notified of every frame as it is produced.
type Observer interface {
	OnFrame(f Frame)
}

// Config parameterizes a headless run.
type Config struct {
	Frames int
	Seed   int64
}

// Result holds a completed run.
type Result struct {
	Frames  []Frame
	Metrics map[string]float64
}

func (c Config) validate() error {
	if c.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Frames)
	}
	return nil
}
