// Package scenario runs scripted input sequences against a world, for
// reproducible headless experiments. A scenario names the frames at
// which inputs fire; the same scenario on the same seed always produces
// the same trajectory.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bounce/internal/geom"
	"github.com/san-kum/bounce/internal/sim"
	"github.com/san-kum/bounce/internal/world"
)

// Scenario is a scripted simulation sequence.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Frames      int    `yaml:"frames"`
	Steps       []Step `yaml:"steps"`
}

// Step fires one action before the step that produces frame Frame+1.
type Step struct {
	Frame  int    `yaml:"frame"`
	Action string `yaml:"action"`
}

var actions = map[string]func(w *world.World){
	"push_left":   func(w *world.World) { w.ApplyPlayerForce(geom.Vec(-world.InputForce, 0)) },
	"push_right":  func(w *world.World) { w.ApplyPlayerForce(geom.Vec(world.InputForce, 0)) },
	"push_up":     func(w *world.World) { w.ApplyPlayerForce(geom.Vec(0, -world.InputForce)) },
	"push_down":   func(w *world.World) { w.ApplyPlayerForce(geom.Vec(0, world.InputForce)) },
	"halt":        func(w *world.World) { w.HaltPlayer() },
	"randomize":   func(w *world.World) { w.Randomize() },
	"gravity_on":  func(w *world.World) { w.SetGravityEnabled(true) },
	"gravity_off": func(w *world.World) { w.SetGravityEnabled(false) },
	"invert":      func(w *world.World) { w.InvertGravity() },
}

// Load reads and validates a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) Validate() error {
	if s.Frames <= 0 {
		return fmt.Errorf("scenario %q: frames must be positive, got %d", s.Name, s.Frames)
	}
	for i, step := range s.Steps {
		if step.Frame < 0 || step.Frame >= s.Frames {
			return fmt.Errorf("scenario %q: step %d frame %d outside [0,%d)", s.Name, i, step.Frame, s.Frames)
		}
		if _, ok := actions[step.Action]; !ok {
			return fmt.Errorf("scenario %q: step %d unknown action %q", s.Name, i, step.Action)
		}
	}
	return nil
}

// Driver replays a scenario's steps as the run progresses. It observes
// each emitted frame and applies the actions scheduled at that frame
// number, so they take effect on the following step.
type Driver struct {
	world *world.World
	steps map[int][]string
}

func NewDriver(s *Scenario, w *world.World) *Driver {
	steps := make(map[int][]string)
	for _, step := range s.Steps {
		steps[step.Frame] = append(steps[step.Frame], step.Action)
	}
	return &Driver{world: w, steps: steps}
}

func (d *Driver) OnFrame(f sim.Frame) {
	for _, action := range d.steps[f.Index] {
		actions[action](d.world)
	}
}
