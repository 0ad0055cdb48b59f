package sim

import (
	"context"

	"github.com/san-kum/bounce/internal/world"
)

// Runner owns a world and advances it frame by frame. Not safe for
// concurrent use; for parallel seed sweeps see [Ensemble].
type Runner struct {
	world     *world.World
	metrics   []Metric
	observers []Observer
}

// New wraps an existing world in a runner.
func New(w *world.World) *Runner {
	return &Runner{world: w}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// World exposes the driven world for scripted input between frames.
func (r *Runner) World() *world.World {
	return r.world
}

// Run advances the world cfg.Frames steps, snapshotting after each. The
// initial state is recorded as frame 0. Cancelling the context returns the
// partial result alongside the context error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Frames:  make([]Frame, 0, cfg.Frames+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	emit := func(f Frame) {
		result.Frames = append(result.Frames, f)
		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, o := range r.observers {
			o.OnFrame(f)
		}
	}

	emit(Snapshot(r.world, 0))

	for i := 1; i <= cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		r.world.Step()
		emit(Snapshot(r.world, i))
	}

	r.collect(result)
	return result, nil
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
