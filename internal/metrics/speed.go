// Package metrics provides run-level diagnostics accumulated over frames.
// All metrics work on the float snapshots, never on the fixed-point state,
// so they cannot perturb the simulation.
package metrics

import "github.com/san-kum/bounce/internal/sim"

// MeanSpeed averages the speed of every body over every observed frame.
type MeanSpeed struct {
	name    string
	total   float64
	samples int
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(f sim.Frame) {
	for _, b := range f.Bodies {
		m.total += b.Speed()
		m.samples++
	}
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}

// PeakSpeed tracks the fastest body seen across the whole run.
type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (m *PeakSpeed) Name() string { return m.name }

func (m *PeakSpeed) Observe(f sim.Frame) {
	for _, b := range f.Bodies {
		if s := b.Speed(); s > m.peak {
			m.peak = s
		}
	}
}

func (m *PeakSpeed) Value() float64 { return m.peak }

func (m *PeakSpeed) Reset() { m.peak = 0 }
