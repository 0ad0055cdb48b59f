package metrics

import (
	"math"

	"github.com/san-kum/bounce/internal/sim"
)

// Spread averages the mean pairwise distance between bodies over the run.
// High values mean the population is scattered across the display, low
// values that it has clumped (typically piled on the floor under gravity).
type Spread struct {
	name    string
	total   float64
	samples int
}

func NewSpread() *Spread {
	return &Spread{name: "spread"}
}

func (m *Spread) Name() string { return m.name }

func (m *Spread) Observe(f sim.Frame) {
	n := len(f.Bodies)
	if n < 2 {
		return
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := f.Bodies[i].X - f.Bodies[j].X
			dy := f.Bodies[i].Y - f.Bodies[j].Y
			sum += math.Hypot(dx, dy)
			pairs++
		}
	}

	m.total += sum / float64(pairs)
	m.samples++
}

func (m *Spread) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Spread) Reset() {
	m.total = 0
	m.samples = 0
}
