package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/geom"
	"github.com/san-kum/bounce/internal/world"
)

const historyCapacity = 300

type TickMsg time.Time

// Model drives the live view: it owns the world, steps it once per
// tick, and renders it into a braille canvas with a stats sidebar.
type Model struct {
	world        *world.World
	canvas       *Canvas
	fps          int
	frame        int
	running      bool
	showStats    bool
	showHelp     bool
	speedHistory []float64
}

func NewModel(w *world.World, cfg *config.Config) Model {
	width, height := w.Size()
	return Model{
		world:        w,
		canvas:       NewCanvas(width, height),
		fps:          cfg.FPS,
		running:      true,
		showStats:    cfg.Stats,
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the world.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.world.Randomize()
		case "g":
			m.world.SetGravityEnabled(!m.world.GravityEnabled())
		case "i":
			m.world.InvertGravity()
		case "s":
			m.world.HaltPlayer()
		case "left", "h":
			m.world.ApplyPlayerForce(geom.Vec(-world.InputForce, 0))
		case "right", "l":
			m.world.ApplyPlayerForce(geom.Vec(world.InputForce, 0))
		case "up", "k":
			m.world.ApplyPlayerForce(geom.Vec(0, -world.InputForce))
		case "down", "j":
			m.world.ApplyPlayerForce(geom.Vec(0, world.InputForce))
		case "tab", "d":
			m.showStats = !m.showStats
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.world.Step()
			m.frame++
			m.speedHistory = append(m.speedHistory, playerSpeed(m.world))
			if len(m.speedHistory) > historyCapacity {
				m.speedHistory = m.speedHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func playerSpeed(w *world.World) float64 {
	v := w.Player().Velocity
	x, y := v.X.Float(), v.Y.Float()
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}

func (m Model) draw() {
	m.canvas.Clear()
	for i := 0; i < world.BodyCount; i++ {
		b := m.world.Body(i)
		if i == m.world.PlayerIndex() {
			m.canvas.StrokeRect(b.PixelX(), b.PixelY(), world.BodyExtent, world.BodyExtent)
		} else {
			m.canvas.FillRect(b.PixelX(), b.PixelY(), world.BodyExtent, world.BodyExtent)
		}
	}
}

// View renders the canvas and, if enabled, the stats sidebar.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())
	if !m.showStats {
		return canvasView + "\n" + m.helpLine()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.statsView()) + "\n" + m.helpLine()
}

func (m Model) statsView() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("BOUNCE") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.frame)) + "\n")

	gravity := "OFF"
	if m.world.GravityEnabled() {
		dir := "DOWN"
		if !m.world.GravityPointsDown() {
			dir = "UP"
		}
		gravity = onStyle.Render("ON " + dir)
	}
	s.WriteString(labelStyle.Render("Gravity") + gravity + "\n\n")

	s.WriteString(labelStyle.Render("G") + valueStyle.Render(fmt.Sprintf("%.4f", world.CoefficientOfGravity.Float())) + "\n")
	s.WriteString(labelStyle.Render("F") + valueStyle.Render(fmt.Sprintf("%.4f", world.CoefficientOfFriction.Float())) + "\n")
	s.WriteString(labelStyle.Render("R") + valueStyle.Render(fmt.Sprintf("%.4f", world.CoefficientOfRestitution.Float())) + "\n")
	s.WriteString(labelStyle.Render("R thresh") + valueStyle.Render(fmt.Sprintf("%.6f", world.RestitutionThreshold.Float())) + "\n")
	s.WriteString(labelStyle.Render("Input") + valueStyle.Render(fmt.Sprintf("%.4f", world.InputForce.Float())) + "\n\n")

	p := m.world.Player()
	s.WriteString(labelStyle.Render("Player pos") + valueStyle.Render(fmt.Sprintf("%.2f, %.2f", p.Position.X.Float(), p.Position.Y.Float())) + "\n")
	s.WriteString(labelStyle.Render("Player vel") + valueStyle.Render(fmt.Sprintf("%.3f, %.3f", p.Velocity.X.Float(), p.Velocity.Y.Float())) + "\n")

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory, asciigraph.Height(4), asciigraph.Width(26), asciigraph.Caption("player speed"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	return statsStyle.Render(s.String())
}

func (m Model) helpLine() string {
	if m.showHelp {
		return helpStyle.Render("arrows/hjkl push · s stop · r randomize · g gravity · i invert · d stats · space pause · q quit")
	}
	return helpStyle.Render("? help · q quit")
}
