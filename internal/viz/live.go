// Package viz renders RV runs in the terminal: braille scatter plots
// for the CLI and a live bubbletea view animating the orbit alongside
// its radial-velocity trace.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rvlab/internal/orbit"
	"github.com/san-kum/rvlab/internal/solver"
)

const (
	orbitWidth   = 52
	orbitHeight  = 14
	traceWidth   = 70
	traceHeight  = 8
	traceSamples = 140
)

type TickMsg time.Time

// Model animates a companion sweeping its orbit while accumulating the
// star's radial-velocity trace.
type Model struct {
	label  string
	el     orbit.Elements
	slv    solver.Solver
	t      float64 // days since periastron passage
	speed  float64 // days advanced per tick
	canvas *Canvas

	running  bool
	showHelp bool
	solveErr error

	trace []float64

	// current kinematic state, for the stats panel
	meanAnom, eccAnom, trueAnom float64
	radius, velocity            float64
}

// NewModel builds a live view for the given orbit. One orbit takes
// about ten seconds of wall time at the default speed.
func NewModel(label string, el orbit.Elements, slv solver.Solver) Model {
	return Model{
		label:   label,
		el:      el,
		slv:     slv,
		speed:   el.Period / 300,
		canvas:  NewCanvas(orbitWidth, orbitHeight),
		running: true,
		trace:   make([]float64, 0, traceSamples),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = 0
			m.trace = m.trace[:0]
			m.solveErr = nil
		case "+", "=":
			m.speed *= 1.25
		case "-", "_":
			m.speed /= 1.25
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && m.solveErr == nil {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	m.t += m.speed

	M := m.el.MeanMotion() * m.t
	E, err := m.slv.Solve(m.el.Ecc, math.Mod(M, 2*math.Pi))
	if err != nil {
		m.solveErr = err
		return
	}

	var f float64
	if m.el.Ecc == 0 {
		f = math.Mod(M, 2*math.Pi)
	} else {
		f = m.el.TrueAnomaly(E)
		if math.Mod(M, 2*math.Pi) > math.Pi {
			f = 2*math.Pi - f
		}
	}

	m.meanAnom = math.Mod(M, 2*math.Pi)
	m.eccAnom = E
	m.trueAnom = f
	m.radius = m.el.Radius(E)
	m.velocity = m.el.RadialVelocity(f)

	m.trace = append(m.trace, m.velocity)
	if len(m.trace) > traceSamples {
		m.trace = m.trace[1:]
	}

	m.draw(E)
}

// draw renders the ellipse with the star at the occupied focus and the
// companion at its current eccentric anomaly.
func (m *Model) draw(E float64) {
	m.canvas.Clear()

	a := m.el.SemiMajor
	b := a * math.Sqrt(1-m.el.Ecc*m.el.Ecc)

	// Focus at the origin; x spans [-a(1+e), a(1-e)].
	subW := float64(orbitWidth*2 - 2)
	subH := float64(orbitHeight*4 - 2)
	scale := math.Min(subW/(2.2*a), subH/(2.2*b))
	cx := subW/2 + a*m.el.Ecc*scale
	cy := subH / 2

	toPixel := func(x, y float64) (int, int) {
		return int(cx + x*scale), int(cy - y*scale)
	}

	// Outline via the trig table; the solver path never touches it.
	outline := 360
	for i := 0; i < outline; i++ {
		sin, cos := orbit.FastSinCos(float64(i) / float64(outline) * 2 * math.Pi)
		px, py := toPixel(a*(cos-m.el.Ecc), b*sin)
		m.canvas.Set(px, py)
	}

	// Star at the focus, drawn as a small cross.
	sx, sy := toPixel(0, 0)
	for _, d := range [][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		m.canvas.Set(sx+d[0], sy+d[1])
	}

	// Companion, a 2x2 block.
	px, py := toPixel(a*(math.Cos(E)-m.el.Ecc), b*math.Sin(E))
	for _, d := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		m.canvas.Set(px+d[0], py+d[1])
	}
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("rvlab live — %s", m.label))

	var stats strings.Builder
	row := func(label string, format string, args ...interface{}) {
		stats.WriteString(labelStyle.Render(label))
		stats.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
		stats.WriteString("\n")
	}
	row("t", "%.2f d", m.t)
	row("phase", "%.3f", math.Mod(m.t/m.el.Period, 1))
	row("M", "%.3f rad", m.meanAnom)
	row("E", "%.3f rad", m.eccAnom)
	row("f", "%.3f rad", m.trueAnom)
	row("r", "%.4f AU", m.radius)
	row("RV", "%.4f km/s", m.velocity)
	row("speed", "%.3f d/tick", m.speed)
	if !m.running {
		stats.WriteString("\npaused")
	}
	if m.solveErr != nil {
		stats.WriteString("\n" + errStyle.Render(m.solveErr.Error()))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)

	graph := ""
	if len(m.trace) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.trace,
			asciigraph.Height(traceHeight),
			asciigraph.Width(traceWidth),
			asciigraph.Caption("RV (km/s)"),
		))
	}

	help := helpStyle.Render("space pause · r reset · +/- speed · q quit")
	if m.showHelp {
		help = helpStyle.Render("space: pause/resume · r: restart at periastron · +/-: time per tick · ?: toggle help · q: quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, top, graph, help)
}
