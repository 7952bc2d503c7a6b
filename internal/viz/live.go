// Package viz renders a live terminal view of an evolving probability
// density.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qwave/internal/analysis"
	"github.com/san-kum/qwave/internal/solver"
)

const (
	graphWidth  = 90
	graphHeight = 16
)

type TickMsg time.Time

// Model steps a Propagator a few dt per frame and plots |ψ|².
type Model struct {
	newProp  func() (*solver.Propagator, error)
	prop     *solver.Propagator
	duration float64
	perFrame int
	fps      int
	running  bool
	title    string
	err      error
}

// NewModel builds the live view. newProp recreates the propagator so the
// run can be reset; stepsPerFrame controls simulation speed relative to
// wall clock.
func NewModel(title string, newProp func() (*solver.Propagator, error), duration float64, stepsPerFrame, fps int) (Model, error) {
	prop, err := newProp()
	if err != nil {
		return Model{}, err
	}
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	if fps < 1 {
		fps = 30
	}
	return Model{
		newProp:  newProp,
		prop:     prop,
		duration: duration,
		perFrame: stepsPerFrame,
		fps:      fps,
		running:  true,
		title:    title,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			prop, err := m.newProp()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.prop = prop
			m.err = nil
			m.running = true
		}
	case TickMsg:
		if m.running && m.err == nil && m.prop.Time() < m.duration {
			for i := 0; i < m.perFrame && m.prop.Time() < m.duration; i++ {
				m.prop.Step()
			}
			norm := m.prop.Wave().Norm()
			if math.IsNaN(norm) || math.IsInf(norm, 0) {
				m.err = fmt.Errorf("state diverged at t=%.4f", m.prop.Time())
				m.running = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	wave := m.prop.Wave()
	density := wave.ProbabilityDensity()
	graph := asciigraph.Plot(density,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("|psi|^2"),
	)
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n")

	stat := func(label string, value float64) string {
		return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%.5f", value))
	}
	b.WriteString(stat("t", m.prop.Time()))
	b.WriteString("\n")
	b.WriteString(stat("norm", wave.Norm()))
	b.WriteString("\n")
	b.WriteString(stat("center", analysis.Center(wave)))
	b.WriteString("\n")
	b.WriteString(stat("width", analysis.Width(wave)))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the live view and blocks until the user quits.
func Run(title string, newProp func() (*solver.Propagator, error), duration float64, stepsPerFrame, fps int) error {
	m, err := NewModel(title, newProp, duration, stepsPerFrame, fps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
