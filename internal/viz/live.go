package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/oscsim/internal/forcing"
	"github.com/san-kum/oscsim/internal/oscillator"
)

const historyCapacity = 600

var (
	liveHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	liveGraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	liveHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	liveStatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

type tickMsg time.Time

// LiveModel steps an oscillator in real time inside a bubbletea program.
type LiveModel struct {
	osc     oscillator.Oscillator[float64]
	signal  forcing.Signal
	dt      float64
	fps     int
	t       float64
	history []float64
	paused  bool
	rebuild func() oscillator.Oscillator[float64]
}

// NewLive builds the live view. rebuild returns a fresh oscillator at the
// initial state; it is invoked on the reset key.
func NewLive(signal forcing.Signal, dt float64, fps int, rebuild func() oscillator.Oscillator[float64]) *LiveModel {
	return &LiveModel{
		osc:     rebuild(),
		signal:  signal,
		dt:      dt,
		fps:     fps,
		history: make([]float64, 0, historyCapacity),
		rebuild: rebuild,
	}
}

func (m *LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.paused = !m.paused
		case "r":
			m.osc = m.rebuild()
			m.t = 0
			m.history = m.history[:0]
		}
	case tickMsg:
		if !m.paused {
			m.osc.Step(m.signal.At(m.t), m.dt)
			m.t += m.dt
			m.history = append(m.history, m.osc.Value())
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *LiveModel) View() string {
	var sb strings.Builder
	sb.WriteString(liveHeaderStyle.Render("oscsim live"))
	sb.WriteString("\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history, asciigraph.Height(14), asciigraph.Width(70))
		sb.WriteString(liveGraphStyle.Render(graph))
		sb.WriteString("\n")
	}

	status := "running"
	if m.paused {
		status = "paused"
	}
	sb.WriteString(liveStatStyle.Render(fmt.Sprintf(
		"t=%.2fs  value=%+.4f  velocity=%+.4f  forcing=%+.4f  [%s]",
		m.t, m.osc.Value(), m.osc.Velocity(), m.signal.At(m.t), status)))
	sb.WriteString(liveHelpStyle.Render("\nspace pause · r reset · q quit"))
	return sb.String()
}

// RunLive blocks until the user quits the live view.
func RunLive(m *LiveModel) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
