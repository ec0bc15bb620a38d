// Package tui is the interactive condition explorer: adjust temperature
// and pressure from the keyboard and watch the derived gas properties.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/aerosol/internal/gas"
	"github.com/san-kum/aerosol/internal/units"
	"github.com/san-kum/aerosol/internal/viz"
)

const historyCapacity = 120

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Steps per keypress; shifted arrows move by the fine step.
const (
	tempStep     = 5.0   // K
	tempFineStep = 0.5   // K
	presStep     = 5000  // Pa
	presFineStep = 100   // Pa
)

type model struct {
	temperature float64 // K
	pressure    float64 // Pa
	history     []float64
	err         error
	width       int
}

// NewExplorer starts from env's stored conditions.
func NewExplorer(env *gas.Environment) tea.Model {
	return model{
		temperature: env.Temperature().Value(),
		pressure:    env.Pressure().Value(),
		history:     make([]float64, 0, historyCapacity),
		width:       80,
	}
}

// Run blocks until the explorer exits.
func Run(env *gas.Environment) error {
	p := tea.NewProgram(NewExplorer(env), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left":
			m.temperature -= tempStep
		case "right":
			m.temperature += tempStep
		case "shift+left":
			m.temperature -= tempFineStep
		case "shift+right":
			m.temperature += tempFineStep
		case "down":
			m.pressure -= presStep
		case "up":
			m.pressure += presStep
		case "shift+down":
			m.pressure -= presFineStep
		case "shift+up":
			m.pressure += presFineStep
		case "r":
			m.temperature = gas.DefaultTemperature
			m.pressure = gas.DefaultPressure
			m.history = m.history[:0]
		}
		if m.temperature < 1 {
			m.temperature = 1
		}
		if m.pressure < 1 {
			m.pressure = 1
		}
		m.record()
	}
	return m, nil
}

func (m *model) record() {
	env, err := gas.NewEnvironment(gas.Options{
		Temperature: units.Scalar(m.temperature),
		Pressure:    units.Scalar(m.pressure),
	})
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.history = append(m.history, env.DynamicViscosity().Value())
	if len(m.history) > historyCapacity {
		m.history = m.history[len(m.history)-historyCapacity:]
	}
}

func (m model) View() string {
	if m.err != nil {
		return dim.Render(m.err.Error())
	}
	env, err := gas.NewEnvironment(gas.Options{
		Temperature: units.Scalar(m.temperature),
		Pressure:    units.Scalar(m.pressure),
	})
	if err != nil {
		return dim.Render(err.Error())
	}

	mu := env.DynamicViscosity().Value()
	mfp := env.MeanFreePath().Value()

	var b strings.Builder
	b.WriteString(cyan.Render("aerosol explorer"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n",
		dim.Render("temperature"),
		white.Render(fmt.Sprintf("%8.2f K (%.2f degC)", m.temperature, m.temperature-273.15)))
	fmt.Fprintf(&b, "%s %s\n\n",
		dim.Render("pressure   "),
		white.Render(fmt.Sprintf("%8.0f Pa (%.4f atm)", m.pressure, m.pressure/101325)))
	fmt.Fprintf(&b, "%s %s\n",
		dim.Render("viscosity  "),
		yellow.Render(fmt.Sprintf("%.6e Pa*s", mu)))
	fmt.Fprintf(&b, "%s %s\n\n",
		dim.Render("mean free path"),
		yellow.Render(fmt.Sprintf("%.6e m", mfp)))
	b.WriteString(viz.Sparkline(m.history, min(m.width-4, 72)))
	b.WriteString("\n\n")
	b.WriteString(viz.KeyHint.Render("←/→ temperature  ↑/↓ pressure  shift: fine step  r reset  q quit"))
	return b.String()
}
